package transfer_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/footsim-go/internal/domain/shared"
	"github.com/andrescamacho/footsim-go/internal/domain/transfer"
)

var (
	createdAt = time.Date(2025, 7, 15, 10, 0, 0, 0, time.UTC)
	deadline  = createdAt.AddDate(0, 0, 7)
)

func pendingProposal(t *testing.T) *transfer.Proposal {
	t.Helper()
	from := 99
	p, err := transfer.NewProposal(1001, &from, 1, transfer.KindTransfer,
		2_000_000, 105_000, 3, createdAt, deadline)
	require.NoError(t, err)
	return p
}

func TestNewProposal_StartsPending(t *testing.T) {
	// Act
	p := pendingProposal(t)

	// Assert
	assert.Equal(t, transfer.StatusPending, p.Status())
	assert.Equal(t, int64(2_000_000), p.Fee())
	assert.Equal(t, deadline, p.ResponseDeadline())
	assert.False(t, p.IsFreeAgentSigning())
}

func TestNewProposal_Validation(t *testing.T) {
	from := 1

	cases := []struct {
		name string
		run  func() error
	}{
		{"unknown kind", func() error {
			_, err := transfer.NewProposal(1, &from, 2, transfer.Kind("swap"), 100, 100, 3, createdAt, deadline)
			return err
		}},
		{"negative fee", func() error {
			_, err := transfer.NewProposal(1, &from, 2, transfer.KindTransfer, -1, 100, 3, createdAt, deadline)
			return err
		}},
		{"negative wage", func() error {
			_, err := transfer.NewProposal(1, &from, 2, transfer.KindTransfer, 100, -1, 3, createdAt, deadline)
			return err
		}},
		{"buying own player", func() error {
			_, err := transfer.NewProposal(1, &from, 1, transfer.KindTransfer, 100, 100, 3, createdAt, deadline)
			return err
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.run()
			require.Error(t, err)
			assert.True(t, shared.IsKind(err, shared.KindValidation))
		})
	}
}

func TestProposal_FreeAgentSigning(t *testing.T) {
	// Act
	p, err := transfer.NewProposal(4001, nil, 1, transfer.KindFree,
		0, 60_000, 2, createdAt, deadline)

	// Assert
	require.NoError(t, err)
	assert.True(t, p.IsFreeAgentSigning())
	assert.Nil(t, p.FromTeamID())
}

func TestProposal_Accept(t *testing.T) {
	p := pendingProposal(t)

	require.NoError(t, p.Accept())

	assert.Equal(t, transfer.StatusAccepted, p.Status())
}

func TestProposal_Reject(t *testing.T) {
	p := pendingProposal(t)

	require.NoError(t, p.Reject("offer too low"))

	assert.Equal(t, transfer.StatusRejected, p.Status())
	assert.Equal(t, "offer too low", p.RejectionReason())
}

func TestProposal_Counter(t *testing.T) {
	p := pendingProposal(t)
	newDeadline := deadline.AddDate(0, 0, 3)

	require.NoError(t, p.Counter(2_400_000, newDeadline))

	assert.Equal(t, transfer.StatusNegotiating, p.Status())
	require.NotNil(t, p.CounterOfferFee())
	assert.Equal(t, int64(2_400_000), *p.CounterOfferFee())
	assert.Equal(t, newDeadline, p.ResponseDeadline(), "countering extends the deadline")
}

func TestProposal_Counter_RequiresPositiveFee(t *testing.T) {
	p := pendingProposal(t)

	err := p.Counter(0, deadline)

	require.Error(t, err)
	assert.True(t, shared.IsKind(err, shared.KindValidation))
	assert.Equal(t, transfer.StatusPending, p.Status(), "failed counter leaves the proposal untouched")
}

func TestProposal_CounterThenRecounter(t *testing.T) {
	// A negotiation can go through several counter rounds
	p := pendingProposal(t)

	require.NoError(t, p.Counter(2_400_000, deadline.AddDate(0, 0, 3)))
	require.NoError(t, p.Counter(2_200_000, deadline.AddDate(0, 0, 6)))

	assert.Equal(t, transfer.StatusNegotiating, p.Status())
	assert.Equal(t, int64(2_200_000), *p.CounterOfferFee())
}

func TestProposal_AcceptCounter(t *testing.T) {
	// Arrange
	p := pendingProposal(t)
	require.NoError(t, p.Counter(2_400_000, deadline.AddDate(0, 0, 3)))

	// Act
	err := p.AcceptCounter()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, transfer.StatusAccepted, p.Status())
	assert.Equal(t, int64(2_400_000), p.Fee(), "the counter fee becomes the agreed fee")
}

func TestProposal_AcceptCounter_RequiresNegotiating(t *testing.T) {
	p := pendingProposal(t)

	err := p.AcceptCounter()

	require.Error(t, err)
	assert.True(t, shared.IsKind(err, shared.KindBusinessRule))
	assert.Equal(t, transfer.StatusPending, p.Status())
}

func TestProposal_TerminalStatesDoNotRespond(t *testing.T) {
	rejected := pendingProposal(t)
	require.NoError(t, rejected.Reject("no"))

	completed := pendingProposal(t)
	require.NoError(t, completed.Accept())
	require.NoError(t, completed.MarkCompleted())

	expired := pendingProposal(t)
	require.NoError(t, expired.MarkExpired(deadline))

	for _, p := range []*transfer.Proposal{rejected, completed, expired} {
		before := p.Status()

		assert.True(t, shared.IsKind(p.Accept(), shared.KindBusinessRule))
		assert.True(t, shared.IsKind(p.Reject("again"), shared.KindBusinessRule))
		assert.True(t, shared.IsKind(p.Counter(1_000_000, deadline), shared.KindBusinessRule))
		assert.Equal(t, before, p.Status())
	}
}

func TestProposal_MarkCompleted_OnlyFromAccepted(t *testing.T) {
	p := pendingProposal(t)

	err := p.MarkCompleted()

	require.Error(t, err)
	assert.True(t, shared.IsKind(err, shared.KindBusinessRule))
}

func TestProposal_MarkExpired(t *testing.T) {
	p := pendingProposal(t)

	// before the deadline nothing expires
	err := p.MarkExpired(deadline.Add(-time.Hour))
	require.Error(t, err)
	assert.True(t, shared.IsKind(err, shared.KindBusinessRule))
	assert.Equal(t, transfer.StatusPending, p.Status())

	// on the deadline it does
	require.NoError(t, p.MarkExpired(deadline))
	assert.Equal(t, transfer.StatusExpired, p.Status())
}

func TestStatus_Lifecycle(t *testing.T) {
	assert.True(t, transfer.StatusPending.IsRespondable())
	assert.True(t, transfer.StatusNegotiating.IsRespondable())
	assert.False(t, transfer.StatusAccepted.IsRespondable())

	assert.True(t, transfer.StatusRejected.IsTerminal())
	assert.True(t, transfer.StatusCompleted.IsTerminal())
	assert.True(t, transfer.StatusExpired.IsTerminal())
	assert.False(t, transfer.StatusAccepted.IsTerminal())

	_, err := transfer.ParseStatus("haggling")
	assert.Error(t, err)
}
