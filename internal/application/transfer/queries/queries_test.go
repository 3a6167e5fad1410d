package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/footsim-go/internal/application/transfer/queries"
	"github.com/andrescamacho/footsim-go/internal/domain/shared"
	"github.com/andrescamacho/footsim-go/internal/domain/transfer"
	"github.com/andrescamacho/footsim-go/test/helpers"
)

var queryDay = time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)

// storeProposal persists one proposal directly through the repository
func storeProposal(t *testing.T, eng *helpers.TestEngine, playerID int, fromTeamID *int, toTeamID int) *transfer.Proposal {
	t.Helper()
	p, err := transfer.NewProposal(playerID, fromTeamID, toTeamID, transfer.KindTransfer,
		2_000_000, 105_000, 3, queryDay, queryDay.AddDate(0, 0, 7))
	require.NoError(t, err)
	require.NoError(t, eng.Repos.Proposals.Create(context.Background(), p))
	return p
}

func TestGetProposal(t *testing.T) {
	// Arrange
	eng := helpers.NewTestEngine(t, queryDay)
	stored := storeProposal(t, eng, 1001, helpers.IntPtr(99), 1)
	handler := queries.NewGetProposalHandler(eng.Repos)

	// Act
	resp, err := handler.Handle(context.Background(), &queries.GetProposalQuery{ProposalID: stored.ID()})

	// Assert
	require.NoError(t, err)
	dto := resp.(*queries.GetProposalResponse).Proposal
	assert.Equal(t, stored.ID(), dto.ID)
	assert.Equal(t, 1001, dto.PlayerID)
	assert.Equal(t, transfer.StatusPending, dto.Status)
	assert.Equal(t, int64(2_000_000), dto.Fee)
}

func TestGetProposal_NotFound(t *testing.T) {
	eng := helpers.NewTestEngine(t, queryDay)
	handler := queries.NewGetProposalHandler(eng.Repos)

	_, err := handler.Handle(context.Background(), &queries.GetProposalQuery{ProposalID: 4242})

	require.Error(t, err)
	assert.True(t, shared.IsKind(err, shared.KindNotFound))
}

func TestListProposals_FiltersByStatus(t *testing.T) {
	// Arrange: one pending and one rejected proposal involving team 1
	eng := helpers.NewTestEngine(t, queryDay)
	storeProposal(t, eng, 1001, helpers.IntPtr(99), 1)
	rejected := storeProposal(t, eng, 1002, helpers.IntPtr(99), 1)
	require.NoError(t, rejected.Reject("no"))
	require.NoError(t, eng.Repos.Proposals.Update(context.Background(), rejected))
	storeProposal(t, eng, 1003, helpers.IntPtr(7), 8) // unrelated clubs
	handler := queries.NewListProposalsHandler(eng.Repos)

	// Act
	all, err := handler.Handle(context.Background(), &queries.ListProposalsQuery{TeamID: 1})
	require.NoError(t, err)
	pendingOnly, err := handler.Handle(context.Background(), &queries.ListProposalsQuery{
		TeamID: 1, Status: transfer.StatusPending,
	})
	require.NoError(t, err)

	// Assert
	assert.Len(t, all.(*queries.ListProposalsResponse).Proposals, 2)
	filtered := pendingOnly.(*queries.ListProposalsResponse).Proposals
	require.Len(t, filtered, 1)
	assert.Equal(t, 1001, filtered[0].PlayerID)
}
