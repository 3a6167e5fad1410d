package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/footsim-go/internal/application/common"
	"github.com/andrescamacho/footsim-go/internal/application/transfer/commands"
	"github.com/andrescamacho/footsim-go/internal/domain/shared"
	"github.com/andrescamacho/footsim-go/internal/domain/transfer"
	"github.com/andrescamacho/footsim-go/test/helpers"
)

// submitOffer creates the standard proposal and returns its ID
func submitOffer(t *testing.T, eng *helpers.TestEngine) int {
	t.Helper()
	resp, err := common.SendTyped[*commands.CreateProposalResponse](
		context.Background(), eng.Mediator, standardOffer())
	require.NoError(t, err)
	return resp.ProposalID
}

func TestRespondToProposal_Accept(t *testing.T) {
	// Arrange
	eng := helpers.NewTestEngine(t, summerDay)
	seedMarket(t, eng)
	id := submitOffer(t, eng)

	// Act
	resp, err := common.SendTyped[*commands.RespondToProposalResponse](
		context.Background(), eng.Mediator,
		&commands.RespondToProposalCommand{ProposalID: id, Action: commands.ActionAccept})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, transfer.StatusAccepted, resp.Status)
}

func TestRespondToProposal_Reject(t *testing.T) {
	// Arrange
	eng := helpers.NewTestEngine(t, summerDay)
	seedMarket(t, eng)
	id := submitOffer(t, eng)

	// Act
	resp, err := common.SendTyped[*commands.RespondToProposalResponse](
		context.Background(), eng.Mediator,
		&commands.RespondToProposalCommand{ProposalID: id, Action: commands.ActionReject, Reason: "not for sale"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, transfer.StatusRejected, resp.Status)

	stored, err := eng.Repos.Proposals.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "not for sale", stored.RejectionReason())
}

func TestRespondToProposal_CounterExtendsDeadline(t *testing.T) {
	// Arrange
	eng := helpers.NewTestEngine(t, summerDay)
	seedMarket(t, eng)
	id := submitOffer(t, eng)

	// Act
	resp, err := common.SendTyped[*commands.RespondToProposalResponse](
		context.Background(), eng.Mediator,
		&commands.RespondToProposalCommand{ProposalID: id, Action: commands.ActionCounter, CounterFee: 2_400_000})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, transfer.StatusNegotiating, resp.Status)
	require.NotNil(t, resp.CounterFee)
	assert.Equal(t, int64(2_400_000), *resp.CounterFee)
	assert.Equal(t, summerDay.AddDate(0, 0, 3), resp.Deadline)
}

func TestRespondToProposal_UnknownAction(t *testing.T) {
	eng := helpers.NewTestEngine(t, summerDay)
	seedMarket(t, eng)
	id := submitOffer(t, eng)

	_, err := common.SendTyped[*commands.RespondToProposalResponse](
		context.Background(), eng.Mediator,
		&commands.RespondToProposalCommand{ProposalID: id, Action: "shrug"})

	require.Error(t, err)
	assert.True(t, shared.IsKind(err, shared.KindValidation))
}

func TestRespondToProposal_TerminalProposal(t *testing.T) {
	// Arrange: reject first, then try to accept
	eng := helpers.NewTestEngine(t, summerDay)
	seedMarket(t, eng)
	id := submitOffer(t, eng)
	_, err := common.SendTyped[*commands.RespondToProposalResponse](
		context.Background(), eng.Mediator,
		&commands.RespondToProposalCommand{ProposalID: id, Action: commands.ActionReject})
	require.NoError(t, err)

	// Act
	_, err = common.SendTyped[*commands.RespondToProposalResponse](
		context.Background(), eng.Mediator,
		&commands.RespondToProposalCommand{ProposalID: id, Action: commands.ActionAccept})

	// Assert
	require.Error(t, err)
	assert.True(t, shared.IsKind(err, shared.KindBusinessRule))
}

func TestAcceptCounterOffer(t *testing.T) {
	// Arrange
	eng := helpers.NewTestEngine(t, summerDay)
	seedMarket(t, eng)
	id := submitOffer(t, eng)
	_, err := common.SendTyped[*commands.RespondToProposalResponse](
		context.Background(), eng.Mediator,
		&commands.RespondToProposalCommand{ProposalID: id, Action: commands.ActionCounter, CounterFee: 2_400_000})
	require.NoError(t, err)

	// Act
	resp, err := common.SendTyped[*commands.AcceptCounterOfferResponse](
		context.Background(), eng.Mediator,
		&commands.AcceptCounterOfferCommand{ProposalID: id})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, transfer.StatusAccepted, resp.Status)
	assert.Equal(t, int64(2_400_000), resp.AgreedFee)
}

func TestAcceptCounterOffer_RequiresNegotiation(t *testing.T) {
	eng := helpers.NewTestEngine(t, summerDay)
	seedMarket(t, eng)
	id := submitOffer(t, eng)

	_, err := common.SendTyped[*commands.AcceptCounterOfferResponse](
		context.Background(), eng.Mediator,
		&commands.AcceptCounterOfferCommand{ProposalID: id})

	require.Error(t, err)
	assert.True(t, shared.IsKind(err, shared.KindBusinessRule))
}

func TestExpireProposals(t *testing.T) {
	// Arrange
	eng := helpers.NewTestEngine(t, summerDay)
	seedMarket(t, eng)
	id := submitOffer(t, eng)

	// Act: eight days later the seven-day deadline has passed
	eng.Clock.SetTime(summerDay.AddDate(0, 0, 8))
	resp, err := common.SendTyped[*commands.ExpireProposalsResponse](
		context.Background(), eng.Mediator, &commands.ExpireProposalsCommand{})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, resp.ExpiredCount)

	stored, err := eng.Repos.Proposals.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, transfer.StatusExpired, stored.Status())
}

func TestExpireProposals_NothingDue(t *testing.T) {
	eng := helpers.NewTestEngine(t, summerDay)
	seedMarket(t, eng)
	submitOffer(t, eng)

	resp, err := common.SendTyped[*commands.ExpireProposalsResponse](
		context.Background(), eng.Mediator, &commands.ExpireProposalsCommand{})

	require.NoError(t, err)
	assert.Zero(t, resp.ExpiredCount)
}
