package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/footsim-go/internal/application/common"
	"github.com/andrescamacho/footsim-go/internal/application/events"
	"github.com/andrescamacho/footsim-go/internal/application/transfer/commands"
	"github.com/andrescamacho/footsim-go/internal/domain/ledger"
	"github.com/andrescamacho/footsim-go/internal/domain/player"
	"github.com/andrescamacho/footsim-go/internal/domain/shared"
	"github.com/andrescamacho/footsim-go/internal/domain/team"
	"github.com/andrescamacho/footsim-go/internal/domain/transfer"
	"github.com/andrescamacho/footsim-go/test/helpers"
)

// acceptedOffer submits the standard offer and has the seller accept it
func acceptedOffer(t *testing.T, eng *helpers.TestEngine) int {
	t.Helper()
	id := submitOffer(t, eng)
	_, err := common.SendTyped[*commands.RespondToProposalResponse](
		context.Background(), eng.Mediator,
		&commands.RespondToProposalCommand{ProposalID: id, Action: commands.ActionAccept})
	require.NoError(t, err)
	return id
}

func TestFinalizeTransfer_SettlesEverything(t *testing.T) {
	// Arrange
	eng := helpers.NewTestEngine(t, summerDay)
	seedMarket(t, eng)
	id := acceptedOffer(t, eng)
	var completed []events.TransferCompleted
	eng.Bus.Subscribe(events.KindTransferCompleted, func(ctx context.Context, e events.Event) error {
		completed = append(completed, e.(events.TransferCompleted))
		return nil
	})

	// Act
	resp, err := common.SendTyped[*commands.FinalizeTransferResponse](
		context.Background(), eng.Mediator, &commands.FinalizeTransferCommand{ProposalID: id})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(8_000_000), resp.BuyerBudget)

	buyer, err := eng.Repos.Teams.FindByID(context.Background(), 1)
	require.NoError(t, err)
	seller, err := eng.Repos.Teams.FindByID(context.Background(), 99)
	require.NoError(t, err)
	assert.Equal(t, int64(8_000_000), buyer.Budget)
	assert.Equal(t, int64(7_000_000), seller.Budget)

	moved, err := eng.Repos.Players.FindByID(context.Background(), 1001)
	require.NoError(t, err)
	require.NotNil(t, moved.TeamID)
	assert.Equal(t, 1, *moved.TeamID)
	assert.Equal(t, 85, moved.Moral, "fresh signings arrive motivated")
	require.NotNil(t, moved.LastTransferSeason)
	assert.Equal(t, 1, *moved.LastTransferSeason)
	require.NotNil(t, moved.ContractEnd)
	assert.Equal(t, summerDay.AddDate(3, 0, 0), *moved.ContractEnd)

	contract, err := eng.Repos.Contracts.FindActiveByPlayerID(context.Background(), 1001)
	require.NoError(t, err)
	assert.Equal(t, 1, contract.TeamID)
	assert.Equal(t, int64(105_000), contract.AnnualWage)

	stored, err := eng.Repos.Proposals.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, transfer.StatusCompleted, stored.Status())

	moves, err := eng.Repos.History.CountByPlayerAndSeason(context.Background(), 1001, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, moves)

	require.Len(t, completed, 1, "exactly one completion event per settlement")
	assert.Equal(t, id, completed[0].ProposalID)
}

func TestFinalizeTransfer_WritesBothLedgerSides(t *testing.T) {
	// Arrange
	eng := helpers.NewTestEngine(t, summerDay)
	seedMarket(t, eng)
	id := acceptedOffer(t, eng)

	// Act
	_, err := common.SendTyped[*commands.FinalizeTransferResponse](
		context.Background(), eng.Mediator, &commands.FinalizeTransferCommand{ProposalID: id})
	require.NoError(t, err)

	// Assert
	buyerEntries, err := eng.Repos.Ledger.FindByTeam(context.Background(), 1, ledger.DefaultQueryOptions())
	require.NoError(t, err)
	require.Len(t, buyerEntries, 1)
	assert.Equal(t, ledger.CategoryTransferOut, buyerEntries[0].Category())
	assert.Equal(t, int64(-2_000_000), buyerEntries[0].Amount())
	assert.Equal(t, int64(10_000_000), buyerEntries[0].BalanceBefore())
	assert.Equal(t, int64(8_000_000), buyerEntries[0].BalanceAfter())

	sellerEntries, err := eng.Repos.Ledger.FindByTeam(context.Background(), 99, ledger.DefaultQueryOptions())
	require.NoError(t, err)
	require.Len(t, sellerEntries, 1)
	assert.Equal(t, ledger.CategoryTransferIn, sellerEntries[0].Category())
	assert.Equal(t, int64(2_000_000), sellerEntries[0].Amount())
}

func TestFinalizeTransfer_RequiresAccepted(t *testing.T) {
	eng := helpers.NewTestEngine(t, summerDay)
	seedMarket(t, eng)
	id := submitOffer(t, eng)

	_, err := common.SendTyped[*commands.FinalizeTransferResponse](
		context.Background(), eng.Mediator, &commands.FinalizeTransferCommand{ProposalID: id})

	require.Error(t, err)
	assert.True(t, shared.IsKind(err, shared.KindBusinessRule))
}

func TestFinalizeTransfer_CannotSettleTwice(t *testing.T) {
	// Arrange
	eng := helpers.NewTestEngine(t, summerDay)
	seedMarket(t, eng)
	id := acceptedOffer(t, eng)
	_, err := common.SendTyped[*commands.FinalizeTransferResponse](
		context.Background(), eng.Mediator, &commands.FinalizeTransferCommand{ProposalID: id})
	require.NoError(t, err)

	// Act
	_, err = common.SendTyped[*commands.FinalizeTransferResponse](
		context.Background(), eng.Mediator, &commands.FinalizeTransferCommand{ProposalID: id})

	// Assert: money must not move a second time
	require.Error(t, err)
	assert.True(t, shared.IsKind(err, shared.KindBusinessRule))
	buyer, err := eng.Repos.Teams.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(8_000_000), buyer.Budget)
}

func TestFinalizeTransfer_RollsBackWhenBudgetDropped(t *testing.T) {
	// Arrange: the buyer spends its money between acceptance and settlement
	eng := helpers.NewTestEngine(t, summerDay)
	seedMarket(t, eng)
	id := acceptedOffer(t, eng)
	buyer, err := eng.Repos.Teams.FindByID(context.Background(), 1)
	require.NoError(t, err)
	buyer.Budget = 500_000
	require.NoError(t, eng.Repos.Teams.Save(context.Background(), buyer))

	// Act
	_, err = common.SendTyped[*commands.FinalizeTransferResponse](
		context.Background(), eng.Mediator, &commands.FinalizeTransferCommand{ProposalID: id})

	// Assert: nothing moved and the proposal stays ACCEPTED for a retry
	require.Error(t, err)
	assert.True(t, shared.IsKind(err, shared.KindBusinessRule))

	stored, err := eng.Repos.Proposals.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, transfer.StatusAccepted, stored.Status())

	unmoved, err := eng.Repos.Players.FindByID(context.Background(), 1001)
	require.NoError(t, err)
	assert.Equal(t, 99, *unmoved.TeamID)

	seller, err := eng.Repos.Teams.FindByID(context.Background(), 99)
	require.NoError(t, err)
	assert.Equal(t, int64(5_000_000), seller.Budget)

	entries, err := eng.Repos.Ledger.FindByTeam(context.Background(), 1, ledger.DefaultQueryOptions())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFinalizeTransfer_FreeAgentSigning(t *testing.T) {
	// Arrange: no selling club and no fee, so no ledger entries either
	eng := helpers.NewTestEngine(t, summerDay)
	seedMarket(t, eng)
	helpers.SavePlayer(t, eng.Repos, &player.Player{
		ID: 4001, Name: "Veteran Striker", Position: player.PositionForward, Age: 30, Overall: 66,
	})
	resp, err := common.SendTyped[*commands.CreateProposalResponse](
		context.Background(), eng.Mediator, &commands.CreateProposalCommand{
			PlayerID: 4001, ToTeamID: 1, Kind: transfer.KindFree,
			WageOffer: 60_000, ContractYears: 2,
		})
	require.NoError(t, err)
	_, err = common.SendTyped[*commands.RespondToProposalResponse](
		context.Background(), eng.Mediator,
		&commands.RespondToProposalCommand{ProposalID: resp.ProposalID, Action: commands.ActionAccept})
	require.NoError(t, err)

	// Act
	final, err := common.SendTyped[*commands.FinalizeTransferResponse](
		context.Background(), eng.Mediator, &commands.FinalizeTransferCommand{ProposalID: resp.ProposalID})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(10_000_000), final.BuyerBudget, "free signings cost no fee")

	signed, err := eng.Repos.Players.FindByID(context.Background(), 4001)
	require.NoError(t, err)
	require.NotNil(t, signed.TeamID)
	assert.Equal(t, 1, *signed.TeamID)

	entries, err := eng.Repos.Ledger.FindByTeam(context.Background(), 1, ledger.DefaultQueryOptions())
	require.NoError(t, err)
	assert.Empty(t, entries, "a zero fee books no ledger entry")
}

func TestFinalizeTransfer_BansOverdrawnBuyers(t *testing.T) {
	// A team driven into the red by a deal cannot buy again
	eng := helpers.NewTestEngine(t, summerDay)
	seedMarket(t, eng)
	overdrawn := helpers.SaveTeam(t, eng.Repos, &team.Team{ID: 3, Name: "Broke FC", Budget: -100_000})

	assert.True(t, overdrawn.IsUnderTransferBan())

	_, err := common.SendTyped[*commands.CreateProposalResponse](
		context.Background(), eng.Mediator, &commands.CreateProposalCommand{
			PlayerID: 1001, FromTeamID: helpers.IntPtr(99), ToTeamID: 3,
			Kind: transfer.KindTransfer, Fee: 0, WageOffer: 105_000, ContractYears: 3,
		})
	require.Error(t, err)
	assert.True(t, shared.IsKind(err, shared.KindBusinessRule))
}
