package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/footsim-go/internal/application/common"
	"github.com/andrescamacho/footsim-go/internal/application/events"
	"github.com/andrescamacho/footsim-go/internal/application/transfer/commands"
	"github.com/andrescamacho/footsim-go/internal/domain/player"
	"github.com/andrescamacho/footsim-go/internal/domain/shared"
	"github.com/andrescamacho/footsim-go/internal/domain/team"
	"github.com/andrescamacho/footsim-go/internal/domain/transfer"
	"github.com/andrescamacho/footsim-go/test/helpers"
)

var summerDay = time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)

// seedMarket puts a buyer, a seller and a contracted midfielder in place
func seedMarket(t *testing.T, eng *helpers.TestEngine) {
	t.Helper()
	helpers.SaveActiveSeason(t, eng.Repos, summerDay)
	helpers.SaveTeam(t, eng.Repos, &team.Team{ID: 1, Name: "FC United", Budget: 10_000_000})
	helpers.SaveTeam(t, eng.Repos, &team.Team{ID: 99, Name: "Provincial FC", Budget: 5_000_000, Strategy: team.StrategySellingClub})
	contractEnd := summerDay.AddDate(1, 6, 0)
	helpers.SavePlayer(t, eng.Repos, &player.Player{
		ID: 1001, TeamID: helpers.IntPtr(99), Name: "Marco Silva",
		Position: player.PositionMidfielder, Age: 26, Overall: 75, Potential: 78,
		Moral: 70, ContractEnd: &contractEnd,
	})
	helpers.SaveContract(t, eng.Repos, &player.Contract{
		PlayerID: 1001, TeamID: 99, AnnualWage: 80_000,
		StartDate: summerDay.AddDate(-1, -6, 0), EndDate: contractEnd,
	})
}

func standardOffer() *commands.CreateProposalCommand {
	return &commands.CreateProposalCommand{
		PlayerID:      1001,
		FromTeamID:    helpers.IntPtr(99),
		ToTeamID:      1,
		Kind:          transfer.KindTransfer,
		Fee:           2_000_000,
		WageOffer:     105_000,
		ContractYears: 3,
	}
}

func TestCreateProposal_HappyPath(t *testing.T) {
	// Arrange
	eng := helpers.NewTestEngine(t, summerDay)
	seedMarket(t, eng)
	var received []events.ProposalReceived
	eng.Bus.Subscribe(events.KindProposalReceived, func(ctx context.Context, e events.Event) error {
		received = append(received, e.(events.ProposalReceived))
		return nil
	})

	// Act
	resp, err := common.SendTyped[*commands.CreateProposalResponse](
		context.Background(), eng.Mediator, standardOffer())

	// Assert
	require.NoError(t, err)
	assert.NotZero(t, resp.ProposalID)
	assert.Equal(t, summerDay.AddDate(0, 0, 7), resp.Deadline)
	assert.False(t, resp.MustAccept)

	stored, err := eng.Repos.Proposals.FindByID(context.Background(), resp.ProposalID)
	require.NoError(t, err)
	assert.Equal(t, transfer.StatusPending, stored.Status())

	require.Len(t, received, 1)
	assert.Equal(t, resp.ProposalID, received[0].ProposalID)
	assert.Equal(t, int64(2_000_000), received[0].Fee)
}

func TestCreateProposal_WindowClosed(t *testing.T) {
	// Arrange: the first of March is outside both windows
	eng := helpers.NewTestEngine(t, time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	seedMarket(t, eng)

	// Act
	_, err := common.SendTyped[*commands.CreateProposalResponse](
		context.Background(), eng.Mediator, standardOffer())

	// Assert
	require.Error(t, err)
	assert.True(t, shared.IsKind(err, shared.KindBusinessRule))
}

func TestCreateProposal_DuplicateActive(t *testing.T) {
	// Arrange
	eng := helpers.NewTestEngine(t, summerDay)
	seedMarket(t, eng)
	_, err := common.SendTyped[*commands.CreateProposalResponse](
		context.Background(), eng.Mediator, standardOffer())
	require.NoError(t, err)

	// Act
	_, err = common.SendTyped[*commands.CreateProposalResponse](
		context.Background(), eng.Mediator, standardOffer())

	// Assert
	require.Error(t, err)
	assert.True(t, shared.IsKind(err, shared.KindConflict))
}

func TestCreateProposal_ValidationFailure(t *testing.T) {
	// Arrange
	eng := helpers.NewTestEngine(t, summerDay)
	seedMarket(t, eng)
	offer := standardOffer()
	offer.Fee = 50_000_000

	// Act
	_, err := common.SendTyped[*commands.CreateProposalResponse](
		context.Background(), eng.Mediator, offer)

	// Assert
	require.Error(t, err)
	assert.True(t, shared.IsKind(err, shared.KindBusinessRule))
	assert.Contains(t, err.Error(), "insufficient budget")
}

func TestCreateProposal_ReleaseClauseFlagsMustAccept(t *testing.T) {
	// Arrange
	eng := helpers.NewTestEngine(t, summerDay)
	seedMarket(t, eng)
	clause := int64(1_500_000)
	contract, err := eng.Repos.Contracts.FindActiveByPlayerID(context.Background(), 1001)
	require.NoError(t, err)
	contract.ReleaseClause = &clause
	require.NoError(t, eng.Repos.Contracts.Save(context.Background(), contract))

	// Act
	resp, err := common.SendTyped[*commands.CreateProposalResponse](
		context.Background(), eng.Mediator, standardOffer())

	// Assert
	require.NoError(t, err)
	assert.True(t, resp.MustAccept)
}
