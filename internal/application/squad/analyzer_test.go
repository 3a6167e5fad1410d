package squad_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/footsim-go/internal/domain/player"
	"github.com/andrescamacho/footsim-go/internal/domain/squad"
	"github.com/andrescamacho/footsim-go/internal/domain/team"
	"github.com/andrescamacho/footsim-go/test/helpers"
)

var analysisDate = time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)

// seedRoster saves count players at a position for the team, all the same
// age and overall, each on a contract with the given annual wage
func seedRoster(t *testing.T, eng *helpers.TestEngine, teamID int, pos player.Position, count, age, overall int, wage int64, startID int) {
	t.Helper()
	for i := 0; i < count; i++ {
		p := helpers.SavePlayer(t, eng.Repos, &player.Player{
			ID:       startID + i,
			TeamID:   helpers.IntPtr(teamID),
			Name:     string(pos),
			Position: pos,
			Age:      age,
			Overall:  overall,
			Moral:    70,
		})
		helpers.SaveContract(t, eng.Repos, &player.Contract{
			PlayerID:   p.ID,
			TeamID:     teamID,
			AnnualWage: wage,
			StartDate:  analysisDate.AddDate(-1, 0, 0),
			EndDate:    analysisDate.AddDate(2, 0, 0),
		})
	}
}

func TestAnalyzer_AnalyzeSquad_Metrics(t *testing.T) {
	// Arrange
	eng := helpers.NewTestEngine(t, analysisDate)
	helpers.SaveTeam(t, eng.Repos, &team.Team{ID: 1, Name: "FC United", Budget: 10_000_000, StaffAnnualWage: 1_200_000})
	seedRoster(t, eng, 1, player.PositionGoalkeeper, 2, 28, 70, 60_000, 100)
	seedRoster(t, eng, 1, player.PositionDefender, 6, 26, 72, 80_000, 200)
	seedRoster(t, eng, 1, player.PositionMidfielder, 6, 25, 74, 90_000, 300)
	seedRoster(t, eng, 1, player.PositionForward, 3, 27, 76, 100_000, 400)

	// Act
	report, err := eng.Analyzer.AnalyzeSquad(context.Background(), 1)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 17, report.SquadSize)
	assert.Equal(t, 6, report.PositionCounts[player.PositionDefender])
	assert.InDelta(t, 73.1, report.AverageOverall, 0.1)
	assert.Greater(t, report.StartingStrength, report.AverageOverall,
		"the best eleven outrate the squad average")

	// 2*60k + 6*80k + 6*90k + 3*100k = 1.92M wages + 1.2M staff, over 12 months
	assert.Equal(t, int64((1_920_000+1_200_000)/12), report.MonthlyWageBill)
	assert.Equal(t, int64(6_000_000)-report.MonthlyWageBill, report.WageRoom)
}

func TestAnalyzer_AnalyzeSquad_Needs(t *testing.T) {
	// Arrange: no goalkeeper at all, only two defenders
	eng := helpers.NewTestEngine(t, analysisDate)
	helpers.SaveTeam(t, eng.Repos, &team.Team{ID: 1, Name: "FC United", Budget: 10_000_000})
	seedRoster(t, eng, 1, player.PositionDefender, 2, 26, 70, 80_000, 200)
	seedRoster(t, eng, 1, player.PositionMidfielder, 8, 25, 70, 80_000, 300)
	seedRoster(t, eng, 1, player.PositionForward, 5, 26, 70, 80_000, 400)

	// Act
	report, err := eng.Analyzer.AnalyzeSquad(context.Background(), 1)

	// Assert
	require.NoError(t, err)
	require.NotEmpty(t, report.Needs)
	assert.Equal(t, player.PositionGoalkeeper, report.Needs[0].Position, "most urgent need first")
	assert.Equal(t, squad.PriorityCritical, report.Needs[0].Priority)

	urgent := report.MostUrgentNeed()
	require.NotNil(t, urgent)
	assert.Equal(t, player.PositionGoalkeeper, urgent.Position)

	var defenderNeed *squad.Need
	for i := range report.Needs {
		if report.Needs[i].Position == player.PositionDefender {
			defenderNeed = &report.Needs[i]
		}
	}
	require.NotNil(t, defenderNeed)
	assert.Equal(t, squad.PriorityCritical, defenderNeed.Priority)
}

func TestAnalyzer_AnalyzeSquad_EmptySquad(t *testing.T) {
	// Arrange
	eng := helpers.NewTestEngine(t, analysisDate)
	helpers.SaveTeam(t, eng.Repos, &team.Team{ID: 1, Name: "Newly Promoted", Budget: 5_000_000})

	// Act
	report, err := eng.Analyzer.AnalyzeSquad(context.Background(), 1)

	// Assert
	require.NoError(t, err)
	assert.Zero(t, report.SquadSize)
	assert.Len(t, report.Needs, len(player.AllPositions()), "every position is a need")
	for _, need := range report.Needs {
		assert.Equal(t, squad.PriorityCritical, need.Priority)
	}
}

func TestAnalyzer_AnalyzeSquad_SurplusAndAging(t *testing.T) {
	// Arrange: far too many forwards and a veteran-heavy roster
	eng := helpers.NewTestEngine(t, analysisDate)
	helpers.SaveTeam(t, eng.Repos, &team.Team{ID: 1, Name: "FC United", Budget: 10_000_000})
	seedRoster(t, eng, 1, player.PositionGoalkeeper, 3, 33, 70, 60_000, 100)
	seedRoster(t, eng, 1, player.PositionDefender, 8, 32, 70, 70_000, 200)
	seedRoster(t, eng, 1, player.PositionMidfielder, 8, 31, 70, 70_000, 300)
	seedRoster(t, eng, 1, player.PositionForward, 9, 26, 70, 70_000, 400)

	// Act
	report, err := eng.Analyzer.AnalyzeSquad(context.Background(), 1)

	// Assert
	require.NoError(t, err)
	assert.Contains(t, report.SurplusPositions, player.PositionForward)

	var aging *squad.Need
	for i := range report.Needs {
		if report.Needs[i].MaxAge <= 23 {
			aging = &report.Needs[i]
		}
	}
	require.NotNil(t, aging, "veteran-heavy squads produce a youth need")
	assert.Equal(t, player.PositionDefender, aging.Position, "targets the position with the most veterans")
}

func TestAnalyzer_EvaluatePlayerFit(t *testing.T) {
	// Arrange: squad with no forwards, so a striker is an obvious fit
	eng := helpers.NewTestEngine(t, analysisDate)
	helpers.SaveTeam(t, eng.Repos, &team.Team{ID: 1, Name: "FC United", Budget: 10_000_000})
	seedRoster(t, eng, 1, player.PositionGoalkeeper, 3, 27, 70, 60_000, 100)
	seedRoster(t, eng, 1, player.PositionDefender, 8, 26, 70, 70_000, 200)
	seedRoster(t, eng, 1, player.PositionMidfielder, 8, 25, 70, 70_000, 300)

	striker := &player.Player{ID: 999, Position: player.PositionForward, Age: 24, Overall: 74, Potential: 85}
	keeper := &player.Player{ID: 998, Position: player.PositionGoalkeeper, Age: 27, Overall: 74}

	// Act
	strikerFit, err := eng.Analyzer.EvaluatePlayerFit(context.Background(), striker, 1)
	require.NoError(t, err)
	keeperFit, err := eng.Analyzer.EvaluatePlayerFit(context.Background(), keeper, 1)
	require.NoError(t, err)

	// Assert
	assert.Greater(t, strikerFit.Score, 70, "strong candidate for a critical need")
	assert.Equal(t, 20, keeperFit.Score, "no need at the position")
}

func TestAnalyzer_CanAffordPlayer(t *testing.T) {
	// Arrange
	eng := helpers.NewTestEngine(t, analysisDate)
	helpers.SaveTeam(t, eng.Repos, &team.Team{ID: 1, Name: "FC United", Budget: 3_000_000})

	// Act / Assert
	ok, err := eng.Analyzer.CanAffordPlayer(context.Background(), 1, 2_000_000, 600_000)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = eng.Analyzer.CanAffordPlayer(context.Background(), 1, 4_000_000, 600_000)
	require.NoError(t, err)
	assert.False(t, ok, "fee above budget")

	ok, err = eng.Analyzer.CanAffordPlayer(context.Background(), 1, 1_000_000, 60_000_000)
	require.NoError(t, err)
	assert.False(t, ok, "wage above the room under the cap")
}
