package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/footsim-go/internal/domain/player"
	"github.com/andrescamacho/footsim-go/internal/domain/scouting"
	"github.com/andrescamacho/footsim-go/internal/domain/season"
	"github.com/andrescamacho/footsim-go/internal/domain/team"
)

// NewSeedCommand creates the seed command
func NewSeedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load a demo league into the database",
		Long: `Load a small demo league: a human club, two AI clubs, a handful of
players with contracts, an active season and scouting interests, so
daily-tick has a market to run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := buildEngine(configPath, nil)
			if err != nil {
				return err
			}
			defer eng.close()
			return runSeed(eng)
		},
	}
	return cmd
}

func runSeed(eng *engine) error {
	ctx := eng.rootContext()
	now := eng.clock.Now()

	if err := eng.repos.Seasons.Save(ctx, &season.Season{
		ID:        1,
		Year:      now.Year(),
		StartDate: time.Date(now.Year(), time.July, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(now.Year()+1, time.June, 30, 0, 0, 0, 0, time.UTC),
		IsActive:  true,
	}); err != nil {
		return err
	}

	teams := []*team.Team{
		{ID: 1, Name: "FC United", Budget: 10_000_000, Strategy: team.StrategyBalanced, IsHuman: true, Reputation: 70, StaffAnnualWage: 1_200_000},
		{ID: 2, Name: "Athletic Rovers", Budget: 8_000_000, Strategy: team.StrategyAggressive, Reputation: 65, StaffAnnualWage: 900_000},
		{ID: 99, Name: "Provincial FC", Budget: 5_000_000, Strategy: team.StrategySellingClub, Reputation: 50, StaffAnnualWage: 600_000},
	}
	for _, t := range teams {
		if err := eng.repos.Teams.Save(ctx, t); err != nil {
			return err
		}
	}

	type seedPlayer struct {
		id       int
		teamID   int
		name     string
		position player.Position
		age      int
		overall  int
		wage     int64
		years    int
	}
	players := []seedPlayer{
		{1001, 99, "Marco Silva", player.PositionMidfielder, 26, 75, 80_000, 2},
		{1002, 99, "Jonas Beck", player.PositionForward, 29, 71, 60_000, 1},
		{1003, 99, "Timo Vogel", player.PositionGoalkeeper, 31, 68, 45_000, 2},
		{2001, 2, "Luka Petric", player.PositionDefender, 24, 72, 65_000, 3},
		{2002, 2, "Andre Costa", player.PositionMidfielder, 27, 70, 55_000, 2},
		{3001, 1, "Sam Wright", player.PositionGoalkeeper, 28, 73, 70_000, 3},
		{3002, 1, "Diego Ramos", player.PositionDefender, 25, 71, 60_000, 4},
	}
	for _, sp := range players {
		teamID := sp.teamID
		contractEnd := now.AddDate(sp.years, 0, 0)
		if err := eng.repos.Players.Save(ctx, &player.Player{
			ID:          sp.id,
			TeamID:      &teamID,
			Name:        sp.name,
			Position:    sp.position,
			Age:         sp.age,
			Overall:     sp.overall,
			Potential:   sp.overall + 5,
			Form:        60,
			Moral:       70,
			ContractEnd: &contractEnd,
		}); err != nil {
			return err
		}
		if err := eng.repos.Contracts.Save(ctx, &player.Contract{
			PlayerID:   sp.id,
			TeamID:     sp.teamID,
			AnnualWage: sp.wage,
			StartDate:  now.AddDate(-1, 0, 0),
			EndDate:    contractEnd,
		}); err != nil {
			return err
		}
	}

	// A couple of free agents so AI clubs can sign without a fee
	freeAgents := []seedPlayer{
		{4001, 0, "Pavel Horak", player.PositionForward, 30, 66, 0, 0},
		{4002, 0, "Ben Okafor", player.PositionDefender, 22, 63, 0, 0},
	}
	for _, sp := range freeAgents {
		if err := eng.repos.Players.Save(ctx, &player.Player{
			ID:        sp.id,
			Name:      sp.name,
			Position:  sp.position,
			Age:       sp.age,
			Overall:   sp.overall,
			Potential: sp.overall + 8,
			Form:      55,
			Moral:     60,
		}); err != nil {
			return err
		}
	}

	interests := []*scouting.Interest{
		{TeamID: 2, PlayerID: 1001, Level: scouting.InterestHigh, Priority: 9, Notes: "creative midfielder, fits the pressing scheme"},
		{TeamID: 2, PlayerID: 4001, Level: scouting.InterestMedium, Priority: 4, Notes: "stopgap striker, no fee"},
		{TeamID: 99, PlayerID: 4002, Level: scouting.InterestHigh, Priority: 7, Notes: "cheap young defender"},
	}
	for _, i := range interests {
		if err := eng.repos.Interests.Save(ctx, i); err != nil {
			return err
		}
	}

	fmt.Println("Demo league seeded: 3 clubs, 9 players, 1 active season.")
	return nil
}
