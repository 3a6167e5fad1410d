package helpers

import (
	"context"
	"testing"
	"time"

	"github.com/andrescamacho/footsim-go/internal/application/common"
	"github.com/andrescamacho/footsim-go/internal/domain/player"
	"github.com/andrescamacho/footsim-go/internal/domain/season"
	"github.com/andrescamacho/footsim-go/internal/domain/team"
)

// SaveTeam persists a team fixture
func SaveTeam(t *testing.T, repos *common.Repos, fixture *team.Team) *team.Team {
	if fixture.Strategy == "" {
		fixture.Strategy = team.StrategyBalanced
	}
	if err := repos.Teams.Save(context.Background(), fixture); err != nil {
		t.Fatalf("failed to save team fixture: %v", err)
	}
	return fixture
}

// SavePlayer persists a player fixture
func SavePlayer(t *testing.T, repos *common.Repos, fixture *player.Player) *player.Player {
	if err := repos.Players.Save(context.Background(), fixture); err != nil {
		t.Fatalf("failed to save player fixture: %v", err)
	}
	return fixture
}

// SaveContract persists a contract fixture
func SaveContract(t *testing.T, repos *common.Repos, fixture *player.Contract) *player.Contract {
	if err := repos.Contracts.Save(context.Background(), fixture); err != nil {
		t.Fatalf("failed to save contract fixture: %v", err)
	}
	return fixture
}

// SaveActiveSeason persists an active season covering one year around now
func SaveActiveSeason(t *testing.T, repos *common.Repos, now time.Time) *season.Season {
	s := &season.Season{
		ID:        1,
		Year:      now.Year(),
		StartDate: now.AddDate(0, -1, 0),
		EndDate:   now.AddDate(1, 0, 0),
		IsActive:  true,
	}
	if err := repos.Seasons.Save(context.Background(), s); err != nil {
		t.Fatalf("failed to save season fixture: %v", err)
	}
	return s
}

// IntPtr returns a pointer to the given int
func IntPtr(v int) *int { return &v }

// TimePtr returns a pointer to the given time
func TimePtr(v time.Time) *time.Time { return &v }
