package scouting

import "context"

// InterestLevel grades how seriously the scouting department rates a target
type InterestLevel string

const (
	InterestLow      InterestLevel = "low"
	InterestMedium   InterestLevel = "medium"
	InterestHigh     InterestLevel = "high"
	InterestCritical InterestLevel = "critical"
)

// IsActionable reports whether the level justifies an actual bid
func (l InterestLevel) IsActionable() bool {
	return l == InterestHigh || l == InterestCritical
}

// Interest is a tracked scouting target for a team
type Interest struct {
	ID       int
	TeamID   int
	PlayerID int
	Level    InterestLevel
	Priority int // higher is hotter
	Notes    string
}

// InterestRepository supplies scouting targets per team. The scouting pipeline
// that fills this table lives outside the transfer engine.
type InterestRepository interface {
	FindByTeam(ctx context.Context, teamID int) ([]*Interest, error)
	Save(ctx context.Context, i *Interest) error
	Delete(ctx context.Context, id int) error
}
