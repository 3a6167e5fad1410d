package squad

import "github.com/andrescamacho/footsim-go/internal/domain/player"

// Report is the result of analyzing a squad: composition metrics, the wage
// room left under the cap, prioritized needs and surplus positions.
type Report struct {
	TeamID           int
	SquadSize        int
	AverageAge       float64
	AverageOverall   float64
	StartingStrength float64 // average overall of the top-N players
	PositionCounts   map[player.Position]int
	MonthlyWageBill  int64
	WageRoom         int64 // monthly headroom under the cap
	Needs            []Need
	SurplusPositions []player.Position
}

// MostUrgentNeed returns the top critical/high need, or nil when the squad
// has no urgent gap.
func (r *Report) MostUrgentNeed() *Need {
	for i := range r.Needs {
		if r.Needs[i].Priority.IsUrgent() {
			return &r.Needs[i]
		}
	}
	return nil
}

// FitScore is the 0-100 match of a candidate against a squad's needs
type FitScore struct {
	Score   int
	Reasons []string
}
