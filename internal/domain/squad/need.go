package squad

import (
	"sort"

	"github.com/andrescamacho/footsim-go/internal/domain/player"
)

// Priority grades how urgently a squad need should be addressed
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// rank orders priorities for sorting, lower is more urgent
func (p Priority) rank() int {
	switch p {
	case PriorityCritical:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	default:
		return 3
	}
}

// IsUrgent reports whether the need warrants an immediate move in the market
func (p Priority) IsUrgent() bool {
	return p == PriorityCritical || p == PriorityHigh
}

// Need describes one gap in a squad. Needs are derived per analysis run,
// never persisted.
type Need struct {
	Position   player.Position
	Priority   Priority
	MinOverall int
	MaxAge     int
	MaxWage    int64 // annual
	Reason     string
}

// SortNeeds orders needs in place by priority, most urgent first
func SortNeeds(needs []Need) {
	sort.SliceStable(needs, func(i, j int) bool {
		return needs[i].Priority.rank() < needs[j].Priority.rank()
	})
}
