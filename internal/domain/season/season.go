package season

import (
	"context"
	"time"
)

// Season represents one simulated campaign. Ledger entries and transfer
// history are attributed to the active season.
type Season struct {
	ID        int
	Year      int
	StartDate time.Time
	EndDate   time.Time
	IsActive  bool
}

// SeasonRepository defines season persistence operations
type SeasonRepository interface {
	FindActive(ctx context.Context) (*Season, error)
	FindByID(ctx context.Context, id int) (*Season, error)
	Save(ctx context.Context, s *Season) error
}
