package ledger

import (
	"context"
	"time"
)

// EntryRepository defines persistence operations for ledger entries
type EntryRepository interface {
	// Create persists a new entry
	Create(ctx context.Context, entry *Entry) error

	// FindByID retrieves an entry by its ID
	FindByID(ctx context.Context, id EntryID) (*Entry, error)

	// FindByTeam retrieves entries for a team with optional filtering
	FindByTeam(ctx context.Context, teamID int, opts QueryOptions) ([]*Entry, error)

	// CountByTeam returns the count of entries matching the criteria
	CountByTeam(ctx context.Context, teamID int, opts QueryOptions) (int, error)
}

// QueryOptions defines filtering and pagination options for entry queries
type QueryOptions struct {
	// Date range filtering
	StartDate *time.Time
	EndDate   *time.Time

	// Category filtering
	Category *Category

	// Season filtering
	SeasonID *int

	// Pagination
	Limit  int
	Offset int

	// Sorting: "timestamp ASC" or "timestamp DESC" (default DESC)
	OrderBy string
}

// DefaultQueryOptions returns default query options
func DefaultQueryOptions() QueryOptions {
	return QueryOptions{
		Limit:   50,
		Offset:  0,
		OrderBy: "timestamp DESC",
	}
}
