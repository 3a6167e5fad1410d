package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/andrescamacho/footsim-go/internal/application/common"
	"github.com/andrescamacho/footsim-go/internal/domain/ledger"
)

// GetEntriesQuery lists a team's ledger entries with optional filters
type GetEntriesQuery struct {
	TeamID    int
	StartDate *time.Time
	EndDate   *time.Time
	Category  *ledger.Category
	SeasonID  *int
	Limit     int
	Offset    int
}

// EntryDTO is the read model for one ledger entry
type EntryDTO struct {
	ID            string
	TeamID        int
	SeasonID      int
	Timestamp     time.Time
	Category      ledger.Category
	Amount        int64
	BalanceBefore int64
	BalanceAfter  int64
	Description   string
}

// GetEntriesResponse carries the entries plus the total match count for
// pagination.
type GetEntriesResponse struct {
	Entries    []*EntryDTO
	TotalCount int
}

// GetEntriesHandler resolves the ledger entries query
type GetEntriesHandler struct {
	entries ledger.EntryRepository
}

// NewGetEntriesHandler creates a new get entries handler
func NewGetEntriesHandler(entries ledger.EntryRepository) *GetEntriesHandler {
	return &GetEntriesHandler{entries: entries}
}

// Handle executes the get entries query
func (h *GetEntriesHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*GetEntriesQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	opts := ledger.DefaultQueryOptions()
	opts.StartDate = query.StartDate
	opts.EndDate = query.EndDate
	opts.Category = query.Category
	opts.SeasonID = query.SeasonID
	if query.Limit > 0 {
		opts.Limit = query.Limit
	}
	opts.Offset = query.Offset

	entries, err := h.entries.FindByTeam(ctx, query.TeamID, opts)
	if err != nil {
		return nil, err
	}
	total, err := h.entries.CountByTeam(ctx, query.TeamID, opts)
	if err != nil {
		return nil, err
	}

	dtos := make([]*EntryDTO, 0, len(entries))
	for _, e := range entries {
		dtos = append(dtos, &EntryDTO{
			ID:            e.ID().String(),
			TeamID:        e.TeamID(),
			SeasonID:      e.SeasonID(),
			Timestamp:     e.Timestamp(),
			Category:      e.Category(),
			Amount:        e.Amount(),
			BalanceBefore: e.BalanceBefore(),
			BalanceAfter:  e.BalanceAfter(),
			Description:   e.Description(),
		})
	}

	return &GetEntriesResponse{Entries: dtos, TotalCount: total}, nil
}
