package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/andrescamacho/footsim-go/internal/application/common"
	"github.com/andrescamacho/footsim-go/internal/domain/ledger"
)

// GetCashFlowQuery summarizes a team's cash flow per category over a period
type GetCashFlowQuery struct {
	TeamID    int
	StartDate *time.Time
	EndDate   *time.Time
	SeasonID  *int
}

// CategoryCashFlow aggregates one category's movements
type CategoryCashFlow struct {
	Category     ledger.Category
	TotalInflow  int64
	TotalOutflow int64
	NetFlow      int64
	EntryCount   int
}

// GetCashFlowResponse is the per-category cash flow statement
type GetCashFlowResponse struct {
	Categories []*CategoryCashFlow
	NetTotal   int64
}

// GetCashFlowHandler builds the cash flow statement from raw entries
type GetCashFlowHandler struct {
	entries ledger.EntryRepository
}

// NewGetCashFlowHandler creates a new cash flow handler
func NewGetCashFlowHandler(entries ledger.EntryRepository) *GetCashFlowHandler {
	return &GetCashFlowHandler{entries: entries}
}

// Handle executes the cash flow query
func (h *GetCashFlowHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*GetCashFlowQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	opts := ledger.DefaultQueryOptions()
	opts.StartDate = query.StartDate
	opts.EndDate = query.EndDate
	opts.SeasonID = query.SeasonID
	opts.Limit = -1 // aggregate over everything in range

	entries, err := h.entries.FindByTeam(ctx, query.TeamID, opts)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[ledger.Category]*CategoryCashFlow)
	var netTotal int64
	for _, e := range entries {
		flow, ok := byCategory[e.Category()]
		if !ok {
			flow = &CategoryCashFlow{Category: e.Category()}
			byCategory[e.Category()] = flow
		}
		if e.Amount() > 0 {
			flow.TotalInflow += e.Amount()
		} else {
			flow.TotalOutflow += -e.Amount()
		}
		flow.NetFlow += e.Amount()
		flow.EntryCount++
		netTotal += e.Amount()
	}

	resp := &GetCashFlowResponse{NetTotal: netTotal}
	for _, category := range ledger.AllCategories() {
		if flow, ok := byCategory[category]; ok {
			resp.Categories = append(resp.Categories, flow)
		}
	}
	return resp, nil
}
