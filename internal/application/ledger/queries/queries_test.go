package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/footsim-go/internal/application/ledger/queries"
	"github.com/andrescamacho/footsim-go/internal/domain/ledger"
	"github.com/andrescamacho/footsim-go/test/helpers"
)

var bookDay = time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)

// bookEntry creates one valid ledger entry for team 1 in season 1
func bookEntry(t *testing.T, repo ledger.EntryRepository, at time.Time, category ledger.Category, amount, before int64) {
	t.Helper()
	entry, err := ledger.NewEntry(1, 1, at, category, amount, before, before+amount,
		"test movement", "", "")
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), entry))
}

func TestGetEntries_FiltersAndPaginates(t *testing.T) {
	// Arrange
	eng := helpers.NewTestEngine(t, bookDay)
	repo := eng.Repos.Ledger
	bookEntry(t, repo, bookDay, ledger.CategoryTransferOut, -2_000_000, 10_000_000)
	bookEntry(t, repo, bookDay.AddDate(0, 0, 1), ledger.CategoryTransferIn, 1_500_000, 8_000_000)
	bookEntry(t, repo, bookDay.AddDate(0, 0, 2), ledger.CategoryWages, -160_000, 9_500_000)
	handler := queries.NewGetEntriesHandler(repo)

	// Act: category filter
	resp, err := handler.Handle(context.Background(), &queries.GetEntriesQuery{
		TeamID:   1,
		Category: categoryPtr(ledger.CategoryWages),
	})

	// Assert
	require.NoError(t, err)
	entries := resp.(*queries.GetEntriesResponse)
	require.Len(t, entries.Entries, 1)
	assert.Equal(t, int64(-160_000), entries.Entries[0].Amount)
	assert.Equal(t, 1, entries.TotalCount)

	// Act: date range excluding the last entry
	end := bookDay.AddDate(0, 0, 1)
	resp, err = handler.Handle(context.Background(), &queries.GetEntriesQuery{
		TeamID:  1,
		EndDate: &end,
	})

	// Assert: newest first
	require.NoError(t, err)
	entries = resp.(*queries.GetEntriesResponse)
	require.Len(t, entries.Entries, 2)
	assert.Equal(t, ledger.CategoryTransferIn, entries.Entries[0].Category)

	// Act: pagination
	resp, err = handler.Handle(context.Background(), &queries.GetEntriesQuery{
		TeamID: 1,
		Limit:  2,
		Offset: 2,
	})

	// Assert
	require.NoError(t, err)
	entries = resp.(*queries.GetEntriesResponse)
	assert.Len(t, entries.Entries, 1)
	assert.Equal(t, 3, entries.TotalCount, "count ignores pagination")
}

func TestGetCashFlow_AggregatesPerCategory(t *testing.T) {
	// Arrange
	eng := helpers.NewTestEngine(t, bookDay)
	repo := eng.Repos.Ledger
	bookEntry(t, repo, bookDay, ledger.CategoryTransferOut, -2_000_000, 10_000_000)
	bookEntry(t, repo, bookDay.AddDate(0, 0, 1), ledger.CategoryTransferOut, -1_000_000, 8_000_000)
	bookEntry(t, repo, bookDay.AddDate(0, 0, 2), ledger.CategoryTransferIn, 1_500_000, 7_000_000)
	handler := queries.NewGetCashFlowHandler(repo)

	// Act
	resp, err := handler.Handle(context.Background(), &queries.GetCashFlowQuery{TeamID: 1})

	// Assert
	require.NoError(t, err)
	statement := resp.(*queries.GetCashFlowResponse)
	assert.Equal(t, int64(-1_500_000), statement.NetTotal)
	require.Len(t, statement.Categories, 2)

	// catalogue order puts transfers out before transfers in
	out := statement.Categories[0]
	assert.Equal(t, ledger.CategoryTransferOut, out.Category)
	assert.Equal(t, int64(3_000_000), out.TotalOutflow)
	assert.Zero(t, out.TotalInflow)
	assert.Equal(t, int64(-3_000_000), out.NetFlow)
	assert.Equal(t, 2, out.EntryCount)

	in := statement.Categories[1]
	assert.Equal(t, ledger.CategoryTransferIn, in.Category)
	assert.Equal(t, int64(1_500_000), in.TotalInflow)
}

func TestGetCashFlow_EmptyBooks(t *testing.T) {
	eng := helpers.NewTestEngine(t, bookDay)
	handler := queries.NewGetCashFlowHandler(eng.Repos.Ledger)

	resp, err := handler.Handle(context.Background(), &queries.GetCashFlowQuery{TeamID: 1})

	require.NoError(t, err)
	statement := resp.(*queries.GetCashFlowResponse)
	assert.Zero(t, statement.NetTotal)
	assert.Empty(t, statement.Categories)
}

func categoryPtr(c ledger.Category) *ledger.Category { return &c }
