package ledger_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/footsim-go/internal/domain/ledger"
)

var when = time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)

func TestNewEntry_Valid(t *testing.T) {
	// Act
	entry, err := ledger.NewEntry(1, 1, when, ledger.CategoryTransferOut,
		-2_000_000, 10_000_000, 8_000_000,
		"transfer fee for player 1001", "transfer_proposal", "42")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(-2_000_000), entry.Amount())
	assert.Equal(t, int64(8_000_000), entry.BalanceAfter())
	assert.True(t, entry.IsExpense())
	assert.False(t, entry.ID().IsZero())
}

func TestNewEntry_BalanceInvariant(t *testing.T) {
	// balance_after must equal balance_before + amount
	_, err := ledger.NewEntry(1, 1, when, ledger.CategoryTransferIn,
		2_000_000, 5_000_000, 6_000_000, "", "", "")

	require.Error(t, err)
	var violation *ledger.ErrBalanceInvariantViolation
	require.True(t, errors.As(err, &violation))
	assert.Equal(t, int64(7_000_000), violation.Expected)
}

func TestNewEntry_RejectsZeroAmount(t *testing.T) {
	_, err := ledger.NewEntry(1, 1, when, ledger.CategoryWages,
		0, 5_000_000, 5_000_000, "", "", "")

	assert.Error(t, err)
}

func TestNewEntry_CategorySignRules(t *testing.T) {
	// income categories cannot carry negative amounts
	_, err := ledger.NewEntry(1, 1, when, ledger.CategoryPrizeMoney,
		-100_000, 1_000_000, 900_000, "", "", "")
	assert.Error(t, err)

	// expense categories cannot carry positive amounts
	_, err = ledger.NewEntry(1, 1, when, ledger.CategoryWages,
		100_000, 1_000_000, 1_100_000, "", "", "")
	assert.Error(t, err)
}

func TestNewEntry_RejectsInvalidTeamAndCategory(t *testing.T) {
	_, err := ledger.NewEntry(0, 1, when, ledger.CategoryWages,
		-100, 1_000, 900, "", "", "")
	assert.Error(t, err)

	_, err = ledger.NewEntry(1, 1, when, ledger.Category("SPONSORSHIP"),
		100, 1_000, 1_100, "", "", "")
	assert.Error(t, err)
}

func TestCategory_Direction(t *testing.T) {
	assert.True(t, ledger.CategoryTransferIn.IsIncome())
	assert.True(t, ledger.CategoryPrizeMoney.IsIncome())
	assert.True(t, ledger.CategoryTransferOut.IsExpense())
	assert.True(t, ledger.CategoryWages.IsExpense())
}
