package ledger

import (
	"fmt"
	"time"
)

// Entry is the aggregate root representing one financial movement on a club's
// books. Entries are immutable once created and follow strict invariants.
type Entry struct {
	id            EntryID
	teamID        int
	seasonID      int
	timestamp     time.Time
	category      Category
	amount        int64 // positive for income, negative for expenses
	balanceBefore int64
	balanceAfter  int64
	description   string
	relatedType   string // e.g. "transfer_proposal"
	relatedID     string
}

// NewEntry creates a new ledger entry with validation
func NewEntry(
	teamID int,
	seasonID int,
	timestamp time.Time,
	category Category,
	amount int64,
	balanceBefore int64,
	balanceAfter int64,
	description string,
	relatedType string,
	relatedID string,
) (*Entry, error) {
	if teamID <= 0 {
		return nil, &ErrInvalidEntry{Field: "team_id", Reason: "team_id must be positive"}
	}
	if !category.IsValid() {
		return nil, &ErrInvalidEntry{Field: "category", Reason: fmt.Sprintf("invalid category: %s", category)}
	}

	e := &Entry{
		id:            NewEntryID(),
		teamID:        teamID,
		seasonID:      seasonID,
		timestamp:     timestamp,
		category:      category,
		amount:        amount,
		balanceBefore: balanceBefore,
		balanceAfter:  balanceAfter,
		description:   description,
		relatedType:   relatedType,
		relatedID:     relatedID,
	}

	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// ReconstructEntry rebuilds an entry from persistence, bypassing validation
func ReconstructEntry(
	id EntryID,
	teamID int,
	seasonID int,
	timestamp time.Time,
	category Category,
	amount int64,
	balanceBefore int64,
	balanceAfter int64,
	description string,
	relatedType string,
	relatedID string,
) *Entry {
	return &Entry{
		id:            id,
		teamID:        teamID,
		seasonID:      seasonID,
		timestamp:     timestamp,
		category:      category,
		amount:        amount,
		balanceBefore: balanceBefore,
		balanceAfter:  balanceAfter,
		description:   description,
		relatedType:   relatedType,
		relatedID:     relatedID,
	}
}

// Validate checks that the entry satisfies all invariants
func (e *Entry) Validate() error {
	if e.amount == 0 {
		return &ErrInvalidEntry{Field: "amount", Reason: "amount cannot be zero"}
	}

	// balance_after must equal balance_before + amount
	expected := e.balanceBefore + e.amount
	if e.balanceAfter != expected {
		return &ErrBalanceInvariantViolation{
			BalanceBefore: e.balanceBefore,
			Amount:        e.amount,
			BalanceAfter:  e.balanceAfter,
			Expected:      expected,
		}
	}

	if e.category.IsIncome() && e.amount < 0 {
		return &ErrInvalidEntry{Field: "amount", Reason: "income category with negative amount"}
	}
	if e.category.IsExpense() && e.amount > 0 {
		return &ErrInvalidEntry{Field: "amount", Reason: "expense category with positive amount"}
	}

	return nil
}

// Getters (all fields are immutable)

func (e *Entry) ID() EntryID          { return e.id }
func (e *Entry) TeamID() int          { return e.teamID }
func (e *Entry) SeasonID() int        { return e.seasonID }
func (e *Entry) Timestamp() time.Time { return e.timestamp }
func (e *Entry) Category() Category   { return e.category }
func (e *Entry) Amount() int64        { return e.amount }
func (e *Entry) BalanceBefore() int64 { return e.balanceBefore }
func (e *Entry) BalanceAfter() int64  { return e.balanceAfter }
func (e *Entry) Description() string  { return e.description }
func (e *Entry) RelatedType() string  { return e.relatedType }
func (e *Entry) RelatedID() string    { return e.relatedID }

// IsIncome returns true if the entry represents income
func (e *Entry) IsIncome() bool {
	return e.amount > 0
}

// IsExpense returns true if the entry represents an expense
func (e *Entry) IsExpense() bool {
	return e.amount < 0
}

// String provides a human-readable representation
func (e *Entry) String() string {
	return fmt.Sprintf("Entry[%s, team=%d, %s, amount=%d, balance=%d->%d]",
		e.id.String(), e.teamID, e.category, e.amount, e.balanceBefore, e.balanceAfter)
}
