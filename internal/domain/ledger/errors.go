package ledger

import "fmt"

// ErrInvalidEntry represents validation errors for ledger entries
type ErrInvalidEntry struct {
	Field  string
	Reason string
}

func (e *ErrInvalidEntry) Error() string {
	return fmt.Sprintf("invalid ledger entry: %s - %s", e.Field, e.Reason)
}

// ErrBalanceInvariantViolation represents errors when balance calculations don't match
type ErrBalanceInvariantViolation struct {
	BalanceBefore int64
	Amount        int64
	BalanceAfter  int64
	Expected      int64
}

func (e *ErrBalanceInvariantViolation) Error() string {
	return fmt.Sprintf("balance invariant violated: balance_before=%d + amount=%d should equal balance_after=%d, but got %d",
		e.BalanceBefore, e.Amount, e.Expected, e.BalanceAfter)
}

// ErrEntryNotFound represents errors when a ledger entry cannot be found
type ErrEntryNotFound struct {
	ID     string
	TeamID int
}

func (e *ErrEntryNotFound) Error() string {
	return fmt.Sprintf("ledger entry not found: id=%s, team_id=%d", e.ID, e.TeamID)
}
