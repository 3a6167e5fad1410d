package team

import "context"

// TeamRepository defines team persistence operations
type TeamRepository interface {
	FindByID(ctx context.Context, teamID int) (*Team, error)
	FindAIControlled(ctx context.Context) ([]*Team, error)
	Save(ctx context.Context, t *Team) error
}

// FinancialHealthGate is the external collaborator consulted before a club
// is allowed to buy. The default adapter blocks clubs with negative budgets;
// richer implementations may track fair-play sanctions.
type FinancialHealthGate interface {
	CanMakeTransfers(ctx context.Context, teamID int) (allowed bool, reason string, err error)
}
