package finance

import (
	"context"
	"fmt"

	"github.com/andrescamacho/footsim-go/internal/domain/team"
)

// BudgetHealthGate is the default financial-health gate: a club may buy as
// long as its budget is not negative. League fair-play implementations can
// replace it without touching the engine.
type BudgetHealthGate struct {
	teams team.TeamRepository
}

// NewBudgetHealthGate creates the default gate over the team repository
func NewBudgetHealthGate(teams team.TeamRepository) *BudgetHealthGate {
	return &BudgetHealthGate{teams: teams}
}

// CanMakeTransfers blocks clubs under a transfer ban
func (g *BudgetHealthGate) CanMakeTransfers(ctx context.Context, teamID int) (bool, string, error) {
	t, err := g.teams.FindByID(ctx, teamID)
	if err != nil {
		return false, "", err
	}
	if t.IsUnderTransferBan() {
		return false, fmt.Sprintf("club %s is under a transfer ban, budget is %d", t.Name, t.Budget), nil
	}
	return true, "", nil
}
