package services

import (
	"context"
	"fmt"
	"time"

	"github.com/andrescamacho/footsim-go/internal/application/common"
	"github.com/andrescamacho/footsim-go/internal/domain/player"
	"github.com/andrescamacho/footsim-go/internal/domain/transfer"
)

// ValidationRules holds the thresholds the validator checks against
type ValidationRules struct {
	MinContractYears int
	MaxContractYears int
	MaxLoanYears     int
	MinYouthWage     int64
	MinSeniorWage    int64
	YouthAgeLimit    int
	InjuryDaysLimit  int
	LowBudgetWarning int64
	MaxSquadSize     int

	// Wages above this multiple of the suggested wage draw a warning
	ImplausibleWageFactor float64
}

// DefaultValidationRules returns the standard rule set
func DefaultValidationRules() ValidationRules {
	return ValidationRules{
		MinContractYears:      1,
		MaxContractYears:      5,
		MaxLoanYears:          2,
		MinYouthWage:          5_000,
		MinSeniorWage:         20_000,
		YouthAgeLimit:         18,
		InjuryDaysLimit:       60,
		LowBudgetWarning:      500_000,
		MaxSquadSize:          28,
		ImplausibleWageFactor: 5,
	}
}

// ValidationInput describes the transfer to validate
type ValidationInput struct {
	PlayerID      int
	FromTeamID    *int // nil = free agent signing
	ToTeamID      int
	Kind          transfer.Kind
	Fee           int64
	WageOffer     int64
	ContractYears int
	SeasonID      int
	Now           time.Time
}

// ValidationResult aggregates hard failures and soft warnings.
// MustAccept signals that the offer met an active release clause; this
// engine does not force acceptance itself, it flags it to the caller.
type ValidationResult struct {
	IsValid    bool
	Errors     []string
	Warnings   []string
	MustAccept bool
}

func (r *ValidationResult) fail(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
	r.IsValid = false
}

func (r *ValidationResult) warn(format string, args ...interface{}) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// TransferValidator composes the independent eligibility, ownership, budget,
// contract, squad-limit and sanction checks into one result.
type TransferValidator struct {
	repos     *common.Repos
	valuation *transfer.ValuationEngine
	rules     ValidationRules
}

// NewTransferValidator creates a validator over the given repositories
func NewTransferValidator(repos *common.Repos, valuation *transfer.ValuationEngine, rules ValidationRules) *TransferValidator {
	return &TransferValidator{repos: repos, valuation: valuation, rules: rules}
}

// ValidateTransfer runs every check and aggregates the outcome.
// A missing player or buyer is reported as a NOT_FOUND error; rule breaches
// come back inside the result.
func (v *TransferValidator) ValidateTransfer(ctx context.Context, in ValidationInput) (*ValidationResult, error) {
	result := &ValidationResult{IsValid: true}

	subject, err := v.repos.Subjects.LoadSubject(ctx, in.PlayerID)
	if err != nil {
		return nil, err
	}
	buyer, err := v.repos.Teams.FindByID(ctx, in.ToTeamID)
	if err != nil {
		return nil, err
	}

	v.checkEligibility(ctx, subject.Player, in, result)
	v.checkReleaseClause(subject, in, result)
	v.checkBudget(buyer.Budget, in.Fee, result)
	v.checkOwnership(subject.Player, in.FromTeamID, result)
	v.checkContractLength(in, result)
	v.checkWage(subject.Player, in.WageOffer, result)
	v.checkSquadSize(ctx, in.ToTeamID, result)

	// Transfer ban: a negative budget blocks buying outright
	if buyer.IsUnderTransferBan() {
		result.fail("club %s is under a transfer ban (budget is negative)", buyer.Name)
	}

	return result, nil
}

func (v *TransferValidator) checkEligibility(ctx context.Context, p *player.Player, in ValidationInput, result *ValidationResult) {
	if p.IsInjured && p.InjuryDaysRemaining > v.rules.InjuryDaysLimit {
		result.fail("player %s is injured for %d more days (limit %d)",
			p.Name, p.InjuryDaysRemaining, v.rules.InjuryDaysLimit)
	}

	moves, err := v.repos.History.CountByPlayerAndSeason(ctx, p.ID, in.SeasonID)
	if err == nil && moves > 0 {
		result.fail("player %s already transferred this season", p.Name)
	}
}

func (v *TransferValidator) checkReleaseClause(subject *player.ProposalSubject, in ValidationInput, result *ValidationResult) {
	c := subject.ActiveContract
	if c == nil || !c.IsActive(in.Now) || !c.HasReleaseClause() {
		return
	}
	if in.Fee >= *c.ReleaseClause {
		result.MustAccept = true
	}
}

func (v *TransferValidator) checkBudget(budget, fee int64, result *ValidationResult) {
	if budget < fee {
		result.fail("insufficient budget: have %d, fee is %d", budget, fee)
		return
	}
	if budget-fee < v.rules.LowBudgetWarning {
		result.warn("budget would drop to %d after this transfer", budget-fee)
	}
}

func (v *TransferValidator) checkOwnership(p *player.Player, fromTeamID *int, result *ValidationResult) {
	if fromTeamID == nil {
		if !p.IsFreeAgent() {
			result.fail("player %s is not a free agent", p.Name)
		}
		return
	}
	if p.TeamID == nil || *p.TeamID != *fromTeamID {
		result.fail("team %d does not own player %s", *fromTeamID, p.Name)
	}
}

func (v *TransferValidator) checkContractLength(in ValidationInput, result *ValidationResult) {
	switch in.Kind {
	case transfer.KindLoan:
		if in.ContractYears < 1 || in.ContractYears > v.rules.MaxLoanYears {
			result.fail("loan length %d years is outside [1, %d]", in.ContractYears, v.rules.MaxLoanYears)
		}
	default:
		if in.ContractYears < v.rules.MinContractYears || in.ContractYears > v.rules.MaxContractYears {
			result.fail("contract length %d years is outside [%d, %d]",
				in.ContractYears, v.rules.MinContractYears, v.rules.MaxContractYears)
		}
	}
}

func (v *TransferValidator) checkWage(p *player.Player, wage int64, result *ValidationResult) {
	minWage := v.rules.MinSeniorWage
	if p.Age < v.rules.YouthAgeLimit {
		minWage = v.rules.MinYouthWage
	}
	if wage < minWage {
		result.fail("wage offer %d is below the minimum %d", wage, minWage)
		return
	}

	suggested := v.valuation.SuggestedWage(p)
	if suggested > 0 && float64(wage) > float64(suggested)*v.rules.ImplausibleWageFactor {
		result.warn("wage offer %d is implausibly high for a %d-overall player (suggested %d)",
			wage, p.Overall, suggested)
	}
}

func (v *TransferValidator) checkSquadSize(ctx context.Context, teamID int, result *ValidationResult) {
	squad, err := v.repos.Players.FindByTeamID(ctx, teamID)
	if err != nil {
		return
	}
	if len(squad) >= v.rules.MaxSquadSize {
		result.warn("squad already has %d players (maximum %d)", len(squad), v.rules.MaxSquadSize)
	}
}
