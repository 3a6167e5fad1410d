package ai

import (
	"context"
	"sort"
	"time"

	"github.com/andrescamacho/footsim-go/internal/application/common"
	squadapp "github.com/andrescamacho/footsim-go/internal/application/squad"
	"github.com/andrescamacho/footsim-go/internal/application/transfer/commands"
	"github.com/andrescamacho/footsim-go/internal/domain/player"
	"github.com/andrescamacho/footsim-go/internal/domain/shared"
	"github.com/andrescamacho/footsim-go/internal/domain/team"
	"github.com/andrescamacho/footsim-go/internal/domain/transfer"
)

// Behaviour tunes how AI clubs act in the market
type Behaviour struct {
	// Fee offered as a share of the estimated value, randomized in [Low, High]
	OfferFeeLow  float64
	OfferFeeHigh float64

	// Wage offered as a share of the suggested wage, randomized in [Low, High]
	OfferWageLow  float64
	OfferWageHigh float64

	// Probability of dispatching a scout when no affordable target exists
	ScoutChance float64

	// Contract years the AI asks for when bidding
	ContractYears int

	// A free agent signs when the wage reaches this share of his suggestion
	FreeAgentWageFloor float64
}

// DefaultBehaviour returns the standard AI market behaviour
func DefaultBehaviour() Behaviour {
	return Behaviour{
		OfferFeeLow:        0.85,
		OfferFeeHigh:       0.95,
		OfferWageLow:       1.0,
		OfferWageHigh:      1.1,
		ScoutChance:        0.1,
		ContractYears:      4,
		FreeAgentWageFloor: 0.9,
	}
}

// ActionType classifies what an AI club decides to do on a given day
type ActionType string

const (
	ActionNoAction    ActionType = "no_action"
	ActionMakeOffer   ActionType = "make_offer"
	ActionScoutPlayer ActionType = "scout_player"
)

// TransferAction is one club's decision for the day. Offer fields are set
// only for make_offer.
type TransferAction struct {
	Type          ActionType
	Reason        string
	PlayerID      int
	FromTeamID    *int
	Fee           int64
	Wage          int64
	ContractYears int
}

// EvaluationOutcome reports how an incoming proposal was answered
type EvaluationOutcome struct {
	ProposalID int
	Evaluation transfer.OfferEvaluation
	Status     transfer.Status
}

// DecisionMaker drives AI club behaviour: answering incoming proposals and
// deciding outgoing market moves.
type DecisionMaker struct {
	repos     *common.Repos
	mediator  common.Mediator
	valuation *transfer.ValuationEngine
	analyzer  *squadapp.Analyzer
	window    *transfer.WindowPolicy
	gate      team.FinancialHealthGate
	rng       shared.Rand
	behaviour Behaviour
}

// NewDecisionMaker creates a new AI decision maker
func NewDecisionMaker(
	repos *common.Repos,
	mediator common.Mediator,
	valuation *transfer.ValuationEngine,
	analyzer *squadapp.Analyzer,
	window *transfer.WindowPolicy,
	gate team.FinancialHealthGate,
	rng shared.Rand,
	behaviour Behaviour,
) *DecisionMaker {
	return &DecisionMaker{
		repos:     repos,
		mediator:  mediator,
		valuation: valuation,
		analyzer:  analyzer,
		window:    window,
		gate:      gate,
		rng:       rng,
		behaviour: behaviour,
	}
}

// EvaluateIncomingProposal answers one respondable proposal on behalf of the
// selling club (or the player himself for free agent signings).
func (d *DecisionMaker) EvaluateIncomingProposal(ctx context.Context, proposalID int, now time.Time) (*EvaluationOutcome, error) {
	proposal, err := d.repos.Proposals.FindByID(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	if !proposal.Status().IsRespondable() {
		return nil, shared.NewBusinessRuleError("proposal %d is not awaiting a response", proposalID)
	}

	subject, err := d.repos.Subjects.LoadSubject(ctx, proposal.PlayerID())
	if err != nil {
		return nil, err
	}

	if proposal.IsFreeAgentSigning() {
		return d.evaluateFreeAgentSigning(ctx, proposal, subject.Player)
	}

	seller, err := d.repos.Teams.FindByID(ctx, *proposal.FromTeamID())
	if err != nil {
		return nil, err
	}

	yearsLeft := subject.Player.ContractYearsLeft(now)
	evaluation := d.valuation.EvaluateOffer(subject.Player, proposal.Fee(), seller.Strategy, yearsLeft, d.rng)

	cmd := &commands.RespondToProposalCommand{ProposalID: proposalID}
	switch evaluation.Decision {
	case transfer.DecisionAccept:
		cmd.Action = commands.ActionAccept
	case transfer.DecisionCounter:
		cmd.Action = commands.ActionCounter
		cmd.CounterFee = evaluation.CounterFee
	default:
		cmd.Action = commands.ActionReject
		cmd.Reason = evaluation.Reason
	}

	resp, err := common.SendTyped[*commands.RespondToProposalResponse](ctx, d.mediator, cmd)
	if err != nil {
		return nil, err
	}

	return &EvaluationOutcome{
		ProposalID: proposalID,
		Evaluation: evaluation,
		Status:     resp.Status,
	}, nil
}

// evaluateFreeAgentSigning decides for the player: no club is owed a fee,
// only the wage matters.
func (d *DecisionMaker) evaluateFreeAgentSigning(ctx context.Context, proposal *transfer.Proposal, p *player.Player) (*EvaluationOutcome, error) {
	suggested := d.valuation.SuggestedWage(p)
	evaluation := transfer.OfferEvaluation{Valuation: 0}

	cmd := &commands.RespondToProposalCommand{ProposalID: proposal.ID()}
	if float64(proposal.WageOffer()) >= float64(suggested)*d.behaviour.FreeAgentWageFloor {
		evaluation.Decision = transfer.DecisionAccept
		evaluation.Reason = "wage meets the player's expectations"
		cmd.Action = commands.ActionAccept
	} else {
		evaluation.Decision = transfer.DecisionReject
		evaluation.Reason = "wage below the player's expectations"
		cmd.Action = commands.ActionReject
		cmd.Reason = evaluation.Reason
	}

	resp, err := common.SendTyped[*commands.RespondToProposalResponse](ctx, d.mediator, cmd)
	if err != nil {
		return nil, err
	}
	return &EvaluationOutcome{
		ProposalID: proposal.ID(),
		Evaluation: evaluation,
		Status:     resp.Status,
	}, nil
}

// DetermineTransferAction decides one club's market move for the day
func (d *DecisionMaker) DetermineTransferAction(ctx context.Context, teamID int, now time.Time) (*TransferAction, error) {
	if !d.window.IsOpen(now) {
		return &TransferAction{Type: ActionNoAction, Reason: "transfer window is closed"}, nil
	}

	allowed, reason, err := d.gate.CanMakeTransfers(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return &TransferAction{Type: ActionNoAction, Reason: reason}, nil
	}

	report, err := d.analyzer.AnalyzeSquad(ctx, teamID)
	if err != nil {
		return nil, err
	}
	need := report.MostUrgentNeed()
	if need == nil {
		return &TransferAction{Type: ActionNoAction, Reason: "no urgent squad need"}, nil
	}

	target, err := d.bestTarget(ctx, teamID, need.Position, need.MinOverall)
	if err != nil {
		return nil, err
	}
	if target == nil {
		if d.rng.Float64() < d.behaviour.ScoutChance {
			return &TransferAction{Type: ActionScoutPlayer, Reason: "no tracked target, dispatching a scout"}, nil
		}
		return &TransferAction{Type: ActionNoAction, Reason: "no tracked target for the need"}, nil
	}

	estimatedFee := d.valuation.TransferFee(target, target.ContractYearsLeft(now))
	if target.IsFreeAgent() {
		estimatedFee = 0
	}
	suggestedWage := d.valuation.SuggestedWage(target)

	affordable, err := d.analyzer.CanAffordPlayer(ctx, teamID, estimatedFee, suggestedWage)
	if err != nil {
		return nil, err
	}
	if !affordable {
		if d.rng.Float64() < d.behaviour.ScoutChance {
			return &TransferAction{Type: ActionScoutPlayer, Reason: "target unaffordable, scouting cheaper options"}, nil
		}
		return &TransferAction{Type: ActionNoAction, Reason: "target unaffordable"}, nil
	}

	fee := int64(float64(estimatedFee) * d.rng.Between(d.behaviour.OfferFeeLow, d.behaviour.OfferFeeHigh))
	wage := int64(float64(suggestedWage) * d.rng.Between(d.behaviour.OfferWageLow, d.behaviour.OfferWageHigh))

	return &TransferAction{
		Type:          ActionMakeOffer,
		Reason:        need.Reason,
		PlayerID:      target.ID,
		FromTeamID:    target.TeamID,
		Fee:           fee,
		Wage:          wage,
		ContractYears: d.behaviour.ContractYears,
	}, nil
}

// bestTarget picks the hottest actionable scouting interest matching the need
func (d *DecisionMaker) bestTarget(ctx context.Context, teamID int, position player.Position, minOverall int) (*player.Player, error) {
	interests, err := d.repos.Interests.FindByTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(interests, func(i, j int) bool {
		return interests[i].Priority > interests[j].Priority
	})

	for _, interest := range interests {
		if !interest.Level.IsActionable() {
			continue
		}
		candidate, err := d.repos.Players.FindByID(ctx, interest.PlayerID)
		if err != nil {
			if shared.IsKind(err, shared.KindNotFound) {
				continue
			}
			return nil, err
		}
		if candidate.Position != position || candidate.Overall < minOverall {
			continue
		}
		if candidate.TeamID != nil && *candidate.TeamID == teamID {
			continue
		}
		return candidate, nil
	}
	return nil, nil
}
