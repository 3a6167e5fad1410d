package daily

import (
	"context"

	"github.com/andrescamacho/footsim-go/internal/application/ai"
	"github.com/andrescamacho/footsim-go/internal/application/common"
	"github.com/andrescamacho/footsim-go/internal/application/transfer/commands"
	"github.com/andrescamacho/footsim-go/internal/domain/shared"
	"github.com/andrescamacho/footsim-go/internal/domain/transfer"
)

// Summary reports what one daily pass did
type Summary struct {
	ActionsTaken       int
	OffersSubmitted    int
	ProposalsEvaluated int
	TransfersCompleted int
	ProposalsExpired   int
}

// Processor runs the whole transfer market for one simulated day: every AI
// club decides its move on a consistent snapshot, offers go out, incoming
// proposals are answered, accepted deals settle, stale ones expire.
type Processor struct {
	repos         *common.Repos
	mediator      common.Mediator
	decisionMaker *ai.DecisionMaker
	clock         shared.Clock
}

// NewProcessor creates a new daily processor
func NewProcessor(repos *common.Repos, mediator common.Mediator, decisionMaker *ai.DecisionMaker, clock shared.Clock) *Processor {
	return &Processor{
		repos:         repos,
		mediator:      mediator,
		decisionMaker: decisionMaker,
		clock:         clock,
	}
}

// Run executes one daily pass and returns its summary
func (p *Processor) Run(ctx context.Context) (*Summary, error) {
	now := p.clock.Now()
	logger := common.LoggerFromContext(ctx)
	summary := &Summary{}

	teams, err := p.repos.Teams.FindAIControlled(ctx)
	if err != nil {
		return nil, err
	}
	aiTeams := make(map[int]bool, len(teams))
	for _, t := range teams {
		aiTeams[t.ID] = true
	}

	// Decisions are collected before any offer goes out so every club acts
	// on the same market snapshot.
	type plannedAction struct {
		teamID int
		action *ai.TransferAction
	}
	var planned []plannedAction
	for _, t := range teams {
		action, err := p.decisionMaker.DetermineTransferAction(ctx, t.ID, now)
		if err != nil {
			logger.Log("WARN", "skipping club whose decision failed", map[string]interface{}{
				"team_id": t.ID,
				"error":   err.Error(),
			})
			continue
		}
		if action.Type != ai.ActionNoAction {
			planned = append(planned, plannedAction{teamID: t.ID, action: action})
		}
	}

	evaluated := make(map[int]bool)
	for _, pa := range planned {
		summary.ActionsTaken++
		if pa.action.Type == ai.ActionScoutPlayer {
			logger.Log("INFO", "club dispatches a scout", map[string]interface{}{"team_id": pa.teamID})
			continue
		}
		p.submitOffer(ctx, pa.teamID, pa.action, aiTeams, evaluated, summary, logger)
	}

	// Answer what landed on AI desks earlier, once per day. Proposals already
	// answered above are skipped.
	for _, t := range teams {
		received, err := p.repos.Proposals.FindRespondableByReceiver(ctx, t.ID)
		if err != nil {
			return nil, err
		}
		for _, proposal := range received {
			if evaluated[proposal.ID()] {
				continue
			}
			p.evaluateAndMaybeSettle(ctx, proposal.ID(), aiTeams[proposal.ToTeamID()], evaluated, summary, logger)
		}
	}

	expired, err := common.SendTyped[*commands.ExpireProposalsResponse](ctx, p.mediator, &commands.ExpireProposalsCommand{})
	if err != nil {
		return nil, err
	}
	summary.ProposalsExpired = expired.ExpiredCount

	return summary, nil
}

// submitOffer turns a make_offer decision into a proposal. When the selling
// side is also simulated (an AI club or a free agent), the answer and any
// settlement happen the same day.
func (p *Processor) submitOffer(
	ctx context.Context,
	teamID int,
	action *ai.TransferAction,
	aiTeams map[int]bool,
	evaluated map[int]bool,
	summary *Summary,
	logger common.Logger,
) {
	kind := transfer.KindTransfer
	if action.FromTeamID == nil {
		kind = transfer.KindFree
	}

	created, err := common.SendTyped[*commands.CreateProposalResponse](ctx, p.mediator, &commands.CreateProposalCommand{
		PlayerID:      action.PlayerID,
		FromTeamID:    action.FromTeamID,
		ToTeamID:      teamID,
		Kind:          kind,
		Fee:           action.Fee,
		WageOffer:     action.Wage,
		ContractYears: action.ContractYears,
	})
	if err != nil {
		logger.Log("WARN", "offer was not submitted", map[string]interface{}{
			"team_id":   teamID,
			"player_id": action.PlayerID,
			"error":     err.Error(),
		})
		return
	}
	summary.OffersSubmitted++

	sellerSimulated := action.FromTeamID == nil || aiTeams[*action.FromTeamID]
	if sellerSimulated {
		p.evaluateAndMaybeSettle(ctx, created.ProposalID, true, evaluated, summary, logger)
	}
}

// evaluateAndMaybeSettle answers one proposal and finalizes it immediately
// when it was accepted and the buyer is simulated.
func (p *Processor) evaluateAndMaybeSettle(
	ctx context.Context,
	proposalID int,
	buyerSimulated bool,
	evaluated map[int]bool,
	summary *Summary,
	logger common.Logger,
) {
	evaluated[proposalID] = true

	outcome, err := p.decisionMaker.EvaluateIncomingProposal(ctx, proposalID, p.clock.Now())
	if err != nil {
		logger.Log("WARN", "proposal evaluation failed", map[string]interface{}{
			"proposal_id": proposalID,
			"error":       err.Error(),
		})
		return
	}
	summary.ProposalsEvaluated++

	if outcome.Status != transfer.StatusAccepted || !buyerSimulated {
		return
	}

	if _, err := common.SendTyped[*commands.FinalizeTransferResponse](ctx, p.mediator, &commands.FinalizeTransferCommand{
		ProposalID: proposalID,
	}); err != nil {
		logger.Log("WARN", "settlement failed, proposal stays accepted", map[string]interface{}{
			"proposal_id": proposalID,
			"error":       err.Error(),
		})
		return
	}
	summary.TransfersCompleted++
}
