package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/andrescamacho/footsim-go/internal/application/common"
	"github.com/andrescamacho/footsim-go/internal/application/events"
	"github.com/andrescamacho/footsim-go/internal/application/transfer/services"
	"github.com/andrescamacho/footsim-go/internal/domain/shared"
	"github.com/andrescamacho/footsim-go/internal/domain/transfer"
)

// CreateProposalCommand submits a new transfer offer to a selling club
type CreateProposalCommand struct {
	PlayerID      int
	FromTeamID    *int // nil = free agent signing
	ToTeamID      int
	Kind          transfer.Kind
	Fee           int64
	WageOffer     int64
	ContractYears int
}

// CreateProposalResponse reports the created proposal
type CreateProposalResponse struct {
	ProposalID int
	Deadline   time.Time
	MustAccept bool
	Warnings   []string
}

// CreateProposalHandler validates an offer against squad, budget and window
// rules and persists it as a pending proposal.
type CreateProposalHandler struct {
	repos        *common.Repos
	validator    *services.TransferValidator
	window       *transfer.WindowPolicy
	clock        shared.Clock
	bus          *events.Bus
	deadlineDays int
}

// NewCreateProposalHandler creates a new create proposal handler
func NewCreateProposalHandler(
	repos *common.Repos,
	validator *services.TransferValidator,
	window *transfer.WindowPolicy,
	clock shared.Clock,
	bus *events.Bus,
	deadlineDays int,
) *CreateProposalHandler {
	return &CreateProposalHandler{
		repos:        repos,
		validator:    validator,
		window:       window,
		clock:        clock,
		bus:          bus,
		deadlineDays: deadlineDays,
	}
}

// Handle executes the create proposal command
func (h *CreateProposalHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*CreateProposalCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	now := h.clock.Now()
	if !h.window.IsOpen(now) {
		return nil, shared.NewBusinessRuleError("transfer window is closed")
	}

	season, err := h.repos.Seasons.FindActive(ctx)
	if err != nil {
		return nil, err
	}

	result, err := h.validator.ValidateTransfer(ctx, services.ValidationInput{
		PlayerID:      cmd.PlayerID,
		FromTeamID:    cmd.FromTeamID,
		ToTeamID:      cmd.ToTeamID,
		Kind:          cmd.Kind,
		Fee:           cmd.Fee,
		WageOffer:     cmd.WageOffer,
		ContractYears: cmd.ContractYears,
		SeasonID:      season.ID,
		Now:           now,
	})
	if err != nil {
		return nil, err
	}

	logger := common.LoggerFromContext(ctx)
	for _, w := range result.Warnings {
		logger.Log("WARN", w, map[string]interface{}{
			"player_id": cmd.PlayerID,
			"to_team":   cmd.ToTeamID,
		})
	}
	if !result.IsValid {
		return nil, shared.NewBusinessRuleError("proposal rejected: %s", strings.Join(result.Errors, "; "))
	}

	existing, err := h.repos.Proposals.FindActive(ctx, cmd.PlayerID, cmd.FromTeamID, cmd.ToTeamID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewConflictError("an active proposal for player %d between these clubs already exists", cmd.PlayerID)
	}

	deadline := now.AddDate(0, 0, h.deadlineDays)
	proposal, err := transfer.NewProposal(
		cmd.PlayerID,
		cmd.FromTeamID,
		cmd.ToTeamID,
		cmd.Kind,
		cmd.Fee,
		cmd.WageOffer,
		cmd.ContractYears,
		now,
		deadline,
	)
	if err != nil {
		return nil, err
	}

	// The unique key on active proposals turns a creation race into a
	// CONFLICT instead of a duplicate row.
	if err := h.repos.Proposals.Create(ctx, proposal); err != nil {
		return nil, err
	}

	h.bus.Publish(ctx, events.ProposalReceived{
		ProposalID: proposal.ID(),
		PlayerID:   proposal.PlayerID(),
		FromTeamID: proposal.FromTeamID(),
		ToTeamID:   proposal.ToTeamID(),
		Fee:        proposal.Fee(),
		Deadline:   proposal.ResponseDeadline(),
	})

	return &CreateProposalResponse{
		ProposalID: proposal.ID(),
		Deadline:   proposal.ResponseDeadline(),
		MustAccept: result.MustAccept,
		Warnings:   result.Warnings,
	}, nil
}
