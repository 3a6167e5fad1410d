package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/andrescamacho/footsim-go/internal/application/common"
	"github.com/andrescamacho/footsim-go/internal/domain/shared"
	"github.com/andrescamacho/footsim-go/internal/domain/transfer"
)

// ResponseAction is the selling club's answer to a proposal
type ResponseAction string

const (
	ActionAccept  ResponseAction = "accept"
	ActionReject  ResponseAction = "reject"
	ActionCounter ResponseAction = "counter"
)

// RespondToProposalCommand records the selling club's answer
type RespondToProposalCommand struct {
	ProposalID int
	Action     ResponseAction

	// Reason accompanies a rejection
	Reason string

	// CounterFee is required for a counter and must be positive
	CounterFee int64
}

// RespondToProposalResponse reports the proposal after the answer
type RespondToProposalResponse struct {
	ProposalID int
	Status     transfer.Status
	CounterFee *int64
	Deadline   time.Time
}

// RespondToProposalHandler applies accept, reject or counter to a
// respondable proposal.
type RespondToProposalHandler struct {
	repos           *common.Repos
	clock           shared.Clock
	counterDeadline int // days added when countering
}

// NewRespondToProposalHandler creates a new respond handler
func NewRespondToProposalHandler(repos *common.Repos, clock shared.Clock, counterDeadlineDays int) *RespondToProposalHandler {
	return &RespondToProposalHandler{
		repos:           repos,
		clock:           clock,
		counterDeadline: counterDeadlineDays,
	}
}

// Handle executes the respond to proposal command
func (h *RespondToProposalHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*RespondToProposalCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	proposal, err := h.repos.Proposals.FindByID(ctx, cmd.ProposalID)
	if err != nil {
		return nil, err
	}

	switch cmd.Action {
	case ActionAccept:
		err = proposal.Accept()
	case ActionReject:
		err = proposal.Reject(cmd.Reason)
	case ActionCounter:
		newDeadline := h.clock.Now().AddDate(0, 0, h.counterDeadline)
		err = proposal.Counter(cmd.CounterFee, newDeadline)
	default:
		err = shared.NewValidationError("unknown response action: %s", cmd.Action)
	}
	if err != nil {
		return nil, err
	}

	if err := h.repos.Proposals.Update(ctx, proposal); err != nil {
		return nil, err
	}

	return &RespondToProposalResponse{
		ProposalID: proposal.ID(),
		Status:     proposal.Status(),
		CounterFee: proposal.CounterOfferFee(),
		Deadline:   proposal.ResponseDeadline(),
	}, nil
}
