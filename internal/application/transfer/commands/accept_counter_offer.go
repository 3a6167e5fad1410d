package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/footsim-go/internal/application/common"
	"github.com/andrescamacho/footsim-go/internal/domain/transfer"
)

// AcceptCounterOfferCommand lets the proposing club take a pending counter:
// the counter fee becomes the agreed fee and the proposal is accepted.
type AcceptCounterOfferCommand struct {
	ProposalID int
}

// AcceptCounterOfferResponse reports the agreed terms
type AcceptCounterOfferResponse struct {
	ProposalID int
	Status     transfer.Status
	AgreedFee  int64
}

// AcceptCounterOfferHandler applies the accept-counter transition
type AcceptCounterOfferHandler struct {
	repos *common.Repos
}

// NewAcceptCounterOfferHandler creates a new accept counter offer handler
func NewAcceptCounterOfferHandler(repos *common.Repos) *AcceptCounterOfferHandler {
	return &AcceptCounterOfferHandler{repos: repos}
}

// Handle executes the accept counter offer command
func (h *AcceptCounterOfferHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*AcceptCounterOfferCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	proposal, err := h.repos.Proposals.FindByID(ctx, cmd.ProposalID)
	if err != nil {
		return nil, err
	}

	if err := proposal.AcceptCounter(); err != nil {
		return nil, err
	}

	if err := h.repos.Proposals.Update(ctx, proposal); err != nil {
		return nil, err
	}

	return &AcceptCounterOfferResponse{
		ProposalID: proposal.ID(),
		Status:     proposal.Status(),
		AgreedFee:  proposal.Fee(),
	}, nil
}
