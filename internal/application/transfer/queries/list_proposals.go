package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/footsim-go/internal/application/common"
	"github.com/andrescamacho/footsim-go/internal/domain/transfer"
)

// ListProposalsQuery lists proposals where a team is buyer or seller,
// optionally filtered by status, newest first.
type ListProposalsQuery struct {
	TeamID int
	Status transfer.Status // empty = all
	Limit  int             // 0 = repository default
}

// ListProposalsResponse carries the matching proposals
type ListProposalsResponse struct {
	Proposals []*ProposalDTO
}

// ListProposalsHandler resolves a team's proposal history
type ListProposalsHandler struct {
	repos *common.Repos
}

// NewListProposalsHandler creates a new list proposals handler
func NewListProposalsHandler(repos *common.Repos) *ListProposalsHandler {
	return &ListProposalsHandler{repos: repos}
}

// Handle executes the list proposals query
func (h *ListProposalsHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*ListProposalsQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	proposals, err := h.repos.Proposals.FindByTeam(ctx, query.TeamID, query.Limit)
	if err != nil {
		return nil, err
	}

	dtos := make([]*ProposalDTO, 0, len(proposals))
	for _, p := range proposals {
		if query.Status != "" && p.Status() != query.Status {
			continue
		}
		dtos = append(dtos, toDTO(p))
	}
	return &ListProposalsResponse{Proposals: dtos}, nil
}
