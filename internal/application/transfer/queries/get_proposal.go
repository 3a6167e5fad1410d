package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/andrescamacho/footsim-go/internal/application/common"
	"github.com/andrescamacho/footsim-go/internal/domain/transfer"
)

// ProposalDTO is the read model returned by proposal queries
type ProposalDTO struct {
	ID               int
	PlayerID         int
	FromTeamID       *int
	ToTeamID         int
	Kind             transfer.Kind
	Status           transfer.Status
	Fee              int64
	WageOffer        int64
	ContractYears    int
	CreatedAt        time.Time
	ResponseDeadline time.Time
	CounterOfferFee  *int64
	RejectionReason  string
}

func toDTO(p *transfer.Proposal) *ProposalDTO {
	return &ProposalDTO{
		ID:               p.ID(),
		PlayerID:         p.PlayerID(),
		FromTeamID:       p.FromTeamID(),
		ToTeamID:         p.ToTeamID(),
		Kind:             p.Kind(),
		Status:           p.Status(),
		Fee:              p.Fee(),
		WageOffer:        p.WageOffer(),
		ContractYears:    p.ContractYears(),
		CreatedAt:        p.CreatedAt(),
		ResponseDeadline: p.ResponseDeadline(),
		CounterOfferFee:  p.CounterOfferFee(),
		RejectionReason:  p.RejectionReason(),
	}
}

// GetProposalQuery fetches one proposal by ID
type GetProposalQuery struct {
	ProposalID int
}

// GetProposalResponse carries the proposal read model
type GetProposalResponse struct {
	Proposal *ProposalDTO
}

// GetProposalHandler resolves a single proposal
type GetProposalHandler struct {
	repos *common.Repos
}

// NewGetProposalHandler creates a new get proposal handler
func NewGetProposalHandler(repos *common.Repos) *GetProposalHandler {
	return &GetProposalHandler{repos: repos}
}

// Handle executes the get proposal query
func (h *GetProposalHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*GetProposalQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	p, err := h.repos.Proposals.FindByID(ctx, query.ProposalID)
	if err != nil {
		return nil, err
	}
	return &GetProposalResponse{Proposal: toDTO(p)}, nil
}
