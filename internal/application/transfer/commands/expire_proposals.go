package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/footsim-go/internal/application/common"
	"github.com/andrescamacho/footsim-go/internal/domain/shared"
)

// ExpireProposalsCommand retires every respondable proposal whose response
// deadline has passed.
type ExpireProposalsCommand struct{}

// ExpireProposalsResponse reports how many proposals were expired
type ExpireProposalsResponse struct {
	ExpiredCount int
}

// ExpireProposalsHandler sweeps stale proposals
type ExpireProposalsHandler struct {
	repos *common.Repos
	clock shared.Clock
}

// NewExpireProposalsHandler creates a new expire proposals handler
func NewExpireProposalsHandler(repos *common.Repos, clock shared.Clock) *ExpireProposalsHandler {
	return &ExpireProposalsHandler{repos: repos, clock: clock}
}

// Handle executes the expire proposals command
func (h *ExpireProposalsHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(*ExpireProposalsCommand); !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	now := h.clock.Now()
	stale, err := h.repos.Proposals.FindExpired(ctx, now)
	if err != nil {
		return nil, err
	}

	logger := common.LoggerFromContext(ctx)
	count := 0
	for _, p := range stale {
		if err := p.MarkExpired(now); err != nil {
			logger.Log("WARN", "skipping proposal that cannot expire", map[string]interface{}{
				"proposal_id": p.ID(),
				"error":       err.Error(),
			})
			continue
		}
		if err := h.repos.Proposals.Update(ctx, p); err != nil {
			return nil, err
		}
		count++
	}

	return &ExpireProposalsResponse{ExpiredCount: count}, nil
}
