package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/andrescamacho/footsim-go/internal/application/common"
	"github.com/andrescamacho/footsim-go/internal/application/events"
	"github.com/andrescamacho/footsim-go/internal/domain/ledger"
	"github.com/andrescamacho/footsim-go/internal/domain/player"
	"github.com/andrescamacho/footsim-go/internal/domain/shared"
	"github.com/andrescamacho/footsim-go/internal/domain/transfer"
)

// FinalizeTransferCommand settles an accepted proposal: money moves, the
// player moves, and the proposal completes, all in one transaction.
type FinalizeTransferCommand struct {
	ProposalID int
}

// FinalizeTransferResponse reports the settled transfer
type FinalizeTransferResponse struct {
	ProposalID  int
	PlayerID    int
	ToTeamID    int
	Fee         int64
	BuyerBudget int64
}

// FinalizeTransferHandler is the only code path that writes budgets and
// player ownership. Every mutation happens inside one unit of work; the
// completion event is published strictly after commit.
type FinalizeTransferHandler struct {
	repos             *common.Repos
	clock             shared.Clock
	bus               *events.Bus
	freshSigningMoral int
}

// NewFinalizeTransferHandler creates a new finalize transfer handler
func NewFinalizeTransferHandler(repos *common.Repos, clock shared.Clock, bus *events.Bus, freshSigningMoral int) *FinalizeTransferHandler {
	return &FinalizeTransferHandler{
		repos:             repos,
		clock:             clock,
		bus:               bus,
		freshSigningMoral: freshSigningMoral,
	}
}

// Handle executes the finalize transfer command
func (h *FinalizeTransferHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*FinalizeTransferCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	// Preconditions are checked outside the transaction so a plainly
	// ineligible proposal never opens one.
	proposal, err := h.repos.Proposals.FindByID(ctx, cmd.ProposalID)
	if err != nil {
		return nil, err
	}
	if proposal.Status() != transfer.StatusAccepted {
		return nil, shared.NewBusinessRuleError("cannot finalize proposal %d in status %s", proposal.ID(), proposal.Status())
	}
	season, err := h.repos.Seasons.FindActive(ctx)
	if err != nil {
		return nil, err
	}

	var (
		response  *FinalizeTransferResponse
		completed events.TransferCompleted
	)
	err = h.repos.UoW.Execute(ctx, func(ctx context.Context, tx *common.Repos) error {
		p, err := tx.Proposals.FindByID(ctx, cmd.ProposalID)
		if err != nil {
			return err
		}
		now := h.clock.Now()

		buyer, err := tx.Teams.FindByID(ctx, p.ToTeamID())
		if err != nil {
			return err
		}
		// The budget may have changed since acceptance
		if !buyer.CanAfford(p.Fee()) {
			return shared.NewBusinessRuleError("team %s can no longer afford the %d fee", buyer.Name, p.Fee())
		}

		if p.Fee() > 0 {
			balanceBefore := buyer.Budget
			buyer.Debit(p.Fee())
			entry, err := ledger.NewEntry(
				buyer.ID, season.ID, now,
				ledger.CategoryTransferOut, -p.Fee(),
				balanceBefore, buyer.Budget,
				fmt.Sprintf("transfer fee for player %d", p.PlayerID()),
				"transfer_proposal", strconv.Itoa(p.ID()),
			)
			if err != nil {
				return err
			}
			if err := tx.Ledger.Create(ctx, entry); err != nil {
				return err
			}
		}
		if err := tx.Teams.Save(ctx, buyer); err != nil {
			return err
		}

		if !p.IsFreeAgentSigning() && p.Fee() > 0 {
			seller, err := tx.Teams.FindByID(ctx, *p.FromTeamID())
			if err != nil {
				return err
			}
			balanceBefore := seller.Budget
			seller.Credit(p.Fee())
			entry, err := ledger.NewEntry(
				seller.ID, season.ID, now,
				ledger.CategoryTransferIn, p.Fee(),
				balanceBefore, seller.Budget,
				fmt.Sprintf("transfer fee for player %d", p.PlayerID()),
				"transfer_proposal", strconv.Itoa(p.ID()),
			)
			if err != nil {
				return err
			}
			if err := tx.Ledger.Create(ctx, entry); err != nil {
				return err
			}
			if err := tx.Teams.Save(ctx, seller); err != nil {
				return err
			}
		}

		subject, err := tx.Players.FindByID(ctx, p.PlayerID())
		if err != nil {
			return err
		}
		subject.AssignTo(p.ToTeamID(), h.freshSigningMoral)
		seasonID := season.ID
		subject.LastTransferSeason = &seasonID
		contractEnd := now.AddDate(p.ContractYears(), 0, 0)
		subject.ContractEnd = &contractEnd
		if err := tx.Players.Save(ctx, subject); err != nil {
			return err
		}

		if err := tx.Contracts.Save(ctx, &player.Contract{
			PlayerID:   p.PlayerID(),
			TeamID:     p.ToTeamID(),
			AnnualWage: p.WageOffer(),
			StartDate:  now,
			EndDate:    contractEnd,
		}); err != nil {
			return err
		}

		if err := tx.History.Create(ctx, transfer.NewRecord(p, season.ID, now)); err != nil {
			return err
		}

		if err := p.MarkCompleted(); err != nil {
			return err
		}
		if err := tx.Proposals.Update(ctx, p); err != nil {
			return err
		}

		response = &FinalizeTransferResponse{
			ProposalID:  p.ID(),
			PlayerID:    p.PlayerID(),
			ToTeamID:    p.ToTeamID(),
			Fee:         p.Fee(),
			BuyerBudget: buyer.Budget,
		}
		completed = events.TransferCompleted{
			ProposalID: p.ID(),
			PlayerID:   p.PlayerID(),
			FromTeamID: p.FromTeamID(),
			ToTeamID:   p.ToTeamID(),
			Fee:        p.Fee(),
			Date:       now,
		}
		return nil
	})
	if err != nil {
		// The rollback leaves the proposal ACCEPTED so settlement can be retried
		return nil, err
	}

	h.bus.Publish(ctx, completed)
	return response, nil
}
