package transfer

import (
	"context"
	"time"
)

// ProposalRepository defines proposal persistence operations.
// Proposals are history: they are updated through their lifecycle but never deleted.
type ProposalRepository interface {
	// Create persists a new proposal and assigns its ID
	Create(ctx context.Context, p *Proposal) error

	// Update persists state changes of an existing proposal
	Update(ctx context.Context, p *Proposal) error

	// FindByID retrieves a proposal by ID
	FindByID(ctx context.Context, id int) (*Proposal, error)

	// FindActive returns the non-terminal proposal for a
	// (player, fromTeam, toTeam) triple, or nil when none exists
	FindActive(ctx context.Context, playerID int, fromTeamID *int, toTeamID int) (*Proposal, error)

	// FindRespondableByReceiver returns PENDING/NEGOTIATING proposals whose
	// selling club is the given team
	FindRespondableByReceiver(ctx context.Context, teamID int) ([]*Proposal, error)

	// FindExpired returns respondable proposals whose deadline passed
	FindExpired(ctx context.Context, now time.Time) ([]*Proposal, error)

	// FindByTeam returns proposals where the team is buyer or seller
	FindByTeam(ctx context.Context, teamID int, limit int) ([]*Proposal, error)
}

// HistoryRepository persists the transfer-history records written at settlement
type HistoryRepository interface {
	Create(ctx context.Context, r *Record) error
	FindByPlayerID(ctx context.Context, playerID int) ([]*Record, error)
	FindBySeasonID(ctx context.Context, seasonID int) ([]*Record, error)

	// CountByPlayerAndSeason reports how often a player already moved this season
	CountByPlayerAndSeason(ctx context.Context, playerID, seasonID int) (int, error)
}
