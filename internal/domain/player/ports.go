package player

import "context"

// PlayerRepository defines player persistence operations
type PlayerRepository interface {
	FindByID(ctx context.Context, playerID int) (*Player, error)
	FindByTeamID(ctx context.Context, teamID int) ([]*Player, error)
	FindFreeAgents(ctx context.Context) ([]*Player, error)
	Save(ctx context.Context, p *Player) error
}

// ContractRepository defines contract persistence operations
type ContractRepository interface {
	FindActiveByPlayerID(ctx context.Context, playerID int) (*Contract, error)
	Save(ctx context.Context, c *Contract) error
}

// SubjectLoader assembles the joined player/contract view for a negotiation
type SubjectLoader interface {
	LoadSubject(ctx context.Context, playerID int) (*ProposalSubject, error)
}
