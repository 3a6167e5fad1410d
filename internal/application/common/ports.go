package common

import (
	"context"

	"github.com/andrescamacho/footsim-go/internal/domain/ledger"
	"github.com/andrescamacho/footsim-go/internal/domain/player"
	"github.com/andrescamacho/footsim-go/internal/domain/scouting"
	"github.com/andrescamacho/footsim-go/internal/domain/season"
	"github.com/andrescamacho/footsim-go/internal/domain/team"
	"github.com/andrescamacho/footsim-go/internal/domain/transfer"
)

// Repos bundles every repository the engine reads and writes. A Repos value
// is either bound to the root connection or, inside a unit of work, to one
// transaction.
type Repos struct {
	Players   player.PlayerRepository
	Contracts player.ContractRepository
	Subjects  player.SubjectLoader
	Teams     team.TeamRepository
	Proposals transfer.ProposalRepository
	History   transfer.HistoryRepository
	Ledger    ledger.EntryRepository
	Seasons   season.SeasonRepository
	Interests scouting.InterestRepository

	// UoW is bound to the same scope as the repositories, so a handler that
	// already runs inside a transaction nests instead of opening a new one.
	UoW UnitOfWork
}

// UnitOfWork is the transactional execution boundary. Execute runs fn with a
// repository set bound to one atomic scope; every write commits together, or
// none do. Invoking Execute from inside an already-open unit of work must
// nest via a savepoint rather than opening a second top-level transaction.
type UnitOfWork interface {
	Execute(ctx context.Context, fn func(ctx context.Context, repos *Repos) error) error
}
