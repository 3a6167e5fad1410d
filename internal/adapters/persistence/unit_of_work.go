package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/andrescamacho/footsim-go/internal/application/common"
)

// GormUnitOfWork implements common.UnitOfWork on a GORM connection.
//
// Nesting: gorm's Transaction call detects an already-open transaction on its
// receiver and demotes begin/commit/rollback to savepoint operations, so a
// unit of work started from inside another one (finalize inside a season-end
// batch, for instance) nests instead of failing.
type GormUnitOfWork struct {
	db *gorm.DB
}

// NewGormUnitOfWork creates a unit of work over the given connection
func NewGormUnitOfWork(db *gorm.DB) *GormUnitOfWork {
	return &GormUnitOfWork{db: db}
}

// Execute runs fn with repositories bound to one atomic scope. The error from
// fn is returned unchanged so its ErrorKind survives the rollback.
func (u *GormUnitOfWork) Execute(ctx context.Context, fn func(ctx context.Context, repos *common.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, NewRepos(tx))
	})
}

// NewRepos builds the full repository set over one connection or transaction
func NewRepos(db *gorm.DB) *common.Repos {
	players := NewGormPlayerRepository(db)
	contracts := NewGormContractRepository(db)
	return &common.Repos{
		Players:   players,
		Contracts: contracts,
		Subjects:  NewGormSubjectLoader(players, contracts),
		Teams:     NewGormTeamRepository(db),
		Proposals: NewGormProposalRepository(db),
		History:   NewGormHistoryRepository(db),
		Ledger:    NewGormLedgerRepository(db),
		Seasons:   NewGormSeasonRepository(db),
		Interests: NewGormScoutingRepository(db),
		UoW:       NewGormUnitOfWork(db),
	}
}
