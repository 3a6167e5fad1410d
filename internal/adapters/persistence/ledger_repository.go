package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/andrescamacho/footsim-go/internal/domain/ledger"
	"github.com/andrescamacho/footsim-go/internal/domain/shared"
)

// GormLedgerRepository implements ledger.EntryRepository using GORM
type GormLedgerRepository struct {
	db *gorm.DB
}

// NewGormLedgerRepository creates a new GORM ledger repository
func NewGormLedgerRepository(db *gorm.DB) *GormLedgerRepository {
	return &GormLedgerRepository{db: db}
}

// Create persists a new ledger entry
func (r *GormLedgerRepository) Create(ctx context.Context, entry *ledger.Entry) error {
	model := ledgerEntityToModel(entry)
	result := r.db.WithContext(ctx).Create(model)
	if result.Error != nil {
		return shared.NewInternalError("failed to create ledger entry", result.Error)
	}
	return nil
}

// FindByID retrieves an entry by its ID
func (r *GormLedgerRepository) FindByID(ctx context.Context, id ledger.EntryID) (*ledger.Entry, error) {
	var model LedgerEntryModel
	result := r.db.WithContext(ctx).Where("id = ?", id.Value()).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("ledger entry not found: %s", id.Value())
		}
		return nil, shared.NewInternalError("failed to find ledger entry", result.Error)
	}
	return ledgerModelToEntity(&model), nil
}

// FindByTeam retrieves entries for a team with optional filtering
func (r *GormLedgerRepository) FindByTeam(ctx context.Context, teamID int, opts ledger.QueryOptions) ([]*ledger.Entry, error) {
	query := r.applyOptions(r.db.WithContext(ctx).Where("team_id = ?", teamID), opts)

	orderBy := opts.OrderBy
	if orderBy == "" {
		orderBy = "timestamp DESC"
	}
	// zero means the default page size; negative disables the limit
	limit := opts.Limit
	if limit == 0 {
		limit = 50
	}

	var models []LedgerEntryModel
	result := query.Order(orderBy).Limit(limit).Offset(opts.Offset).Find(&models)
	if result.Error != nil {
		return nil, shared.NewInternalError("failed to query ledger", result.Error)
	}

	entries := make([]*ledger.Entry, 0, len(models))
	for i := range models {
		entries = append(entries, ledgerModelToEntity(&models[i]))
	}
	return entries, nil
}

// CountByTeam returns the number of entries matching the criteria
func (r *GormLedgerRepository) CountByTeam(ctx context.Context, teamID int, opts ledger.QueryOptions) (int, error) {
	query := r.applyOptions(r.db.WithContext(ctx).Model(&LedgerEntryModel{}).Where("team_id = ?", teamID), opts)

	var count int64
	result := query.Count(&count)
	if result.Error != nil {
		return 0, shared.NewInternalError("failed to count ledger entries", result.Error)
	}
	return int(count), nil
}

func (r *GormLedgerRepository) applyOptions(query *gorm.DB, opts ledger.QueryOptions) *gorm.DB {
	if opts.StartDate != nil {
		query = query.Where("timestamp >= ?", *opts.StartDate)
	}
	if opts.EndDate != nil {
		query = query.Where("timestamp <= ?", *opts.EndDate)
	}
	if opts.Category != nil {
		query = query.Where("category = ?", opts.Category.String())
	}
	if opts.SeasonID != nil {
		query = query.Where("season_id = ?", *opts.SeasonID)
	}
	return query
}

func ledgerModelToEntity(m *LedgerEntryModel) *ledger.Entry {
	return ledger.ReconstructEntry(
		ledger.MustNewEntryIDFromString(m.ID),
		m.TeamID,
		m.SeasonID,
		m.Timestamp,
		ledger.Category(m.Category),
		m.Amount,
		m.BalanceBefore,
		m.BalanceAfter,
		m.Description,
		m.RelatedType,
		m.RelatedID,
	)
}

func ledgerEntityToModel(e *ledger.Entry) *LedgerEntryModel {
	return &LedgerEntryModel{
		ID:            e.ID().Value(),
		TeamID:        e.TeamID(),
		SeasonID:      e.SeasonID(),
		Timestamp:     e.Timestamp(),
		Category:      e.Category().String(),
		Amount:        e.Amount(),
		BalanceBefore: e.BalanceBefore(),
		BalanceAfter:  e.BalanceAfter(),
		Description:   e.Description(),
		RelatedType:   e.RelatedType(),
		RelatedID:     e.RelatedID(),
	}
}
