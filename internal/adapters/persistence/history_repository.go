package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/andrescamacho/footsim-go/internal/domain/shared"
	"github.com/andrescamacho/footsim-go/internal/domain/transfer"
)

// GormHistoryRepository implements transfer.HistoryRepository using GORM
type GormHistoryRepository struct {
	db *gorm.DB
}

// NewGormHistoryRepository creates a new GORM transfer-history repository
func NewGormHistoryRepository(db *gorm.DB) *GormHistoryRepository {
	return &GormHistoryRepository{db: db}
}

// Create persists a transfer-history record
func (r *GormHistoryRepository) Create(ctx context.Context, rec *transfer.Record) error {
	model := &TransferRecordModel{
		ID:         rec.ID.String(),
		ProposalID: rec.ProposalID,
		PlayerID:   rec.PlayerID,
		FromTeamID: rec.FromTeamID,
		ToTeamID:   rec.ToTeamID,
		Kind:       rec.Kind.String(),
		Fee:        rec.Fee,
		SeasonID:   rec.SeasonID,
		Date:       rec.Date,
	}
	result := r.db.WithContext(ctx).Create(model)
	if result.Error != nil {
		return shared.NewInternalError("failed to create transfer record", result.Error)
	}
	return nil
}

// FindByPlayerID returns a player's transfer history, newest first
func (r *GormHistoryRepository) FindByPlayerID(ctx context.Context, playerID int) ([]*transfer.Record, error) {
	var models []TransferRecordModel
	result := r.db.WithContext(ctx).Where("player_id = ?", playerID).Order("date DESC").Find(&models)
	if result.Error != nil {
		return nil, shared.NewInternalError("failed to find transfer history", result.Error)
	}
	return recordModelsToEntities(models)
}

// FindBySeasonID returns all transfers of a season
func (r *GormHistoryRepository) FindBySeasonID(ctx context.Context, seasonID int) ([]*transfer.Record, error) {
	var models []TransferRecordModel
	result := r.db.WithContext(ctx).Where("season_id = ?", seasonID).Order("date").Find(&models)
	if result.Error != nil {
		return nil, shared.NewInternalError("failed to find season transfers", result.Error)
	}
	return recordModelsToEntities(models)
}

// CountByPlayerAndSeason reports how often a player already moved this season
func (r *GormHistoryRepository) CountByPlayerAndSeason(ctx context.Context, playerID, seasonID int) (int, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&TransferRecordModel{}).
		Where("player_id = ? AND season_id = ?", playerID, seasonID).
		Count(&count)
	if result.Error != nil {
		return 0, shared.NewInternalError("failed to count transfers", result.Error)
	}
	return int(count), nil
}

func recordModelsToEntities(models []TransferRecordModel) ([]*transfer.Record, error) {
	records := make([]*transfer.Record, 0, len(models))
	for i := range models {
		m := &models[i]
		id, err := transfer.NewRecordIDFromString(m.ID)
		if err != nil {
			return nil, shared.NewInternalError("corrupt transfer record id", err)
		}
		records = append(records, &transfer.Record{
			ID:         id,
			ProposalID: m.ProposalID,
			PlayerID:   m.PlayerID,
			FromTeamID: m.FromTeamID,
			ToTeamID:   m.ToTeamID,
			Kind:       transfer.Kind(m.Kind),
			Fee:        m.Fee,
			SeasonID:   m.SeasonID,
			Date:       m.Date,
		})
	}
	return records, nil
}
