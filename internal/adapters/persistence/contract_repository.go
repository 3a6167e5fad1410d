package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/andrescamacho/footsim-go/internal/domain/player"
	"github.com/andrescamacho/footsim-go/internal/domain/shared"
)

// GormContractRepository implements player.ContractRepository using GORM
type GormContractRepository struct {
	db *gorm.DB
}

// NewGormContractRepository creates a new GORM contract repository
func NewGormContractRepository(db *gorm.DB) *GormContractRepository {
	return &GormContractRepository{db: db}
}

// FindActiveByPlayerID retrieves the player's current contract.
// The latest contract by end date wins when several rows exist.
func (r *GormContractRepository) FindActiveByPlayerID(ctx context.Context, playerID int) (*player.Contract, error) {
	var model ContractModel
	result := r.db.WithContext(ctx).
		Where("player_id = ?", playerID).
		Order("end_date DESC").
		First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("no contract for player %d", playerID)
		}
		return nil, shared.NewInternalError("failed to find contract", result.Error)
	}
	return contractModelToEntity(&model), nil
}

// Save upserts a contract
func (r *GormContractRepository) Save(ctx context.Context, c *player.Contract) error {
	model := contractEntityToModel(c)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return shared.NewInternalError("failed to save contract", result.Error)
	}
	c.ID = model.ID
	return nil
}

func contractModelToEntity(m *ContractModel) *player.Contract {
	return &player.Contract{
		ID:            m.ID,
		PlayerID:      m.PlayerID,
		TeamID:        m.TeamID,
		AnnualWage:    m.AnnualWage,
		StartDate:     m.StartDate,
		EndDate:       m.EndDate,
		ReleaseClause: m.ReleaseClause,
	}
}

func contractEntityToModel(c *player.Contract) *ContractModel {
	return &ContractModel{
		ID:            c.ID,
		PlayerID:      c.PlayerID,
		TeamID:        c.TeamID,
		AnnualWage:    c.AnnualWage,
		StartDate:     c.StartDate,
		EndDate:       c.EndDate,
		ReleaseClause: c.ReleaseClause,
	}
}
