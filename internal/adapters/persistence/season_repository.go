package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/andrescamacho/footsim-go/internal/domain/season"
	"github.com/andrescamacho/footsim-go/internal/domain/shared"
)

// GormSeasonRepository implements season.SeasonRepository using GORM
type GormSeasonRepository struct {
	db *gorm.DB
}

// NewGormSeasonRepository creates a new GORM season repository
func NewGormSeasonRepository(db *gorm.DB) *GormSeasonRepository {
	return &GormSeasonRepository{db: db}
}

// FindActive retrieves the currently running season
func (r *GormSeasonRepository) FindActive(ctx context.Context) (*season.Season, error) {
	var model SeasonModel
	result := r.db.WithContext(ctx).Where("is_active = ?", true).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("no active season")
		}
		return nil, shared.NewInternalError("failed to find active season", result.Error)
	}
	return seasonModelToEntity(&model), nil
}

// FindByID retrieves a season by ID
func (r *GormSeasonRepository) FindByID(ctx context.Context, id int) (*season.Season, error) {
	var model SeasonModel
	result := r.db.WithContext(ctx).First(&model, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("season not found: %d", id)
		}
		return nil, shared.NewInternalError("failed to find season", result.Error)
	}
	return seasonModelToEntity(&model), nil
}

// Save upserts a season
func (r *GormSeasonRepository) Save(ctx context.Context, s *season.Season) error {
	model := &SeasonModel{
		ID:        s.ID,
		Year:      s.Year,
		StartDate: s.StartDate,
		EndDate:   s.EndDate,
		IsActive:  s.IsActive,
	}
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return shared.NewInternalError("failed to save season", result.Error)
	}
	s.ID = model.ID
	return nil
}

func seasonModelToEntity(m *SeasonModel) *season.Season {
	return &season.Season{
		ID:        m.ID,
		Year:      m.Year,
		StartDate: m.StartDate,
		EndDate:   m.EndDate,
		IsActive:  m.IsActive,
	}
}
