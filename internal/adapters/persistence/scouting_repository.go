package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/andrescamacho/footsim-go/internal/domain/scouting"
	"github.com/andrescamacho/footsim-go/internal/domain/shared"
)

// GormScoutingRepository implements scouting.InterestRepository using GORM
type GormScoutingRepository struct {
	db *gorm.DB
}

// NewGormScoutingRepository creates a new GORM scouting repository
func NewGormScoutingRepository(db *gorm.DB) *GormScoutingRepository {
	return &GormScoutingRepository{db: db}
}

// FindByTeam returns a team's scouting targets, hottest first
func (r *GormScoutingRepository) FindByTeam(ctx context.Context, teamID int) ([]*scouting.Interest, error) {
	var models []ScoutingInterestModel
	result := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("priority DESC").
		Find(&models)
	if result.Error != nil {
		return nil, shared.NewInternalError("failed to find scouting interests", result.Error)
	}

	interests := make([]*scouting.Interest, 0, len(models))
	for i := range models {
		m := &models[i]
		interests = append(interests, &scouting.Interest{
			ID:       m.ID,
			TeamID:   m.TeamID,
			PlayerID: m.PlayerID,
			Level:    scouting.InterestLevel(m.Level),
			Priority: m.Priority,
			Notes:    m.Notes,
		})
	}
	return interests, nil
}

// Save upserts a scouting interest
func (r *GormScoutingRepository) Save(ctx context.Context, i *scouting.Interest) error {
	model := &ScoutingInterestModel{
		ID:       i.ID,
		TeamID:   i.TeamID,
		PlayerID: i.PlayerID,
		Level:    string(i.Level),
		Priority: i.Priority,
		Notes:    i.Notes,
	}
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return shared.NewInternalError("failed to save scouting interest", result.Error)
	}
	i.ID = model.ID
	return nil
}

// Delete removes a scouting interest
func (r *GormScoutingRepository) Delete(ctx context.Context, id int) error {
	result := r.db.WithContext(ctx).Delete(&ScoutingInterestModel{}, id)
	if result.Error != nil {
		return shared.NewInternalError("failed to delete scouting interest", result.Error)
	}
	return nil
}
