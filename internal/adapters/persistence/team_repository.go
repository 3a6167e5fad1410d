package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/andrescamacho/footsim-go/internal/domain/shared"
	"github.com/andrescamacho/footsim-go/internal/domain/team"
)

// GormTeamRepository implements team.TeamRepository using GORM
type GormTeamRepository struct {
	db *gorm.DB
}

// NewGormTeamRepository creates a new GORM team repository
func NewGormTeamRepository(db *gorm.DB) *GormTeamRepository {
	return &GormTeamRepository{db: db}
}

// FindByID retrieves a team by ID
func (r *GormTeamRepository) FindByID(ctx context.Context, teamID int) (*team.Team, error) {
	var model TeamModel
	result := r.db.WithContext(ctx).First(&model, teamID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("team not found: %d", teamID)
		}
		return nil, shared.NewInternalError("failed to find team", result.Error)
	}
	return teamModelToEntity(&model), nil
}

// FindAIControlled retrieves all clubs run by the simulation
func (r *GormTeamRepository) FindAIControlled(ctx context.Context) ([]*team.Team, error) {
	var models []TeamModel
	result := r.db.WithContext(ctx).Where("is_human = ?", false).Order("id").Find(&models)
	if result.Error != nil {
		return nil, shared.NewInternalError("failed to find AI teams", result.Error)
	}

	teams := make([]*team.Team, 0, len(models))
	for i := range models {
		teams = append(teams, teamModelToEntity(&models[i]))
	}
	return teams, nil
}

// Save upserts a team
func (r *GormTeamRepository) Save(ctx context.Context, t *team.Team) error {
	model := teamEntityToModel(t)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return shared.NewInternalError("failed to save team", result.Error)
	}
	t.ID = model.ID
	return nil
}

func teamModelToEntity(m *TeamModel) *team.Team {
	return &team.Team{
		ID:              m.ID,
		Name:            m.Name,
		Budget:          m.Budget,
		Strategy:        team.TransferStrategy(m.Strategy),
		IsHuman:         m.IsHuman,
		Reputation:      m.Reputation,
		StaffAnnualWage: m.StaffAnnualWage,
	}
}

func teamEntityToModel(t *team.Team) *TeamModel {
	return &TeamModel{
		ID:              t.ID,
		Name:            t.Name,
		Budget:          t.Budget,
		Strategy:        t.Strategy.String(),
		IsHuman:         t.IsHuman,
		Reputation:      t.Reputation,
		StaffAnnualWage: t.StaffAnnualWage,
	}
}
