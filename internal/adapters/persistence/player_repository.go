package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/andrescamacho/footsim-go/internal/domain/player"
	"github.com/andrescamacho/footsim-go/internal/domain/shared"
)

// GormPlayerRepository implements player.PlayerRepository using GORM
type GormPlayerRepository struct {
	db *gorm.DB
}

// NewGormPlayerRepository creates a new GORM player repository
func NewGormPlayerRepository(db *gorm.DB) *GormPlayerRepository {
	return &GormPlayerRepository{db: db}
}

// FindByID retrieves a player by ID
func (r *GormPlayerRepository) FindByID(ctx context.Context, playerID int) (*player.Player, error) {
	var model PlayerModel
	result := r.db.WithContext(ctx).First(&model, playerID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("player not found: %d", playerID)
		}
		return nil, shared.NewInternalError("failed to find player", result.Error)
	}
	return playerModelToEntity(&model), nil
}

// FindByTeamID retrieves all players of a team
func (r *GormPlayerRepository) FindByTeamID(ctx context.Context, teamID int) ([]*player.Player, error) {
	var models []PlayerModel
	result := r.db.WithContext(ctx).Where("team_id = ?", teamID).Find(&models)
	if result.Error != nil {
		return nil, shared.NewInternalError("failed to find squad", result.Error)
	}

	players := make([]*player.Player, 0, len(models))
	for i := range models {
		players = append(players, playerModelToEntity(&models[i]))
	}
	return players, nil
}

// FindFreeAgents retrieves all players with no club
func (r *GormPlayerRepository) FindFreeAgents(ctx context.Context) ([]*player.Player, error) {
	var models []PlayerModel
	result := r.db.WithContext(ctx).Where("team_id IS NULL").Find(&models)
	if result.Error != nil {
		return nil, shared.NewInternalError("failed to find free agents", result.Error)
	}

	players := make([]*player.Player, 0, len(models))
	for i := range models {
		players = append(players, playerModelToEntity(&models[i]))
	}
	return players, nil
}

// Save upserts a player
func (r *GormPlayerRepository) Save(ctx context.Context, p *player.Player) error {
	model := playerEntityToModel(p)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return shared.NewInternalError("failed to save player", result.Error)
	}
	p.ID = model.ID
	return nil
}

func playerModelToEntity(m *PlayerModel) *player.Player {
	return &player.Player{
		ID:                  m.ID,
		TeamID:              m.TeamID,
		Name:                m.Name,
		Position:            player.Position(m.Position),
		Age:                 m.Age,
		Overall:             m.Overall,
		Potential:           m.Potential,
		Form:                m.Form,
		Moral:               m.Moral,
		ContractEnd:         m.ContractEnd,
		IsInjured:           m.IsInjured,
		InjuryDaysRemaining: m.InjuryDaysRemaining,
		LastTransferSeason:  m.LastTransferSeason,
	}
}

func playerEntityToModel(p *player.Player) *PlayerModel {
	return &PlayerModel{
		ID:                  p.ID,
		TeamID:              p.TeamID,
		Name:                p.Name,
		Position:            p.Position.String(),
		Age:                 p.Age,
		Overall:             p.Overall,
		Potential:           p.Potential,
		Form:                p.Form,
		Moral:               p.Moral,
		ContractEnd:         p.ContractEnd,
		IsInjured:           p.IsInjured,
		InjuryDaysRemaining: p.InjuryDaysRemaining,
		LastTransferSeason:  p.LastTransferSeason,
	}
}

// GormSubjectLoader assembles the joined player/contract negotiation view
type GormSubjectLoader struct {
	players   *GormPlayerRepository
	contracts *GormContractRepository
}

// NewGormSubjectLoader creates a subject loader over the two repositories
func NewGormSubjectLoader(players *GormPlayerRepository, contracts *GormContractRepository) *GormSubjectLoader {
	return &GormSubjectLoader{players: players, contracts: contracts}
}

// LoadSubject loads a player together with their active contract, if any
func (l *GormSubjectLoader) LoadSubject(ctx context.Context, playerID int) (*player.ProposalSubject, error) {
	p, err := l.players.FindByID(ctx, playerID)
	if err != nil {
		return nil, err
	}

	contract, err := l.contracts.FindActiveByPlayerID(ctx, playerID)
	if err != nil && !shared.IsKind(err, shared.KindNotFound) {
		return nil, fmt.Errorf("failed to load contract for player %d: %w", playerID, err)
	}

	return &player.ProposalSubject{Player: p, ActiveContract: contract}, nil
}
