package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/andrescamacho/footsim-go/internal/domain/shared"
	"github.com/andrescamacho/footsim-go/internal/domain/transfer"
)

// GormProposalRepository implements transfer.ProposalRepository using GORM
type GormProposalRepository struct {
	db *gorm.DB
}

// NewGormProposalRepository creates a new GORM proposal repository
func NewGormProposalRepository(db *gorm.DB) *GormProposalRepository {
	return &GormProposalRepository{db: db}
}

// Create persists a new proposal and assigns its storage ID.
// The unique index on active_key turns a duplicate active proposal into a
// CONFLICT even under concurrent callers.
func (r *GormProposalRepository) Create(ctx context.Context, p *transfer.Proposal) error {
	model := proposalEntityToModel(p)
	model.ID = 0
	result := r.db.WithContext(ctx).Create(model)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return shared.NewConflictError(
				"an active proposal already exists for player %d between these clubs", p.PlayerID())
		}
		return shared.NewInternalError("failed to create proposal", result.Error)
	}
	p.SetID(model.ID)
	return nil
}

// Update persists state changes of an existing proposal
func (r *GormProposalRepository) Update(ctx context.Context, p *transfer.Proposal) error {
	if p.ID() == 0 {
		return shared.NewValidationError("cannot update proposal without an id")
	}
	model := proposalEntityToModel(p)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return shared.NewConflictError(
				"an active proposal already exists for player %d between these clubs", p.PlayerID())
		}
		return shared.NewInternalError("failed to update proposal", result.Error)
	}
	return nil
}

// FindByID retrieves a proposal by ID
func (r *GormProposalRepository) FindByID(ctx context.Context, id int) (*transfer.Proposal, error) {
	var model ProposalModel
	result := r.db.WithContext(ctx).First(&model, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("proposal not found: %d", id)
		}
		return nil, shared.NewInternalError("failed to find proposal", result.Error)
	}
	return proposalModelToEntity(&model), nil
}

// FindActive returns the non-terminal proposal for the triple, or nil
func (r *GormProposalRepository) FindActive(ctx context.Context, playerID int, fromTeamID *int, toTeamID int) (*transfer.Proposal, error) {
	key := activeKey(playerID, fromTeamID, toTeamID)
	var model ProposalModel
	result := r.db.WithContext(ctx).Where("active_key = ?", key).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, shared.NewInternalError("failed to find active proposal", result.Error)
	}
	return proposalModelToEntity(&model), nil
}

// FindRespondableByReceiver returns PENDING/NEGOTIATING proposals addressed
// to the given selling club.
func (r *GormProposalRepository) FindRespondableByReceiver(ctx context.Context, teamID int) ([]*transfer.Proposal, error) {
	var models []ProposalModel
	result := r.db.WithContext(ctx).
		Where("from_team_id = ? AND status IN ?", teamID,
			[]string{transfer.StatusPending.String(), transfer.StatusNegotiating.String()}).
		Order("created_at").
		Find(&models)
	if result.Error != nil {
		return nil, shared.NewInternalError("failed to find received proposals", result.Error)
	}
	return proposalModelsToEntities(models), nil
}

// FindExpired returns respondable proposals whose deadline passed
func (r *GormProposalRepository) FindExpired(ctx context.Context, now time.Time) ([]*transfer.Proposal, error) {
	var models []ProposalModel
	result := r.db.WithContext(ctx).
		Where("status IN ? AND response_deadline <= ?",
			[]string{transfer.StatusPending.String(), transfer.StatusNegotiating.String()}, now).
		Find(&models)
	if result.Error != nil {
		return nil, shared.NewInternalError("failed to find expired proposals", result.Error)
	}
	return proposalModelsToEntities(models), nil
}

// FindByTeam returns proposals where the team is buyer or seller, newest first
func (r *GormProposalRepository) FindByTeam(ctx context.Context, teamID int, limit int) ([]*transfer.Proposal, error) {
	if limit <= 0 {
		limit = 50
	}
	var models []ProposalModel
	result := r.db.WithContext(ctx).
		Where("to_team_id = ? OR from_team_id = ?", teamID, teamID).
		Order("created_at DESC").
		Limit(limit).
		Find(&models)
	if result.Error != nil {
		return nil, shared.NewInternalError("failed to list proposals", result.Error)
	}
	return proposalModelsToEntities(models), nil
}

func proposalModelsToEntities(models []ProposalModel) []*transfer.Proposal {
	proposals := make([]*transfer.Proposal, 0, len(models))
	for i := range models {
		proposals = append(proposals, proposalModelToEntity(&models[i]))
	}
	return proposals
}

func proposalModelToEntity(m *ProposalModel) *transfer.Proposal {
	return transfer.ReconstructProposal(
		m.ID,
		m.PlayerID,
		m.FromTeamID,
		m.ToTeamID,
		transfer.Kind(m.Kind),
		transfer.Status(m.Status),
		m.Fee,
		m.WageOffer,
		m.ContractYears,
		m.CreatedAt,
		m.ResponseDeadline,
		m.CounterOfferFee,
		m.RejectionReason,
	)
}

func proposalEntityToModel(p *transfer.Proposal) *ProposalModel {
	model := &ProposalModel{
		ID:               p.ID(),
		PlayerID:         p.PlayerID(),
		FromTeamID:       p.FromTeamID(),
		ToTeamID:         p.ToTeamID(),
		Kind:             p.Kind().String(),
		Status:           p.Status().String(),
		Fee:              p.Fee(),
		WageOffer:        p.WageOffer(),
		ContractYears:    p.ContractYears(),
		CreatedAt:        p.CreatedAt(),
		ResponseDeadline: p.ResponseDeadline(),
		CounterOfferFee:  p.CounterOfferFee(),
		RejectionReason:  p.RejectionReason(),
	}
	if !p.Status().IsTerminal() {
		key := activeKey(p.PlayerID(), p.FromTeamID(), p.ToTeamID())
		model.ActiveKey = &key
	}
	return model
}

// activeKey encodes the (player, from, to) triple for the uniqueness index
func activeKey(playerID int, fromTeamID *int, toTeamID int) string {
	from := "fa"
	if fromTeamID != nil {
		from = fmt.Sprintf("%d", *fromTeamID)
	}
	return fmt.Sprintf("%d:%s:%d", playerID, from, toTeamID)
}

// isUniqueViolation detects a unique-index breach. The connection is opened
// with TranslateError so both drivers surface gorm.ErrDuplicatedKey.
func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
