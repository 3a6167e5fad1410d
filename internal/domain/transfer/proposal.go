package transfer

import (
	"fmt"
	"time"

	"github.com/andrescamacho/footsim-go/internal/domain/shared"
)

// Proposal is the aggregate root of a transfer negotiation. All state
// transitions go through its methods; budgets and ownership are never touched
// outside the settlement path.
type Proposal struct {
	id               int
	playerID         int
	fromTeamID       *int // nil = free agent signing
	toTeamID         int
	kind             Kind
	status           Status
	fee              int64
	wageOffer        int64
	contractYears    int
	createdAt        time.Time
	responseDeadline time.Time
	counterOfferFee  *int64
	rejectionReason  string
}

// NewProposal creates a PENDING proposal with the given response deadline
func NewProposal(
	playerID int,
	fromTeamID *int,
	toTeamID int,
	kind Kind,
	fee int64,
	wageOffer int64,
	contractYears int,
	createdAt time.Time,
	responseDeadline time.Time,
) (*Proposal, error) {
	if !kind.IsValid() {
		return nil, shared.NewValidationError("invalid transfer kind: %s", kind)
	}
	if fee < 0 {
		return nil, shared.NewValidationError("fee cannot be negative: %d", fee)
	}
	if wageOffer < 0 {
		return nil, shared.NewValidationError("wage offer cannot be negative: %d", wageOffer)
	}
	if fromTeamID != nil && *fromTeamID == toTeamID {
		return nil, shared.NewValidationError("a team cannot buy its own player")
	}
	return &Proposal{
		playerID:         playerID,
		fromTeamID:       fromTeamID,
		toTeamID:         toTeamID,
		kind:             kind,
		status:           StatusPending,
		fee:              fee,
		wageOffer:        wageOffer,
		contractYears:    contractYears,
		createdAt:        createdAt,
		responseDeadline: responseDeadline,
	}, nil
}

// ReconstructProposal rebuilds a proposal from persistence, bypassing
// creation-time validation. Used only by the repository.
func ReconstructProposal(
	id int,
	playerID int,
	fromTeamID *int,
	toTeamID int,
	kind Kind,
	status Status,
	fee int64,
	wageOffer int64,
	contractYears int,
	createdAt time.Time,
	responseDeadline time.Time,
	counterOfferFee *int64,
	rejectionReason string,
) *Proposal {
	return &Proposal{
		id:               id,
		playerID:         playerID,
		fromTeamID:       fromTeamID,
		toTeamID:         toTeamID,
		kind:             kind,
		status:           status,
		fee:              fee,
		wageOffer:        wageOffer,
		contractYears:    contractYears,
		createdAt:        createdAt,
		responseDeadline: responseDeadline,
		counterOfferFee:  counterOfferFee,
		rejectionReason:  rejectionReason,
	}
}

// Getters

func (p *Proposal) ID() int                     { return p.id }
func (p *Proposal) PlayerID() int               { return p.playerID }
func (p *Proposal) FromTeamID() *int            { return p.fromTeamID }
func (p *Proposal) ToTeamID() int               { return p.toTeamID }
func (p *Proposal) Kind() Kind                  { return p.kind }
func (p *Proposal) Status() Status              { return p.status }
func (p *Proposal) Fee() int64                  { return p.fee }
func (p *Proposal) WageOffer() int64            { return p.wageOffer }
func (p *Proposal) ContractYears() int          { return p.contractYears }
func (p *Proposal) CreatedAt() time.Time        { return p.createdAt }
func (p *Proposal) ResponseDeadline() time.Time { return p.responseDeadline }
func (p *Proposal) CounterOfferFee() *int64     { return p.counterOfferFee }
func (p *Proposal) RejectionReason() string     { return p.rejectionReason }

// SetID assigns the storage-generated identifier after the first save
func (p *Proposal) SetID(id int) { p.id = id }

// IsFreeAgentSigning reports whether no selling club is involved
func (p *Proposal) IsFreeAgentSigning() bool {
	return p.fromTeamID == nil
}

// Accept moves a respondable proposal to ACCEPTED
func (p *Proposal) Accept() error {
	if !p.status.IsRespondable() {
		return shared.NewBusinessRuleError("cannot accept proposal %d in status %s", p.id, p.status)
	}
	p.status = StatusAccepted
	return nil
}

// Reject moves a respondable proposal to REJECTED with a reason
func (p *Proposal) Reject(reason string) error {
	if !p.status.IsRespondable() {
		return shared.NewBusinessRuleError("cannot reject proposal %d in status %s", p.id, p.status)
	}
	p.status = StatusRejected
	p.rejectionReason = reason
	return nil
}

// Counter moves a respondable proposal to NEGOTIATING with a counter fee
// and extends the response deadline.
func (p *Proposal) Counter(counterFee int64, newDeadline time.Time) error {
	if !p.status.IsRespondable() {
		return shared.NewBusinessRuleError("cannot counter proposal %d in status %s", p.id, p.status)
	}
	if counterFee <= 0 {
		return shared.NewValidationError("counter offer fee must be positive, got %d", counterFee)
	}
	p.status = StatusNegotiating
	p.counterOfferFee = &counterFee
	p.responseDeadline = newDeadline
	return nil
}

// AcceptCounter lets the original proposer take the seller's counter:
// the counter fee becomes the agreed fee and the proposal is ACCEPTED.
func (p *Proposal) AcceptCounter() error {
	if p.status != StatusNegotiating {
		return shared.NewBusinessRuleError("cannot accept counter on proposal %d in status %s", p.id, p.status)
	}
	if p.counterOfferFee == nil {
		return shared.NewBusinessRuleError("proposal %d has no counter offer to accept", p.id)
	}
	p.fee = *p.counterOfferFee
	p.status = StatusAccepted
	return nil
}

// MarkCompleted finishes an ACCEPTED proposal after settlement
func (p *Proposal) MarkCompleted() error {
	if p.status != StatusAccepted {
		return shared.NewBusinessRuleError("cannot complete proposal %d in status %s", p.id, p.status)
	}
	p.status = StatusCompleted
	return nil
}

// MarkExpired retires a proposal whose deadline passed unanswered
func (p *Proposal) MarkExpired(now time.Time) error {
	if !p.status.IsRespondable() {
		return shared.NewBusinessRuleError("cannot expire proposal %d in status %s", p.id, p.status)
	}
	if now.Before(p.responseDeadline) {
		return shared.NewBusinessRuleError("proposal %d deadline has not passed yet", p.id)
	}
	p.status = StatusExpired
	return nil
}

// String provides a human-readable representation
func (p *Proposal) String() string {
	return fmt.Sprintf("Proposal[%d, player=%d, to=%d, %s, fee=%d, %s]",
		p.id, p.playerID, p.toTeamID, p.kind, p.fee, p.status)
}
