package events

import "time"

// Kind tags each event variant in the catalogue
type Kind string

const (
	// KindProposalReceived fires when a new proposal lands on a club's desk
	KindProposalReceived Kind = "transfer.proposal_received"

	// KindTransferCompleted fires after a settlement transaction commits
	KindTransferCompleted Kind = "transfer.completed"
)

// Event is one variant of the domain event catalogue. Each variant carries
// its own payload shape and reports its kind.
type Event interface {
	EventKind() Kind
}

// ProposalReceived is published when a proposal is created, for the selling
// club (or the UI, for human clubs) to observe.
type ProposalReceived struct {
	ProposalID int
	PlayerID   int
	FromTeamID *int
	ToTeamID   int
	Fee        int64
	Deadline   time.Time
}

func (ProposalReceived) EventKind() Kind { return KindProposalReceived }

// TransferCompleted is published strictly after the settlement transaction
// has committed.
type TransferCompleted struct {
	ProposalID int
	PlayerID   int
	FromTeamID *int
	ToTeamID   int
	Fee        int64
	Date       time.Time
}

func (TransferCompleted) EventKind() Kind { return KindTransferCompleted }
