package transfer

import "fmt"

// Status represents a proposal's position in its lifecycle.
//
// Transitions:
//
//	PENDING     → ACCEPTED | REJECTED | NEGOTIATING | EXPIRED
//	NEGOTIATING → ACCEPTED | REJECTED | NEGOTIATING | EXPIRED
//	ACCEPTED    → COMPLETED
//
// REJECTED, COMPLETED and EXPIRED are terminal.
type Status string

const (
	StatusPending     Status = "pending"
	StatusNegotiating Status = "negotiating"
	StatusAccepted    Status = "accepted"
	StatusRejected    Status = "rejected"
	StatusCompleted   Status = "completed"
	StatusExpired     Status = "expired"
)

// IsValid checks if the status is known
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusNegotiating, StatusAccepted,
		StatusRejected, StatusCompleted, StatusExpired:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is possible
func (s Status) IsTerminal() bool {
	switch s {
	case StatusRejected, StatusCompleted, StatusExpired:
		return true
	default:
		return false
	}
}

// IsRespondable reports whether the counterparty may still answer
func (s Status) IsRespondable() bool {
	return s == StatusPending || s == StatusNegotiating
}

// String returns the string representation of the Status
func (s Status) String() string {
	return string(s)
}

// ParseStatus parses a string into a Status
func ParseStatus(str string) (Status, error) {
	s := Status(str)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid proposal status: %s", str)
	}
	return s, nil
}
