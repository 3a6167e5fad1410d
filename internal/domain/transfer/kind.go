package transfer

import "fmt"

// Kind represents the contractual form of a transfer
type Kind string

const (
	// KindTransfer is a permanent move for a fee
	KindTransfer Kind = "transfer"

	// KindLoan is a temporary move
	KindLoan Kind = "loan"

	// KindFree is a free-agent signing, no selling club involved
	KindFree Kind = "free"
)

// IsValid checks if the kind is known
func (k Kind) IsValid() bool {
	switch k {
	case KindTransfer, KindLoan, KindFree:
		return true
	default:
		return false
	}
}

// String returns the string representation of the Kind
func (k Kind) String() string {
	return string(k)
}

// ParseKind parses a string into a Kind
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("invalid transfer kind: %s", s)
	}
	return k, nil
}
