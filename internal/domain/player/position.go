package player

import "fmt"

// Position represents a player's role on the pitch
type Position string

const (
	PositionGoalkeeper Position = "GK"
	PositionDefender   Position = "DF"
	PositionMidfielder Position = "MF"
	PositionForward    Position = "FW"
)

// AllPositions returns every valid position in formation order
func AllPositions() []Position {
	return []Position{PositionGoalkeeper, PositionDefender, PositionMidfielder, PositionForward}
}

// IsValid checks if the position is one of the known roles
func (p Position) IsValid() bool {
	switch p {
	case PositionGoalkeeper, PositionDefender, PositionMidfielder, PositionForward:
		return true
	default:
		return false
	}
}

// String returns the string representation of the Position
func (p Position) String() string {
	return string(p)
}

// ParsePosition parses a string into a Position
func ParsePosition(s string) (Position, error) {
	p := Position(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid position: %s", s)
	}
	return p, nil
}
