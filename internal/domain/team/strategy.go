package team

import "fmt"

// TransferStrategy shapes how a club values its own players when offers arrive
// and what it hunts for in the market.
type TransferStrategy string

const (
	StrategyBalanced     TransferStrategy = "balanced"
	StrategySellingClub  TransferStrategy = "selling_club"
	StrategyYouthFocused TransferStrategy = "youth_focused"
	StrategyAggressive   TransferStrategy = "aggressive"
	StrategyRebuilding   TransferStrategy = "rebuilding"
)

// AllStrategies returns every valid strategy
func AllStrategies() []TransferStrategy {
	return []TransferStrategy{
		StrategyBalanced,
		StrategySellingClub,
		StrategyYouthFocused,
		StrategyAggressive,
		StrategyRebuilding,
	}
}

// IsValid checks if the strategy is known
func (s TransferStrategy) IsValid() bool {
	switch s {
	case StrategyBalanced, StrategySellingClub, StrategyYouthFocused,
		StrategyAggressive, StrategyRebuilding:
		return true
	default:
		return false
	}
}

// String returns the string representation of the TransferStrategy
func (s TransferStrategy) String() string {
	return string(s)
}

// ParseStrategy parses a string into a TransferStrategy
func ParseStrategy(s string) (TransferStrategy, error) {
	st := TransferStrategy(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid transfer strategy: %s", s)
	}
	return st, nil
}
