package player

import "time"

// Contract represents a player's employment terms with a club.
// Wage amounts are annual, in whole currency units.
type Contract struct {
	ID            int
	PlayerID      int
	TeamID        int
	AnnualWage    int64
	StartDate     time.Time
	EndDate       time.Time
	ReleaseClause *int64
}

// IsActive reports whether the contract covers the given date
func (c *Contract) IsActive(now time.Time) bool {
	return !now.Before(c.StartDate) && now.Before(c.EndDate)
}

// HasReleaseClause reports whether a release clause is set
func (c *Contract) HasReleaseClause() bool {
	return c.ReleaseClause != nil && *c.ReleaseClause > 0
}

// ProposalSubject is the joined player/contract view a transfer negotiation
// operates on. It is assembled once at the data-access boundary so callers
// never need to re-fetch or cast between the two.
type ProposalSubject struct {
	Player         *Player
	ActiveContract *Contract
}
