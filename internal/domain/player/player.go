package player

import "time"

// Player represents a footballer. A player belongs to at most one team;
// a nil TeamID marks a free agent.
type Player struct {
	ID                  int
	TeamID              *int
	Name                string
	Position            Position
	Age                 int
	Overall             int
	Potential           int
	Form                int
	Moral               int
	ContractEnd         *time.Time
	IsInjured           bool
	InjuryDaysRemaining int
	LastTransferSeason  *int
}

// IsFreeAgent reports whether the player has no club
func (p *Player) IsFreeAgent() bool {
	return p.TeamID == nil
}

// ContractYearsLeft returns the whole years remaining on the player's
// contract at the given date. Unknown contract ends default to 2 years.
func (p *Player) ContractYearsLeft(now time.Time) float64 {
	if p.ContractEnd == nil {
		return 2
	}
	left := p.ContractEnd.Sub(now).Hours() / (24 * 365)
	if left < 0 {
		return 0
	}
	return left
}

// AssignTo moves the player to a new team and resets morale to the
// fresh-signing value. Only the settlement path may call this.
func (p *Player) AssignTo(teamID int, freshSigningMoral int) {
	p.TeamID = &teamID
	p.Moral = freshSigningMoral
}
