package team

// Team represents a club. Budget is signed: a negative budget means the club
// overspent and is under a transfer ban until it recovers.
type Team struct {
	ID              int
	Name            string
	Budget          int64
	Strategy        TransferStrategy
	IsHuman         bool
	Reputation      int
	StaffAnnualWage int64
}

// Debit reduces the team's budget by the given amount
func (t *Team) Debit(amount int64) {
	t.Budget -= amount
}

// Credit increases the team's budget by the given amount
func (t *Team) Credit(amount int64) {
	t.Budget += amount
}

// CanAfford reports whether the budget covers the given fee
func (t *Team) CanAfford(fee int64) bool {
	return t.Budget >= fee
}

// IsUnderTransferBan reports whether the club is blocked from buying
func (t *Team) IsUnderTransferBan() bool {
	return t.Budget < 0
}
