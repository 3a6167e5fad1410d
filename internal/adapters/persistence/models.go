package persistence

import (
	"time"
)

// TeamModel represents the teams table
type TeamModel struct {
	ID              int    `gorm:"column:id;primaryKey;autoIncrement"`
	Name            string `gorm:"column:name;not null"`
	Budget          int64  `gorm:"column:budget;not null"`
	Strategy        string `gorm:"column:strategy;not null;default:'balanced'"`
	IsHuman         bool   `gorm:"column:is_human;not null;default:false"`
	Reputation      int    `gorm:"column:reputation;not null;default:50"`
	StaffAnnualWage int64  `gorm:"column:staff_annual_wage;not null;default:0"`
}

func (TeamModel) TableName() string {
	return "teams"
}

// PlayerModel represents the players table
type PlayerModel struct {
	ID                  int        `gorm:"column:id;primaryKey;autoIncrement"`
	TeamID              *int       `gorm:"column:team_id;index"`
	Team                *TeamModel `gorm:"foreignKey:TeamID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Name                string     `gorm:"column:name;not null"`
	Position            string     `gorm:"column:position;not null"`
	Age                 int        `gorm:"column:age;not null"`
	Overall             int        `gorm:"column:overall;not null"`
	Potential           int        `gorm:"column:potential;not null"`
	Form                int        `gorm:"column:form;not null;default:50"`
	Moral               int        `gorm:"column:moral;not null;default:50"`
	ContractEnd         *time.Time `gorm:"column:contract_end"`
	IsInjured           bool       `gorm:"column:is_injured;not null;default:false"`
	InjuryDaysRemaining int        `gorm:"column:injury_days_remaining;not null;default:0"`
	LastTransferSeason  *int       `gorm:"column:last_transfer_season"`
}

func (PlayerModel) TableName() string {
	return "players"
}

// ContractModel represents the contracts table
type ContractModel struct {
	ID            int          `gorm:"column:id;primaryKey;autoIncrement"`
	PlayerID      int          `gorm:"column:player_id;not null;index"`
	Player        *PlayerModel `gorm:"foreignKey:PlayerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	TeamID        int          `gorm:"column:team_id;not null"`
	AnnualWage    int64        `gorm:"column:annual_wage;not null"`
	StartDate     time.Time    `gorm:"column:start_date;not null"`
	EndDate       time.Time    `gorm:"column:end_date;not null"`
	ReleaseClause *int64       `gorm:"column:release_clause"`
}

func (ContractModel) TableName() string {
	return "contracts"
}

// ProposalModel represents the transfer_proposals table.
// ActiveKey is set only while the proposal is in a non-terminal status; the
// unique index on it is the storage-level guarantee that at most one active
// proposal exists per (player, from, to) triple.
type ProposalModel struct {
	ID               int        `gorm:"column:id;primaryKey;autoIncrement"`
	PlayerID         int        `gorm:"column:player_id;not null;index"`
	FromTeamID       *int       `gorm:"column:from_team_id"`
	ToTeamID         int        `gorm:"column:to_team_id;not null;index"`
	Kind             string     `gorm:"column:kind;not null"`
	Status           string     `gorm:"column:status;not null;index"`
	Fee              int64      `gorm:"column:fee;not null"`
	WageOffer        int64      `gorm:"column:wage_offer;not null"`
	ContractYears    int        `gorm:"column:contract_years;not null"`
	CreatedAt        time.Time  `gorm:"column:created_at;not null"`
	ResponseDeadline time.Time  `gorm:"column:response_deadline;not null;index"`
	CounterOfferFee  *int64     `gorm:"column:counter_offer_fee"`
	RejectionReason  string     `gorm:"column:rejection_reason"`
	ActiveKey        *string    `gorm:"column:active_key;uniqueIndex"`
}

func (ProposalModel) TableName() string {
	return "transfer_proposals"
}

// LedgerEntryModel represents the ledger_entries table
type LedgerEntryModel struct {
	ID            string    `gorm:"column:id;primaryKey"`
	TeamID        int       `gorm:"column:team_id;not null;index"`
	SeasonID      int       `gorm:"column:season_id;not null;index"`
	Timestamp     time.Time `gorm:"column:timestamp;not null;index"`
	Category      string    `gorm:"column:category;not null"`
	Amount        int64     `gorm:"column:amount;not null"`
	BalanceBefore int64     `gorm:"column:balance_before;not null"`
	BalanceAfter  int64     `gorm:"column:balance_after;not null"`
	Description   string    `gorm:"column:description;type:text"`
	RelatedType   string    `gorm:"column:related_type"`
	RelatedID     string    `gorm:"column:related_id"`
}

func (LedgerEntryModel) TableName() string {
	return "ledger_entries"
}

// TransferRecordModel represents the transfer_history table
type TransferRecordModel struct {
	ID         string    `gorm:"column:id;primaryKey"`
	ProposalID int       `gorm:"column:proposal_id;not null;index"`
	PlayerID   int       `gorm:"column:player_id;not null;index"`
	FromTeamID *int      `gorm:"column:from_team_id"`
	ToTeamID   int       `gorm:"column:to_team_id;not null"`
	Kind       string    `gorm:"column:kind;not null"`
	Fee        int64     `gorm:"column:fee;not null"`
	SeasonID   int       `gorm:"column:season_id;not null;index"`
	Date       time.Time `gorm:"column:date;not null"`
}

func (TransferRecordModel) TableName() string {
	return "transfer_history"
}

// SeasonModel represents the seasons table
type SeasonModel struct {
	ID        int       `gorm:"column:id;primaryKey;autoIncrement"`
	Year      int       `gorm:"column:year;not null"`
	StartDate time.Time `gorm:"column:start_date;not null"`
	EndDate   time.Time `gorm:"column:end_date;not null"`
	IsActive  bool      `gorm:"column:is_active;not null;default:false;index"`
}

func (SeasonModel) TableName() string {
	return "seasons"
}

// ScoutingInterestModel represents the scouting_interests table
type ScoutingInterestModel struct {
	ID       int    `gorm:"column:id;primaryKey;autoIncrement"`
	TeamID   int    `gorm:"column:team_id;not null;index"`
	PlayerID int    `gorm:"column:player_id;not null;index"`
	Level    string `gorm:"column:level;not null"`
	Priority int    `gorm:"column:priority;not null;default:0"`
	Notes    string `gorm:"column:notes;type:text"`
}

func (ScoutingInterestModel) TableName() string {
	return "scouting_interests"
}
