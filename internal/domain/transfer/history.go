package transfer

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RecordID is a value object identifying a transfer-history record
type RecordID struct {
	value string
}

// NewRecordID creates a RecordID with a generated UUID
func NewRecordID() RecordID {
	return RecordID{value: uuid.New().String()}
}

// NewRecordIDFromString creates a RecordID from an existing UUID string
func NewRecordIDFromString(id string) (RecordID, error) {
	if id == "" {
		return RecordID{}, fmt.Errorf("record id cannot be empty")
	}
	if _, err := uuid.Parse(id); err != nil {
		return RecordID{}, fmt.Errorf("invalid record id format: %w", err)
	}
	return RecordID{value: id}, nil
}

// String returns the string value of the RecordID
func (r RecordID) String() string {
	return r.value
}

// IsZero checks if the RecordID is uninitialized
func (r RecordID) IsZero() bool {
	return r.value == ""
}

// Record is the immutable history entry appended when a transfer settles
type Record struct {
	ID         RecordID
	ProposalID int
	PlayerID   int
	FromTeamID *int
	ToTeamID   int
	Kind       Kind
	Fee        int64
	SeasonID   int
	Date       time.Time
}

// NewRecord creates a history record for a completed transfer
func NewRecord(p *Proposal, seasonID int, date time.Time) *Record {
	return &Record{
		ID:         NewRecordID(),
		ProposalID: p.ID(),
		PlayerID:   p.PlayerID(),
		FromTeamID: p.FromTeamID(),
		ToTeamID:   p.ToTeamID(),
		Kind:       p.Kind(),
		Fee:        p.Fee(),
		SeasonID:   seasonID,
		Date:       date,
	}
}
