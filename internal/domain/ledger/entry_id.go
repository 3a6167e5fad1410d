package ledger

import (
	"fmt"

	"github.com/google/uuid"
)

// EntryID is a value object representing a ledger entry's unique identifier
type EntryID struct {
	value string
}

// NewEntryID creates a new EntryID with a generated UUID
func NewEntryID() EntryID {
	return EntryID{value: uuid.New().String()}
}

// NewEntryIDFromString creates an EntryID from an existing UUID string
func NewEntryIDFromString(id string) (EntryID, error) {
	if id == "" {
		return EntryID{}, fmt.Errorf("entry id cannot be empty")
	}
	if _, err := uuid.Parse(id); err != nil {
		return EntryID{}, fmt.Errorf("invalid entry id format: %w", err)
	}
	return EntryID{value: id}, nil
}

// MustNewEntryIDFromString creates an EntryID from a string, panicking if invalid.
// Use this only when the ID is known valid (e.g. from the database).
func MustNewEntryIDFromString(id string) EntryID {
	eid, err := NewEntryIDFromString(id)
	if err != nil {
		panic(err)
	}
	return eid
}

// Value returns the string value of the EntryID
func (e EntryID) Value() string {
	return e.value
}

// String returns a string representation of the EntryID
func (e EntryID) String() string {
	return e.value
}

// Equals checks if two EntryIDs are equal
func (e EntryID) Equals(other EntryID) bool {
	return e.value == other.value
}

// IsZero checks if the EntryID is uninitialized
func (e EntryID) IsZero() bool {
	return e.value == ""
}
