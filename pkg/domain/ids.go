// Package domain holds shared identifier and value types used across modules.
// Typed IDs prevent accidental mixing of coordinator, walk, and ledger
// identifiers in function signatures.
package domain

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// CoordinatorID identifies a coordinator profile.
type CoordinatorID uuid.UUID

// WalkID identifies a guided walk.
type WalkID uuid.UUID

// EventID identifies an economic ledger event. Ledger events carry
// monotonically-intended integer ids; id 1 is the chain genesis.
type EventID int64

// ParseCoordinatorID parses a coordinator ID from its string form.
func ParseCoordinatorID(s string) (CoordinatorID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return CoordinatorID{}, fmt.Errorf("parse coordinator id: %w", err)
	}
	return CoordinatorID(u), nil
}

// ParseWalkID parses a walk ID from its string form.
func ParseWalkID(s string) (WalkID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return WalkID{}, fmt.Errorf("parse walk id: %w", err)
	}
	return WalkID(u), nil
}

func (id CoordinatorID) String() string { return uuid.UUID(id).String() }

// IsNil reports whether the ID is the zero UUID.
func (id CoordinatorID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }

func (id WalkID) String() string { return uuid.UUID(id).String() }

// IsNil reports whether the ID is the zero UUID.
func (id WalkID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }

func (id EventID) String() string { return strconv.FormatInt(int64(id), 10) }

// NewCoordinatorID generates a fresh random coordinator ID.
func NewCoordinatorID() CoordinatorID { return CoordinatorID(uuid.New()) }

// NewWalkID generates a fresh random walk ID.
func NewWalkID() WalkID { return WalkID(uuid.New()) }
