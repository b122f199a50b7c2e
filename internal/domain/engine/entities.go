package engine

import (
	"errors"
	"time"
)

var (
	ErrPaused   = errors.New("contract is paused")
	ErrNotOwner = errors.New("caller is not the owner")
)

// stateRowID: the engine state is a single row, keyed by a fixed id.
const stateRowID uint64 = 1

// State is the global mutable state outside the loan records themselves:
// the pause flag every mutating operation consults, and the owner address
// allowed to flip it.
type State struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"-"`
	Paused    bool      `json:"paused"`
	Owner     string    `gorm:"size:42" json:"owner"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (State) TableName() string { return "engine_state" }

// NewState returns the singleton row seeded with the configured owner.
func NewState(owner string) *State {
	return &State{ID: stateRowID, Owner: owner}
}
