package event

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event types, mirroring the names consumers subscribe to.
const (
	TypeWalletConnected      = "WalletConnected"
	TypeWalletDisconnected   = "WalletDisconnected"
	TypeLoanRequestCreated   = "LoanRequestCreated"
	TypeLoanFunded           = "LoanFunded"
	TypeLoanRepaid           = "LoanRepaid"
	TypeLoanRequestWithdrawn = "LoanRequestWithdrawn"
	TypeDeposited            = "Deposited"
	TypeEmergencyWithdrawn   = "EmergencyWithdrawn"
	TypePaused               = "Paused"
	TypeUnpaused             = "Unpaused"
)

// Event is an outbox row written in the same transaction as the state
// change it announces, so an event exists iff the change committed.
// Seq gives consumers a resumable cursor.
type Event struct {
	Seq     int64   `gorm:"primaryKey;column:seq" json:"seq"`
	EventID string  `gorm:"size:36;uniqueIndex:ux_events_event_id" json:"event_id"`
	Type    string  `gorm:"size:32;index:idx_events_type" json:"type"`
	LoanID  *uint64 `gorm:"index:idx_events_loan_id" json:"loan_id,omitempty"`
	Actor   string  `gorm:"size:42" json:"actor"`
	// RawMessage so the payload serves as inline JSON on the wire,
	// not a base64 blob.
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (Event) TableName() string { return "events" }

// New builds an event with a fresh id and a marshalled payload.
func New(typ string, loanID *uint64, actor string, payload any) (*Event, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Event{
		EventID: uuid.NewString(),
		Type:    typ,
		LoanID:  loanID,
		Actor:   actor,
		Payload: b,
	}, nil
}
