package wallet

import (
	"errors"
	"time"
)

var (
	ErrAlreadyConnected = errors.New("wallet already connected")
	ErrNotConnected     = errors.New("wallet not connected")
	// ErrWalletRequired guards loan-affecting operations from addresses
	// that never opted in (or opted out again).
	ErrWalletRequired = errors.New("wallet not connected, connect your wallet first")
)

// Connection is the per-address opt-in flag. Rows survive a disconnect
// with Connected=false so reconnects keep the original CreatedAt.
type Connection struct {
	Address   string    `gorm:"primaryKey;size:42" json:"address"`
	Connected bool      `json:"connected"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (Connection) TableName() string { return "wallet_connections" }
