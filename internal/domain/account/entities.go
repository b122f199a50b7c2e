package account

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// EngineAddress holds value sent to the ledger itself rather than to a
// participant. Normal funding/repayment never touches it; it exists so
// stray credits can be swept by the owner.
const EngineAddress = "engine"

var (
	ErrNotFound = errors.New("account not found")
	// ErrInsufficientFunds aborts the whole fund/repay transaction;
	// the caller sees it as a failed transfer, never a partial one.
	ErrInsufficientFunds = errors.New("insufficient balance for transfer")
)

type Account struct {
	Address   string          `gorm:"primaryKey;size:42" json:"address"`
	Balance   decimal.Decimal `gorm:"type:decimal(27,18)" json:"balance"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"-"`
}

func (Account) TableName() string { return "accounts" }
