// Package sqlitedb opens an in-memory database with a sqlite-safe copy of
// the schema. The loans table uses a MySQL enum in production; the twin
// model here swaps it for text so AutoMigrate works under sqlite.
package sqlitedb

import (
	"testing"
	"time"

	"finbridge-ledger/internal/domain/engine"
	"finbridge-ledger/internal/domain/event"
	"finbridge-ledger/internal/domain/wallet"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type loanSQLite struct {
	ID              uint64          `gorm:"primaryKey;column:id"`
	Borrower        string          `gorm:"size:42;column:borrower"`
	Lender          string          `gorm:"size:42;column:lender"`
	Principal       decimal.Decimal `gorm:"type:text;column:principal"`
	InterestRateBps int64           `gorm:"column:interest_rate_bps"`
	DurationSeconds int64           `gorm:"column:duration_seconds"`
	State           string          `gorm:"type:text;column:state"`
	CreatedAt       time.Time       `gorm:"column:created_at"`
	Deadline        time.Time       `gorm:"column:deadline"`
	FundedAt        *time.Time      `gorm:"column:funded_at"`
	UpdatedAt       time.Time       `gorm:"column:updated_at"`
}

func (loanSQLite) TableName() string { return "loans" }

// accountSQLite mirrors account.Account but gives the balance column text
// affinity; sqlite's numeric affinity would silently round decimals with
// more than 15 significant digits to a float.
type accountSQLite struct {
	Address   string          `gorm:"primaryKey;size:42;column:address"`
	Balance   decimal.Decimal `gorm:"type:text;column:balance"`
	CreatedAt time.Time       `gorm:"autoCreateTime;column:created_at"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime;column:updated_at"`
}

func (accountSQLite) TableName() string { return "accounts" }

// Open creates the in-memory database and migrates every table the
// repositories touch.
func Open(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&loanSQLite{},
		&wallet.Connection{},
		&accountSQLite{},
		&engine.State{},
		&event.Event{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
