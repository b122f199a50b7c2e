package loan

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type State string

const (
	StateOpen      State = "open"
	StateFunded    State = "funded"
	StateRepaid    State = "repaid"
	StateWithdrawn State = "withdrawn"
)

var (
	ErrNotFound        = errors.New("loan request not found")
	ErrNotActive       = errors.New("loan request is not active")
	ErrAlreadyFunded   = errors.New("loan is already funded")
	ErrNotFunded       = errors.New("loan is not funded")
	ErrCannotFundOwn   = errors.New("cannot fund your own loan")
	ErrIncorrectAmount = errors.New("must send exact amount")
	ErrNotBorrower     = errors.New("only the borrower can perform this action")
	ErrInvalidAmount   = errors.New("amount is out of bounds")
	ErrInvalidDuration = errors.New("duration is out of bounds")
	ErrInvalidRate     = errors.New("interest rate must be between 1 and 100")
)

// Loan is one borrower's funding request, tracked through its whole
// lifecycle. Rows are never deleted; repaid and withdrawn records stay
// around as history.
type Loan struct {
	ID              uint64          `gorm:"primaryKey;column:id" json:"id"`
	Borrower        string          `gorm:"size:42;index:idx_loans_borrower" json:"borrower"`
	Lender          string          `gorm:"size:42;index:idx_loans_lender" json:"lender"`
	Principal       decimal.Decimal `gorm:"type:decimal(27,18)" json:"principal"`
	InterestRateBps int64           `gorm:"column:interest_rate_bps" json:"interest_rate_bps"`
	DurationSeconds int64           `gorm:"column:duration_seconds" json:"duration_seconds"`
	State           State           `gorm:"type:enum('open','funded','repaid','withdrawn');default:'open';index:idx_loans_state" json:"state"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	Deadline        time.Time       `json:"deadline"`
	FundedAt        *time.Time      `json:"funded_at,omitempty"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"-"`
}

func (Loan) TableName() string { return "loans" }

// RepaymentDue is principal plus simple interest at the stored rate,
// computed exactly in decimal. 620 bps on 1 ETH → 1.062 ETH. The factor
// is built with a -4 exponent instead of dividing by 10000, so no digit
// is ever lost to division precision.
func (l *Loan) RepaymentDue() decimal.Decimal {
	return l.Principal.Mul(decimal.New(10000+l.InterestRateBps, -4))
}
