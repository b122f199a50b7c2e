package query

import (
	"context"
	"errors"

	"finbridge-ledger/internal/config"
	accountDomain "finbridge-ledger/internal/domain/account"
	eventDomain "finbridge-ledger/internal/domain/event"
	loanDomain "finbridge-ledger/internal/domain/loan"
	"finbridge-ledger/internal/usecase/ledger"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const defaultEventLimit = 100

// Usecase is the read side. It goes straight to the source of truth —
// no cache in front, so a committed write is visible to the next read.
type Usecase struct {
	loans    loanDomain.Repository
	accounts accountDomain.Repository
	events   eventDomain.Repository
	cfg      *config.Config
}

func NewUsecase(loans loanDomain.Repository, accounts accountDomain.Repository, events eventDomain.Repository, cfg *config.Config) *Usecase {
	return &Usecase{loans: loans, accounts: accounts, events: events, cfg: cfg}
}

type StatsDTO struct {
	Address       string          `json:"address"`
	TotalBorrowed decimal.Decimal `json:"total_borrowed"`
	TotalLent     decimal.Decimal `json:"total_lent"`
}

type BalanceDTO struct {
	Address string          `json:"address"`
	Balance decimal.Decimal `json:"balance"`
}

// ConstantsDTO mirrors the public parameters provisioning scripts read.
type ConstantsDTO struct {
	RateMode        string          `json:"rate_mode"`
	MinLoanAmount   decimal.Decimal `json:"min_loan_amount"`
	MaxLoanAmount   decimal.Decimal `json:"max_loan_amount"`
	MinDurationSecs int64           `json:"min_duration_seconds"`
	MaxDurationSecs int64           `json:"max_duration_seconds"`
}

func (u *Usecase) GetLoan(ctx context.Context, id uint64) (*ledger.LoanDTO, error) {
	l, err := u.loans.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, loanDomain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return ledger.ToDTO(l), nil
}

func (u *Usecase) ActiveLoanIDs(ctx context.Context) ([]uint64, error) {
	return u.loans.ListActiveIDs(ctx)
}

func (u *Usecase) UserLoanIDs(ctx context.Context, address string) ([]uint64, error) {
	return u.loans.ListByBorrower(ctx, address)
}

func (u *Usecase) UserFundedIDs(ctx context.Context, address string) ([]uint64, error) {
	return u.loans.ListByLender(ctx, address)
}

func (u *Usecase) UserStats(ctx context.Context, address string) (*StatsDTO, error) {
	borrowed, err := u.loans.SumPrincipalByBorrower(ctx, address)
	if err != nil {
		return nil, err
	}
	lent, err := u.loans.SumPrincipalByLender(ctx, address)
	if err != nil {
		return nil, err
	}
	return &StatsDTO{Address: address, TotalBorrowed: borrowed, TotalLent: lent}, nil
}

func (u *Usecase) Balance(ctx context.Context, address string) (*BalanceDTO, error) {
	a, err := u.accounts.Get(ctx, address)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &BalanceDTO{Address: address, Balance: decimal.Zero}, nil
	}
	if err != nil {
		return nil, err
	}
	return &BalanceDTO{Address: a.Address, Balance: a.Balance}, nil
}

func (u *Usecase) Events(ctx context.Context, afterSeq int64, limit int) ([]eventDomain.Event, error) {
	if limit <= 0 || limit > 1000 {
		limit = defaultEventLimit
	}
	return u.events.ListAfter(ctx, afterSeq, limit)
}

func (u *Usecase) Constants() *ConstantsDTO {
	return &ConstantsDTO{
		RateMode:        string(u.cfg.RateMode),
		MinLoanAmount:   u.cfg.MinLoanAmount,
		MaxLoanAmount:   u.cfg.MaxLoanAmount,
		MinDurationSecs: u.cfg.MinDurationSecs,
		MaxDurationSecs: u.cfg.MaxDurationSecs,
	}
}
