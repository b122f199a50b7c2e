package ledger

import (
	"context"
	"errors"
	"time"

	"finbridge-ledger/internal/config"
	"finbridge-ledger/internal/domain/account"
	"finbridge-ledger/internal/domain/engine"
	"finbridge-ledger/internal/domain/event"
	"finbridge-ledger/internal/domain/loan"
	"finbridge-ledger/internal/domain/uow"
	"finbridge-ledger/internal/domain/wallet"
	"finbridge-ledger/internal/rate"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Options fixes the ledger's deployment mode and bounds at construction.
type Options struct {
	Mode            config.RateMode
	MinAmount       decimal.Decimal
	MaxAmount       decimal.Decimal
	MinDurationSecs int64
	MaxDurationSecs int64
}

func OptionsFromConfig(c *config.Config) Options {
	return Options{
		Mode:            c.RateMode,
		MinAmount:       c.MinLoanAmount,
		MaxAmount:       c.MaxLoanAmount,
		MinDurationSecs: c.MinDurationSecs,
		MaxDurationSecs: c.MaxDurationSecs,
	}
}

type Usecase struct {
	uow  uow.UnitOfWork
	opts Options
}

func NewUsecase(tx uow.UnitOfWork, opts Options) *Usecase {
	return &Usecase{uow: tx, opts: opts}
}

type CreateInput struct {
	Borrower        string
	Amount          decimal.Decimal
	DurationSeconds int64
	// InterestRatePct is a whole percent, 1..100. Only read in legacy
	// mode; ignored in auto mode.
	InterestRatePct int64
}

type FundInput struct {
	Lender string
	LoanID uint64
	Value  decimal.Decimal
}

type RepayInput struct {
	Borrower string
	LoanID   uint64
	Value    decimal.Decimal
}

type WithdrawInput struct {
	Caller string
	LoanID uint64
}

type LoanDTO struct {
	ID              uint64          `json:"id"`
	Borrower        string          `json:"borrower"`
	Lender          string          `json:"lender,omitempty"`
	Principal       decimal.Decimal `json:"principal"`
	InterestRateBps int64           `json:"interest_rate_bps"`
	DurationSeconds int64           `json:"duration_seconds"`
	State           string          `json:"state"`
	CreatedAt       time.Time       `json:"created_at"`
	Deadline        time.Time       `json:"deadline"`
	FundedAt        *time.Time      `json:"funded_at,omitempty"`
}

func ToDTO(l *loan.Loan) *LoanDTO {
	return &LoanDTO{
		ID:              l.ID,
		Borrower:        l.Borrower,
		Lender:          l.Lender,
		Principal:       l.Principal,
		InterestRateBps: l.InterestRateBps,
		DurationSeconds: l.DurationSeconds,
		State:           string(l.State),
		CreatedAt:       l.CreatedAt,
		Deadline:        l.Deadline,
		FundedAt:        l.FundedAt,
	}
}

// event payloads

type createdPayload struct {
	LoanID          uint64          `json:"loan_id"`
	Borrower        string          `json:"borrower"`
	Amount          decimal.Decimal `json:"amount"`
	InterestRateBps int64           `json:"interest_rate_bps"`
	DurationSeconds int64           `json:"duration_seconds"`
}

type fundedPayload struct {
	LoanID   uint64          `json:"loan_id"`
	Lender   string          `json:"lender"`
	Borrower string          `json:"borrower"`
	Amount   decimal.Decimal `json:"amount"`
}

type repaidPayload struct {
	LoanID   uint64          `json:"loan_id"`
	Borrower string          `json:"borrower"`
	Amount   decimal.Decimal `json:"amount"`
}

type withdrawnPayload struct {
	LoanID   uint64 `json:"loan_id"`
	Borrower string `json:"borrower"`
}

// Create validates, prices and records a new loan request in state open.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*LoanDTO, error) {
	var dto *LoanDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := u.guard(ctx, r, in.Borrower); err != nil {
			return err
		}
		rateBps, err := u.price(in)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		l := &loan.Loan{
			Borrower:        in.Borrower,
			Principal:       in.Amount,
			InterestRateBps: rateBps,
			DurationSeconds: in.DurationSeconds,
			State:           loan.StateOpen,
			Deadline:        now.Add(time.Duration(in.DurationSeconds) * time.Second),
		}
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}

		if err := emit(ctx, r, event.TypeLoanRequestCreated, &l.ID, in.Borrower, createdPayload{
			LoanID:          l.ID,
			Borrower:        l.Borrower,
			Amount:          l.Principal,
			InterestRateBps: l.InterestRateBps,
			DurationSeconds: l.DurationSeconds,
		}); err != nil {
			return err
		}
		dto = ToDTO(l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Fund moves exactly the principal from lender to borrower and marks the
// loan funded, all in one transaction.
func (u *Usecase) Fund(ctx context.Context, in FundInput) (*LoanDTO, error) {
	var dto *LoanDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := u.guard(ctx, r, in.Lender); err != nil {
			return err
		}

		l, err := r.Loans.GetByIDForUpdate(ctx, in.LoanID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return loan.ErrNotFound
		}
		if err != nil {
			return err
		}

		switch l.State {
		case loan.StateOpen:
		case loan.StateFunded:
			return loan.ErrAlreadyFunded
		default:
			return loan.ErrNotActive
		}
		if in.Lender == l.Borrower {
			return loan.ErrCannotFundOwn
		}
		if !in.Value.Equal(l.Principal) {
			return loan.ErrIncorrectAmount
		}

		if err := account.Transfer(ctx, r.Accounts, in.Lender, l.Borrower, in.Value); err != nil {
			return err
		}

		now := time.Now().UTC()
		l.Lender = in.Lender
		l.FundedAt = &now
		l.State = loan.StateFunded
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}

		if err := emit(ctx, r, event.TypeLoanFunded, &l.ID, in.Lender, fundedPayload{
			LoanID:   l.ID,
			Lender:   l.Lender,
			Borrower: l.Borrower,
			Amount:   l.Principal,
		}); err != nil {
			return err
		}
		dto = ToDTO(l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Repay moves exactly principal plus interest back to the lender and
// closes the loan.
func (u *Usecase) Repay(ctx context.Context, in RepayInput) (*LoanDTO, error) {
	var dto *LoanDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := u.guard(ctx, r, in.Borrower); err != nil {
			return err
		}

		l, err := r.Loans.GetByIDForUpdate(ctx, in.LoanID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return loan.ErrNotFound
		}
		if err != nil {
			return err
		}

		if l.State != loan.StateFunded {
			return loan.ErrNotFunded
		}
		if in.Borrower != l.Borrower {
			return loan.ErrNotBorrower
		}
		if !in.Value.Equal(l.RepaymentDue()) {
			return loan.ErrIncorrectAmount
		}

		if err := account.Transfer(ctx, r.Accounts, l.Borrower, l.Lender, in.Value); err != nil {
			return err
		}

		l.State = loan.StateRepaid
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}

		if err := emit(ctx, r, event.TypeLoanRepaid, &l.ID, l.Borrower, repaidPayload{
			LoanID:   l.ID,
			Borrower: l.Borrower,
			Amount:   in.Value,
		}); err != nil {
			return err
		}
		dto = ToDTO(l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Withdraw cancels an unfunded request. No funds move; nothing was
// escrowed while open.
func (u *Usecase) Withdraw(ctx context.Context, in WithdrawInput) (*LoanDTO, error) {
	var dto *LoanDTO
	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *loan.Loan) error {
		if err := u.guard(ctx, r, in.Caller); err != nil {
			return err
		}
		if l.State != loan.StateOpen {
			return loan.ErrNotActive
		}
		if in.Caller != l.Borrower {
			return loan.ErrNotBorrower
		}

		l.State = loan.StateWithdrawn
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}

		if err := emit(ctx, r, event.TypeLoanRequestWithdrawn, &l.ID, l.Borrower, withdrawnPayload{
			LoanID:   l.ID,
			Borrower: l.Borrower,
		}); err != nil {
			return err
		}
		dto = ToDTO(l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// guard enforces the two gates every mutating call passes: the caller
// opted in, and the ledger is not paused.
func (u *Usecase) guard(ctx context.Context, r uow.Repos, caller string) error {
	connected, err := r.Wallets.IsConnected(ctx, caller)
	if err != nil {
		return err
	}
	if !connected {
		return wallet.ErrWalletRequired
	}
	st, err := r.Engine.Get(ctx)
	if err != nil {
		return err
	}
	if st.Paused {
		return engine.ErrPaused
	}
	return nil
}

func (u *Usecase) price(in CreateInput) (int64, error) {
	switch u.opts.Mode {
	case config.RateModeLegacy:
		if !in.Amount.IsPositive() {
			return 0, loan.ErrInvalidAmount
		}
		if in.InterestRatePct < 1 || in.InterestRatePct > 100 {
			return 0, loan.ErrInvalidRate
		}
		if in.DurationSeconds <= 0 {
			return 0, loan.ErrInvalidDuration
		}
		return in.InterestRatePct * 100, nil
	default:
		if in.Amount.LessThan(u.opts.MinAmount) || in.Amount.GreaterThan(u.opts.MaxAmount) {
			return 0, loan.ErrInvalidAmount
		}
		if in.DurationSeconds < u.opts.MinDurationSecs || in.DurationSeconds > u.opts.MaxDurationSecs {
			return 0, loan.ErrInvalidDuration
		}
		return rate.Calculate(in.Amount, in.DurationSeconds), nil
	}
}

func emit(ctx context.Context, r uow.Repos, typ string, loanID *uint64, actor string, payload any) error {
	e, err := event.New(typ, loanID, actor, payload)
	if err != nil {
		return err
	}
	return r.Events.Append(ctx, e)
}
