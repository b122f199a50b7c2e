package loanmock

import (
	"context"

	domain "finbridge-ledger/internal/domain/loan"

	"github.com/shopspring/decimal"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only set the funcs your test needs; unset mutators are no-ops and
// unset readers fail loudly.
type Repo struct {
	CreateFn                 func(ctx context.Context, l *domain.Loan) error
	SaveFn                   func(ctx context.Context, l *domain.Loan) error
	GetByIDFn                func(ctx context.Context, id uint64) (*domain.Loan, error)
	GetByIDForUpdateFn       func(ctx context.Context, id uint64) (*domain.Loan, error)
	ListActiveIDsFn          func(ctx context.Context) ([]uint64, error)
	ListByBorrowerFn         func(ctx context.Context, address string) ([]uint64, error)
	ListByLenderFn           func(ctx context.Context, address string) ([]uint64, error)
	SumPrincipalByBorrowerFn func(ctx context.Context, address string) (decimal.Decimal, error)
	SumPrincipalByLenderFn   func(ctx context.Context, address string) (decimal.Decimal, error)
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Loan, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Loan, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) ListActiveIDs(ctx context.Context) ([]uint64, error) {
	if m.ListActiveIDsFn != nil {
		return m.ListActiveIDsFn(ctx)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByBorrower(ctx context.Context, address string) ([]uint64, error) {
	if m.ListByBorrowerFn != nil {
		return m.ListByBorrowerFn(ctx, address)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByLender(ctx context.Context, address string) ([]uint64, error) {
	if m.ListByLenderFn != nil {
		return m.ListByLenderFn(ctx, address)
	}
	return nil, context.Canceled
}

func (m *Repo) SumPrincipalByBorrower(ctx context.Context, address string) (decimal.Decimal, error) {
	if m.SumPrincipalByBorrowerFn != nil {
		return m.SumPrincipalByBorrowerFn(ctx, address)
	}
	return decimal.Zero, context.Canceled
}

func (m *Repo) SumPrincipalByLender(ctx context.Context, address string) (decimal.Decimal, error) {
	if m.SumPrincipalByLenderFn != nil {
		return m.SumPrincipalByLenderFn(ctx, address)
	}
	return decimal.Zero, context.Canceled
}
