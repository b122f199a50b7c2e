package uowmock

import (
	"context"
	"errors"

	"finbridge-ledger/internal/domain/loan"
	"finbridge-ledger/internal/domain/uow"
)

// UoW is a function-backed mock that satisfies uow.UnitOfWork. Tests
// typically have WithinTxFn invoke fn with a Repos of mocks.
type UoW struct {
	WithinTxFn     func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinLoanTxFn func(ctx context.Context, loanID uint64, fn func(r uow.Repos, l *loan.Loan) error) error
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errors.New("uowmock: WithinTxFn not set")
}

func (m *UoW) WithinLoanTx(ctx context.Context, loanID uint64, fn func(r uow.Repos, l *loan.Loan) error) error {
	if m.WithinLoanTxFn != nil {
		return m.WithinLoanTxFn(ctx, loanID, fn)
	}
	return errors.New("uowmock: WithinLoanTxFn not set")
}
