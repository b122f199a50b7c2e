package uow

import (
	"context"

	"finbridge-ledger/internal/domain/account"
	"finbridge-ledger/internal/domain/engine"
	"finbridge-ledger/internal/domain/event"
	"finbridge-ledger/internal/domain/loan"
	"finbridge-ledger/internal/domain/wallet"
)

type Repos struct {
	Loans    loan.Repository
	Wallets  wallet.Repository
	Accounts account.Repository
	Engine   engine.Repository
	Events   event.Repository
}

// UnitOfWork serializes a mutating operation: everything done inside fn —
// state checks, the loan transition, the balance transfer, the outbox
// event — commits together or not at all.
type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the loan row first, then pass it in
	WithinLoanTx(ctx context.Context, loanID uint64, fn func(r Repos, l *loan.Loan) error) error
}
