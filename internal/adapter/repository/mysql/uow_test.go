package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	loanDomain "finbridge-ledger/internal/domain/loan"
	"finbridge-ledger/internal/domain/uow"
	"finbridge-ledger/internal/domain/wallet"
	"finbridge-ledger/internal/testutil/sqlitedb"
)

func TestGormUoW_WithinTxCommits(t *testing.T) {
	db := sqlitedb.Open(t)
	u := NewGormUoW(db)

	err := u.WithinTx(context.Background(), func(r uow.Repos) error {
		return r.Wallets.Save(context.Background(), &wallet.Connection{Address: borrower, Connected: true})
	})
	if err != nil {
		t.Fatalf("WithinTx: %v", err)
	}

	ok, err := NewWalletRepository(db).IsConnected(context.Background(), borrower)
	if err != nil {
		t.Fatalf("IsConnected: %v", err)
	}
	if !ok {
		t.Fatal("wallet not persisted after commit")
	}
}

func TestGormUoW_WithinTxRollsBack(t *testing.T) {
	db := sqlitedb.Open(t)
	u := NewGormUoW(db)

	boom := errors.New("boom")
	err := u.WithinTx(context.Background(), func(r uow.Repos) error {
		if err := r.Wallets.Save(context.Background(), &wallet.Connection{Address: borrower, Connected: true}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}

	ok, err := NewWalletRepository(db).IsConnected(context.Background(), borrower)
	if err != nil {
		t.Fatalf("IsConnected: %v", err)
	}
	if ok {
		t.Fatal("write survived a rolled-back transaction")
	}
}

func TestGormUoW_WithinLoanTxLoadsLoan(t *testing.T) {
	db := sqlitedb.Open(t)
	u := NewGormUoW(db)

	seeded := seedLoan(t, NewLoanRepository(db), "1", loanDomain.StateOpen)

	err := u.WithinLoanTx(context.Background(), seeded.ID, func(r uow.Repos, l *loanDomain.Loan) error {
		if l.ID != seeded.ID || l.State != loanDomain.StateOpen {
			t.Fatalf("loaded loan = %+v", l)
		}
		l.State = loanDomain.StateWithdrawn
		l.UpdatedAt = time.Now().UTC()
		return r.Loans.Save(context.Background(), l)
	})
	if err != nil {
		t.Fatalf("WithinLoanTx: %v", err)
	}

	got, err := NewLoanRepository(db).GetByID(context.Background(), seeded.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.State != loanDomain.StateWithdrawn {
		t.Fatalf("state = %s, want withdrawn", got.State)
	}
}

func TestGormUoW_WithinLoanTxUnknownLoan(t *testing.T) {
	u := NewGormUoW(sqlitedb.Open(t))

	err := u.WithinLoanTx(context.Background(), 404, func(r uow.Repos, l *loanDomain.Loan) error {
		t.Fatal("callback ran for a missing loan")
		return nil
	})
	if !errors.Is(err, loanDomain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
