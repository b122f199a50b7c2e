package uowmock

import (
	"context"
	"testing"

	"finbridge-ledger/internal/domain/uow"
)

func TestUoW_WithinTx_Dispatch(t *testing.T) {
	called := false
	m := &UoW{
		WithinTxFn: func(ctx context.Context, fn func(r uow.Repos) error) error {
			called = true
			return fn(uow.Repos{})
		},
	}
	if err := m.WithinTx(context.Background(), func(r uow.Repos) error { return nil }); err != nil {
		t.Fatalf("WithinTx: %v", err)
	}
	if !called {
		t.Fatalf("WithinTxFn not called")
	}
}

func TestUoW_Defaults_Error(t *testing.T) {
	m := &UoW{}
	if err := m.WithinTx(context.Background(), nil); err == nil {
		t.Fatalf("WithinTx default: want error")
	}
	if err := m.WithinLoanTx(context.Background(), 1, nil); err == nil {
		t.Fatalf("WithinLoanTx default: want error")
	}
}
