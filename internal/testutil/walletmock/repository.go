package walletmock

import (
	"context"

	domain "finbridge-ledger/internal/domain/wallet"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	GetFn         func(ctx context.Context, address string) (*domain.Connection, error)
	SaveFn        func(ctx context.Context, c *domain.Connection) error
	IsConnectedFn func(ctx context.Context, address string) (bool, error)
}

func (m *Repo) Get(ctx context.Context, address string) (*domain.Connection, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, address)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, c *domain.Connection) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return nil
}

func (m *Repo) IsConnected(ctx context.Context, address string) (bool, error) {
	if m.IsConnectedFn != nil {
		return m.IsConnectedFn(ctx, address)
	}
	return false, nil
}
