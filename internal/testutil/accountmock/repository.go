package accountmock

import (
	"context"

	domain "finbridge-ledger/internal/domain/account"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	GetFn          func(ctx context.Context, address string) (*domain.Account, error)
	GetForUpdateFn func(ctx context.Context, address string) (*domain.Account, error)
	CreateFn       func(ctx context.Context, a *domain.Account) error
	SaveFn         func(ctx context.Context, a *domain.Account) error
}

func (m *Repo) Get(ctx context.Context, address string) (*domain.Account, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, address)
	}
	return nil, context.Canceled
}

func (m *Repo) GetForUpdate(ctx context.Context, address string) (*domain.Account, error) {
	if m.GetForUpdateFn != nil {
		return m.GetForUpdateFn(ctx, address)
	}
	return nil, context.Canceled
}

func (m *Repo) Create(ctx context.Context, a *domain.Account) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, a *domain.Account) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}
