package account

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transfer moves value between two balances inside the caller's
// transaction. Both legs happen or neither does; a missing or short
// source account fails the whole thing with ErrInsufficientFunds.
// Rows are locked in address order so two opposite-direction transfers
// cannot deadlock each other.
func Transfer(ctx context.Context, repo Repository, from, to string, value decimal.Decimal) error {
	if from == to {
		return nil
	}
	lock := func(addr string) (*Account, error) {
		a, err := repo.GetForUpdate(ctx, addr)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if addr == from {
				return nil, ErrInsufficientFunds
			}
			a = &Account{Address: addr, Balance: decimal.Zero}
			if err := repo.Create(ctx, a); err != nil {
				return nil, err
			}
			return a, nil
		}
		return a, err
	}

	first, second := from, to
	if second < first {
		first, second = second, first
	}
	var src, dst *Account
	for _, addr := range []string{first, second} {
		a, err := lock(addr)
		if err != nil {
			return err
		}
		if addr == from {
			src = a
		} else {
			dst = a
		}
	}
	if src.Balance.LessThan(value) {
		return ErrInsufficientFunds
	}

	src.Balance = src.Balance.Sub(value)
	dst.Balance = dst.Balance.Add(value)
	if err := repo.Save(ctx, src); err != nil {
		return err
	}
	return repo.Save(ctx, dst)
}

// Credit adds value to an address, creating the account on first use.
func Credit(ctx context.Context, repo Repository, to string, value decimal.Decimal) error {
	dst, err := repo.GetForUpdate(ctx, to)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repo.Create(ctx, &Account{Address: to, Balance: value})
	}
	if err != nil {
		return err
	}
	dst.Balance = dst.Balance.Add(value)
	return repo.Save(ctx, dst)
}
