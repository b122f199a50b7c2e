package mysql

import (
	"context"

	accountDomain "finbridge-ledger/internal/domain/account"

	"gorm.io/gorm"
)

type AccountRepository struct{ db *gorm.DB }

func NewAccountRepository(db *gorm.DB) *AccountRepository { return &AccountRepository{db: db} }

func (r *AccountRepository) Get(ctx context.Context, address string) (*accountDomain.Account, error) {
	var out accountDomain.Account
	res := r.db.WithContext(ctx).Where("address = ?", address).First(&out)
	return &out, res.Error
}

func (r *AccountRepository) GetForUpdate(ctx context.Context, address string) (*accountDomain.Account, error) {
	var out accountDomain.Account
	res := forUpdate(r.db.WithContext(ctx)).Where("address = ?", address).First(&out)
	return &out, res.Error
}

func (r *AccountRepository) Create(ctx context.Context, a *accountDomain.Account) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AccountRepository) Save(ctx context.Context, a *accountDomain.Account) error {
	return r.db.WithContext(ctx).Save(a).Error
}
