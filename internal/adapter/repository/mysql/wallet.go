package mysql

import (
	"context"
	"errors"

	walletDomain "finbridge-ledger/internal/domain/wallet"

	"gorm.io/gorm"
)

type WalletRepository struct{ db *gorm.DB }

func NewWalletRepository(db *gorm.DB) *WalletRepository { return &WalletRepository{db: db} }

func (r *WalletRepository) Get(ctx context.Context, address string) (*walletDomain.Connection, error) {
	var out walletDomain.Connection
	res := r.db.WithContext(ctx).Where("address = ?", address).First(&out)
	return &out, res.Error
}

func (r *WalletRepository) Save(ctx context.Context, c *walletDomain.Connection) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *WalletRepository) IsConnected(ctx context.Context, address string) (bool, error) {
	conn, err := r.Get(ctx, address)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return conn.Connected, nil
}
