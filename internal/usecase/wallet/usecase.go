package wallet

import (
	"context"
	"errors"
	"time"

	"finbridge-ledger/internal/domain/event"
	"finbridge-ledger/internal/domain/uow"
	domain "finbridge-ledger/internal/domain/wallet"

	"gorm.io/gorm"
)

type Usecase struct {
	repo domain.Repository
	uow  uow.UnitOfWork
}

// NewUsecase: the plain repo serves reads, the UoW serves mutations.
func NewUsecase(repo domain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: repo, uow: tx}
}

type ConnectionDTO struct {
	Address   string    `json:"address"`
	Connected bool      `json:"connected"`
	UpdatedAt time.Time `json:"updated_at"`
}

type connPayload struct {
	Address string `json:"address"`
}

// Connect flips the opt-in flag for an address. Connecting twice without
// an intervening disconnect is rejected.
func (u *Usecase) Connect(ctx context.Context, address string) (*ConnectionDTO, error) {
	var dto *ConnectionDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		conn, err := r.Wallets.Get(ctx, address)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			conn = &domain.Connection{Address: address}
		case err != nil:
			return err
		case conn.Connected:
			return domain.ErrAlreadyConnected
		}
		conn.Connected = true
		if err := r.Wallets.Save(ctx, conn); err != nil {
			return err
		}
		e, err := event.New(event.TypeWalletConnected, nil, address, connPayload{Address: address})
		if err != nil {
			return err
		}
		if err := r.Events.Append(ctx, e); err != nil {
			return err
		}
		dto = &ConnectionDTO{Address: conn.Address, Connected: true, UpdatedAt: conn.UpdatedAt}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Disconnect(ctx context.Context, address string) (*ConnectionDTO, error) {
	var dto *ConnectionDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		conn, err := r.Wallets.Get(ctx, address)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotConnected
		}
		if err != nil {
			return err
		}
		if !conn.Connected {
			return domain.ErrNotConnected
		}
		conn.Connected = false
		if err := r.Wallets.Save(ctx, conn); err != nil {
			return err
		}
		e, err := event.New(event.TypeWalletDisconnected, nil, address, connPayload{Address: address})
		if err != nil {
			return err
		}
		if err := r.Events.Append(ctx, e); err != nil {
			return err
		}
		dto = &ConnectionDTO{Address: conn.Address, Connected: false, UpdatedAt: conn.UpdatedAt}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// IsConnected is a plain read; no transaction needed.
func (u *Usecase) IsConnected(ctx context.Context, address string) (bool, error) {
	return u.repo.IsConnected(ctx, address)
}
