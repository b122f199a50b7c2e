package admin

import (
	"context"
	"errors"

	"finbridge-ledger/internal/domain/account"
	"finbridge-ledger/internal/domain/engine"
	"finbridge-ledger/internal/domain/event"
	"finbridge-ledger/internal/domain/uow"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var errInvalidDeposit = errors.New("deposit value must be positive")

// Usecase holds the owner-only operations: the pause switch and the
// provisioning/sweep valves around participant balances.
type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

type StateDTO struct {
	Paused bool   `json:"paused"`
	Owner  string `json:"owner"`
}

type pausePayload struct {
	Owner string `json:"owner"`
}

type depositPayload struct {
	Address string          `json:"address"`
	Value   decimal.Decimal `json:"value"`
}

type sweepPayload struct {
	Owner string          `json:"owner"`
	Value decimal.Decimal `json:"value"`
}

func (u *Usecase) Pause(ctx context.Context, caller string) (*StateDTO, error) {
	return u.setPaused(ctx, caller, true, event.TypePaused)
}

func (u *Usecase) Unpause(ctx context.Context, caller string) (*StateDTO, error) {
	return u.setPaused(ctx, caller, false, event.TypeUnpaused)
}

func (u *Usecase) setPaused(ctx context.Context, caller string, paused bool, typ string) (*StateDTO, error) {
	var dto *StateDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		st, err := r.Engine.GetForUpdate(ctx)
		if err != nil {
			return err
		}
		if caller != st.Owner {
			return engine.ErrNotOwner
		}
		st.Paused = paused
		if err := r.Engine.Save(ctx, st); err != nil {
			return err
		}
		e, err := event.New(typ, nil, caller, pausePayload{Owner: st.Owner})
		if err != nil {
			return err
		}
		if err := r.Events.Append(ctx, e); err != nil {
			return err
		}
		dto = &StateDTO{Paused: st.Paused, Owner: st.Owner}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) State(ctx context.Context) (*StateDTO, error) {
	var dto *StateDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		st, err := r.Engine.Get(ctx)
		if err != nil {
			return err
		}
		dto = &StateDTO{Paused: st.Paused, Owner: st.Owner}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Deposit credits a participant balance. Provisioning only; the deposit
// itself is not part of loan accounting.
func (u *Usecase) Deposit(ctx context.Context, caller, address string, value decimal.Decimal) error {
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		st, err := r.Engine.Get(ctx)
		if err != nil {
			return err
		}
		if caller != st.Owner {
			return engine.ErrNotOwner
		}
		if !value.IsPositive() {
			return errInvalidDeposit
		}
		if err := account.Credit(ctx, r.Accounts, address, value); err != nil {
			return err
		}
		e, err := event.New(event.TypeDeposited, nil, caller, depositPayload{Address: address, Value: value})
		if err != nil {
			return err
		}
		return r.Events.Append(ctx, e)
	})
}

// EmergencyWithdraw sweeps whatever landed on the engine's own account
// to the owner. Active loans are untouched; funding and repayment pay
// participants directly, so nothing in flight ever sits here.
func (u *Usecase) EmergencyWithdraw(ctx context.Context, caller string) (decimal.Decimal, error) {
	swept := decimal.Zero
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		st, err := r.Engine.Get(ctx)
		if err != nil {
			return err
		}
		if caller != st.Owner {
			return engine.ErrNotOwner
		}

		eng, err := r.Accounts.GetForUpdate(ctx, account.EngineAddress)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil // nothing to sweep
		}
		if err != nil {
			return err
		}
		if !eng.Balance.IsPositive() {
			return nil
		}

		swept = eng.Balance
		if err := account.Transfer(ctx, r.Accounts, account.EngineAddress, st.Owner, swept); err != nil {
			return err
		}
		e, err := event.New(event.TypeEmergencyWithdrawn, nil, caller, sweepPayload{Owner: st.Owner, Value: swept})
		if err != nil {
			return err
		}
		return r.Events.Append(ctx, e)
	})
	if err != nil {
		return decimal.Zero, err
	}
	return swept, nil
}
