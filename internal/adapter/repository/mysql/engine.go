package mysql

import (
	"context"
	"errors"

	engineDomain "finbridge-ledger/internal/domain/engine"

	"gorm.io/gorm"
)

type EngineRepository struct{ db *gorm.DB }

func NewEngineRepository(db *gorm.DB) *EngineRepository { return &EngineRepository{db: db} }

func (r *EngineRepository) Get(ctx context.Context) (*engineDomain.State, error) {
	var out engineDomain.State
	res := r.db.WithContext(ctx).First(&out)
	return &out, res.Error
}

func (r *EngineRepository) GetForUpdate(ctx context.Context) (*engineDomain.State, error) {
	var out engineDomain.State
	res := forUpdate(r.db.WithContext(ctx)).First(&out)
	return &out, res.Error
}

func (r *EngineRepository) Save(ctx context.Context, s *engineDomain.State) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *EngineRepository) Init(ctx context.Context, owner string) error {
	_, err := r.Get(ctx)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.WithContext(ctx).Create(engineDomain.NewState(owner)).Error
	}
	return err
}
