package loan

import (
	"context"

	"github.com/shopspring/decimal"
)

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	Save(ctx context.Context, l *Loan) error
	GetByID(ctx context.Context, id uint64) (*Loan, error)
	// GetByIDForUpdate locks the row for the enclosing transaction.
	GetByIDForUpdate(ctx context.Context, id uint64) (*Loan, error)

	// Projections. All id lists are ordered by id ascending.
	ListActiveIDs(ctx context.Context) ([]uint64, error)
	ListByBorrower(ctx context.Context, address string) ([]uint64, error)
	ListByLender(ctx context.Context, address string) ([]uint64, error)
	SumPrincipalByBorrower(ctx context.Context, address string) (decimal.Decimal, error)
	SumPrincipalByLender(ctx context.Context, address string) (decimal.Decimal, error)
}
