package mysql

import (
	"context"

	loanDomain "finbridge-ledger/internal/domain/loan"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) Save(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LoanRepository) GetByID(ctx context.Context, id uint64) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *LoanRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := forUpdate(r.db.WithContext(ctx)).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *LoanRepository) ListActiveIDs(ctx context.Context) ([]uint64, error) {
	var ids []uint64
	res := r.db.WithContext(ctx).Model(&loanDomain.Loan{}).
		Where("state = ?", loanDomain.StateOpen).
		Order("id ASC").
		Pluck("id", &ids)
	return ids, res.Error
}

func (r *LoanRepository) ListByBorrower(ctx context.Context, address string) ([]uint64, error) {
	var ids []uint64
	res := r.db.WithContext(ctx).Model(&loanDomain.Loan{}).
		Where("borrower = ?", address).
		Order("id ASC").
		Pluck("id", &ids)
	return ids, res.Error
}

func (r *LoanRepository) ListByLender(ctx context.Context, address string) ([]uint64, error) {
	var ids []uint64
	res := r.db.WithContext(ctx).Model(&loanDomain.Loan{}).
		Where("lender = ?", address).
		Order("id ASC").
		Pluck("id", &ids)
	return ids, res.Error
}

func (r *LoanRepository) SumPrincipalByBorrower(ctx context.Context, address string) (decimal.Decimal, error) {
	return r.sumPrincipal(ctx, "borrower", address)
}

func (r *LoanRepository) SumPrincipalByLender(ctx context.Context, address string) (decimal.Decimal, error) {
	return r.sumPrincipal(ctx, "lender", address)
}

func (r *LoanRepository) sumPrincipal(ctx context.Context, column, address string) (decimal.Decimal, error) {
	var raw string
	res := r.db.WithContext(ctx).Model(&loanDomain.Loan{}).
		Where(column+" = ?", address).
		Select("COALESCE(SUM(principal), 0)").
		Scan(&raw)
	if res.Error != nil {
		return decimal.Zero, res.Error
	}
	if raw == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(raw)
}
