package eventmock

import (
	"context"

	domain "finbridge-ledger/internal/domain/event"
)

// Repo is a function-backed mock that satisfies domain.Repository. The
// default Append collects events so tests can assert on emissions
// without wiring a func.
type Repo struct {
	AppendFn    func(ctx context.Context, e *domain.Event) error
	ListAfterFn func(ctx context.Context, afterSeq int64, limit int) ([]domain.Event, error)

	Appended []domain.Event
}

func (m *Repo) Append(ctx context.Context, e *domain.Event) error {
	if m.AppendFn != nil {
		return m.AppendFn(ctx, e)
	}
	m.Appended = append(m.Appended, *e)
	return nil
}

func (m *Repo) ListAfter(ctx context.Context, afterSeq int64, limit int) ([]domain.Event, error) {
	if m.ListAfterFn != nil {
		return m.ListAfterFn(ctx, afterSeq, limit)
	}
	return nil, context.Canceled
}
