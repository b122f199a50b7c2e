package event

import "context"

type Repository interface {
	Append(ctx context.Context, e *Event) error
	// ListAfter returns up to limit events with Seq > afterSeq, ordered
	// by Seq ascending.
	ListAfter(ctx context.Context, afterSeq int64, limit int) ([]Event, error)
}
