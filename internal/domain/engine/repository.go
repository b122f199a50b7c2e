package engine

import "context"

type Repository interface {
	Get(ctx context.Context) (*State, error)
	GetForUpdate(ctx context.Context) (*State, error)
	Save(ctx context.Context, s *State) error
	// Init creates the singleton row if it does not exist yet. The owner
	// of an existing row is never overwritten.
	Init(ctx context.Context, owner string) error
}
