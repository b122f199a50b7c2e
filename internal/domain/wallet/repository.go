package wallet

import "context"

type Repository interface {
	Get(ctx context.Context, address string) (*Connection, error)
	// Save upserts by address.
	Save(ctx context.Context, c *Connection) error
	// IsConnected is false for unknown addresses.
	IsConnected(ctx context.Context, address string) (bool, error)
}
