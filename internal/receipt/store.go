package receipt

import (
	"context"
	"errors"
)

// ErrNotFound is returned by stores when no receipt exists for an id.
var ErrNotFound = errors.New("receipt not found")

// Store holds accepted receipts keyed by their generated identifier. The
// store owns the canonical copy; the rule engines never touch it.
type Store interface {
	Put(ctx context.Context, id string, r *Receipt) error
	Get(ctx context.Context, id string) (*Receipt, error)
}
