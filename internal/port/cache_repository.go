package port

import "context"

type CacheRepository interface {
	// DecrementStock atomically decreases the mirrored stock of an item,
	// returns false if the mirror holds less than quantity
	DecrementStock(ctx context.Context, itemID string, quantity int) (bool, error)

	// IncrementStock restores mirrored stock (rollback on abort)
	IncrementStock(ctx context.Context, itemID string, quantity int) error

	// SetStock seeds or re-syncs the mirrored stock of an item
	SetStock(ctx context.Context, itemID string, quantity int) error

	// SetIdempotency sets a key for idempotency check, returns false if
	// it already exists
	SetIdempotency(ctx context.Context, key string) (bool, error)

	// ReleaseIdempotency removes an idempotency key so an aborted request
	// can be resubmitted
	ReleaseIdempotency(ctx context.Context, key string) error
}
