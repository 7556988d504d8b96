package storage

import "context"

// KV is the persistent key-value collaborator the cart store mirrors into.
// Get returns domain.ErrNotFound when the key has never been set or has been
// removed.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// Pinger is implemented by stores backed by an external service; readiness
// checks use it when available.
type Pinger interface {
	Ping(ctx context.Context) error
}
