package ports

import "context"

// KVStore is the string-keyed, string-valued persistence port behind the
// session store. Implementations must make every Set durable before returning.
type KVStore interface {
	// Get returns the value stored at key and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	// Take returns the value stored at key and removes it in one atomic step,
	// so two concurrent callers can never both observe the same value.
	Take(ctx context.Context, key string) (string, bool, error)
	Ping(ctx context.Context) error
}
