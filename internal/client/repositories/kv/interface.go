package kv

import (
	"context"
)

// Repository describes the key/value operations the store needs.
type Repository interface {
	// Get returns the stored value, or (nil, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set inserts or overwrites the value under key.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// List returns every key/value pair in the namespace.
	List(ctx context.Context) (map[string][]byte, error)

	// Clear removes every key in the namespace.
	Clear(ctx context.Context) error
}
