// Package kvstore provides the flat key-value namespace backing the fleet
// API. Keys are plain strings, values are opaque JSON documents, and id-list
// keys (reverse indexes) are kept as native lists so appends are atomic.
package kvstore

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when a key has no value
var ErrKeyNotFound = errors.New("key not found")

// Store is the generic key-value contract. Single-key operations are atomic;
// there are no cross-key transactions.
type Store interface {
	// Get returns the value stored under key, or ErrKeyNotFound
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value under key, overwriting any existing value
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key; deleting an absent key is not an error
	Delete(ctx context.Context, key string) error
	// GetByPrefix returns all values whose key starts with prefix,
	// ordered by key for deterministic output
	GetByPrefix(ctx context.Context, prefix string) ([][]byte, error)
	// Keys returns all keys starting with prefix, value and list keys
	// alike, ordered for deterministic output
	Keys(ctx context.Context, prefix string) ([]string, error)

	// AppendList atomically appends values to the list stored under key,
	// creating the list if absent
	AppendList(ctx context.Context, key string, values ...string) error
	// GetList returns the list stored under key; an absent key yields an
	// empty list, not an error
	GetList(ctx context.Context, key string) ([]string, error)
	// SetList replaces the list stored under key with values
	SetList(ctx context.Context, key string, values []string) error

	// Close releases the underlying resources
	Close() error
}
