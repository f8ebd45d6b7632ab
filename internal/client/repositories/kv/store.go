// Package kv is the persistent key-value layer. Each key maps to one opaque
// value, in practice a JSON document. Two backends exist: a SQLite table and
// a directory of files.
package kv

import (
	"context"
	"errors"
)

// ErrInvalidKey is returned for keys a backend cannot address.
var ErrInvalidKey = errors.New("invalid key")

// UpdateFunc receives the current value (nil when the key is absent) and
// returns the replacement. Returning a nil slice deletes the key; returning
// an error aborts the update and leaves the stored value untouched.
type UpdateFunc func(current []byte) ([]byte, error)

// Store persists values by key. A key that was never set reads as (nil, nil).
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error

	// Update performs an atomic read-modify-write of a single key. Concurrent
	// updates of the same key through the same Store are serialized.
	Update(ctx context.Context, key string, fn UpdateFunc) error

	Close() error
}
