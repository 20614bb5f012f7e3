// Package storage holds the persistence handles the document store writes
// through. Every handle stores opaque bytes under string keys.
package storage

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned by Get when nothing is stored under the key.
	ErrNotFound = errors.New("key not found")
	// ErrQuotaExceeded is returned by Set when the value does not fit.
	ErrQuotaExceeded = errors.New("storage quota exceeded")
)

// KV is a minimal key-value persistence handle.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Closer is implemented by handles that hold resources.
type Closer interface {
	Close() error
}

// Close releases kv when it holds resources.
func Close(kv KV) error {
	if c, ok := kv.(Closer); ok {
		return c.Close()
	}
	return nil
}
