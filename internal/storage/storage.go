// Package storage is the persistence port for per-user recipe data. Each
// value is an opaque JSON blob that is read and rewritten wholesale.
package storage

import (
	"context"
	"errors"
	"path"
)

// ErrNotFound is returned by Get when no value is stored under the key.
var ErrNotFound = errors.New("storage: key not found")

// Store reads and writes whole values by key. Implementations must be safe
// for concurrent use; they make no ordering promise between writers.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}

// Namespace scopes key to a single user.
func Namespace(userID, key string) string {
	return path.Join("users", userID, key)
}
