// Package storage provides the string-keyed, string-valued persistent store
// the collection services are built on. The contract is intentionally tiny:
// point reads and whole-value overwrites, no multi-key atomicity.
package storage

import (
	"context"
	"fmt"
)

// Store is the persistence contract. Get reports whether the key has ever
// been set; a missing key is not an error.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// Error wraps an I/O failure from the underlying store.
type Error struct {
	Op  string // "get" or "set"
	Key string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
