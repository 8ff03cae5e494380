// Package storage provides the string-keyed persistent store notekeeper keeps
// its JSON blobs in. Two interchangeable variants exist: a durable SQLite
// store and a volatile in-memory store used as fallback when the durable
// backend cannot be initialized. The variant is selected once at startup via
// Open and used for the remainder of the run.
package storage

import "context"

// Store is an asynchronous string-keyed key-value store.
//
// Get returns (nil, nil) when the key is absent. Any non-nil error from an
// implementation wraps shared.ErrorStorageFault; callers are expected to
// treat a Get fault as "no data" and surface Set/Remove faults unretried.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	Close() error
}

// Kind identifies which backend variant was selected at startup.
type Kind string

const (
	KindSQLite Kind = "sqlite"
	KindMemory Kind = "memory"
)
