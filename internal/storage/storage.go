// Package storage defines the flat key/value blob storage the stores persist
// into.
//
// THE CONTRACT IS DELIBERATELY TINY:
// The application keeps exactly two items — the snippet collection and the
// settings record — each serialized as one JSON blob under a fixed key. That is
// the whole persistence model, so the interface is GetItem/SetItem/RemoveItem
// and nothing else. There is no per-record schema, no query capability, and no
// coordination between concurrent writers (two processes on the same file are
// last-write-wins).
//
// Both operations are synchronous: SetItem has completed the write when it
// returns, which gives the stores read-after-write consistency within the
// process.
package storage

import "errors"

// ErrNoItem is returned by GetItem when the key has never been written.
// Callers treat it as "first run", not as a failure.
var ErrNoItem = errors.New("storage: no item for key")

// Storage is a durable string-keyed blob store.
//
// Implementations: sqlite.Store (the real backend, see storage/sqlite) and
// Memory (tests).
type Storage interface {
	// GetItem returns the blob stored under key, or ErrNoItem.
	GetItem(key string) ([]byte, error)
	// SetItem durably stores value under key, replacing any previous value.
	SetItem(key string, value []byte) error
	// RemoveItem deletes the key. Removing an absent key is a no-op.
	RemoveItem(key string) error
	// Close releases the backend. The Storage is unusable afterwards.
	Close() error
}
