package storage

import "errors"

// ErrNotFound is returned by Get when no entry exists for the key.
var ErrNotFound = errors.New("storage: key not found")

// Store is the durable mirror behind the data store. Each key holds one whole
// serialized collection; Put replaces the value, never merges.
type Store interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Delete(key string) error
}
