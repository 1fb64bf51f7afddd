package service

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by KVStore.Get when the key has no value.
var ErrKeyNotFound = errors.New("key not found")

// KVStore is the persistence port for editor drafts, custom versions and
// theme settings. Values are opaque JSON blobs keyed by well-known names.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
