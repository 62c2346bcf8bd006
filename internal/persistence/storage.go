package persistence

import (
	"context"
	"errors"
)

// TokenKey is the fixed key under which the bearer token is persisted.
const TokenKey = "authToken"

var (
	// ErrStorageUnavailable is returned by a backend whose connection was never configured.
	ErrStorageUnavailable = errors.New("storage backend not configured")
	// ErrCorruptValue is returned when a stored value cannot be read back.
	ErrCorruptValue = errors.New("stored value is corrupt")
)

// Storage is the client-side key/value store, the equivalent of a browser's
// local storage.
type Storage interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
