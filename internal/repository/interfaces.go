package repository

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a storage key has no value yet.
var ErrNotFound = errors.New("not found")

// StateRepo is a string key/value store for serialized application
// state.
type StateRepo interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
