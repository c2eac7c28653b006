package blob

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("blob not found")

// Store keeps opaque objects by key. Writing an existing key replaces it.
type Store interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
}
