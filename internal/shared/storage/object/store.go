package object

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound is returned when no object exists at a key.
var ErrNotFound = errors.New("object not found")

// Store defines the contract for saving and retrieving binary objects at a
// caller-chosen key. Put replaces whatever is stored at the key.
type Store interface {
	Put(ctx context.Context, key string, contentType string, r io.Reader) (sizeBytes int64, err error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}
