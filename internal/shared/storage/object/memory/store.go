package memory

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"smartresume/internal/shared/storage/object"
)

type entry struct {
	contentType string
	data        []byte
}

// Store keeps objects in process memory.
type Store struct {
	mu      sync.RWMutex
	objects map[string]entry
}

// New creates an empty in-memory object store.
func New() *Store {
	return &Store{objects: make(map[string]entry)}
}

// Put buffers r fully before replacing the object at key.
func (s *Store) Put(ctx context.Context, key string, contentType string, r io.Reader) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return 0, fmt.Errorf("invalid storage key")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("read body: %w", err)
	}

	s.mu.Lock()
	s.objects[key] = entry{contentType: contentType, data: data}
	s.mu.Unlock()
	return int64(len(data)), nil
}

// Open returns a reader over a copy of the stored object.
func (s *Store) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	e, ok := s.objects[strings.TrimSpace(key)]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", object.ErrNotFound, key)
	}
	return io.NopCloser(bytes.NewReader(bytes.Clone(e.data))), nil
}

// ContentType returns the content type recorded for key.
func (s *Store) ContentType(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.objects[strings.TrimSpace(key)]
	return e.contentType, ok
}

// Len reports how many objects are stored.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}

var _ object.Store = (*Store)(nil)
