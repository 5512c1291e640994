/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/suparena/querywatch/descriptor"
	"github.com/suparena/querywatch/errors"
	"github.com/suparena/querywatch/notify"
	"github.com/suparena/querywatch/store"
)

// Store is a thread-safe in-memory implementation of store.Store[T]. It backs
// tests, small deployments and the fallback path taken when no store is
// registered for a record type.
type Store[T any] struct {
	mu      sync.RWMutex
	records map[string]T
	getKey  func(T) string
	hub     *notify.Hub
}

// Option configures a Store at construction time.
type Option[T any] func(*Store[T])

// WithKeyFunc sets the function that extracts a record's key on Put. Without
// one, keys derive from the record's formatted value.
func WithKeyFunc[T any](f func(T) string) Option[T] {
	return func(s *Store[T]) {
		s.getKey = f
	}
}

// New creates an empty in-memory store.
func New[T any](opts ...Option[T]) *Store[T] {
	s := &Store[T]{
		records: make(map[string]T),
		hub:     notify.NewHub(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Fetch evaluates the descriptor against a snapshot of the current records.
func (s *Store[T]) Fetch(ctx context.Context, d *descriptor.Descriptor) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.NewFetchError("memory", err)
	}

	out, err := descriptor.Apply(d, s.snapshot())
	if err != nil {
		return nil, errors.NewFetchError("memory", err)
	}
	return out, nil
}

// FetchPaged evaluates the descriptor and returns the matches as a lazy
// batched cursor.
func (s *Store[T]) FetchPaged(ctx context.Context, d *descriptor.Descriptor) (*store.Rows[T], error) {
	out, err := s.Fetch(ctx, d)
	if err != nil {
		return nil, err
	}
	return store.RowsFromSlice(store.BatchSizeFor(d), out), nil
}

// Changes returns the store's change broadcast hub.
func (s *Store[T]) Changes() *notify.Hub {
	return s.hub
}

// GetOne retrieves a record by key.
func (s *Store[T]) GetOne(ctx context.Context, key string) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if rec, exists := s.records[key]; exists {
		return &rec, nil
	}
	var zero T
	return nil, errors.NewNotFoundError(fmt.Sprintf("%T", zero), key)
}

// Put stores a record and broadcasts a change.
func (s *Store[T]) Put(ctx context.Context, rec T) error {
	key := s.extractKey(rec)
	if key == "" {
		return errors.NewValidationError("key", "unable to extract key from record")
	}

	s.mu.Lock()
	s.records[key] = rec
	s.mu.Unlock()

	s.hub.Broadcast()
	return nil
}

// Delete removes a record by key and broadcasts a change.
func (s *Store[T]) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	if _, exists := s.records[key]; !exists {
		s.mu.Unlock()
		var zero T
		return errors.NewNotFoundError(fmt.Sprintf("%T", zero), key)
	}
	delete(s.records, key)
	s.mu.Unlock()

	s.hub.Broadcast()
	return nil
}

// Len returns the number of stored records.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Clear removes all records and broadcasts a change.
func (s *Store[T]) Clear() {
	s.mu.Lock()
	s.records = make(map[string]T)
	s.mu.Unlock()

	s.hub.Broadcast()
}

// snapshot copies the current records in stable key order, so descriptors
// without sort keys still see a deterministic sequence.
func (s *Store[T]) snapshot() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.records))
	for k := range s.records {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]T, 0, len(keys))
	for _, k := range keys {
		out = append(out, s.records[k])
	}
	return out
}

func (s *Store[T]) extractKey(rec T) string {
	if s.getKey != nil {
		return s.getKey(rec)
	}
	return fmt.Sprintf("key_%v", rec)
}
