/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package store

import (
	"context"
	"sync"
)

// BatchFunc produces the next batch of records for a Rows cursor. It returns
// a nil or empty slice once the result set is exhausted.
type BatchFunc[T any] func(ctx context.Context) ([]T, error)

// Rows is a lazy, batched view over a query result. Batches are pulled on
// demand rather than materialized up front:
//
//	for rows.Next(ctx) {
//	    for _, rec := range rows.Batch() {
//	        ...
//	    }
//	}
//	if err := rows.Err(); err != nil { ... }
//
// Rows is safe for use from one goroutine at a time.
type Rows[T any] struct {
	mu        sync.Mutex
	batchSize int
	fetch     BatchFunc[T]
	batch     []T
	err       error
	done      bool
}

// NewRows creates a cursor that pulls batches from fetch.
func NewRows[T any](batchSize int, fetch BatchFunc[T]) *Rows[T] {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Rows[T]{batchSize: batchSize, fetch: fetch}
}

// RowsFromSlice creates a cursor over an in-memory snapshot, delivered in
// batches of batchSize.
func RowsFromSlice[T any](batchSize int, items []T) *Rows[T] {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	offset := 0
	return NewRows(batchSize, func(ctx context.Context) ([]T, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if offset >= len(items) {
			return nil, nil
		}
		end := offset + batchSize
		if end > len(items) {
			end = len(items)
		}
		batch := items[offset:end]
		offset = end
		return batch, nil
	})
}

// Next pulls the next batch. It returns false when the result set is
// exhausted, the context is done, or an error occurred; check Err afterwards.
func (r *Rows[T]) Next(ctx context.Context) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.done || r.err != nil {
		return false
	}
	if err := ctx.Err(); err != nil {
		r.err = err
		return false
	}

	batch, err := r.fetch(ctx)
	if err != nil {
		r.err = err
		return false
	}
	if len(batch) == 0 {
		r.done = true
		return false
	}
	r.batch = batch
	return true
}

// Batch returns the batch loaded by the last successful Next.
func (r *Rows[T]) Batch() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.batch
}

// BatchSize returns the batch size the cursor was built with.
func (r *Rows[T]) BatchSize() int {
	return r.batchSize
}

// Err returns the first error encountered while iterating, if any.
func (r *Rows[T]) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// All drains the cursor and returns every remaining record.
func (r *Rows[T]) All(ctx context.Context) ([]T, error) {
	var out []T
	for r.Next(ctx) {
		out = append(out, r.Batch()...)
	}
	return out, r.Err()
}
