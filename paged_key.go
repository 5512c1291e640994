/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package querywatch

import (
	"context"
	"fmt"

	"github.com/suparena/querywatch/descriptor"
	"github.com/suparena/querywatch/diag"
	"github.com/suparena/querywatch/store"
)

// FetchPagedKey observes the records matching a descriptor as a lazy batched
// cursor. The store's native collection is passed through without
// per-record conversion; each yield hands the subscriber a fresh
// *store.Rows[T] positioned at the start of the current result set.
type FetchPagedKey[T any] struct {
	store store.Store[T]
	desc  *descriptor.Descriptor
}

// NewFetchPagedKey constructs a fetch-paged key over the given store. The
// batch size comes from the descriptor, defaulting to store.DefaultBatchSize.
func NewFetchPagedKey[T any](s store.Store[T], d *descriptor.Descriptor) *FetchPagedKey[T] {
	return &FetchPagedKey[T]{
		store: s,
		desc:  d,
	}
}

// Identity returns the key's deduplication string.
func (k *FetchPagedKey[T]) Identity() string {
	return fmt.Sprintf("fetch-paged/%s/%s", recordTypeName[T](), k.desc.Identity())
}

// Load fetches once and resolves with a cursor over the matching records, or
// an empty cursor when the fetch fails.
func (k *FetchPagedKey[T]) Load(ctx context.Context, resolve Resolver[*store.Rows[T]]) {
	empty := store.RowsFromSlice[T](store.BatchSizeFor(k.desc), nil)
	loadOnce(ctx, k.fetch, empty, resolve)
}

// Subscribe yields a cursor over the current matches, then a fresh cursor on
// every store change until cancelled.
func (k *FetchPagedKey[T]) Subscribe(ctx context.Context, yield Resolver[*store.Rows[T]]) (cancel func()) {
	return subscribeStream(ctx, k.store.Changes(), k.Identity(), k.fetch, yield)
}

func (k *FetchPagedKey[T]) fetch(ctx context.Context) (*store.Rows[T], bool) {
	rows, err := k.store.FetchPaged(ctx, k.desc)
	if err != nil {
		diag.Error("fetch failed", "identity", k.Identity(), "error", err)
		return nil, false
	}
	return rows, true
}
