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

// FetchAllKey observes every record matching a descriptor, in descriptor
// order, each converted to a caller-defined value type V. The observed value
// is never nil: an unresolved or empty query yields an empty slice.
type FetchAllKey[T, V any] struct {
	store   store.Store[T]
	desc    *descriptor.Descriptor
	convert func(T) V
}

// NewFetchAllKey constructs a fetch-all key over the given store. The convert
// function must be pure; it runs once per fetched record.
func NewFetchAllKey[T, V any](s store.Store[T], d *descriptor.Descriptor, convert func(T) V) *FetchAllKey[T, V] {
	return &FetchAllKey[T, V]{
		store:   s,
		desc:    d,
		convert: convert,
	}
}

// Identity returns the key's deduplication string.
func (k *FetchAllKey[T, V]) Identity() string {
	return fmt.Sprintf("fetch-all/%s/%s", recordTypeName[T](), k.desc.Identity())
}

// Load fetches once and resolves with the matching records converted to V,
// or an empty slice when the fetch fails.
func (k *FetchAllKey[T, V]) Load(ctx context.Context, resolve Resolver[[]V]) {
	loadOnce(ctx, k.fetch, []V{}, resolve)
}

// Subscribe yields the current matches, then re-fetches and yields on every
// store change until cancelled.
func (k *FetchAllKey[T, V]) Subscribe(ctx context.Context, yield Resolver[[]V]) (cancel func()) {
	return subscribeStream(ctx, k.store.Changes(), k.Identity(), k.fetch, yield)
}

func (k *FetchAllKey[T, V]) fetch(ctx context.Context) ([]V, bool) {
	recs, err := k.store.Fetch(ctx, k.desc)
	if err != nil {
		diag.Error("fetch failed", "identity", k.Identity(), "error", err)
		return nil, false
	}
	out := make([]V, 0, len(recs))
	for _, rec := range recs {
		out = append(out, k.convert(rec))
	}
	return out, true
}
