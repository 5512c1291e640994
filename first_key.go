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

// FetchFirstKey observes the first record matching a descriptor, converted to
// a caller-defined value type V. The observed value is a *V; nil means no
// record matches. The descriptor's limit is forced to 1.
type FetchFirstKey[T, V any] struct {
	store   store.Store[T]
	desc    *descriptor.Descriptor
	convert func(T) V
}

// NewFetchFirstKey constructs a fetch-first key over the given store. The
// convert function must be pure; it runs once per fetched record.
func NewFetchFirstKey[T, V any](s store.Store[T], d *descriptor.Descriptor, convert func(T) V) *FetchFirstKey[T, V] {
	return &FetchFirstKey[T, V]{
		store:   s,
		desc:    d.Limited(1),
		convert: convert,
	}
}

// Identity returns the key's deduplication string.
func (k *FetchFirstKey[T, V]) Identity() string {
	return fmt.Sprintf("fetch-first/%s/%s", recordTypeName[T](), k.desc.Identity())
}

// Load fetches once and resolves with the first matching record converted to
// V, or nil when nothing matches or the fetch fails.
func (k *FetchFirstKey[T, V]) Load(ctx context.Context, resolve Resolver[*V]) {
	loadOnce(ctx, k.fetch, nil, resolve)
}

// Subscribe yields the current first match, then re-fetches and yields on
// every store change until cancelled.
func (k *FetchFirstKey[T, V]) Subscribe(ctx context.Context, yield Resolver[*V]) (cancel func()) {
	return subscribeStream(ctx, k.store.Changes(), k.Identity(), k.fetch, yield)
}

func (k *FetchFirstKey[T, V]) fetch(ctx context.Context) (*V, bool) {
	recs, err := k.store.Fetch(ctx, k.desc)
	if err != nil {
		diag.Error("fetch failed", "identity", k.Identity(), "error", err)
		return nil, false
	}
	if len(recs) == 0 {
		return nil, true
	}
	v := k.convert(recs[0])
	return &v, true
}
