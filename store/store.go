/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package store

import (
	"context"

	"github.com/suparena/querywatch/descriptor"
	"github.com/suparena/querywatch/notify"
)

// Store is the fetch contract consumed by the key types. Implementations
// own a notify.Hub and broadcast on it after every successful write, so that
// active subscriptions re-fetch.
type Store[T any] interface {
	// Fetch returns the records matching the descriptor, ordered by its sort
	// keys and truncated to its limit.
	Fetch(ctx context.Context, d *descriptor.Descriptor) ([]T, error)

	// FetchPaged returns a lazy batched view over the matching records. The
	// batch size comes from the descriptor, falling back to DefaultBatchSize.
	FetchPaged(ctx context.Context, d *descriptor.Descriptor) (*Rows[T], error)

	// Changes returns the store's change broadcast hub.
	Changes() *notify.Hub
}

// DefaultBatchSize is the page size used when a descriptor does not set one.
const DefaultBatchSize = 20

// BatchSizeFor resolves the effective batch size for a descriptor.
func BatchSizeFor(d *descriptor.Descriptor) int {
	if d != nil && d.BatchSize() > 0 {
		return d.BatchSize()
	}
	return DefaultBatchSize
}
