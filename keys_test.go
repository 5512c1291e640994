/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package querywatch

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/suparena/querywatch/descriptor"
	"github.com/suparena/querywatch/errors"
	"github.com/suparena/querywatch/notify"
	"github.com/suparena/querywatch/store"
	"github.com/suparena/querywatch/store/memory"
	"github.com/suparena/querywatch/store/testmodels"
)

// collector records yielded values and lets tests wait for a yield count.
type collector[V any] struct {
	mu     sync.Mutex
	values []V
	ch     chan struct{}
}

func newCollector[V any]() *collector[V] {
	return &collector[V]{ch: make(chan struct{}, 64)}
}

func (c *collector[V]) yield(v V) {
	c.mu.Lock()
	c.values = append(c.values, v)
	c.mu.Unlock()
	c.ch <- struct{}{}
}

func (c *collector[V]) await(t *testing.T, n int) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		if c.count() >= n {
			return
		}
		select {
		case <-c.ch:
		case <-deadline:
			t.Fatalf("timed out waiting for %d yields, got %d", n, c.count())
		}
	}
}

func (c *collector[V]) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.values)
}

func (c *collector[V]) snapshot() []V {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]V(nil), c.values...)
}

// settle gives the subscription goroutine a chance to (wrongly) yield again;
// used to assert that no further yields happen.
func settle() {
	time.Sleep(100 * time.Millisecond)
}

// flakyStore wraps a memory store and can be switched into a failing mode
// where every fetch errors.
type flakyStore[T any] struct {
	inner *memory.Store[T]

	mu   sync.Mutex
	fail bool
}

func newFlakyStore[T any](inner *memory.Store[T]) *flakyStore[T] {
	return &flakyStore[T]{inner: inner}
}

func (f *flakyStore[T]) setFail(fail bool) {
	f.mu.Lock()
	f.fail = fail
	f.mu.Unlock()
}

func (f *flakyStore[T]) failing() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fail
}

func (f *flakyStore[T]) Fetch(ctx context.Context, d *descriptor.Descriptor) ([]T, error) {
	if f.failing() {
		return nil, errors.NewFetchError("flaky", context.DeadlineExceeded)
	}
	return f.inner.Fetch(ctx, d)
}

func (f *flakyStore[T]) FetchPaged(ctx context.Context, d *descriptor.Descriptor) (*store.Rows[T], error) {
	if f.failing() {
		return nil, errors.NewFetchError("flaky", context.DeadlineExceeded)
	}
	return f.inner.FetchPaged(ctx, d)
}

func (f *flakyStore[T]) Changes() *notify.Hub {
	return f.inner.Changes()
}

func newPlayerStore() *memory.Store[testmodels.Player] {
	return memory.New(memory.WithKeyFunc(func(p testmodels.Player) string { return p.ID }))
}

func playerName(p testmodels.Player) string { return p.Name }

func TestIdentityStrings(t *testing.T) {
	s := newPlayerStore()
	d := descriptor.New(
		descriptor.Where(`Age >= 21`),
		descriptor.OrderBy("Age", descriptor.Ascending),
	)

	first := NewFetchFirstKey(s, d, playerName)
	all := NewFetchAllKey(s, d, playerName)
	paged := NewFetchPagedKey(s, d)

	// Same descriptor, three distinct key kinds.
	assert.NotEqual(t, first.Identity(), all.Identity())
	assert.NotEqual(t, all.Identity(), paged.Identity())

	assert.Contains(t, first.Identity(), "fetch-first/")
	assert.Contains(t, all.Identity(), "fetch-all/")
	assert.Contains(t, paged.Identity(), "fetch-paged/")
	assert.Contains(t, first.Identity(), "testmodels.Player")

	// Keys built from equal descriptors are the same dedup key.
	d2 := descriptor.New(
		descriptor.Where(`Age >= 21`),
		descriptor.OrderBy("Age", descriptor.Ascending),
	)
	assert.Equal(t, first.Identity(), NewFetchFirstKey(s, d2, playerName).Identity())

	// The fetch-first key carries the forced limit in its identity.
	assert.Contains(t, first.Identity(), "limit=1")
}
