/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package querywatch

import (
	"context"
	"reflect"

	"github.com/suparena/querywatch/diag"
	"github.com/suparena/querywatch/notify"
)

// Resolver receives an observed value. The sharing framework hosting a key
// supplies one as the continuation for Load and as the subscriber for
// Subscribe.
type Resolver[V any] func(V)

// Key is the contract a query key exposes to an observable-value framework:
// a stable identity string for deduplicating subscriptions, a one-shot Load,
// and a long-lived Subscribe.
type Key[V any] interface {
	// Identity returns the key's deduplication string. Keys built from equal
	// descriptors over the same record type produce equal identities.
	Identity() string

	// Load performs one fetch and resolves exactly once, with the type's
	// default value if the fetch fails. Fetch errors are logged, never
	// returned.
	Load(ctx context.Context, resolve Resolver[V])

	// Subscribe yields the current value immediately, then re-fetches and
	// yields on every store change until the returned cancel function is
	// called or ctx is done. Fetch errors are logged and skipped; the
	// subscriber keeps its previous value for that tick.
	Subscribe(ctx context.Context, yield Resolver[V]) (cancel func())
}

func recordTypeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}

// subscribeStream runs the shared subscription loop: register on the hub
// before returning so no later broadcast is missed, then fetch-and-yield
// once, then again on every signal. Cancellation is cooperative; it is
// checked on each loop turn and again before each yield, so a fetch that is
// in flight when cancel is called may finish but never yields.
func subscribeStream[V any](
	parent context.Context,
	hub *notify.Hub,
	identity string,
	fetch func(context.Context) (V, bool),
	yield Resolver[V],
) (cancel func()) {
	ctx, stop := context.WithCancel(parent)
	signals, unhook := hub.Subscribe()

	go func() {
		defer unhook()

		diag.Debug("subscription started", "identity", identity)
		emit(ctx, identity, fetch, yield)

		for {
			select {
			case <-ctx.Done():
				diag.Debug("subscription cancelled", "identity", identity)
				return
			case _, ok := <-signals:
				if !ok || ctx.Err() != nil {
					diag.Debug("subscription cancelled", "identity", identity)
					return
				}
				diag.Trace("change signal", "identity", identity)
				emit(ctx, identity, fetch, yield)
			}
		}
	}()

	return stop
}

// emit fetches once and yields on success. The fetch function reports
// failure via ok; errors were already logged at the fetch site.
func emit[V any](ctx context.Context, identity string, fetch func(context.Context) (V, bool), yield Resolver[V]) {
	v, ok := fetch(ctx)
	if !ok || ctx.Err() != nil {
		return
	}
	diag.Trace("yield", "identity", identity)
	yield(v)
}

// loadOnce implements the one-shot Load semantics shared by all key types:
// resolve with the fetched value, or with the fallback when the fetch fails.
func loadOnce[V any](ctx context.Context, fetch func(context.Context) (V, bool), fallback V, resolve Resolver[V]) {
	v, ok := fetch(ctx)
	if !ok {
		resolve(fallback)
		return
	}
	resolve(v)
}
