/*
Package querywatch exposes query results from a record store as observable,
shareable values.

A key pairs an immutable query descriptor with a store handle and plugs into
an observable-value framework through three operations: a stable identity
string for deduplicating subscriptions, a one-shot Load, and a long-lived
Subscribe that re-fetches on every store change.

Key kinds:
  - FetchFirstKey: the first matching record (or nil), converted to a
    caller-defined value type
  - FetchAllKey: every matching record in descriptor order, converted
  - FetchPagedKey: a lazy batched cursor over the matches, unconverted

Basic Usage:

	players := memory.New(memory.WithKeyFunc(func(p Player) string { return p.ID }))
	registry.Register[Player](registry.Default(), registry.DefaultName, players)

	d := descriptor.New(
	    descriptor.Where(`Country == "US" && Age >= 21`),
	    descriptor.OrderBy("Age", descriptor.Ascending),
	)
	key := querywatch.NewFetchAllKey(
	    registry.Resolve[Player](registry.Default(), registry.DefaultName),
	    d,
	    func(p Player) string { return p.Name },
	)

	cancel := key.Subscribe(ctx, func(names []string) {
	    // called with the current matches now, and again after every change
	})
	defer cancel()

Fetches are best-effort: a store error is logged through the diag package and
the subscriber simply keeps its previous value until the next change. Errors
never terminate a subscription and never reach the consumer.

For more information, see the documentation at https://github.com/suparena/querywatch
*/
package querywatch
