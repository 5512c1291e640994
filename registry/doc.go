/*
Package registry resolves shared store handles for QueryWatch keys.

Stores are registered once during process startup, keyed by record type
and a name, and resolved wherever a key is constructed:

	reg := registry.Default()
	registry.Register[Player](reg, registry.DefaultName, playerStore)

	s := registry.Resolve[Player](reg, registry.DefaultName)
	key := querywatch.NewFetchAllKey(s, desc, convert)

Resolving a (type, name) pair that was never registered is not an
error: the registry reports a developer-facing diagnostic and hands
back a cached empty in-memory store, so misconfigured consumers see
empty results rather than a crash.

The registry stores handles only; it never owns store lifetimes.
*/
package registry
