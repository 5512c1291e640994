/*
Package descriptor defines immutable query descriptors and their evaluation.

A Descriptor pairs a boolean predicate expression (github.com/expr-lang/expr)
with sort keys, an optional result limit and an optional batch size:

	d := descriptor.New(
	    descriptor.Where(`Country == "US" && Age >= 21`),
	    descriptor.OrderBy("Age", descriptor.Ascending),
	    descriptor.WithLimit(10),
	)

Identity() renders the descriptor canonically; descriptors with equal fields
render identically, which is what makes them usable as deduplication keys for
shared subscriptions.

Backends without a native expression engine evaluate descriptors client-side
with Match and Apply. Predicates compile lazily, once per descriptor.
*/
package descriptor
