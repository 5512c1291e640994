/*
Package errors provides semantic error types for QueryWatch.

The package defines sentinel errors and typed errors that work with
the standard errors.Is/As machinery:

	results, err := s.Fetch(ctx, desc)
	if errors.IsInvalidDescriptor(err) {
	    // predicate expression does not compile
	}

Error categories:
  - NotFoundError: a record lookup missed
  - ValidationError: bad input to a store operation
  - InvalidDescriptorError: a descriptor predicate the store cannot evaluate
  - FetchError: any store-level fetch failure, wrapping its cause

Key types never surface FetchError to subscribers; fetches are
best-effort and failures are reported through the diag package only.
*/
package errors
