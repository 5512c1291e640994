/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package descriptor

import (
	"fmt"
	"sync"

	exprlang "github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/suparena/querywatch/errors"
)

// compiledPredicate caches the compiled expr program for a predicate
// expression. Compilation happens at most once per descriptor; copies made
// with Limited share the cache.
type compiledPredicate struct {
	expression string

	once    sync.Once
	program *vm.Program
	err     error
}

func (p *compiledPredicate) compile() (*vm.Program, error) {
	p.once.Do(func() {
		if p.expression == "" {
			return
		}
		program, err := exprlang.Compile(p.expression,
			exprlang.AsBool(),
			exprlang.AllowUndefinedVariables(),
		)
		if err != nil {
			p.err = errors.NewInvalidDescriptorError(p.expression, err)
			return
		}
		p.program = program
	})
	return p.program, p.err
}

// Match reports whether rec satisfies the descriptor's predicate. A
// descriptor with no predicate matches everything. Compile and evaluation
// failures surface as InvalidDescriptorError.
func Match[T any](d *Descriptor, rec T) (bool, error) {
	program, err := d.pred.compile()
	if err != nil {
		return false, err
	}
	if program == nil {
		return true, nil
	}

	out, err := exprlang.Run(program, rec)
	if err != nil {
		return false, errors.NewInvalidDescriptorError(d.predicate, err)
	}
	ok, isBool := out.(bool)
	if !isBool {
		return false, errors.NewInvalidDescriptorError(d.predicate,
			fmt.Errorf("predicate evaluated to %T, want bool", out))
	}
	return ok, nil
}

// Apply evaluates the descriptor against a snapshot of records: filter by
// predicate, stable sort by the sort keys, then truncate to the limit.
func Apply[T any](d *Descriptor, recs []T) ([]T, error) {
	out := make([]T, 0, len(recs))
	for _, rec := range recs {
		ok, err := Match(d, rec)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, rec)
		}
	}

	if len(d.sort) > 0 {
		sortRecords(out, d.sort)
	}

	if d.limit > 0 && len(out) > d.limit {
		out = out[:d.limit]
	}
	return out, nil
}
