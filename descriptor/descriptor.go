/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package descriptor

import (
	"fmt"
	"strings"
)

// Direction is the sort direction for a single sort key.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// SortKey orders results by a single record field.
type SortKey struct {
	Field     string
	Direction Direction
}

// Descriptor is an immutable description of a query: an optional boolean
// predicate expression over record fields, an ordered list of sort keys, an
// optional result limit and an optional batch size for paged fetches.
//
// Two descriptors with the same Identity() refer to the same logical query
// and are interchangeable as cache keys.
type Descriptor struct {
	predicate string
	sort      []SortKey
	limit     int
	batchSize int

	pred *compiledPredicate
}

// Option configures a Descriptor at construction time.
type Option func(*Descriptor)

// Where sets the predicate expression. The expression language is
// github.com/expr-lang/expr; record fields are addressed by name:
//
//	descriptor.New(descriptor.Where(`Age >= 21 && Country == "US"`))
//
// An empty predicate matches every record.
func Where(expression string) Option {
	return func(d *Descriptor) {
		d.predicate = expression
	}
}

// OrderBy appends a sort key. Keys are applied in the order given.
func OrderBy(field string, dir Direction) Option {
	return func(d *Descriptor) {
		d.sort = append(d.sort, SortKey{Field: field, Direction: dir})
	}
}

// WithLimit caps the number of results. Zero means no limit.
func WithLimit(n int) Option {
	return func(d *Descriptor) {
		d.limit = n
	}
}

// WithBatchSize sets the page size used by paged fetches. Zero defers to the
// backend default.
func WithBatchSize(n int) Option {
	return func(d *Descriptor) {
		d.batchSize = n
	}
}

// New constructs a Descriptor from the given options.
func New(opts ...Option) *Descriptor {
	d := &Descriptor{}
	for _, opt := range opts {
		opt(d)
	}
	d.pred = &compiledPredicate{expression: d.predicate}
	return d
}

// Limited returns a copy of d with the limit replaced. The compiled predicate
// is shared between the copies.
func (d *Descriptor) Limited(n int) *Descriptor {
	c := *d
	c.sort = append([]SortKey(nil), d.sort...)
	c.limit = n
	return &c
}

// Predicate returns the predicate expression.
func (d *Descriptor) Predicate() string { return d.predicate }

// Sort returns a copy of the sort keys.
func (d *Descriptor) Sort() []SortKey {
	return append([]SortKey(nil), d.sort...)
}

// Limit returns the result limit, zero meaning unlimited.
func (d *Descriptor) Limit() int { return d.limit }

// BatchSize returns the configured batch size, zero meaning backend default.
func (d *Descriptor) BatchSize() int { return d.batchSize }

// Identity returns the canonical string form of the descriptor. Descriptors
// with equal predicate, sort keys, limit and batch size produce identical
// identity strings.
func (d *Descriptor) Identity() string {
	var b strings.Builder
	fmt.Fprintf(&b, "predicate=%s", d.predicate)
	b.WriteString(";sort=")
	for i, k := range d.sort {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, "%s %s", k.Field, k.Direction)
	}
	fmt.Fprintf(&b, ";limit=%d;batch=%d", d.limit, d.batchSize)
	return b.String()
}

func (d *Descriptor) String() string {
	return d.Identity()
}
