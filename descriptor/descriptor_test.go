/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package descriptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityEquality(t *testing.T) {
	a := New(
		Where(`Age >= 21`),
		OrderBy("Age", Ascending),
		OrderBy("Name", Descending),
		WithLimit(5),
	)
	b := New(
		Where(`Age >= 21`),
		OrderBy("Age", Ascending),
		OrderBy("Name", Descending),
		WithLimit(5),
	)

	// Two descriptor instances with identical fields are the same dedup key.
	assert.Equal(t, a.Identity(), b.Identity())
	assert.Equal(t, a.Identity(), a.String())
}

func TestIdentityDistinguishesFields(t *testing.T) {
	base := New(Where(`Age >= 21`), OrderBy("Age", Ascending))

	variants := []*Descriptor{
		New(Where(`Age >= 22`), OrderBy("Age", Ascending)),
		New(Where(`Age >= 21`), OrderBy("Age", Descending)),
		New(Where(`Age >= 21`), OrderBy("Name", Ascending)),
		New(Where(`Age >= 21`), OrderBy("Age", Ascending), WithLimit(1)),
		New(Where(`Age >= 21`), OrderBy("Age", Ascending), WithBatchSize(50)),
	}
	for _, v := range variants {
		assert.NotEqual(t, base.Identity(), v.Identity())
	}
}

func TestAccessors(t *testing.T) {
	d := New(
		Where(`Name == "ada"`),
		OrderBy("CreatedAt", Descending),
		WithLimit(3),
		WithBatchSize(25),
	)

	assert.Equal(t, `Name == "ada"`, d.Predicate())
	assert.Equal(t, []SortKey{{Field: "CreatedAt", Direction: Descending}}, d.Sort())
	assert.Equal(t, 3, d.Limit())
	assert.Equal(t, 25, d.BatchSize())
}

func TestSortReturnsCopy(t *testing.T) {
	d := New(OrderBy("Age", Ascending))

	keys := d.Sort()
	keys[0].Field = "mutated"

	require.Equal(t, "Age", d.Sort()[0].Field)
}

func TestLimited(t *testing.T) {
	d := New(Where(`Age >= 21`), OrderBy("Age", Ascending))
	one := d.Limited(1)

	assert.Equal(t, 0, d.Limit(), "original descriptor is unchanged")
	assert.Equal(t, 1, one.Limit())
	assert.Equal(t, d.Predicate(), one.Predicate())
	assert.Equal(t, d.Sort(), one.Sort())
	assert.NotEqual(t, d.Identity(), one.Identity())
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "asc", Ascending.String())
	assert.Equal(t, "desc", Descending.String())
}
