/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package descriptor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/querywatch/errors"
)

type person struct {
	Name    string
	Age     int
	Country string
	Joined  time.Time
}

func people() []person {
	return []person{
		{Name: "carol", Age: 30, Country: "US", Joined: time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)},
		{Name: "ada", Age: 25, Country: "US", Joined: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{Name: "bob", Age: 17, Country: "CA", Joined: time.Date(2022, 9, 1, 0, 0, 0, 0, time.UTC)},
		{Name: "dan", Age: 42, Country: "US", Joined: time.Date(2021, 2, 1, 0, 0, 0, 0, time.UTC)},
	}
}

func TestMatch(t *testing.T) {
	d := New(Where(`Age >= 21 && Country == "US"`))

	ok, err := Match(d, person{Name: "ada", Age: 25, Country: "US"})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Match(d, person{Name: "bob", Age: 17, Country: "CA"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMatchEmptyPredicateMatchesAll(t *testing.T) {
	d := New()

	ok, err := Match(d, person{Name: "ada"})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMatchInvalidPredicate(t *testing.T) {
	d := New(Where(`Age >>>= 21`))

	_, err := Match(d, person{})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidDescriptor(err))

	// The compile failure is cached; the second call fails the same way.
	_, err = Match(d, person{})
	assert.True(t, errors.IsInvalidDescriptor(err))
}

func TestApplyFilterSortLimit(t *testing.T) {
	d := New(
		Where(`Country == "US"`),
		OrderBy("Age", Ascending),
		WithLimit(2),
	)

	out, err := Apply(d, people())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "ada", out[0].Name)
	assert.Equal(t, "carol", out[1].Name)
}

func TestApplyInsertedRecordSortsIntoPlace(t *testing.T) {
	d := New(Where(`Country == "US" && Age >= 21`), OrderBy("Age", Ascending))

	recs := people()
	out, err := Apply(d, recs)
	require.NoError(t, err)

	ages := make([]int, 0, len(out))
	for _, p := range out {
		ages = append(ages, p.Age)
	}
	require.Equal(t, []int{25, 30, 42}, ages)

	// A new matching record with age 35 lands between 30 and 42.
	recs = append(recs, person{Name: "eve", Age: 35, Country: "US"})
	out, err = Apply(d, recs)
	require.NoError(t, err)

	ages = ages[:0]
	for _, p := range out {
		ages = append(ages, p.Age)
	}
	assert.Equal(t, []int{25, 30, 35, 42}, ages)
}

func TestApplyDescending(t *testing.T) {
	d := New(OrderBy("Joined", Descending))

	out, err := Apply(d, people())
	require.NoError(t, err)
	require.Len(t, out, 4)
	assert.Equal(t, "ada", out[0].Name)
	assert.Equal(t, "dan", out[3].Name)
}

func TestApplyMultiKeySortIsStable(t *testing.T) {
	type row struct {
		Group string
		Rank  int
	}
	rows := []row{
		{"b", 2},
		{"a", 2},
		{"a", 1},
		{"b", 1},
	}

	d := New(OrderBy("Group", Ascending), OrderBy("Rank", Descending))
	out, err := Apply(d, rows)
	require.NoError(t, err)
	assert.Equal(t, []row{{"a", 2}, {"a", 1}, {"b", 2}, {"b", 1}}, out)
}

func TestApplyMissingSortFieldKeepsOrder(t *testing.T) {
	d := New(OrderBy("NoSuchField", Ascending))

	out, err := Apply(d, people())
	require.NoError(t, err)
	assert.Equal(t, people(), out)
}

func TestApplyNonBooleanPredicate(t *testing.T) {
	d := New(Where(`Age + 1`))

	_, err := Apply(d, people())
	require.Error(t, err)
	assert.True(t, errors.IsInvalidDescriptor(err))
}
