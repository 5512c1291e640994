/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowsFromSliceBatches(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}
	rows := RowsFromSlice(3, items)

	ctx := context.Background()
	var batches [][]int
	for rows.Next(ctx) {
		batches = append(batches, append([]int(nil), rows.Batch()...))
	}

	require.NoError(t, rows.Err())
	require.Len(t, batches, 3)
	assert.Equal(t, []int{1, 2, 3}, batches[0])
	assert.Equal(t, []int{4, 5, 6}, batches[1])
	assert.Equal(t, []int{7}, batches[2])

	// Exhausted cursor stays exhausted.
	assert.False(t, rows.Next(ctx))
}

func TestRowsFromSliceEmpty(t *testing.T) {
	rows := RowsFromSlice[string](10, nil)

	assert.False(t, rows.Next(context.Background()))
	assert.NoError(t, rows.Err())
	assert.Empty(t, rows.Batch())
}

func TestRowsDefaultBatchSize(t *testing.T) {
	rows := RowsFromSlice(0, []int{1})
	assert.Equal(t, DefaultBatchSize, rows.BatchSize())
}

func TestRowsFetchError(t *testing.T) {
	boom := errors.New("boom")
	rows := NewRows(5, func(ctx context.Context) ([]int, error) {
		return nil, boom
	})

	assert.False(t, rows.Next(context.Background()))
	assert.ErrorIs(t, rows.Err(), boom)
}

func TestRowsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	rows := RowsFromSlice(2, []int{1, 2, 3, 4})

	require.True(t, rows.Next(ctx))
	cancel()

	assert.False(t, rows.Next(ctx))
	assert.ErrorIs(t, rows.Err(), context.Canceled)
}

func TestRowsAll(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}
	rows := RowsFromSlice(2, items)

	all, err := rows.All(context.Background())
	require.NoError(t, err)
	assert.Equal(t, items, all)
}

func TestBatchSizeFor(t *testing.T) {
	assert.Equal(t, DefaultBatchSize, BatchSizeFor(nil))
}
