/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/querywatch/descriptor"
	"github.com/suparena/querywatch/diag"
	"github.com/suparena/querywatch/errors"
	"github.com/suparena/querywatch/store"
)

// Fetch scans the table page by page and evaluates the descriptor
// client-side. Descriptor predicates are expression-language predicates, not
// DynamoDB filter expressions, so filtering and sorting happen after the
// scan.
func (s *Store[T]) Fetch(ctx context.Context, d *descriptor.Descriptor) ([]T, error) {
	recs, err := s.scanAll(ctx)
	if err != nil {
		return nil, errors.NewFetchError("dynamodb", err)
	}

	out, err := descriptor.Apply(d, recs)
	if err != nil {
		return nil, errors.NewFetchError("dynamodb", err)
	}
	return out, nil
}

// FetchPaged evaluates the descriptor and returns the matches as a lazy
// batched cursor.
func (s *Store[T]) FetchPaged(ctx context.Context, d *descriptor.Descriptor) (*store.Rows[T], error) {
	out, err := s.Fetch(ctx, d)
	if err != nil {
		return nil, err
	}
	return store.RowsFromSlice(store.BatchSizeFor(d), out), nil
}

// scanAll reads the full table, following LastEvaluatedKey pagination.
func (s *Store[T]) scanAll(ctx context.Context) ([]T, error) {
	input := &sdk.ScanInput{
		TableName: &s.table,
		Limit:     aws.Int32(s.retry.PageSize),
	}

	var recs []T
	var lastEvaluatedKey map[string]types.AttributeValue
	page := 0

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if lastEvaluatedKey != nil {
			input.ExclusiveStartKey = lastEvaluatedKey
		}

		out, err := s.scanWithRetry(ctx, input)
		if err != nil {
			return nil, err
		}
		page++

		for _, item := range out.Items {
			var rec T
			if err := attributevalue.UnmarshalMap(item, &rec); err != nil {
				// Skip items of other shapes sharing the table.
				diag.Debug("skipping unmarshalable item", "table", s.table, "error", err)
				continue
			}
			recs = append(recs, rec)
		}

		diag.Trace("scanned page", "table", s.table, "page", page, "items", len(out.Items))

		if len(out.LastEvaluatedKey) == 0 {
			return recs, nil
		}
		lastEvaluatedKey = out.LastEvaluatedKey
	}
}

// scanWithRetry executes a scan with configurable retry logic.
func (s *Store[T]) scanWithRetry(ctx context.Context, input *sdk.ScanInput) (*sdk.ScanOutput, error) {
	var lastErr error

	for attempt := 0; attempt <= s.retry.MaxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		out, err := s.client.Scan(ctx, input)
		if err == nil {
			return out, nil
		}

		lastErr = err
		if !isRetryableError(err) {
			return nil, err
		}

		if attempt < s.retry.MaxRetries {
			backoff := time.Duration(attempt+1) * s.retry.Backoff
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}
	}

	return nil, fmt.Errorf("scan failed after %d retries: %w", s.retry.MaxRetries, lastErr)
}

// isRetryableError determines if a DynamoDB error is retryable
func isRetryableError(err error) bool {
	switch err.(type) {
	case *types.ProvisionedThroughputExceededException:
		return true
	case *types.RequestLimitExceeded:
		return true
	case *types.InternalServerError:
		return true
	}

	if awsErr, ok := err.(interface{ IsRetryable() bool }); ok {
		return awsErr.IsRetryable()
	}

	return false
}
