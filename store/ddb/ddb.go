/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/querywatch/diag"
	"github.com/suparena/querywatch/errors"
	"github.com/suparena/querywatch/notify"
)

// Store implements store.Store[T] backed by a DynamoDB table. Records live as
// plain items keyed by a single hash-key attribute; descriptors are evaluated
// client-side after a paginated scan.
type Store[T any] struct {
	client  *sdk.Client
	table   string
	hashKey string
	retry   RetryConfig
	hub     *notify.Hub
}

// NewClient initializes a DynamoDB client from the given config.
func NewClient(ctx context.Context, cfg Config) (*sdk.Client, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	var clientOpts []func(*sdk.Options)
	if cfg.Endpoint != "" {
		clientOpts = append(clientOpts, func(o *sdk.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		})
	}

	client := sdk.NewFromConfig(awsCfg, clientOpts...)
	diag.Debug("dynamodb client initialized", "table", cfg.Table, "region", cfg.Region)
	return client, nil
}

// New constructs a DynamoDB-backed store for type T.
func New[T any](ctx context.Context, cfg Config) (*Store[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client, err := NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}

	return &Store[T]{
		client:  client,
		table:   cfg.Table,
		hashKey: cfg.hashKeyOrDefault(),
		retry:   cfg.Retry.withDefaults(),
		hub:     notify.NewHub(),
	}, nil
}

// Changes returns the store's change broadcast hub. Only writes made through
// this store broadcast on it; out-of-band table writers need to signal the
// hub themselves.
func (s *Store[T]) Changes() *notify.Hub {
	return s.hub
}

// GetOne retrieves a single record by its hash-key value. It returns nil with
// no error when the record does not exist in the table.
func (s *Store[T]) GetOne(ctx context.Context, key string) (*T, error) {
	out, err := s.client.GetItem(ctx, &sdk.GetItemInput{
		TableName: &s.table,
		Key: map[string]types.AttributeValue{
			s.hashKey: &types.AttributeValueMemberS{Value: key},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("GetItem error: %w", err)
	}
	if out.Item == nil {
		return nil, nil
	}

	result := new(T)
	if err := attributevalue.UnmarshalMap(out.Item, result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item: %w", err)
	}
	return result, nil
}

// Put stores a record and broadcasts a change. The marshaled record must
// carry the configured hash-key attribute.
func (s *Store[T]) Put(ctx context.Context, rec T) error {
	av, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	if _, ok := av[s.hashKey]; !ok {
		return errors.NewValidationError(s.hashKey, "record is missing the hash key attribute")
	}

	_, err = s.client.PutItem(ctx, &sdk.PutItemInput{
		TableName: &s.table,
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("PutItem failed: %w", err)
	}

	s.hub.Broadcast()
	return nil
}

// Delete removes a record by its hash-key value and broadcasts a change.
func (s *Store[T]) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteItem(ctx, &sdk.DeleteItemInput{
		TableName: &s.table,
		Key: map[string]types.AttributeValue{
			s.hashKey: &types.AttributeValueMemberS{Value: key},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to delete item in DynamoDB: %w", err)
	}

	s.hub.Broadcast()
	return nil
}
