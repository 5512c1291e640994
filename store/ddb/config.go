/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/suparena/querywatch/errors"
)

// RetryConfig controls scan retry behavior.
type RetryConfig struct {
	// MaxRetries is the number of retry attempts for transient scan errors.
	MaxRetries int `yaml:"max_retries"`
	// Backoff is the base backoff between retries; attempt n waits n times
	// this duration.
	Backoff time.Duration `yaml:"backoff"`
	// PageSize is the number of items requested per scan page.
	PageSize int32 `yaml:"page_size"`
}

func (r RetryConfig) withDefaults() RetryConfig {
	if r.MaxRetries <= 0 {
		r.MaxRetries = 3
	}
	if r.Backoff <= 0 {
		r.Backoff = time.Second
	}
	if r.PageSize <= 0 {
		r.PageSize = 100
	}
	return r
}

// Config describes a DynamoDB-backed store.
type Config struct {
	// Region is the AWS region.
	Region string `yaml:"region"`
	// Table is the DynamoDB table name.
	Table string `yaml:"table"`
	// HashKey is the attribute name of the table's hash key. Defaults to "Id".
	HashKey string `yaml:"hash_key"`
	// AccessKey and SecretKey configure static credentials. Leave empty to use
	// the default AWS credential chain.
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	// Endpoint overrides the service endpoint, e.g. for DynamoDB Local.
	Endpoint string `yaml:"endpoint"`
	// Retry controls scan retry behavior.
	Retry RetryConfig `yaml:"retry"`
}

const defaultHashKey = "Id"

func (c Config) hashKeyOrDefault() string {
	if c.HashKey != "" {
		return c.HashKey
	}
	return defaultHashKey
}

// Validate checks that the config names a region and table.
func (c Config) Validate() error {
	if c.Region == "" {
		return errors.NewValidationError("region", "must not be empty")
	}
	if c.Table == "" {
		return errors.NewValidationError("table", "must not be empty")
	}
	return nil
}

// LoadConfig reads a Config from a YAML file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// ConfigFromEnv builds a Config from AWS_* environment variables, typically
// loaded from a .env file.
func ConfigFromEnv() Config {
	return Config{
		Region:    os.Getenv("AWS_REGION"),
		Table:     os.Getenv("AWS_DDB_TABLE_NAME"),
		HashKey:   os.Getenv("AWS_DDB_HASH_KEY"),
		AccessKey: os.Getenv("AWS_ACCESS_KEY"),
		SecretKey: os.Getenv("AWS_SECRET_KEY"),
		Endpoint:  os.Getenv("AWS_DDB_ENDPOINT"),
	}
}
