/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package rds

import (
	"fmt"
	"os"

	storeerrors "github.com/suparena/relstore/errors"
	"gopkg.in/yaml.v3"
)

// StoreConfig identifies the Aurora cluster, database and table a store
// operates on. Every statement the store issues carries the three ARN/name
// fields; the table name is baked into the generated SQL.
type StoreConfig struct {
	ResourceArn string `yaml:"resourceArn"`
	SecretArn   string `yaml:"secretArn"`
	Database    string `yaml:"database"`
	Table       string `yaml:"table"`
}

// Validate reports the first missing required field.
func (c StoreConfig) Validate() error {
	switch {
	case c.ResourceArn == "":
		return storeerrors.NewValidationError("resourceArn", "required")
	case c.SecretArn == "":
		return storeerrors.NewValidationError("secretArn", "required")
	case c.Database == "":
		return storeerrors.NewValidationError("database", "required")
	case c.Table == "":
		return storeerrors.NewValidationError("table", "required")
	}
	return nil
}

// LoadConfig reads a StoreConfig from a YAML file:
//
//	resourceArn: arn:aws:rds:us-east-1:123456789012:cluster:app
//	secretArn: arn:aws:secretsmanager:us-east-1:123456789012:secret:app
//	database: app
//	table: users
func LoadConfig(path string) (*StoreConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	var cfg StoreConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &cfg, nil
}
