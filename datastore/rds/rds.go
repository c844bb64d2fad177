/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package rds

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/rdsdata"
	"github.com/aws/aws-sdk-go-v2/service/rdsdata/types"

	storeerrors "github.com/suparena/relstore/errors"
	"github.com/suparena/relstore/registry"
)

// StatementExecutor is the slice of the RDS Data API client the store uses.
// Every store operation issues exactly one statement through it; transport
// failures, retries and timeouts are entirely its concern and propagate to
// the caller unmodified.
type StatementExecutor interface {
	ExecuteStatement(ctx context.Context, params *rdsdata.ExecuteStatementInput, optFns ...func(*rdsdata.Options)) (*rdsdata.ExecuteStatementOutput, error)
}

// RdsDataStore implements datastore.DataStore[T] on one Aurora PostgreSQL
// table reached through the RDS Data API. The table holds the item's string
// primary key, the item as a JSON blob, and one column per declared index.
type RdsDataStore[T any] struct {
	client  StatementExecutor
	config  StoreConfig
	key     func(T) string
	indexes []Index[T]
}

// NewRDSDataClient initializes an RDS Data API client using AWS credentials.
func NewRDSDataClient(awsAccessKey, awsSecretKey, awsRegion string) (*rdsdata.Client, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(awsRegion),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(awsAccessKey, awsSecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return rdsdata.NewFromConfig(cfg), nil
}

// NewRdsDataStore constructs a new RdsDataStore for type T.
//
// key extracts the primary key from an item. indexes declare the secondary
// columns, in the order they appear in generated column lists; the collection
// is fixed for the store's lifetime. When config.Table is empty the table
// name is resolved from the registry once, here.
func NewRdsDataStore[T any](client StatementExecutor, cfg StoreConfig, key func(T) string, indexes ...Index[T]) (*RdsDataStore[T], error) {
	if client == nil {
		return nil, storeerrors.NewValidationError("client", "statement executor is required")
	}
	if key == nil {
		return nil, storeerrors.NewValidationError("key", "key extractor is required")
	}
	if cfg.Table == "" {
		name, ok := registry.TableNameFor[T]()
		if !ok {
			return nil, fmt.Errorf("%w: %T", storeerrors.ErrNoTableName, *new(T))
		}
		cfg.Table = name
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seen := map[string]bool{"key": true, "item": true}
	for _, idx := range indexes {
		col := idx.Column()
		if col == "" {
			return nil, storeerrors.NewValidationError("column", "index column name is required")
		}
		if seen[col] {
			return nil, storeerrors.NewValidationError(col, "duplicate index column")
		}
		seen[col] = true
	}

	return &RdsDataStore[T]{
		client:  client,
		config:  cfg,
		key:     key,
		indexes: indexes,
	}, nil
}

// execute sends one statement to the cluster. All store operations funnel
// through here; there is deliberately no retry or backoff.
func (d *RdsDataStore[T]) execute(ctx context.Context, sql string, params []types.SqlParameter) (*rdsdata.ExecuteStatementOutput, error) {
	return d.client.ExecuteStatement(ctx, &rdsdata.ExecuteStatementInput{
		ResourceArn: aws.String(d.config.ResourceArn),
		SecretArn:   aws.String(d.config.SecretArn),
		Database:    aws.String(d.config.Database),
		Sql:         aws.String(sql),
		Parameters:  params,
	})
}

// Get retrieves a single item by its primary key.
// It returns a pointer to the item of type T, or nil if no row matches.
func (d *RdsDataStore[T]) Get(ctx context.Context, key string) (*T, error) {
	sql := fmt.Sprintf("SELECT item FROM %s WHERE key = :key", d.config.Table)
	out, err := d.execute(ctx, sql, []types.SqlParameter{
		{Name: aws.String("key"), Value: &types.FieldMemberStringValue{Value: key}},
	})
	if err != nil {
		return nil, fmt.Errorf("ExecuteStatement error: %w", err)
	}
	if len(out.Records) == 0 {
		// Not found: return nil, nil
		return nil, nil
	}

	item, err := decodeItem[T](key, out.Records[0])
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetMany retrieves the items for all requested keys with one statement.
// The result is positionally aligned to keys, with nil entries for keys that
// matched no row. Returned rows are re-indexed by key first, since the
// engine does not guarantee any row order.
func (d *RdsDataStore[T]) GetMany(ctx context.Context, keys []string) ([]*T, error) {
	results := make([]*T, len(keys))
	if len(keys) == 0 {
		return results, nil
	}

	placeholders := make([]string, len(keys))
	params := make([]types.SqlParameter, len(keys))
	for i, k := range keys {
		name := fmt.Sprintf("k%d", i)
		placeholders[i] = ":" + name
		params[i] = types.SqlParameter{Name: aws.String(name), Value: &types.FieldMemberStringValue{Value: k}}
	}

	sql := fmt.Sprintf("SELECT key, item FROM %s WHERE key IN (%s)",
		d.config.Table, strings.Join(placeholders, ", "))
	out, err := d.execute(ctx, sql, params)
	if err != nil {
		return nil, fmt.Errorf("ExecuteStatement error: %w", err)
	}

	byKey := make(map[string]*T, len(out.Records))
	for _, record := range out.Records {
		key, item, err := decodeKeyedRecord[T](record)
		if err != nil {
			return nil, err
		}
		byKey[key] = item
	}
	for i, k := range keys {
		results[i] = byKey[k]
	}
	return results, nil
}

// Create inserts a new item. It never upserts: a primary-key collision
// surfaces as the propagated execution failure of the INSERT.
func (d *RdsDataStore[T]) Create(ctx context.Context, item T) error {
	params, err := d.writeParameters(item)
	if err != nil {
		return err
	}

	columns, placeholders, _ := d.writeColumns()
	sql := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		d.config.Table, strings.Join(columns, ", "), strings.Join(placeholders, ", "))
	if _, err := d.execute(ctx, sql, params); err != nil {
		return fmt.Errorf("ExecuteStatement error: %w", err)
	}
	return nil
}

// Update overwrites the item blob and every index column for the matching
// key. Observably a no-op when no row matches; it never inserts.
func (d *RdsDataStore[T]) Update(ctx context.Context, item T) error {
	params, err := d.writeParameters(item)
	if err != nil {
		return err
	}

	_, _, assignments := d.writeColumns()
	sql := fmt.Sprintf("UPDATE %s SET %s WHERE key = :key",
		d.config.Table, strings.Join(assignments, ", "))
	if _, err := d.execute(ctx, sql, params); err != nil {
		return fmt.Errorf("ExecuteStatement error: %w", err)
	}
	return nil
}

// Put upserts the item in a single atomic statement: insert, or on key
// conflict overwrite the blob and every index column. Idempotent under
// repetition.
func (d *RdsDataStore[T]) Put(ctx context.Context, item T) error {
	params, err := d.writeParameters(item)
	if err != nil {
		return err
	}

	columns, placeholders, assignments := d.writeColumns()
	sql := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (key) DO UPDATE SET %s",
		d.config.Table, strings.Join(columns, ", "), strings.Join(placeholders, ", "),
		strings.Join(assignments, ", "))
	if _, err := d.execute(ctx, sql, params); err != nil {
		return fmt.Errorf("ExecuteStatement error: %w", err)
	}
	return nil
}

// writeColumns returns the column list, placeholder list and SET assignments
// shared by Create, Update and Put: key, item, then every index column in
// declaration order. Update's assignments exclude the key.
func (d *RdsDataStore[T]) writeColumns() (columns, placeholders, assignments []string) {
	columns = []string{"key", "item"}
	placeholders = []string{":key", ":item"}
	assignments = []string{"item = :item"}
	for _, idx := range d.indexes {
		col := idx.Column()
		columns = append(columns, col)
		placeholders = append(placeholders, ":"+col)
		assignments = append(assignments, fmt.Sprintf("%s = :%s", col, col))
	}
	return columns, placeholders, assignments
}

// writeParameters binds the key, the JSON item blob and every index column,
// in the same order writeColumns lists them.
func (d *RdsDataStore[T]) writeParameters(item T) ([]types.SqlParameter, error) {
	blob, err := json.Marshal(item)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal item: %w", err)
	}

	params := []types.SqlParameter{
		{Name: aws.String("key"), Value: &types.FieldMemberStringValue{Value: d.key(item)}},
		{Name: aws.String("item"), Value: &types.FieldMemberStringValue{Value: string(blob)}, TypeHint: types.TypeHintJson},
	}
	for _, idx := range d.indexes {
		params = append(params, types.SqlParameter{
			Name:  aws.String(idx.Column()),
			Value: idx.Value(item),
		})
	}
	return params, nil
}

// decodeItem decodes a single-column (item) record into T.
func decodeItem[T any](key string, record []types.Field) (T, error) {
	var item T
	if len(record) < 1 {
		return item, storeerrors.NewDecodeError(key, fmt.Errorf("empty record"))
	}
	blob, ok := record[0].(*types.FieldMemberStringValue)
	if !ok {
		return item, storeerrors.NewDecodeError(key, fmt.Errorf("unexpected wire field %T for item column", record[0]))
	}
	if err := json.Unmarshal([]byte(blob.Value), &item); err != nil {
		return item, storeerrors.NewDecodeError(key, err)
	}
	return item, nil
}

// decodeKeyedRecord decodes a (key, item) record.
func decodeKeyedRecord[T any](record []types.Field) (string, *T, error) {
	if len(record) < 2 {
		return "", nil, storeerrors.NewDecodeError("", fmt.Errorf("expected key and item columns, got %d", len(record)))
	}
	keyField, ok := record[0].(*types.FieldMemberStringValue)
	if !ok {
		return "", nil, storeerrors.NewDecodeError("", fmt.Errorf("unexpected wire field %T for key column", record[0]))
	}
	item, err := decodeItem[T](keyField.Value, record[1:])
	if err != nil {
		return "", nil, err
	}
	return keyField.Value, &item, nil
}
