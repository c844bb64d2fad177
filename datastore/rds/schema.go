/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package rds

import (
	"context"
	"fmt"
	"strings"
)

// Setup creates the backing table: a bounded-length string primary key, the
// JSONB item blob, and one column per declared index typed exactly per its
// declaration. The column set matches what Create/Update/Put write because
// both derive from the same descriptor collection.
func (d *RdsDataStore[T]) Setup(ctx context.Context) error {
	columns := []string{
		"key VARCHAR(191) PRIMARY KEY",
		"item JSONB NOT NULL",
	}
	for _, idx := range d.indexes {
		columns = append(columns, fmt.Sprintf("%s %s", idx.Column(), idx.ColumnType()))
	}

	sql := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)",
		d.config.Table, strings.Join(columns, ", "))
	if _, err := d.execute(ctx, sql, nil); err != nil {
		return fmt.Errorf("ExecuteStatement error: %w", err)
	}
	return nil
}

// Teardown drops the backing table.
func (d *RdsDataStore[T]) Teardown(ctx context.Context) error {
	sql := fmt.Sprintf("DROP TABLE IF EXISTS %s", d.config.Table)
	if _, err := d.execute(ctx, sql, nil); err != nil {
		return fmt.Errorf("ExecuteStatement error: %w", err)
	}
	return nil
}

// Clear deletes every row while keeping the table.
func (d *RdsDataStore[T]) Clear(ctx context.Context) error {
	sql := fmt.Sprintf("DELETE FROM %s", d.config.Table)
	if _, err := d.execute(ctx, sql, nil); err != nil {
		return fmt.Errorf("ExecuteStatement error: %w", err)
	}
	return nil
}
