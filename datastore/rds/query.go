/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package rds

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rdsdata/types"
	"github.com/suparena/relstore/storagemodels"
)

// Find runs one page of a forward-only keyset scan.
//
// The generated statement selects key and item, ANDs the cursor bound
// (key > :cursor) with every active filter clause, and always orders by key;
// the cursor contract depends on that order. A requested limit L fetches L+1
// rows: the extra probe row only reveals whether a further page exists and is
// never returned.
func (d *RdsDataStore[T]) Find(ctx context.Context, query *storagemodels.Query) (*storagemodels.QueryResult[T], error) {
	if query == nil {
		query = &storagemodels.Query{}
	}

	var where []string
	var params []types.SqlParameter

	if query.Cursor != "" {
		where = append(where, "key > :cursor")
		params = append(params, types.SqlParameter{
			Name:  aws.String("cursor"),
			Value: &types.FieldMemberStringValue{Value: query.Cursor},
		})
	}

	// Filter fields resolve against the declared indexes, in declaration
	// order; filter entries without a matching index are ignored.
	for _, idx := range d.indexes {
		pred, ok := query.Filter[idx.Column()]
		if !ok {
			continue
		}
		clauses, err := idx.Clauses(pred)
		if err != nil {
			return nil, err
		}
		for _, c := range clauses {
			where = append(where, c.SQL)
			params = append(params, c.Parameters...)
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "SELECT key, item FROM %s", d.config.Table)
	if len(where) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(where, " AND "))
	}
	sb.WriteString(" ORDER BY key")
	if query.Limit > 0 {
		fmt.Fprintf(&sb, " LIMIT %d", query.Limit+1)
	}

	out, err := d.execute(ctx, sb.String(), params)
	if err != nil {
		return nil, fmt.Errorf("ExecuteStatement error: %w", err)
	}

	records := out.Records
	more := query.Limit > 0 && int32(len(records)) > query.Limit
	if more {
		records = records[:query.Limit]
	}

	result := &storagemodels.QueryResult[T]{}
	for _, record := range records {
		key, item, err := decodeKeyedRecord[T](record)
		if err != nil {
			return nil, err
		}
		result.Items = append(result.Items, *item)
		result.Edges = append(result.Edges, storagemodels.Edge[T]{Cursor: key, Node: *item})
	}

	if more {
		last := result.Edges[len(result.Edges)-1].Cursor
		result.Cursor = &last
	}
	return result, nil
}
