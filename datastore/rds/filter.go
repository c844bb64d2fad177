/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package rds

import (
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rdsdata/types"
	storeerrors "github.com/suparena/relstore/errors"
	"github.com/suparena/relstore/storagemodels"
)

// Clause is one SQL predicate fragment plus the parameters it binds.
// Parameter names are deterministic per field and comparator ("age__gt");
// multi-valued comparators get positional suffixes ("name__in_0", …).
type Clause struct {
	SQL        string
	Parameters []types.SqlParameter
}

type anyEncoder func(any) (types.Field, error)

func comparisonClause(column, comparator, op string, encode anyEncoder, value any) (Clause, error) {
	field, err := encode(value)
	if err != nil {
		return Clause{}, fmt.Errorf("filter %s %s: %w", column, comparator, err)
	}
	name := column + "__" + comparator
	return Clause{
		SQL: fmt.Sprintf("%s %s :%s", column, op, name),
		Parameters: []types.SqlParameter{
			{Name: aws.String(name), Value: field},
		},
	}, nil
}

func inClause(column string, encode anyEncoder, values []any) (Clause, error) {
	if len(values) == 0 {
		return Clause{}, storeerrors.NewValidationError(column, "in comparator requires at least one value")
	}

	// The Data API has no array-typed parameters; each value becomes its own
	// named scalar parameter, preserving input order.
	placeholders := make([]string, 0, len(values))
	params := make([]types.SqlParameter, 0, len(values))
	for i, v := range values {
		field, err := encode(v)
		if err != nil {
			return Clause{}, fmt.Errorf("filter %s in[%d]: %w", column, i, err)
		}
		name := fmt.Sprintf("%s__in_%d", column, i)
		placeholders = append(placeholders, ":"+name)
		params = append(params, types.SqlParameter{Name: aws.String(name), Value: field})
	}

	return Clause{
		SQL:        fmt.Sprintf("%s IN (%s)", column, strings.Join(placeholders, ", ")),
		Parameters: params,
	}, nil
}

// exactClauses resolves the comparators an exact-match field exposes:
// eq, ne and in. Other comparators on the predicate contribute nothing.
func exactClauses(column string, encode anyEncoder, p storagemodels.Predicate) ([]Clause, error) {
	var clauses []Clause

	if p.Eq != nil {
		c, err := comparisonClause(column, "eq", "=", encode, p.Eq)
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, c)
	}
	if p.Ne != nil {
		c, err := comparisonClause(column, "ne", "<>", encode, p.Ne)
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, c)
	}
	if p.In != nil {
		c, err := inClause(column, encode, p.In)
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, c)
	}

	return clauses, nil
}

// orderedClauses adds the range comparators on top of the exact-match set.
func orderedClauses(column string, encode anyEncoder, p storagemodels.Predicate) ([]Clause, error) {
	clauses, err := exactClauses(column, encode, p)
	if err != nil {
		return nil, err
	}

	ranges := []struct {
		comparator string
		op         string
		value      any
	}{
		{"gt", ">", p.Gt},
		{"gte", ">=", p.Gte},
		{"lt", "<", p.Lt},
		{"lte", "<=", p.Lte},
	}
	for _, r := range ranges {
		if r.value == nil {
			continue
		}
		c, err := comparisonClause(column, r.comparator, r.op, encode, r.value)
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, c)
	}

	return clauses, nil
}
