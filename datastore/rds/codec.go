/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package rds

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/rdsdata/types"
	storeerrors "github.com/suparena/relstore/errors"
)

// Codec maps one typed Go value onto the RDS Data API wire union
// (stringValue / longValue / doubleValue / booleanValue / isNull) and carries
// the SQL type its column is declared with.
//
// Codecs are total over their declared domain: Encode never fails. The
// untyped path used for filter values reports a validation error when the
// caller supplies a value of the wrong type.
type Codec[V any] struct {
	sqlType   string
	encode    func(V) types.Field
	encodeAny func(any) (types.Field, error)
}

func newCodec[V any](sqlType string, encode func(V) types.Field) Codec[V] {
	return Codec[V]{
		sqlType: sqlType,
		encode:  encode,
		encodeAny: func(v any) (types.Field, error) {
			if v == nil {
				return nullField(), nil
			}
			typed, ok := v.(V)
			if !ok {
				var want V
				return nil, storeerrors.NewValidationError("", fmt.Sprintf("expected %T, got %T", want, v))
			}
			return encode(typed), nil
		},
	}
}

func nullField() types.Field {
	return &types.FieldMemberIsNull{Value: true}
}

// SQLType returns the schema type Setup declares for columns bound to this codec.
func (c Codec[V]) SQLType() string { return c.sqlType }

// Encode converts a value into a bound-parameter wire field.
func (c Codec[V]) Encode(v V) types.Field { return c.encode(v) }

// WithSQLType returns a copy of the codec declaring a different column type,
// e.g. StringCodec().WithSQLType("VARCHAR(64)").
func (c Codec[V]) WithSQLType(sqlType string) Codec[V] {
	c.sqlType = sqlType
	return c
}

// StringCodec encodes strings as stringValue fields, declared TEXT.
func StringCodec() Codec[string] {
	return newCodec("TEXT", func(v string) types.Field {
		return &types.FieldMemberStringValue{Value: v}
	})
}

// IntCodec encodes int64 values as longValue fields, declared BIGINT.
func IntCodec() Codec[int64] {
	return newCodec("BIGINT", func(v int64) types.Field {
		return &types.FieldMemberLongValue{Value: v}
	})
}

// FloatCodec encodes float64 values as doubleValue fields, declared DOUBLE PRECISION.
func FloatCodec() Codec[float64] {
	return newCodec("DOUBLE PRECISION", func(v float64) types.Field {
		return &types.FieldMemberDoubleValue{Value: v}
	})
}

// BoolCodec encodes bools as booleanValue fields, declared BOOLEAN.
func BoolCodec() Codec[bool] {
	return newCodec("BOOLEAN", func(v bool) types.Field {
		return &types.FieldMemberBooleanValue{Value: v}
	})
}

// Nullable wraps a codec so that nil encodes as an explicit SQL NULL and any
// other value is delegated to the wrapped codec. Filter values may be given
// either as V or *V.
func Nullable[V any](inner Codec[V]) Codec[*V] {
	c := Codec[*V]{
		sqlType: inner.sqlType,
		encode: func(v *V) types.Field {
			if v == nil {
				return nullField()
			}
			return inner.encode(*v)
		},
	}
	c.encodeAny = func(v any) (types.Field, error) {
		if v == nil {
			return nullField(), nil
		}
		if typed, ok := v.(*V); ok {
			return c.encode(typed), nil
		}
		return inner.encodeAny(v)
	}
	return c
}
