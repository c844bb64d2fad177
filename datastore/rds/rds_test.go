/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package rds

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/rdsdata"
	"github.com/aws/aws-sdk-go-v2/service/rdsdata/types"
	storeerrors "github.com/suparena/relstore/errors"
	"github.com/suparena/relstore/registry"
)

// fakeExecutor records every ExecuteStatement input and replays canned outputs.
type fakeExecutor struct {
	inputs  []*rdsdata.ExecuteStatementInput
	outputs []*rdsdata.ExecuteStatementOutput
	err     error
}

func (f *fakeExecutor) ExecuteStatement(ctx context.Context, input *rdsdata.ExecuteStatementInput, optFns ...func(*rdsdata.Options)) (*rdsdata.ExecuteStatementOutput, error) {
	f.inputs = append(f.inputs, input)
	if f.err != nil {
		return nil, f.err
	}
	if len(f.outputs) == 0 {
		return &rdsdata.ExecuteStatementOutput{}, nil
	}
	out := f.outputs[0]
	f.outputs = f.outputs[1:]
	return out, nil
}

func (f *fakeExecutor) lastInput(t *testing.T) *rdsdata.ExecuteStatementInput {
	t.Helper()
	if len(f.inputs) == 0 {
		t.Fatal("no statement was executed")
	}
	return f.inputs[len(f.inputs)-1]
}

type testUser struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Age  *int64 `json:"age"`
}

func testConfig() StoreConfig {
	return StoreConfig{
		ResourceArn: "arn:aws:rds:us-east-1:000000000000:cluster:test",
		SecretArn:   "arn:aws:secretsmanager:us-east-1:000000000000:secret:test",
		Database:    "testdb",
		Table:       "users",
	}
}

func newTestStore(t *testing.T, exec StatementExecutor) *RdsDataStore[testUser] {
	t.Helper()
	store, err := NewRdsDataStore[testUser](exec, testConfig(),
		func(u testUser) string { return u.Key },
		Ordered("age", func(u testUser) *int64 { return u.Age }, Nullable(IntCodec())),
		Exact("name", func(u testUser) string { return u.Name }, StringCodec()),
	)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	return store
}

// record builds a (key, item) result row.
func record(key, itemJSON string) []types.Field {
	return []types.Field{
		&types.FieldMemberStringValue{Value: key},
		&types.FieldMemberStringValue{Value: itemJSON},
	}
}

func paramByName(t *testing.T, params []types.SqlParameter, name string) types.SqlParameter {
	t.Helper()
	for _, p := range params {
		if p.Name != nil && *p.Name == name {
			return p
		}
	}
	t.Fatalf("parameter %q not bound; have %v", name, paramNames(params))
	return types.SqlParameter{}
}

func paramNames(params []types.SqlParameter) []string {
	names := make([]string, 0, len(params))
	for _, p := range params {
		if p.Name != nil {
			names = append(names, *p.Name)
		}
	}
	return names
}

func stringValue(t *testing.T, f types.Field) string {
	t.Helper()
	sv, ok := f.(*types.FieldMemberStringValue)
	if !ok {
		t.Fatalf("expected stringValue field, got %T", f)
	}
	return sv.Value
}

func TestNewRdsDataStore(t *testing.T) {
	t.Run("RejectsNilClient", func(t *testing.T) {
		_, err := NewRdsDataStore[testUser](nil, testConfig(), func(u testUser) string { return u.Key })
		if !storeerrors.IsValidationError(err) {
			t.Errorf("Expected validation error, got %v", err)
		}
	})

	t.Run("RejectsNilKeyFunc", func(t *testing.T) {
		_, err := NewRdsDataStore[testUser](&fakeExecutor{}, testConfig(), nil)
		if !storeerrors.IsValidationError(err) {
			t.Errorf("Expected validation error, got %v", err)
		}
	})

	t.Run("RejectsDuplicateColumn", func(t *testing.T) {
		_, err := NewRdsDataStore[testUser](&fakeExecutor{}, testConfig(),
			func(u testUser) string { return u.Key },
			Exact("name", func(u testUser) string { return u.Name }, StringCodec()),
			Exact("name", func(u testUser) string { return u.Name }, StringCodec()),
		)
		if !storeerrors.IsValidationError(err) {
			t.Errorf("Expected validation error, got %v", err)
		}
	})

	t.Run("RejectsReservedColumn", func(t *testing.T) {
		_, err := NewRdsDataStore[testUser](&fakeExecutor{}, testConfig(),
			func(u testUser) string { return u.Key },
			Exact("item", func(u testUser) string { return u.Name }, StringCodec()),
		)
		if !storeerrors.IsValidationError(err) {
			t.Errorf("Expected validation error, got %v", err)
		}
	})

	t.Run("ResolvesTableFromRegistry", func(t *testing.T) {
		registry.RegisterTableName[testUser]("registered_users")
		cfg := testConfig()
		cfg.Table = ""

		exec := &fakeExecutor{}
		store, err := NewRdsDataStore[testUser](exec, cfg, func(u testUser) string { return u.Key })
		if err != nil {
			t.Fatalf("Failed to create store: %v", err)
		}

		if _, err := store.Get(context.Background(), "u1"); err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got := *exec.lastInput(t).Sql; got != "SELECT item FROM registered_users WHERE key = :key" {
			t.Errorf("Unexpected SQL %q", got)
		}
	})

	t.Run("FailsWithoutTableName", func(t *testing.T) {
		cfg := testConfig()
		cfg.Table = ""
		type unregistered struct{ Key string }

		_, err := NewRdsDataStore[unregistered](&fakeExecutor{}, cfg, func(u unregistered) string { return u.Key })
		if !errors.Is(err, storeerrors.ErrNoTableName) {
			t.Errorf("Expected missing table name error, got %v", err)
		}
	})

	t.Run("RejectsMissingConfig", func(t *testing.T) {
		cfg := testConfig()
		cfg.Database = ""
		_, err := NewRdsDataStore[testUser](&fakeExecutor{}, cfg, func(u testUser) string { return u.Key })
		if !storeerrors.IsValidationError(err) {
			t.Errorf("Expected validation error, got %v", err)
		}
	})
}

func TestGet(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		exec := &fakeExecutor{outputs: []*rdsdata.ExecuteStatementOutput{
			{Records: [][]types.Field{{&types.FieldMemberStringValue{Value: `{"key":"u1","name":"ada","age":47}`}}}},
		}}
		store := newTestStore(t, exec)

		got, err := store.Get(context.Background(), "u1")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got == nil || got.Name != "ada" || got.Age == nil || *got.Age != 47 {
			t.Errorf("Unexpected item: %+v", got)
		}

		input := exec.lastInput(t)
		wantSQL := "SELECT item FROM users WHERE key = :key"
		if *input.Sql != wantSQL {
			t.Errorf("Expected SQL %q, got %q", wantSQL, *input.Sql)
		}
		if v := stringValue(t, paramByName(t, input.Parameters, "key").Value); v != "u1" {
			t.Errorf("Expected key parameter u1, got %q", v)
		}
		if *input.Database != "testdb" || *input.ResourceArn == "" || *input.SecretArn == "" {
			t.Error("Cluster identification fields must be set on every statement")
		}
	})

	t.Run("AbsentReturnsNil", func(t *testing.T) {
		exec := &fakeExecutor{}
		store := newTestStore(t, exec)

		got, err := store.Get(context.Background(), "missing")
		if err != nil {
			t.Fatalf("Absent key must not be an error, got %v", err)
		}
		if got != nil {
			t.Errorf("Expected nil for absent key, got %+v", got)
		}
	})

	t.Run("ExecutionFailurePropagates", func(t *testing.T) {
		boom := errors.New("cluster paused")
		store := newTestStore(t, &fakeExecutor{err: boom})

		_, err := store.Get(context.Background(), "u1")
		if !errors.Is(err, boom) {
			t.Errorf("Expected wrapped executor error, got %v", err)
		}
	})

	t.Run("MalformedBlobIsDecodeError", func(t *testing.T) {
		exec := &fakeExecutor{outputs: []*rdsdata.ExecuteStatementOutput{
			{Records: [][]types.Field{{&types.FieldMemberStringValue{Value: `{"key":`}}}},
		}}
		store := newTestStore(t, exec)

		_, err := store.Get(context.Background(), "u1")
		if !storeerrors.IsDecodeError(err) {
			t.Errorf("Expected decode error, got %v", err)
		}
	})
}

func TestGetMany(t *testing.T) {
	t.Run("PositionalAlignment", func(t *testing.T) {
		// Rows come back in an order unrelated to the requested keys.
		exec := &fakeExecutor{outputs: []*rdsdata.ExecuteStatementOutput{
			{Records: [][]types.Field{
				record("u3", `{"key":"u3","name":"lin"}`),
				record("u1", `{"key":"u1","name":"ada"}`),
			}},
		}}
		store := newTestStore(t, exec)

		results, err := store.GetMany(context.Background(), []string{"u1", "u2", "u3"})
		if err != nil {
			t.Fatalf("GetMany failed: %v", err)
		}
		if len(results) != 3 {
			t.Fatalf("Expected 3 entries, got %d", len(results))
		}
		if results[0] == nil || results[0].Name != "ada" {
			t.Errorf("Position 0 should hold u1, got %+v", results[0])
		}
		if results[1] != nil {
			t.Errorf("Position 1 should be nil for unmatched key, got %+v", results[1])
		}
		if results[2] == nil || results[2].Name != "lin" {
			t.Errorf("Position 2 should hold u3, got %+v", results[2])
		}

		input := exec.lastInput(t)
		wantSQL := "SELECT key, item FROM users WHERE key IN (:k0, :k1, :k2)"
		if *input.Sql != wantSQL {
			t.Errorf("Expected SQL %q, got %q", wantSQL, *input.Sql)
		}
		for i, key := range []string{"u1", "u2", "u3"} {
			name := fmt.Sprintf("k%d", i)
			if v := stringValue(t, paramByName(t, input.Parameters, name).Value); v != key {
				t.Errorf("Parameter %s: expected %q, got %q", name, key, v)
			}
		}
	})

	t.Run("EmptyInputSkipsExecution", func(t *testing.T) {
		exec := &fakeExecutor{}
		store := newTestStore(t, exec)

		results, err := store.GetMany(context.Background(), nil)
		if err != nil {
			t.Fatalf("GetMany failed: %v", err)
		}
		if len(results) != 0 {
			t.Errorf("Expected empty result, got %d entries", len(results))
		}
		if len(exec.inputs) != 0 {
			t.Error("No statement should be issued for an empty key list")
		}
	})
}

func TestWrites(t *testing.T) {
	age := int64(47)
	user := testUser{Key: "u1", Name: "ada", Age: &age}

	t.Run("Create", func(t *testing.T) {
		exec := &fakeExecutor{}
		store := newTestStore(t, exec)

		if err := store.Create(context.Background(), user); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		input := exec.lastInput(t)
		wantSQL := "INSERT INTO users (key, item, age, name) VALUES (:key, :item, :age, :name)"
		if *input.Sql != wantSQL {
			t.Errorf("Expected SQL %q, got %q", wantSQL, *input.Sql)
		}

		itemParam := paramByName(t, input.Parameters, "item")
		if itemParam.TypeHint != types.TypeHintJson {
			t.Error("Item parameter must carry the JSON type hint")
		}

		ageParam := paramByName(t, input.Parameters, "age")
		lv, ok := ageParam.Value.(*types.FieldMemberLongValue)
		if !ok || lv.Value != 47 {
			t.Errorf("Expected age bound as longValue 47, got %#v", ageParam.Value)
		}
	})

	t.Run("CreateBindsNullForNilIndexValue", func(t *testing.T) {
		exec := &fakeExecutor{}
		store := newTestStore(t, exec)

		if err := store.Create(context.Background(), testUser{Key: "u2", Name: "nil-age"}); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		ageParam := paramByName(t, exec.lastInput(t).Parameters, "age")
		if _, ok := ageParam.Value.(*types.FieldMemberIsNull); !ok {
			t.Errorf("Expected isNull field for nil age, got %#v", ageParam.Value)
		}
	})

	t.Run("Update", func(t *testing.T) {
		exec := &fakeExecutor{}
		store := newTestStore(t, exec)

		if err := store.Update(context.Background(), user); err != nil {
			t.Fatalf("Update failed: %v", err)
		}

		wantSQL := "UPDATE users SET item = :item, age = :age, name = :name WHERE key = :key"
		if got := *exec.lastInput(t).Sql; got != wantSQL {
			t.Errorf("Expected SQL %q, got %q", wantSQL, got)
		}
	})

	t.Run("Put", func(t *testing.T) {
		exec := &fakeExecutor{}
		store := newTestStore(t, exec)

		if err := store.Put(context.Background(), user); err != nil {
			t.Fatalf("Put failed: %v", err)
		}

		wantSQL := "INSERT INTO users (key, item, age, name) VALUES (:key, :item, :age, :name)" +
			" ON CONFLICT (key) DO UPDATE SET item = :item, age = :age, name = :name"
		if got := *exec.lastInput(t).Sql; got != wantSQL {
			t.Errorf("Expected SQL %q, got %q", wantSQL, got)
		}
	})

	t.Run("PutTwiceIssuesIdenticalStatements", func(t *testing.T) {
		exec := &fakeExecutor{}
		store := newTestStore(t, exec)

		if err := store.Put(context.Background(), user); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		if err := store.Put(context.Background(), user); err != nil {
			t.Fatalf("Repeated Put failed: %v", err)
		}
		if len(exec.inputs) != 2 || *exec.inputs[0].Sql != *exec.inputs[1].Sql {
			t.Error("Repeated Put must issue the identical statement")
		}
	})

	t.Run("ConstraintViolationPropagates", func(t *testing.T) {
		boom := errors.New("duplicate key value violates unique constraint")
		store := newTestStore(t, &fakeExecutor{err: boom})

		err := store.Create(context.Background(), user)
		if !errors.Is(err, boom) {
			t.Errorf("Expected propagated constraint failure, got %v", err)
		}
	})
}
