// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package gql

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/pgmaint/pgmaint/ident"
	"github.com/pgmaint/pgmaint/service"
)

// fakeInspector is an in-memory existence check for the validator.
type fakeInspector struct {
	tables map[string]bool
}

func (f *fakeInspector) TableExists(ctx context.Context, schema, name string) (bool, error) {
	return f.tables[schema+"."+name], nil
}

// fakeLister serves a fixed catalog listing.
type fakeLister struct {
	names []string
}

func (f *fakeLister) TableNames(ctx context.Context, schema, pattern string) ([]string, error) {
	return f.names, nil
}

func (f *fakeLister) DefaultSchema() string { return "public" }

// spyRunner records analyzed names in order.
type spyRunner struct {
	mu    sync.Mutex
	names []string
}

func (s *spyRunner) Run(ctx context.Context, table ident.Checked) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.names = append(s.names, table.Name())
	return nil
}

func newTestSchema(t *testing.T, tables map[string]bool, listing []string, spy *spyRunner) *graphql.Schema {
	t.Helper()

	resolver := NewResolver(
		service.NewQuery(&fakeLister{names: listing}),
		service.NewMutation(&ident.Validator{Catalog: &fakeInspector{tables: tables}}, spy),
	)
	schema, err := NewSchema(resolver)
	if err != nil {
		t.Fatalf("Failed to build schema: %v", err)
	}
	return schema
}

func TestNewSchema(t *testing.T) {
	// The SDL and the resolver must agree; a drift between them fails here
	newTestSchema(t, nil, nil, &spyRunner{})
}

func TestQueryTableNames(t *testing.T) {
	schema := newTestSchema(t, nil, []string{"user_accounts", "user_sessions"}, &spyRunner{})

	resp := schema.Exec(context.Background(),
		`query($p: String) { tableNames(pattern: $p) }`, "",
		map[string]interface{}{"p": "user_%"})
	if len(resp.Errors) != 0 {
		t.Fatalf("Expected no errors, got %v", resp.Errors)
	}

	var data struct {
		TableNames []string `json:"tableNames"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("Failed to decode data: %v", err)
	}
	if len(data.TableNames) != 2 || data.TableNames[0] != "user_accounts" {
		t.Errorf("Expected fixture listing, got %v", data.TableNames)
	}
}

func TestMutationAnalyzeByTableName(t *testing.T) {
	spy := &spyRunner{}
	schema := newTestSchema(t, map[string]bool{"public.orders": true}, nil, spy)

	resp := schema.Exec(context.Background(),
		`mutation { analyzeByTableName(schema: "public", name: "orders") }`, "", nil)
	if len(resp.Errors) != 0 {
		t.Fatalf("Expected no errors, got %v", resp.Errors)
	}

	var data struct {
		AnalyzeByTableName bool `json:"analyzeByTableName"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("Failed to decode data: %v", err)
	}
	if !data.AnalyzeByTableName {
		t.Error("Expected analyzeByTableName to be true")
	}
	if len(spy.names) != 1 || spy.names[0] != "orders" {
		t.Errorf("Expected exactly one analyze of 'orders', got %v", spy.names)
	}
}

func TestMutationAnalyzeByTableName_ErrorEnvelope(t *testing.T) {
	spy := &spyRunner{}
	schema := newTestSchema(t, map[string]bool{"public.orders": true}, nil, spy)

	resp := schema.Exec(context.Background(),
		`mutation { analyzeByTableName(schema: "public", name: "nope") }`, "", nil)
	if len(resp.Errors) == 0 {
		t.Fatal("Expected an error in the response envelope")
	}
	if !strings.Contains(resp.Errors[0].Error(), "nope") {
		t.Errorf("Expected error to carry the rejected name, got '%s'", resp.Errors[0].Error())
	}
	if len(spy.names) != 0 {
		t.Errorf("Expected zero analyze calls, got %v", spy.names)
	}
}

func TestMutationAnalyzeTables(t *testing.T) {
	spy := &spyRunner{}
	schema := newTestSchema(t, map[string]bool{
		"public.t1": true,
		"public.t2": true,
	}, nil, spy)

	resp := schema.Exec(context.Background(),
		`mutation($names: [String!]!) { analyzeTables(schema: "public", names: $names) }`, "",
		map[string]interface{}{"names": []interface{}{"t1", "t2"}})
	if len(resp.Errors) != 0 {
		t.Fatalf("Expected no errors, got %v", resp.Errors)
	}

	if len(spy.names) != 2 || spy.names[0] != "t1" || spy.names[1] != "t2" {
		t.Errorf("Expected ordered analyzes [t1 t2], got %v", spy.names)
	}
}

func TestMutationAnalyzeTables_AbortsOnFailure(t *testing.T) {
	spy := &spyRunner{}
	schema := newTestSchema(t, map[string]bool{
		"public.t1": true,
		"public.t3": true, // t2 missing
	}, nil, spy)

	resp := schema.Exec(context.Background(),
		`mutation($names: [String!]!) { analyzeTables(schema: "public", names: $names) }`, "",
		map[string]interface{}{"names": []interface{}{"t1", "t2", "t3"}})
	if len(resp.Errors) == 0 {
		t.Fatal("Expected an error for the unknown table")
	}

	// t1 ran, t2 failed, t3 never attempted
	if len(spy.names) != 1 || spy.names[0] != "t1" {
		t.Errorf("Expected exactly ['t1'] analyzed, got %v", spy.names)
	}
}

func TestWriteSDL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pgmaint.graphql")

	if err := WriteSDL(path); err != nil {
		t.Fatalf("Expected write to succeed, got: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read artifact: %v", err)
	}
	if string(content) != SDL {
		t.Error("Expected artifact to contain the schema SDL")
	}
}

func TestWriteSDL_BadPath(t *testing.T) {
	err := WriteSDL(filepath.Join(t.TempDir(), "missing", "pgmaint.graphql"))
	if err == nil {
		t.Fatal("Expected write to an absent directory to fail")
	}
}
