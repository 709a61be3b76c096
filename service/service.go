// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package service

import (
	"context"

	"github.com/pgmaint/pgmaint/catalog"
	"github.com/pgmaint/pgmaint/ident"
)

// Checker promotes an unchecked table name to a checked one. Satisfied
// by *ident.Validator.
type Checker interface {
	Check(ctx context.Context, schema string, raw ident.Unchecked) (ident.Checked, error)
}

// Runner executes the maintenance statement for a checked name.
// Satisfied by *maintenance.Analyzer.
type Runner interface {
	Run(ctx context.Context, table ident.Checked) error
}

// Mutation implements the write operations: analyze one table or a batch.
type Mutation struct {
	checker Checker
	runner  Runner
}

func NewMutation(checker Checker, runner Runner) *Mutation {
	return &Mutation{checker: checker, runner: runner}
}

// AnalyzeByTableName validates name against schema and, if it checks
// out, analyzes it. Returns true on success; every failure — unknown
// name, catalog fault, execution fault — is returned as an error, never
// as false.
func (m *Mutation) AnalyzeByTableName(ctx context.Context, schema, name string) (bool, error) {
	checked, err := m.checker.Check(ctx, schema, ident.Unchecked(name))
	if err != nil {
		return false, err
	}
	if err := m.runner.Run(ctx, checked); err != nil {
		return false, err
	}
	return true, nil
}

// AnalyzeTables validates and analyzes each name strictly in the given
// order, one at a time. The first failure aborts the remaining names and
// propagates; there is no partial-success report and nothing to roll
// back, since an already-completed ANALYZE has no harmful side effect.
func (m *Mutation) AnalyzeTables(ctx context.Context, schema string, names []string) (bool, error) {
	for _, name := range names {
		checked, err := m.checker.Check(ctx, schema, ident.Unchecked(name))
		if err != nil {
			return false, err
		}
		if err := m.runner.Run(ctx, checked); err != nil {
			return false, err
		}
	}
	return true, nil
}

// Query implements the read operation: table-name discovery.
type Query struct {
	catalog catalog.Lister
}

func NewQuery(cat catalog.Lister) *Query {
	return &Query{catalog: cat}
}

// TableNames lists tables in schema matching pattern. A nil schema falls
// back to the catalog's default namespace and a nil pattern to the
// match-everything wildcard. The pattern is a LIKE filter passed through
// as a bound parameter — this is read-only discovery against the
// existence source of truth, so no per-name validation applies.
func (q *Query) TableNames(ctx context.Context, schema, pattern *string) ([]string, error) {
	s := q.catalog.DefaultSchema()
	if schema != nil {
		s = *schema
	}
	p := "%"
	if pattern != nil {
		p = *pattern
	}
	return q.catalog.TableNames(ctx, s, p)
}
