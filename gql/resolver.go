// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package gql

import (
	"context"

	"github.com/pgmaint/pgmaint/service"
)

// Resolver is the root resolver for both the query and mutation types.
// It does no work of its own; every field delegates to a service root,
// and service errors surface unchanged in the response's errors list.
type Resolver struct {
	query    *service.Query
	mutation *service.Mutation
}

func NewResolver(q *service.Query, m *service.Mutation) *Resolver {
	return &Resolver{query: q, mutation: m}
}

func (r *Resolver) TableNames(ctx context.Context, args struct{ Schema, Pattern *string }) ([]string, error) {
	return r.query.TableNames(ctx, args.Schema, args.Pattern)
}

func (r *Resolver) AnalyzeByTableName(ctx context.Context, args struct{ Schema, Name string }) (bool, error) {
	return r.mutation.AnalyzeByTableName(ctx, args.Schema, args.Name)
}

func (r *Resolver) AnalyzeTables(ctx context.Context, args struct {
	Schema string
	Names  []string
}) (bool, error) {
	return r.mutation.AnalyzeTables(ctx, args.Schema, args.Names)
}
