// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package gql

import (
	"fmt"
	"os"

	graphql "github.com/graph-gophers/graphql-go"
)

// SDL is the full shape of the API: one query root, one mutation root,
// no subscriptions. It doubles as the schema artifact written to disk at
// startup.
const SDL = `schema {
	query: Query
	mutation: Mutation
}

type Query {
	"""
	Table names in a schema matching a SQL LIKE pattern.
	Defaults: the database's default schema, pattern "%".
	"""
	tableNames(schema: String, pattern: String): [String!]!
}

type Mutation {
	"""
	Refresh planner statistics for one table. The name must exist in the
	given schema or the operation fails.
	"""
	analyzeByTableName(schema: String!, name: String!): Boolean!

	"""
	Refresh planner statistics for several tables, in order. The first
	failure aborts the remaining names; completed runs are not undone.
	"""
	analyzeTables(schema: String!, names: [String!]!): Boolean!
}
`

// NewSchema parses the SDL and binds it to the resolver.
func NewSchema(r *Resolver) (*graphql.Schema, error) {
	s, err := graphql.ParseSchema(SDL, r)
	if err != nil {
		return nil, fmt.Errorf("parsing schema: %w", err)
	}
	return s, nil
}

// WriteSDL writes the schema artifact. Nothing in the service reads it
// back; it exists for clients and tooling.
func WriteSDL(path string) error {
	if err := os.WriteFile(path, []byte(SDL), 0o644); err != nil {
		return fmt.Errorf("writing schema artifact: %w", err)
	}
	return nil
}
