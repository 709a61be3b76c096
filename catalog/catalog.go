// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import "context"

// Inspector answers whether a table exists in a schema, using the
// database's own metadata. The lookup is an exact, case-sensitive match
// on both schema and name.
//
// The three outcomes are distinct and callers must keep them distinct:
// (true, nil) the table exists; (false, nil) the table does not exist;
// (false, err) the lookup itself failed. "Not found" is an expected
// answer, never an error.
type Inspector interface {
	TableExists(ctx context.Context, schema, name string) (bool, error)
}

// Lister enumerates table names in a schema matching a SQL LIKE pattern
// (% and _ wildcards). DefaultSchema is the namespace used when the
// caller does not name one.
type Lister interface {
	TableNames(ctx context.Context, schema, pattern string) ([]string, error)
	DefaultSchema() string
}
