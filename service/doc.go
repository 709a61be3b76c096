// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package service holds the two operation roots behind the API.

# Mutation

	m := service.NewMutation(validator, analyzer)
	ok, err := m.AnalyzeByTableName(ctx, "public", "orders")
	ok, err = m.AnalyzeTables(ctx, "public", []string{"a", "b"})

Batch analysis runs sequentially in the given order and aborts on the
first error. Operations either fully succeed (true) or fail with an
error; false is never returned alongside a nil error.

# Query

	q := service.NewQuery(cat)
	names, err := q.TableNames(ctx, nil, nil) // default schema, "%" pattern

Both roots take their collaborators as interfaces (Checker, Runner,
catalog.Lister), so tests drive them with fakes and spies instead of a
live database.
*/
package service
