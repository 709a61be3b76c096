// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package catalog answers questions about what exists in a database, using
the database's own metadata views as the source of truth.

# Backends

Two implementations cover the supported engines:

  - Postgres: queries information_schema.tables
  - SQLite: queries pragma_table_list

Both issue exactly two statement shapes: an exact existence lookup
(parameterized on schema and name) and a LIKE pattern lookup
(parameterized on schema and pattern). Nothing here ever interpolates
caller input into SQL text.

# Existence Discipline

TableExists keeps three outcomes apart:

	exists, err := cat.TableExists(ctx, "public", "orders")

(true, nil) means the table exists; (false, nil) means it does not, which
is an expected answer and not an error; a non-nil error means the lookup
itself failed. A lookup that returns more than one row, or a malformed
marker value, fails with UnexpectedStateError rather than pretending the
table is missing.
*/
package catalog
