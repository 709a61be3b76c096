// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ident separates untrusted table names from validated ones at the
type level.

# Trust States

An Unchecked value is whatever the caller sent. A Checked value has been
proven, by a catalog lookup, to name an existing table:

	v := &ident.Validator{Catalog: cat}
	checked, err := v.Check(ctx, "public", ident.Unchecked(name))

Checked has an unexported field and no constructor outside this package,
so downstream code that accepts a Checked (notably the maintenance
executor, which interpolates the name into statement text) can rely on
the existence proof having happened.

# Why Existence, Not Escaping

The ANALYZE statement does not accept its table name as a bound
parameter, so the name must be spliced into SQL text. The defense is not
quoting or pattern-matching the input but proving the exact string is
already a table name the database itself reports. Check therefore
returns the input verbatim on success and rejects everything else with
NotFoundError.

Schema names are treated as trusted scope, not validated here; they only
ever travel as bound parameters in catalog queries.
*/
package ident
