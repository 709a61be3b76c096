// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package maintenance executes the table-maintenance statement.

Analyzer.Run issues ANALYZE for a single validated table name. Its
parameter is ident.Checked, not a string: the type signature is the
enforcement point for the rule that only names proven to exist may be
interpolated into statement text.

Validation and execution are not atomic — a table can be dropped in
between. That race is accepted; it surfaces as a driver error from Run,
distinguishable from the validator's not-found error.
*/
package maintenance
