// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ident

import (
	"context"
	"fmt"

	"github.com/pgmaint/pgmaint/catalog"
)

// Unchecked is a caller-supplied table name. It carries no guarantees —
// it may name a real table, a typo, or an injection attempt.
type Unchecked string

// Checked is a table name proven to exist at validation time. The field
// is unexported so the only way to obtain a non-empty Checked is through
// Validator.Check; nothing else may promote a raw string.
//
// Existence can change between validation and use, so a Checked value is
// scoped to the request that produced it and should not be stored.
type Checked struct {
	name string
}

// Name returns the verbatim table name.
func (c Checked) Name() string {
	return c.name
}

// NotFoundError reports a name that is not a table in the given schema.
// The name is included for diagnostics only.
type NotFoundError struct {
	Schema string
	Name   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("table %q not found in schema %q", e.Name, e.Schema)
}

// Validator promotes Unchecked names to Checked ones by proving they
// exist in the catalog. It depends on the Inspector interface rather
// than a concrete database client so the promotion path can be tested
// against a fake catalog.
type Validator struct {
	Catalog catalog.Inspector
}

// Check looks the raw name up in the catalog. On success the returned
// Checked wraps the input verbatim: validation is an existence proof,
// not a sanitization pass, so the text is neither normalized nor
// escaped. A missing table yields *NotFoundError; a failed lookup
// propagates as-is and is never collapsed into "not found".
func (v *Validator) Check(ctx context.Context, schema string, raw Unchecked) (Checked, error) {
	found, err := v.Catalog.TableExists(ctx, schema, string(raw))
	if err != nil {
		return Checked{}, err
	}
	if !found {
		return Checked{}, &NotFoundError{Schema: schema, Name: string(raw)}
	}
	return Checked{name: string(raw)}, nil
}
