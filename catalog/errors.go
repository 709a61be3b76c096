// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import "fmt"

// UnexpectedStateError reports an existence lookup that returned something
// other than zero or one well-formed rows. It signals a broken assumption
// about the metadata views, not a missing table, so it is deliberately a
// different type from the not-found path.
type UnexpectedStateError struct {
	Schema string
	Name   string
	Detail string
}

func (e *UnexpectedStateError) Error() string {
	return fmt.Sprintf("unexpected catalog state for %s.%s: %s", e.Schema, e.Name, e.Detail)
}
