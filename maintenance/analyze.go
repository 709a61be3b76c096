// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package maintenance

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pgmaint/pgmaint/ident"
)

// Analyzer issues ANALYZE statements to refresh planner statistics.
type Analyzer struct {
	DB *sql.DB
}

// Run analyzes one table. ANALYZE does not take the table name as a bound
// parameter, so the name is interpolated into the statement text; the
// ident.Checked parameter type is what makes that safe — only validated
// names can reach this point.
//
// A failure here (table dropped since validation, lock timeout, missing
// permission) is an operational error from the driver, surfaced as-is.
func (a *Analyzer) Run(ctx context.Context, table ident.Checked) error {
	name := table.Name()
	if name == "" {
		// Zero-value Checked was never validated.
		return errors.New("refusing to analyze an empty table name")
	}
	if _, err := a.DB.ExecContext(ctx, "ANALYZE "+name); err != nil {
		return fmt.Errorf("analyze %s: %w", name, err)
	}
	return nil
}
