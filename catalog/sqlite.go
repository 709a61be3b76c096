// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"context"
	"database/sql"
	"fmt"
)

// SQLite reads table metadata from pragma_table_list. Schemas map to
// SQLite's attached-database names ("main" unless the caller attached
// others). Internal sqlite_* tables are excluded from pattern listings.
//
// Note: SQLite's LIKE is case-insensitive for ASCII unless the connection
// sets case_sensitive_like; exact-match existence lookups use = and stay
// case-sensitive either way.
type SQLite struct {
	db *sql.DB
}

func NewSQLite(db *sql.DB) *SQLite {
	return &SQLite{db: db}
}

func (c *SQLite) TableExists(ctx context.Context, schema, name string) (bool, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT 1
		FROM pragma_table_list
		WHERE schema = ? AND name = ? AND type = 'table'
	`, schema, name)
	if err != nil {
		return false, fmt.Errorf("table existence lookup: %w", err)
	}
	defer rows.Close()

	return scanExistence(rows, schema, name)
}

func (c *SQLite) TableNames(ctx context.Context, schema, pattern string) ([]string, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT name
		FROM pragma_table_list
		WHERE schema = ? AND name LIKE ? AND type = 'table' AND name NOT LIKE 'sqlite_%'
	`, schema, pattern)
	if err != nil {
		return nil, fmt.Errorf("table name lookup: %w", err)
	}
	defer rows.Close()

	return scanNames(rows)
}

// DefaultSchema returns SQLite's primary database name.
func (c *SQLite) DefaultSchema() string {
	return "main"
}
