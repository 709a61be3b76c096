// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Postgres reads table metadata from information_schema.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

// TableExists reports whether schema.name is a known table. The query
// selects a constant marker so the result shape is predictable: any row
// count other than zero or one, or any marker value other than 1, means
// the metadata layer misbehaved and is reported as UnexpectedStateError.
func (c *Postgres) TableExists(ctx context.Context, schema, name string) (bool, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT 1
		FROM information_schema.tables
		WHERE table_schema = $1 AND table_name = $2
	`, schema, name)
	if err != nil {
		return false, fmt.Errorf("table existence lookup: %w", err)
	}
	defer rows.Close()

	return scanExistence(rows, schema, name)
}

// TableNames returns the names of tables in schema whose name matches
// pattern (SQL LIKE, case-sensitive). Names come back in the database's
// natural result order, which is not guaranteed stable across calls.
func (c *Postgres) TableNames(ctx context.Context, schema, pattern string) ([]string, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = $1 AND table_name LIKE $2
	`, schema, pattern)
	if err != nil {
		return nil, fmt.Errorf("table name lookup: %w", err)
	}
	defer rows.Close()

	return scanNames(rows)
}

// DefaultSchema returns PostgreSQL's conventional default namespace.
func (c *Postgres) DefaultSchema() string {
	return "public"
}

// scanExistence consumes the marker rows of an existence query and maps
// them to the ternary exists/not-exists/error contract.
func scanExistence(rows *sql.Rows, schema, name string) (bool, error) {
	found := 0
	for rows.Next() {
		var marker int
		if err := rows.Scan(&marker); err != nil {
			return false, fmt.Errorf("table existence lookup: %w", err)
		}
		if marker != 1 {
			return false, &UnexpectedStateError{
				Schema: schema,
				Name:   name,
				Detail: fmt.Sprintf("marker value %d", marker),
			}
		}
		found++
	}
	if err := rows.Err(); err != nil {
		return false, fmt.Errorf("table existence lookup: %w", err)
	}

	switch found {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, &UnexpectedStateError{
			Schema: schema,
			Name:   name,
			Detail: fmt.Sprintf("%d catalog rows", found),
		}
	}
}

// scanNames collects the single-column name rows of a pattern query.
// The catalog must never hand back an empty name; if it does, the whole
// result is rejected.
func scanNames(rows *sql.Rows) ([]string, error) {
	names := []string{}
	for rows.Next() {
		var name sql.NullString
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("table name lookup: %w", err)
		}
		if !name.Valid || name.String == "" {
			return nil, errors.New("table name lookup: non-empty table name expected")
		}
		names = append(names, name.String)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("table name lookup: %w", err)
	}
	return names, nil
}
