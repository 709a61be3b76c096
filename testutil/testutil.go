// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/pgmaint/pgmaint/catalog"
	"github.com/pgmaint/pgmaint/gql"
	"github.com/pgmaint/pgmaint/ident"
	"github.com/pgmaint/pgmaint/maintenance"
	"github.com/pgmaint/pgmaint/service"

	graphql "github.com/graph-gophers/graphql-go"
)

// SetupTestDB creates a throwaway SQLite database seeded with the
// fixture tables. Each test gets its own file under t.TempDir, so there
// is no cross-test cleanup to do.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "fixture.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// SQLite allows a single writer; one pooled connection keeps
	// concurrent tests from tripping over SQLITE_BUSY
	db.SetMaxOpenConns(1)

	for _, stmt := range []string{
		`CREATE TABLE user_accounts (
			id INTEGER PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE user_sessions (
			id INTEGER PRIMARY KEY,
			account_id INTEGER NOT NULL REFERENCES user_accounts(id),
			expires_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE orders (
			id INTEGER PRIMARY KEY,
			account_id INTEGER NOT NULL REFERENCES user_accounts(id),
			total_cents INTEGER NOT NULL
		)`,
	} {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("Failed to create fixture table: %v", err)
		}
	}

	return db
}

// NewTestSchema builds the full GraphQL stack (catalog, validator,
// analyzer, services, schema) over the given database.
func NewTestSchema(t *testing.T, db *sql.DB) *graphql.Schema {
	t.Helper()

	cat := catalog.NewSQLite(db)
	resolver := gql.NewResolver(
		service.NewQuery(cat),
		service.NewMutation(
			&ident.Validator{Catalog: cat},
			&maintenance.Analyzer{DB: db},
		),
	)

	schema, err := gql.NewSchema(resolver)
	if err != nil {
		t.Fatalf("Failed to build schema: %v", err)
	}
	return schema
}
