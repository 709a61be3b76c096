// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - DatabaseURL: database connection string (required)
  - DatabaseType: postgres or sqlite (default: postgres)
  - ListenAddr: HTTP listen address (default: 127.0.0.1:8080)
  - SchemaFile: path for the GraphQL schema artifact (default: ./pgmaint.graphql)

# CLI Flags

	-d  Database connection string
	-t  Database type
	-l  Listen address
	-s  Schema artifact path

# Environment Variables

Flags fall back to environment variables:

	DB_CONNECTION_STRING → -d
	DATABASE_TYPE        → -t
	LISTEN_ADDR          → -l
	SCHEMA_FILE          → -s

CLI flags take precedence over environment variables. A .env file in the
working directory is loaded first when present (godotenv).

# Validation

ParseFlags returns an error if DB_CONNECTION_STRING is missing or the
database type is not one of postgres, sqlite. Both are fatal at startup.
*/
package cliparse
