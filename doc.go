// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the pgmaint API server.

pgmaint is a narrow administrative GraphQL API for refreshing planner
statistics (ANALYZE) on database tables. Caller-supplied table names are
proven to exist in the database catalog before they are spliced into the
ANALYZE statement, which cannot take its table name as a bound parameter.

# Starting the Server

The server requires a connection string via environment or CLI flag:

	DB_CONNECTION_STRING=postgres://... go run main.go

Or with flags:

	go run main.go -d "postgres://..." -l 127.0.0.1:8080

# Configuration

Required settings:

  - DB_CONNECTION_STRING (-d): database connection string

Optional settings:

  - DATABASE_TYPE (-t): postgres (default) or sqlite
  - LISTEN_ADDR (-l): listen address (default: 127.0.0.1:8080)
  - SCHEMA_FILE (-s): GraphQL schema artifact path (default: ./pgmaint.graphql)

At startup the composed schema's SDL is written to SCHEMA_FILE; failure
to write it is fatal.

# Architecture

The server composes small packages around one shared connection pool:

  - catalog: existence and pattern lookups over database metadata
  - ident: unchecked→checked table-name validation
  - maintenance: issues the ANALYZE statement for checked names
  - service: mutation (analyze one/batch) and query (list tables) roots
  - gql: GraphQL schema, resolvers, schema artifact
  - router: the single POST endpoint plus health check
  - middleware: request logging
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
