// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package gql is the GraphQL facade over the service roots.

# Schema

The schema is defined schema-first in the SDL constant and bound to
Resolver with graph-gophers/graphql-go:

	schema, err := gql.NewSchema(gql.NewResolver(query, mutation))

Operations:

  - tableNames(schema, pattern): discovery over the catalog
  - analyzeByTableName(schema, name): validate-then-analyze one table
  - analyzeTables(schema, names): ordered batch, abort on first error

Operation failures (unknown table, catalog fault, execution fault) are
reported in the standard GraphQL errors list of the response envelope.

# Schema Artifact

WriteSDL serializes the schema shape to a file at startup so clients can
introspect it without hitting the endpoint. Failure to write it is fatal
to the process.
*/
package gql
