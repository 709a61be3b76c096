// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the pgmaint API.

# Route Registration

NewRouter creates a configured http.ServeMux around a parsed schema:

	mux := router.NewRouter(schema)

# Endpoints

	POST /       - GraphQL endpoint (query + mutation envelope)
	GET  /health - Health check
	GET  /       - Service banner

The GraphQL endpoint is served by graph-gophers' relay handler and
wrapped in request logging. Everything else about request handling —
parsing the envelope, dispatching to the query or mutation root,
marshaling data and errors — belongs to the schema, not the router.
*/
package router
