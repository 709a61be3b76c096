// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"

	"github.com/pgmaint/pgmaint/middleware"
)

func NewRouter(schema *graphql.Schema) *http.ServeMux {
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// The single GraphQL endpoint: one POSTed query+mutation envelope in,
	// one response envelope out.
	gqlHandler := &relay.Handler{Schema: schema}
	mux.HandleFunc("POST /", middleware.WithLogging(gqlHandler.ServeHTTP))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pgmaint GraphQL API"))
	})

	return mux
}
