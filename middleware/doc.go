// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("POST /", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (duration_ms),
tagged with a per-request uuid for correlation.
*/
package middleware
