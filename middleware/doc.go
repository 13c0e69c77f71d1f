// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status, duration_ms).

# Metrics

WithMetrics counts requests and observes latency per matched route pattern:

	mux.HandleFunc("POST /api/votes", middleware.WithMetrics(m, handler))

# CORS Middleware

Enable cross-origin requests from the frontend:

	server := http.Server{
		Handler: middleware.CORS(cfg.FrontendURL)(mux),
	}

Only the configured origin is allowed, with credentials. Methods GET, POST,
PUT, DELETE, OPTIONS, PATCH and headers Content-Type, Authorization,
X-Requested-With are advertised.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies:

	var req models.CreateFeatureRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
