// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the feature-votes API server.

Clients create named features and cast yes/no votes on them. The server keeps
one tally per feature and returns tallies with their features joined.

# Starting the Server

The server reads a .env file, environment variables or CLI flags:

	DATABASE_URL=mongodb://localhost:27017 go run .

Or with flags:

	go run . -p 5000 -t sqlite -d feature-votes.db

# Configuration

  - DATABASE_URL (-d): Store connection string (MONGO_URI also accepted)
  - DATABASE_TYPE (-t): mongo (default), postgres or sqlite
  - DATABASE_NAME (-n): Mongo database name (default: feature_votes)
  - FRONTEND_URL (--frontend-url): Allowed CORS origin (default: http://localhost:8082)
  - PORT (-p): Server port (default: 5000)

# Architecture

  - handlers: HTTP request handlers (features, votes, health)
  - service: Feature and vote operations, error taxonomy
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, metrics, JSON helpers
  - models: Request/response and domain types
  - db: Store interface with MongoDB and SQL implementations
  - metrics: Prometheus metrics
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
