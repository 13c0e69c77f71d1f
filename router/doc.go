// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the feature voting API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(store, metrics.New())

# Endpoints

Health and monitoring:

	GET /health   - Store ping, 200 OK or 503
	GET /metrics  - Prometheus metrics

Features:

	POST /api/features - Create feature ({"name": "..."})
	GET  /api/features - List features

Votes:

	POST /api/votes - Cast a vote ({"featureId": "...", "vote": "yes"|"no"})
	GET  /api/votes - List tallies with their features

Other methods on these paths get 405 from the mux.

# Handler Initialization

The router builds the services over the store and hands them to handlers:

	featureHandler := handlers.NewFeatureHandler(service.NewFeatureService(store, m))
	voteHandler := handlers.NewVoteHandler(service.NewVoteService(store, m))

API routes are wrapped with request logging and metrics.
*/
package router
