// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the feature voting API.

# Handler Types

  - FeatureHandler: create and list features
  - VoteHandler: cast votes and list tallies
  - HealthHandler: store liveness

Handlers are created via constructor functions that accept their service:

	featureHandler := handlers.NewFeatureHandler(service.NewFeatureService(store, m))

# Features

	POST /api/features → CreateFeature (201 with the feature)
	GET  /api/features → ListFeatures

# Votes

	POST /api/votes → AddVote (201 {"message": "Vote saved", "data": tally})
	GET  /api/votes → ListVotes (tallies with the feature object inline)

# Errors

Service errors map to status codes: validation 400, conflict 409, not found
404. Anything else is logged and answered with a generic 500 message, so
database errors never reach the client.
*/
package handlers
