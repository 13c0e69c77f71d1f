// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package service holds the feature and vote operations behind the HTTP layer.

	features := service.NewFeatureService(store, m)
	votes := service.NewVoteService(store, m)

FeatureService.Create trims and requires a name, and relies on the store's
unique index to reject duplicates. VoteService.AddVote checks the input,
checks the feature exists, then makes one atomic upsert on the tally.

# Errors

	ErrValidation  missing or malformed input    → 400
	ErrConflict    feature name already taken    → 409
	ErrNotFound    featureId matches no feature  → 404

Any other error comes from the store and should be treated as internal.
*/
package service
