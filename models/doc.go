// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateFeatureRequest: name
  - AddVoteRequest: featureId, vote

# Response Types

  - AddVoteResponse: message, data (the updated tally)
  - ErrorResponse: error, message

# Domain Types

  - Feature: a nameable item eligible for yes/no voting
  - Vote: the aggregated yes/no tally for exactly one feature
  - VoteWithFeature: a tally with its feature joined inline

A Vote is a tally, not a ballot. Individual ballots are not stored.

# Constants

Vote choices:

	VoteYes = "yes"
	VoteNo  = "no"
*/
package models
