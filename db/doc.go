// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db persists features and vote tallies.

# Backends

Store is implemented twice:

  - MongoStore: the features and votes collections in MongoDB
  - SQLStore: the features and votes tables in PostgreSQL or SQLite

Open picks one from the configuration:

	store, err := db.Open(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close(ctx)

# Schema

Opening a store creates what it needs, safe to repeat:

  - Mongo: unique index on features.name and on votes.feature
  - SQL: CreateSchema with IF NOT EXISTS for both tables

# Tallies

There is at most one tally per feature. IncrementVote is a single upsert
that creates a zeroed tally if needed and bumps one counter, so concurrent
votes never lose an increment:

  - Mongo: FindOneAndUpdate with $inc and upsert, retried on the duplicate
    key error two racing inserts can produce
  - SQL: INSERT ... ON CONFLICT (feature_id) DO UPDATE ... RETURNING

# Errors

	ErrDuplicate  a feature with that name already exists
	ErrNotFound   no feature with that ID (malformed IDs included)
*/
package db
