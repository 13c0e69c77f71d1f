// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/danielhkuo/feature-votes/cliparse"
	"github.com/danielhkuo/feature-votes/models"
)

var (
	ErrDuplicate = errors.New("duplicate key")
	ErrNotFound  = errors.New("not found")
)

// Store persists features and their vote tallies
type Store interface {
	// CreateFeature inserts a feature. Returns ErrDuplicate if the name is taken.
	CreateFeature(ctx context.Context, name string) (models.Feature, error)
	ListFeatures(ctx context.Context) ([]models.Feature, error)
	// GetFeature returns ErrNotFound for unknown or malformed IDs
	GetFeature(ctx context.Context, id string) (models.Feature, error)

	// IncrementVote creates the tally for featureID if it does not exist and
	// increments the counter for choice in a single atomic operation.
	IncrementVote(ctx context.Context, featureID, choice string) (models.Vote, error)
	ListVotes(ctx context.Context) ([]models.VoteWithFeature, error)

	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// Open connects to the store selected by cfg.DatabaseType and makes sure
// the schema (tables or indexes) exists
func Open(ctx context.Context, cfg cliparse.Config) (Store, error) {
	switch cfg.DatabaseType {
	case cliparse.DatabaseMongo:
		s, err := OpenMongo(ctx, cfg.DatabaseURL, cfg.DatabaseName)
		if err != nil {
			return nil, err
		}
		return s, nil
	case cliparse.DatabasePostgres:
		s, err := OpenSQL(ctx, DriverPostgres, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return s, nil
	case cliparse.DatabaseSQLite:
		s, err := OpenSQL(ctx, DriverSQLite, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return s, nil
	}

	return nil, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
}
