// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/danielhkuo/feature-votes/db"
	"github.com/danielhkuo/feature-votes/metrics"
	"github.com/danielhkuo/feature-votes/models"
)

type VoteService struct {
	store   db.Store
	metrics *metrics.Metrics
}

func NewVoteService(store db.Store, m *metrics.Metrics) *VoteService {
	return &VoteService{store: store, metrics: m}
}

// AddVote records one yes/no vote against a feature and returns the
// feature's updated tally
func (s *VoteService) AddVote(ctx context.Context, featureID, vote string) (models.Vote, error) {
	if featureID == "" || vote == "" {
		return models.Vote{}, newError(ErrValidation, "featureId and vote are required")
	}
	if !models.IsValidVote(vote) {
		return models.Vote{}, newError(ErrValidation, "vote must be yes or no")
	}

	if _, err := s.store.GetFeature(ctx, featureID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return models.Vote{}, newError(ErrNotFound, "feature not found")
		}
		return models.Vote{}, err
	}

	tally, err := s.store.IncrementVote(ctx, featureID, vote)
	if errors.Is(err, db.ErrNotFound) {
		return models.Vote{}, newError(ErrNotFound, "feature not found")
	}
	if err != nil {
		return models.Vote{}, err
	}

	s.metrics.VoteCast(vote)
	slog.Info("vote saved", "feature_id", featureID, "vote", vote,
		"yes_count", tally.YesCount, "no_count", tally.NoCount)

	return tally, nil
}

// List returns every tally with its feature joined inline
func (s *VoteService) List(ctx context.Context) ([]models.VoteWithFeature, error) {
	return s.store.ListVotes(ctx)
}
