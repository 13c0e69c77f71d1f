// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/danielhkuo/feature-votes/db"
	"github.com/danielhkuo/feature-votes/metrics"
	"github.com/danielhkuo/feature-votes/models"
)

type FeatureService struct {
	store   db.Store
	metrics *metrics.Metrics
}

func NewFeatureService(store db.Store, m *metrics.Metrics) *FeatureService {
	return &FeatureService{store: store, metrics: m}
}

// Create persists a new feature. Name uniqueness is left to the store's
// unique index.
func (s *FeatureService) Create(ctx context.Context, name string) (models.Feature, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Feature{}, newError(ErrValidation, "name is required")
	}

	feature, err := s.store.CreateFeature(ctx, name)
	if errors.Is(err, db.ErrDuplicate) {
		return models.Feature{}, newError(ErrConflict, "feature already exists")
	}
	if err != nil {
		return models.Feature{}, err
	}

	s.metrics.FeatureCreated()
	slog.Info("feature created", "feature_id", feature.ID, "name", feature.Name)

	return feature, nil
}

func (s *FeatureService) List(ctx context.Context) ([]models.Feature, error) {
	return s.store.ListFeatures(ctx)
}
