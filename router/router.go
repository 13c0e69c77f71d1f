// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/feature-votes/db"
	"github.com/danielhkuo/feature-votes/handlers"
	"github.com/danielhkuo/feature-votes/metrics"
	"github.com/danielhkuo/feature-votes/middleware"
	"github.com/danielhkuo/feature-votes/service"
)

func NewRouter(store db.Store, m *metrics.Metrics) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize services and handlers
	featureService := service.NewFeatureService(store, m)
	voteService := service.NewVoteService(store, m)

	featureHandler := handlers.NewFeatureHandler(featureService)
	voteHandler := handlers.NewVoteHandler(voteService)
	healthHandler := handlers.NewHealthHandler(store)

	wrap := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.WithMetrics(m, h))
	}

	// Health check
	mux.HandleFunc("GET /health", healthHandler.Health)
	if m != nil {
		mux.Handle("GET /metrics", m.Handler())
	}

	// Features
	mux.HandleFunc("POST /api/features", wrap(featureHandler.CreateFeature))
	mux.HandleFunc("GET /api/features", wrap(featureHandler.ListFeatures))

	// Vote tallies
	mux.HandleFunc("POST /api/votes", wrap(voteHandler.AddVote))
	mux.HandleFunc("GET /api/votes", wrap(voteHandler.ListVotes))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("feature-votes API v1"))
	})

	return mux
}
