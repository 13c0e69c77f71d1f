// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/feature-votes/middleware"
	"github.com/danielhkuo/feature-votes/models"
	"github.com/danielhkuo/feature-votes/service"
)

type FeatureHandler struct {
	features *service.FeatureService
}

func NewFeatureHandler(features *service.FeatureService) *FeatureHandler {
	return &FeatureHandler{features: features}
}

// CreateFeature handles POST /api/features
func (h *FeatureHandler) CreateFeature(w http.ResponseWriter, r *http.Request) {
	var req models.CreateFeatureRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	feature, err := h.features.Create(r.Context(), req.Name)
	if err != nil {
		writeServiceError(w, err, "Failed to create feature")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, feature)
}

// ListFeatures handles GET /api/features
func (h *FeatureHandler) ListFeatures(w http.ResponseWriter, r *http.Request) {
	features, err := h.features.List(r.Context())
	if err != nil {
		writeServiceError(w, err, "Failed to list features")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, features)
}
