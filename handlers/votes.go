// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/feature-votes/middleware"
	"github.com/danielhkuo/feature-votes/models"
	"github.com/danielhkuo/feature-votes/service"
)

type VoteHandler struct {
	votes *service.VoteService
}

func NewVoteHandler(votes *service.VoteService) *VoteHandler {
	return &VoteHandler{votes: votes}
}

// AddVote handles POST /api/votes
func (h *VoteHandler) AddVote(w http.ResponseWriter, r *http.Request) {
	var req models.AddVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	tally, err := h.votes.AddVote(r.Context(), req.FeatureID, req.Vote)
	if err != nil {
		writeServiceError(w, err, "Failed to save vote")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.AddVoteResponse{
		Message: "Vote saved",
		Data:    tally,
	})
}

// ListVotes handles GET /api/votes
// Each tally carries its full feature, not just the ID
func (h *VoteHandler) ListVotes(w http.ResponseWriter, r *http.Request) {
	votes, err := h.votes.List(r.Context())
	if err != nil {
		writeServiceError(w, err, "Failed to list votes")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, votes)
}
