// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/feature-votes/models"
	"github.com/danielhkuo/feature-votes/service"
	"github.com/danielhkuo/feature-votes/testutil"
)

// TestConcurrentVotesOnNewFeature verifies that simultaneous first votes on a
// feature with no tally yet produce one tally and lose no increments
func TestConcurrentVotesOnNewFeature(t *testing.T) {
	store := testutil.SetupTestStore(t)
	handler := NewVoteHandler(service.NewVoteService(store, nil))

	feature := testutil.CreateTestFeature(t, store, "Concurrent Feature")

	numVoters := 50
	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numVoters; i++ {
		wg.Add(1)
		go func(voterIdx int) {
			defer wg.Done()

			vote := models.VoteYes
			if voterIdx%5 == 0 {
				vote = models.VoteNo
			}

			req := testutil.MakeRequest("POST", "/api/votes", models.AddVoteRequest{
				FeatureID: feature.ID,
				Vote:      vote,
			}, nil)
			w := httptest.NewRecorder()

			handler.AddVote(w, req)

			if w.Code == http.StatusCreated {
				successCount.Add(1)
			}
		}(i)
	}

	wg.Wait()

	if int(successCount.Load()) != numVoters {
		t.Errorf("Expected %d successful votes, got %d", numVoters, successCount.Load())
	}

	votes, err := store.ListVotes(t.Context())
	if err != nil {
		t.Fatalf("ListVotes failed: %v", err)
	}
	if len(votes) != 1 {
		t.Fatalf("Expected exactly 1 tally, got %d", len(votes))
	}
	if votes[0].YesCount != 40 || votes[0].NoCount != 10 {
		t.Errorf("Expected 40 yes / 10 no, got %d / %d", votes[0].YesCount, votes[0].NoCount)
	}
}

// TestConcurrentDuplicateFeatures verifies that when several goroutines create
// the same feature name, exactly one succeeds and the rest get 409
func TestConcurrentDuplicateFeatures(t *testing.T) {
	store := testutil.SetupTestStore(t)
	handler := NewFeatureHandler(service.NewFeatureService(store, nil))

	numAttempts := 10
	var created, conflicts atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numAttempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			req := testutil.MakeRequest("POST", "/api/features", models.CreateFeatureRequest{Name: "Race"}, nil)
			w := httptest.NewRecorder()

			handler.CreateFeature(w, req)

			switch w.Code {
			case http.StatusCreated:
				created.Add(1)
			case http.StatusConflict:
				conflicts.Add(1)
			}
		}()
	}

	wg.Wait()

	if created.Load() != 1 {
		t.Errorf("Expected exactly 1 creation, got %d", created.Load())
	}
	if int(conflicts.Load()) != numAttempts-1 {
		t.Errorf("Expected %d conflicts, got %d", numAttempts-1, conflicts.Load())
	}
}
