// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/feature-votes/db"
	"github.com/danielhkuo/feature-votes/models"
)

// TestDSN opens a private in-memory SQLite database per store
const TestDSN = ":memory:"

// SetupTestStore creates a fresh store with the full schema.
// It is closed when the test ends.
func SetupTestStore(t *testing.T) *db.SQLStore {
	t.Helper()

	store, err := db.OpenSQL(context.Background(), db.DriverSQLite, TestDSN)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		store.Close(context.Background())
	})

	return store
}

// CreateTestFeature inserts a feature directly through the store
func CreateTestFeature(t *testing.T, store db.Store, name string) models.Feature {
	t.Helper()

	feature, err := store.CreateFeature(context.Background(), name)
	if err != nil {
		t.Fatalf("Failed to create test feature: %v", err)
	}

	return feature
}

// CastTestVotes increments the tally for a feature once per choice
func CastTestVotes(t *testing.T, store db.Store, featureID string, choices ...string) models.Vote {
	t.Helper()

	var tally models.Vote
	for _, choice := range choices {
		var err error
		tally, err = store.IncrementVote(context.Background(), featureID, choice)
		if err != nil {
			t.Fatalf("Failed to cast test vote: %v", err)
		}
	}

	return tally
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
