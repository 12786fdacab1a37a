// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/gamenight/db"
	"github.com/danielhkuo/gamenight/models"
	"github.com/danielhkuo/gamenight/store"
)

// NewSQLiteStore returns a SQL store over an in-memory sqlite database with
// the schema provisioned. MaxOpenConns(1) keeps the pool from opening a
// second connection, which would see a different empty :memory: database.
func NewSQLiteStore(t *testing.T) *store.SQL {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open sqlite: %v", err)
	}
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, db.DialectSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return store.NewSQL(conn)
}

// NewUnprovisionedSQLiteStore returns a SQL store whose database has no
// tables, for exercising the schema-not-ready path.
func NewUnprovisionedSQLiteStore(t *testing.T) *store.SQL {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open sqlite: %v", err)
	}
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	return store.NewSQL(conn)
}

// CreateTestSeries creates a series with one game (g1) and one timeslot (t1).
func CreateTestSeries(t *testing.T, st store.Store, ownerID string) models.Series {
	t.Helper()

	series, err := st.CreateSeries(context.Background(), store.CreateSeriesParams{
		OwnerID: ownerID,
		Title:   "Test game night",
		Games:   []models.Game{{ID: "g1", Name: "Catan"}},
		Timeslots: []models.Timeslot{
			{ID: "t1", StartsAt: time.Date(2025, 1, 10, 19, 0, 0, 0, time.UTC)},
		},
	})
	if err != nil {
		t.Fatalf("Failed to create test series: %v", err)
	}
	return series
}

// SubmitTestVote records a vote for g1/t1 under the given key and name.
func SubmitTestVote(t *testing.T, st store.Store, seriesID, voterKey, voterName string) models.Vote {
	t.Helper()

	vote, err := st.AddVote(context.Background(), store.AddVoteParams{
		SeriesID:            seriesID,
		VoterKey:            voterKey,
		VoterName:           voterName,
		SelectedGameIDs:     []string{"g1"},
		SelectedTimeslotIDs: []string{"t1"},
	})
	if err != nil {
		t.Fatalf("Failed to submit test vote: %v", err)
	}
	return vote
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
