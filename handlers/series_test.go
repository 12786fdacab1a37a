// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/gamenight/models"
	"github.com/danielhkuo/gamenight/store"
	"github.com/danielhkuo/gamenight/testutil"
)

func newSeriesHandler() (*SeriesHandler, *store.Memory) {
	st := store.NewMemory()
	return NewSeriesHandler(st), st
}

func TestCreateSeries(t *testing.T) {
	h, _ := newSeriesHandler()

	req := testutil.MakeRequest("POST", "/series", models.CreateSeriesRequest{
		OwnerID: "owner-1",
		Title:   "Thursday night",
		Games:   []models.Game{{ID: "g1", Name: "Catan"}},
		Timeslots: []models.Timeslot{
			{ID: "t1", StartsAt: time.Date(2025, 1, 10, 19, 0, 0, 0, time.UTC)},
		},
	}, nil)
	w := httptest.NewRecorder()
	h.Create(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)

	var series models.Series
	testutil.AssertJSON(t, w, &series)
	if series.Slug == "" || series.ID == "" {
		t.Errorf("Expected id and slug assigned, got %+v", series)
	}
	if series.OwnerID != "owner-1" || series.Title != "Thursday night" {
		t.Errorf("Unexpected series payload: %+v", series)
	}
}

func TestCreateSeriesValidation(t *testing.T) {
	tests := []struct {
		name string
		body models.CreateSeriesRequest
	}{
		{
			"no games",
			models.CreateSeriesRequest{
				Timeslots: []models.Timeslot{{ID: "t1", StartsAt: time.Now()}},
			},
		},
		{
			"no timeslots",
			models.CreateSeriesRequest{
				Games: []models.Game{{ID: "g1", Name: "Catan"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newSeriesHandler()

			req := testutil.MakeRequest("POST", "/series", tt.body, nil)
			w := httptest.NewRecorder()
			h.Create(w, req)

			testutil.AssertStatus(t, w, http.StatusBadRequest)
		})
	}
}

func TestCreateSeriesInvalidJSON(t *testing.T) {
	h, _ := newSeriesHandler()

	req := httptest.NewRequest("POST", "/series", nil)
	w := httptest.NewRecorder()
	h.Create(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestListSeries(t *testing.T) {
	h, st := newSeriesHandler()
	mine := testutil.CreateTestSeries(t, st, "owner-1")
	testutil.CreateTestSeries(t, st, "owner-2")

	req := testutil.MakeRequest("GET", "/series?ownerId=owner-1", nil, nil)
	w := httptest.NewRecorder()
	h.List(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ListSeriesResponse
	testutil.AssertJSON(t, w, &resp)
	if len(resp.Items) != 1 || resp.Items[0].Slug != mine.Slug {
		t.Errorf("Expected only owner-1's series, got %+v", resp.Items)
	}
}

func TestListSeriesNoOwner(t *testing.T) {
	h, st := newSeriesHandler()
	testutil.CreateTestSeries(t, st, "owner-1")

	req := testutil.MakeRequest("GET", "/series", nil, nil)
	w := httptest.NewRecorder()
	h.List(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ListSeriesResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Items == nil || len(resp.Items) != 0 {
		t.Errorf("Expected empty items array, got %+v", resp.Items)
	}
}

func TestGetSeries(t *testing.T) {
	h, st := newSeriesHandler()
	series := testutil.CreateTestSeries(t, st, "owner-1")

	req := testutil.MakeRequest("GET", "/series/"+series.Slug, nil, nil)
	req.SetPathValue("slug", series.Slug)
	w := httptest.NewRecorder()
	h.Get(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var got models.Series
	testutil.AssertJSON(t, w, &got)
	if got.ID != series.ID {
		t.Errorf("Expected series %s, got %s", series.ID, got.ID)
	}
}

func TestGetSeriesNotFound(t *testing.T) {
	h, _ := newSeriesHandler()

	req := testutil.MakeRequest("GET", "/series/NOSUCH", nil, nil)
	req.SetPathValue("slug", "NOSUCH")
	w := httptest.NewRecorder()
	h.Get(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestDeleteSeries(t *testing.T) {
	h, st := newSeriesHandler()
	series := testutil.CreateTestSeries(t, st, "owner-1")

	req := testutil.MakeRequest("DELETE", "/series/"+series.Slug, nil, map[string]string{
		"X-Owner-Id": "owner-1",
	})
	req.SetPathValue("slug", series.Slug)
	w := httptest.NewRecorder()
	h.Delete(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.DeleteSeriesResponse
	testutil.AssertJSON(t, w, &resp)
	if !resp.Deleted {
		t.Error("Expected deleted=true")
	}
}

func TestDeleteSeriesWrongOwner(t *testing.T) {
	h, st := newSeriesHandler()
	series := testutil.CreateTestSeries(t, st, "owner-1")

	req := testutil.MakeRequest("DELETE", "/series/"+series.Slug, nil, map[string]string{
		"X-Owner-Id": "owner-2",
	})
	req.SetPathValue("slug", series.Slug)
	w := httptest.NewRecorder()
	h.Delete(w, req)

	testutil.AssertStatus(t, w, http.StatusForbidden)
}

func TestDeleteSeriesIdempotent(t *testing.T) {
	h, _ := newSeriesHandler()

	// Never-existed slug: successful no-op, not an error
	req := testutil.MakeRequest("DELETE", "/series/NOSUCH", nil, map[string]string{
		"X-Owner-Id": "owner-1",
	})
	req.SetPathValue("slug", "NOSUCH")
	w := httptest.NewRecorder()
	h.Delete(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.DeleteSeriesResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Deleted {
		t.Error("Expected deleted=false for missing slug")
	}
}

func TestSchemaNotReadyMapsTo503(t *testing.T) {
	st := testutil.NewUnprovisionedSQLiteStore(t)
	h := NewSeriesHandler(st)

	req := testutil.MakeRequest("GET", "/series/ABCDEF", nil, nil)
	req.SetPathValue("slug", "ABCDEF")
	w := httptest.NewRecorder()
	h.Get(w, req)

	testutil.AssertStatus(t, w, http.StatusServiceUnavailable)
}
