// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/gamenight/models"
	"github.com/danielhkuo/gamenight/testutil"
)

// stubSearcher satisfies bgg.Searcher with a canned result.
type stubSearcher struct {
	games []models.Game
	err   error
	calls int
}

func (s *stubSearcher) Search(ctx context.Context, query string) ([]models.Game, error) {
	s.calls++
	return s.games, s.err
}

func TestCatalogSearch(t *testing.T) {
	stub := &stubSearcher{games: []models.Game{
		{ID: "13", Name: "Catan", Thumbnail: "https://example.com/catan.jpg"},
	}}
	h := NewCatalogHandler(stub)

	req := testutil.MakeRequest("GET", "/bgg/search?q=catan", nil, nil)
	w := httptest.NewRecorder()
	h.Search(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.CatalogSearchResponse
	testutil.AssertJSON(t, w, &resp)
	if len(resp.Items) != 1 || resp.Items[0].Name != "Catan" {
		t.Errorf("Unexpected items: %+v", resp.Items)
	}
}

func TestCatalogSearchEmptyQuery(t *testing.T) {
	stub := &stubSearcher{}
	h := NewCatalogHandler(stub)

	for _, path := range []string{"/bgg/search", "/bgg/search?q=", "/bgg/search?q=%20%20"} {
		req := testutil.MakeRequest("GET", path, nil, nil)
		w := httptest.NewRecorder()
		h.Search(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.CatalogSearchResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.Items == nil || len(resp.Items) != 0 {
			t.Errorf("Expected empty items for %s, got %+v", path, resp.Items)
		}
	}

	if stub.calls != 0 {
		t.Errorf("Expected upstream never called for empty queries, got %d calls", stub.calls)
	}
}

func TestCatalogSearchUpstreamFailure(t *testing.T) {
	stub := &stubSearcher{err: errors.New("bgg timeout")}
	h := NewCatalogHandler(stub)

	req := testutil.MakeRequest("GET", "/bgg/search?q=catan", nil, nil)
	w := httptest.NewRecorder()
	h.Search(w, req)

	testutil.AssertStatus(t, w, http.StatusBadGateway)
}
