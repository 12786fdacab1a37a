// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/gamenight/bgg"
	"github.com/danielhkuo/gamenight/middleware"
	"github.com/danielhkuo/gamenight/models"
)

type CatalogHandler struct {
	search bgg.Searcher
}

func NewCatalogHandler(search bgg.Searcher) *CatalogHandler {
	return &CatalogHandler{search: search}
}

// Search handles GET /bgg/search?q=...
// Empty queries short-circuit to an empty result rather than hitting BGG.
func (h *CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		middleware.JSONResponse(w, http.StatusOK, models.CatalogSearchResponse{Items: []models.Game{}})
		return
	}

	items, err := h.search.Search(r.Context(), q)
	if err != nil {
		slog.Error("catalog search failed", "query", q, "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, "BGG search failed")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CatalogSearchResponse{Items: items})
}
