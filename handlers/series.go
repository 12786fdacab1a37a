// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/gamenight/middleware"
	"github.com/danielhkuo/gamenight/models"
	"github.com/danielhkuo/gamenight/store"
)

type SeriesHandler struct {
	store store.Store
}

func NewSeriesHandler(st store.Store) *SeriesHandler {
	return &SeriesHandler{store: st}
}

// Create handles POST /series
func (h *SeriesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSeriesRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	if len(req.Games) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "At least one game is required")
		return
	}
	if len(req.Timeslots) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "At least one timeslot is required")
		return
	}

	series, err := h.store.CreateSeries(r.Context(), store.CreateSeriesParams{
		OwnerID:   req.OwnerID,
		Title:     req.Title,
		Games:     req.Games,
		Timeslots: req.Timeslots,
	})
	if err != nil {
		writeStoreError(w, "create series", err)
		return
	}

	slog.Info("series created", "slug", series.Slug, "games", len(series.Games), "timeslots", len(series.Timeslots))

	middleware.JSONResponse(w, http.StatusCreated, series)
}

// List handles GET /series?ownerId=...
func (h *SeriesHandler) List(w http.ResponseWriter, r *http.Request) {
	ownerID := r.URL.Query().Get("ownerId")
	if ownerID == "" {
		// Not an error: an empty identity just owns nothing.
		middleware.JSONResponse(w, http.StatusOK, models.ListSeriesResponse{Items: []models.Series{}})
		return
	}

	items, err := h.store.ListSeriesByOwner(r.Context(), ownerID)
	if err != nil {
		writeStoreError(w, "list series", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListSeriesResponse{Items: items})
}

// Get handles GET /series/{slug}
func (h *SeriesHandler) Get(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "slug is required")
		return
	}

	series, err := h.store.GetSeries(r.Context(), slug)
	if err != nil {
		writeStoreError(w, "get series", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, series)
}

// Delete handles DELETE /series/{slug}
// The requester identity arrives in X-Owner-Id; it must match the stored
// owner unless the record has no owner. Deleting an already-gone slug is a
// successful no-op so client retries never surface an error.
func (h *SeriesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "slug is required")
		return
	}

	requester := r.Header.Get("X-Owner-Id")

	deleted, err := h.store.DeleteSeries(r.Context(), slug, requester)
	if err != nil {
		writeStoreError(w, "delete series", err)
		return
	}

	if deleted {
		slog.Info("series deleted", "slug", slug)
	}

	middleware.JSONResponse(w, http.StatusOK, models.DeleteSeriesResponse{Deleted: deleted})
}
