// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"sort"

	"github.com/danielhkuo/gamenight/middleware"
	"github.com/danielhkuo/gamenight/models"
	"github.com/danielhkuo/gamenight/notify"
	"github.com/danielhkuo/gamenight/schedule"
	"github.com/danielhkuo/gamenight/store"
)

type VoteHandler struct {
	store    store.Store
	notifier *notify.Dispatcher
}

func NewVoteHandler(st store.Store, notifier *notify.Dispatcher) *VoteHandler {
	return &VoteHandler{store: st, notifier: notifier}
}

// resolveSeriesKey picks the ledger key for a slug: the series id when the
// slug resolves, otherwise the raw slug itself. Voting stays available even
// when the lookup path is degraded (ephemeral store cleared, index never
// populated in this process) at the cost of votes possibly fragmenting under
// two keys for the same logical series. Availability over consistency, on
// purpose - do not turn the fallback into an error.
//
// Only NotFound triggers the fallback; a real store failure propagates.
func (h *VoteHandler) resolveSeriesKey(r *http.Request, slug string) (string, *models.Series, error) {
	series, err := h.store.GetSeries(r.Context(), slug)
	if err == nil {
		return series.ID, &series, nil
	}
	if errors.Is(err, store.ErrNotFound) {
		return slug, nil, nil
	}
	return "", nil, err
}

// Submit handles POST /series/{slug}/votes
func (h *VoteHandler) Submit(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "slug is required")
		return
	}

	var req models.SubmitVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input. Empty selections are rejected rather than recorded as
	// an abstain: an all-zero row has no reader in the matrix.
	if req.VoterKey == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "voterKey is required")
		return
	}
	if len(req.SelectedGameIDs) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "At least one game must be selected")
		return
	}
	if len(req.SelectedTimeslotIDs) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "At least one timeslot must be selected")
		return
	}

	key, series, err := h.resolveSeriesKey(r, slug)
	if err != nil {
		writeStoreError(w, "submit vote", err)
		return
	}

	vote, err := h.store.AddVote(r.Context(), store.AddVoteParams{
		SeriesID:            key,
		VoterKey:            req.VoterKey,
		VoterName:           req.VoterName,
		SelectedGameIDs:     req.SelectedGameIDs,
		SelectedTimeslotIDs: req.SelectedTimeslotIDs,
	})
	if err != nil {
		writeStoreError(w, "submit vote", err)
		return
	}

	slog.Info("vote recorded", "slug", slug, "series_key", key, "voter", schedule.DisplayName(vote))

	// Best-effort owner notification; never blocks or fails the vote.
	seriesID := key
	if series != nil {
		seriesID = series.ID
	}
	h.notifier.VoteSubmitted(notify.VoteEvent{
		Slug:          slug,
		SeriesID:      seriesID,
		VoterName:     schedule.DisplayName(vote),
		GameCount:     len(vote.SelectedGameIDs),
		TimeslotCount: len(vote.SelectedTimeslotIDs),
	})

	middleware.JSONResponse(w, http.StatusCreated, vote)
}

// List handles GET /series/{slug}/votes
func (h *VoteHandler) List(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "slug is required")
		return
	}

	key, _, err := h.resolveSeriesKey(r, slug)
	if err != nil {
		writeStoreError(w, "list votes", err)
		return
	}

	votes, err := h.store.ListVotes(r.Context(), key)
	if err != nil {
		writeStoreError(w, "list votes", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListVotesResponse{Votes: votes})
}

// Matrix handles GET /series/{slug}/matrix
// Server-side rendition of the organizer view: per-cell counts and names,
// heat weights, and the participant list.
func (h *VoteHandler) Matrix(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "slug is required")
		return
	}

	key, _, err := h.resolveSeriesKey(r, slug)
	if err != nil {
		writeStoreError(w, "build matrix", err)
		return
	}

	votes, err := h.store.ListVotes(r.Context(), key)
	if err != nil {
		writeStoreError(w, "build matrix", err)
		return
	}

	m := schedule.BuildMatrix(votes)

	cells := make([]models.MatrixCell, 0, len(m.Cells))
	for cellKey, cell := range m.Cells {
		cells = append(cells, models.MatrixCell{
			Key:   cellKey,
			Count: cell.Count,
			Names: cell.Names,
			Heat:  schedule.Heat(cell.Count, m.MaxCount),
		})
	}
	sort.Slice(cells, func(i, j int) bool { return cells[i].Key < cells[j].Key })

	middleware.JSONResponse(w, http.StatusOK, models.MatrixResponse{
		Cells:        cells,
		MaxCount:     m.MaxCount,
		Participants: schedule.Participants(votes),
	})
}
