// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"

	"github.com/danielhkuo/gamenight/models"
)

// CreateSeriesParams carries organizer input for a new series. Games and
// timeslots must be non-empty; the boundary validates first, the store
// re-checks as the final gate.
type CreateSeriesParams struct {
	OwnerID   string
	Title     string
	Games     []models.Game
	Timeslots []models.Timeslot
}

// AddVoteParams carries a vote submission. SeriesID may be a resolved series
// id or, when the slug could not be resolved, the raw slug itself - the
// ledger does not care which (see the vote handler for the fallback policy).
type AddVoteParams struct {
	SeriesID            string
	VoterKey            string
	VoterName           string
	SelectedGameIDs     []string
	SelectedTimeslotIDs []string
}

// Store is the single contract behind which the in-memory and SQL backings
// live. One implementation is picked at process start; there is no runtime
// switching.
type Store interface {
	// CreateSeries assigns id, unique slug, and createdAt, and indexes the
	// series by owner when OwnerID is set.
	CreateSeries(ctx context.Context, p CreateSeriesParams) (models.Series, error)

	// GetSeries returns ErrNotFound when the slug does not resolve.
	GetSeries(ctx context.Context, slug string) (models.Series, error)

	// ListSeriesByOwner returns the owner's series newest-first. An empty or
	// unknown ownerID yields an empty slice, never an error.
	ListSeriesByOwner(ctx context.Context, ownerID string) ([]models.Series, error)

	// DeleteSeries deletes only when the stored owner matches exactly, or
	// when the stored record has no owner (guest/legacy records stay
	// deletable). Mismatch returns ErrForbidden; an already-gone slug returns
	// (false, nil) so retried deletes never error.
	DeleteSeries(ctx context.Context, slug, requesterOwnerID string) (bool, error)

	// AddVote enforces at-most-one-vote-per-(seriesID, voterKey): an existing
	// vote is replaced wholesale with a fresh id and createdAt, atomically
	// with respect to concurrent submissions from the same voter.
	AddVote(ctx context.Context, p AddVoteParams) (models.Vote, error)

	// ListVotes returns all current votes for the series key, in no
	// particular order.
	ListVotes(ctx context.Context, seriesID string) ([]models.Vote, error)
}

// dedupe collapses a selection to a set, preserving first-occurrence order.
func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
