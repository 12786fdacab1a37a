// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/danielhkuo/gamenight/auth"
	"github.com/danielhkuo/gamenight/models"
)

// Memory is the ephemeral backing: three maps behind one mutex, constructed
// once at startup and never torn down. Votes survive only as long as the
// process does.
type Memory struct {
	mu            sync.RWMutex
	bySlug        map[string]models.Series
	byOwner       map[string][]string // ownerID -> slugs in creation order; append-only
	votesBySeries map[string][]models.Vote
}

func NewMemory() *Memory {
	return &Memory{
		bySlug:        make(map[string]models.Series),
		byOwner:       make(map[string][]string),
		votesBySeries: make(map[string][]models.Vote),
	}
}

func (m *Memory) CreateSeries(_ context.Context, p CreateSeriesParams) (models.Series, error) {
	if len(p.Games) == 0 || len(p.Timeslots) == 0 {
		return models.Series{}, ErrInvalidInput
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	slug, err := auth.NewSlug()
	if err != nil {
		return models.Series{}, err
	}
	for m.slugTaken(slug) {
		if slug, err = auth.NewSlug(); err != nil {
			return models.Series{}, err
		}
	}

	s := models.Series{
		ID:        auth.NewID(),
		Slug:      slug,
		Title:     p.Title,
		OwnerID:   p.OwnerID,
		CreatedAt: time.Now().UTC(),
		Games:     append([]models.Game(nil), p.Games...),
		Timeslots: append([]models.Timeslot(nil), p.Timeslots...),
	}

	m.bySlug[slug] = s
	if s.OwnerID != "" {
		m.byOwner[s.OwnerID] = append(m.byOwner[s.OwnerID], slug)
	}
	return s, nil
}

func (m *Memory) slugTaken(slug string) bool {
	_, taken := m.bySlug[slug]
	return taken
}

func (m *Memory) GetSeries(_ context.Context, slug string) (models.Series, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.bySlug[slug]
	if !ok {
		return models.Series{}, ErrNotFound
	}
	return s, nil
}

func (m *Memory) ListSeriesByOwner(_ context.Context, ownerID string) ([]models.Series, error) {
	if ownerID == "" {
		return []models.Series{}, nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	slugs := m.byOwner[ownerID]
	items := make([]models.Series, 0, len(slugs))
	// The index is never pruned on delete, so skip slugs that no longer
	// resolve. Walk newest-first so equal timestamps keep creation order.
	for i := len(slugs) - 1; i >= 0; i-- {
		s, ok := m.bySlug[slugs[i]]
		if !ok || s.OwnerID != ownerID {
			continue
		}
		items = append(items, s)
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (m *Memory) DeleteSeries(_ context.Context, slug, requesterOwnerID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.bySlug[slug]
	if !ok {
		return false, nil
	}
	if s.OwnerID != "" && s.OwnerID != requesterOwnerID {
		return false, ErrForbidden
	}

	delete(m.bySlug, slug)
	// Cascade: wipe votes keyed by the series id and by the raw slug (votes
	// land under the slug when the lookup path was degraded at submit time).
	delete(m.votesBySeries, s.ID)
	delete(m.votesBySeries, slug)
	// m.byOwner keeps the stale slug; ListSeriesByOwner filters it out.
	return true, nil
}

func (m *Memory) AddVote(_ context.Context, p AddVoteParams) (models.Vote, error) {
	// Validate after dedupe: a list of blank ids is still an empty selection.
	games := dedupe(p.SelectedGameIDs)
	timeslots := dedupe(p.SelectedTimeslotIDs)
	if p.SeriesID == "" || p.VoterKey == "" || len(games) == 0 || len(timeslots) == 0 {
		return models.Vote{}, ErrInvalidInput
	}

	v := models.Vote{
		ID:                  auth.NewID(),
		SeriesID:            p.SeriesID,
		VoterKey:            p.VoterKey,
		VoterName:           p.VoterName,
		SelectedGameIDs:     games,
		SelectedTimeslotIDs: timeslots,
		CreatedAt:           time.Now().UTC(),
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	list := m.votesBySeries[p.SeriesID]
	replaced := false
	for i := range list {
		if list[i].VoterKey == p.VoterKey {
			list[i] = v
			replaced = true
			break
		}
	}
	if !replaced {
		list = append(list, v)
	}
	m.votesBySeries[p.SeriesID] = list
	return v, nil
}

func (m *Memory) ListVotes(_ context.Context, seriesID string) ([]models.Vote, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]models.Vote(nil), m.votesBySeries[seriesID]...), nil
}
