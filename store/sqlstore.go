// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/danielhkuo/gamenight/auth"
	"github.com/danielhkuo/gamenight/models"
)

// SQL is the persistent backing over database/sql. It serves both the
// postgres (lib/pq) and sqlite (modernc.org/sqlite) drivers: the statements
// below stick to $N placeholders and ON CONFLICT, which both understand.
type SQL struct {
	db *sql.DB
}

func NewSQL(db *sql.DB) *SQL {
	return &SQL{db: db}
}

// slugAttempts bounds the regenerate-on-collision loop. Collisions on a
// 31^6 space are vanishingly rare; hitting the bound means the random source
// or the table is in a bad state.
const slugAttempts = 5

func (s *SQL) CreateSeries(ctx context.Context, p CreateSeriesParams) (models.Series, error) {
	if len(p.Games) == 0 || len(p.Timeslots) == 0 {
		return models.Series{}, ErrInvalidInput
	}

	games, err := json.Marshal(p.Games)
	if err != nil {
		return models.Series{}, fmt.Errorf("encode games: %w", err)
	}
	timeslots, err := json.Marshal(p.Timeslots)
	if err != nil {
		return models.Series{}, fmt.Errorf("encode timeslots: %w", err)
	}

	series := models.Series{
		ID:        auth.NewID(),
		Title:     p.Title,
		OwnerID:   p.OwnerID,
		CreatedAt: time.Now().UTC(),
		Games:     append([]models.Game(nil), p.Games...),
		Timeslots: append([]models.Timeslot(nil), p.Timeslots...),
	}

	// Check-then-insert with a retry on the unique index. Two concurrent
	// creations can still race between check and commit; the constraint turns
	// that into a retried insert rather than a duplicate slug.
	for attempt := 0; attempt < slugAttempts; attempt++ {
		slug, err := auth.NewSlug()
		if err != nil {
			return models.Series{}, err
		}

		var taken bool
		err = s.db.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM series WHERE slug = $1)`, slug,
		).Scan(&taken)
		if err != nil {
			return models.Series{}, translateErr("create series", err)
		}
		if taken {
			continue
		}

		_, err = s.db.ExecContext(ctx, `
			INSERT INTO series (id, slug, title, owner_id, created_at, games, timeslots)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, series.ID, slug, nullable(p.Title), nullable(p.OwnerID), series.CreatedAt,
			string(games), string(timeslots))
		if err != nil {
			if isUniqueViolation(err) {
				continue
			}
			return models.Series{}, translateErr("create series", err)
		}

		series.Slug = slug
		return series, nil
	}

	return models.Series{}, fmt.Errorf("create series: could not allocate a unique slug after %d attempts", slugAttempts)
}

func (s *SQL) GetSeries(ctx context.Context, slug string) (models.Series, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, slug, title, owner_id, created_at, games, timeslots
		FROM series
		WHERE slug = $1
	`, slug)

	series, err := scanSeries(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Series{}, ErrNotFound
	}
	if err != nil {
		return models.Series{}, translateErr("get series", err)
	}
	return series, nil
}

func (s *SQL) ListSeriesByOwner(ctx context.Context, ownerID string) ([]models.Series, error) {
	if ownerID == "" {
		return []models.Series{}, nil
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, slug, title, owner_id, created_at, games, timeslots
		FROM series
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`, ownerID)
	if err != nil {
		return nil, translateErr("list series", err)
	}
	defer rows.Close()

	items := []models.Series{}
	for rows.Next() {
		series, err := scanSeries(rows)
		if err != nil {
			return nil, translateErr("list series", err)
		}
		items = append(items, series)
	}
	if err := rows.Err(); err != nil {
		return nil, translateErr("list series", err)
	}
	return items, nil
}

func (s *SQL) DeleteSeries(ctx context.Context, slug, requesterOwnerID string) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, translateErr("delete series", err)
	}
	defer tx.Rollback()

	var id string
	var ownerID sql.NullString
	err = tx.QueryRowContext(ctx,
		`SELECT id, owner_id FROM series WHERE slug = $1`, slug,
	).Scan(&id, &ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, translateErr("delete series", err)
	}

	if ownerID.Valid && ownerID.String != "" && ownerID.String != requesterOwnerID {
		return false, ErrForbidden
	}

	// Cascade by hand: votes carry no foreign key (the ledger accepts raw
	// slugs as keys when series lookup is degraded), so clear both keys here.
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM votes WHERE series_id = $1 OR series_id = $2`, id, slug); err != nil {
		return false, translateErr("delete series", err)
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM series WHERE slug = $1`, slug); err != nil {
		return false, translateErr("delete series", err)
	}

	if err := tx.Commit(); err != nil {
		return false, translateErr("delete series", err)
	}
	return true, nil
}

func (s *SQL) AddVote(ctx context.Context, p AddVoteParams) (models.Vote, error) {
	// Validate after dedupe: a list of blank ids is still an empty selection.
	selectedGames := dedupe(p.SelectedGameIDs)
	selectedTimeslots := dedupe(p.SelectedTimeslotIDs)
	if p.SeriesID == "" || p.VoterKey == "" || len(selectedGames) == 0 || len(selectedTimeslots) == 0 {
		return models.Vote{}, ErrInvalidInput
	}

	v := models.Vote{
		ID:                  auth.NewID(),
		SeriesID:            p.SeriesID,
		VoterKey:            p.VoterKey,
		VoterName:           p.VoterName,
		SelectedGameIDs:     selectedGames,
		SelectedTimeslotIDs: selectedTimeslots,
		CreatedAt:           time.Now().UTC(),
	}

	games, err := json.Marshal(v.SelectedGameIDs)
	if err != nil {
		return models.Vote{}, fmt.Errorf("encode selections: %w", err)
	}
	timeslots, err := json.Marshal(v.SelectedTimeslotIDs)
	if err != nil {
		return models.Vote{}, fmt.Errorf("encode selections: %w", err)
	}

	// A single upsert keyed on (series_id, voter_key) keeps replacement
	// atomic: the stored row is always one full submission, never a merge.
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO votes (id, series_id, voter_key, voter_name, selected_game_ids, selected_timeslot_ids, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (series_id, voter_key) DO UPDATE SET
			id = excluded.id,
			voter_name = excluded.voter_name,
			selected_game_ids = excluded.selected_game_ids,
			selected_timeslot_ids = excluded.selected_timeslot_ids,
			created_at = excluded.created_at
	`, v.ID, v.SeriesID, v.VoterKey, nullable(v.VoterName),
		string(games), string(timeslots), v.CreatedAt)
	if err != nil {
		return models.Vote{}, translateErr("add vote", err)
	}
	return v, nil
}

func (s *SQL) ListVotes(ctx context.Context, seriesID string) ([]models.Vote, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, series_id, voter_key, voter_name, selected_game_ids, selected_timeslot_ids, created_at
		FROM votes
		WHERE series_id = $1
	`, seriesID)
	if err != nil {
		return nil, translateErr("list votes", err)
	}
	defer rows.Close()

	votes := []models.Vote{}
	for rows.Next() {
		var v models.Vote
		var voterName sql.NullString
		var games, timeslots []byte
		if err := rows.Scan(&v.ID, &v.SeriesID, &v.VoterKey, &voterName,
			&games, &timeslots, &v.CreatedAt); err != nil {
			return nil, translateErr("list votes", err)
		}
		v.VoterName = voterName.String
		if err := json.Unmarshal(games, &v.SelectedGameIDs); err != nil {
			return nil, fmt.Errorf("list votes: decode selections: %w", err)
		}
		if err := json.Unmarshal(timeslots, &v.SelectedTimeslotIDs); err != nil {
			return nil, fmt.Errorf("list votes: decode selections: %w", err)
		}
		votes = append(votes, v)
	}
	if err := rows.Err(); err != nil {
		return nil, translateErr("list votes", err)
	}
	return votes, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSeries(row rowScanner) (models.Series, error) {
	var s models.Series
	var title, ownerID sql.NullString
	var games, timeslots []byte
	if err := row.Scan(&s.ID, &s.Slug, &title, &ownerID, &s.CreatedAt,
		&games, &timeslots); err != nil {
		return models.Series{}, err
	}
	s.Title = title.String
	s.OwnerID = ownerID.String
	if err := json.Unmarshal(games, &s.Games); err != nil {
		return models.Series{}, fmt.Errorf("decode games: %w", err)
	}
	if err := json.Unmarshal(timeslots, &s.Timeslots); err != nil {
		return models.Series{}, fmt.Errorf("decode timeslots: %w", err)
	}
	return s, nil
}

// nullable maps empty strings to NULL so absent-owner rules work the same
// across backings.
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// translateErr wraps driver failures into the store taxonomy. Missing tables
// become SchemaNotReadyError; anything else keeps its cause so callers can
// propagate it loudly instead of masking it as absence.
func translateErr(op string, err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "42P01" { // undefined_table
		return &SchemaNotReadyError{Op: op, Err: err}
	}
	if strings.Contains(err.Error(), "no such table") { // modernc sqlite
		return &SchemaNotReadyError{Op: op, Err: err}
	}

	return fmt.Errorf("%s: %w", op, err)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
