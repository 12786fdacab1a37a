// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Domain types

// Game is one candidate activity in a series. IDs come from the BGG catalog
// when the organizer picks from search results, but the server treats them as
// opaque.
type Game struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

// Timeslot is one candidate time window in a series.
type Timeslot struct {
	ID       string     `json:"id"`
	StartsAt time.Time  `json:"startsAt"`
	EndsAt   *time.Time `json:"endsAt,omitempty"`
}

// Series is the aggregate root: an organizer's candidate games and timeslots,
// shareable by slug. Games and timeslots are set once at creation; the only
// mutation afterwards is deleting the whole series.
type Series struct {
	ID        string     `json:"id"`
	Slug      string     `json:"slug"`
	Title     string     `json:"title,omitempty"`
	OwnerID   string     `json:"ownerId,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	Games     []Game     `json:"games"`
	Timeslots []Timeslot `json:"timeslots"`
}

// Vote is one voter's current selections for a series. At most one vote exists
// per (seriesId, voterKey); resubmitting replaces the record wholesale with a
// fresh id and timestamp.
type Vote struct {
	ID                  string    `json:"id"`
	SeriesID            string    `json:"seriesId"`
	VoterKey            string    `json:"voterKey"`
	VoterName           string    `json:"voterName,omitempty"`
	SelectedGameIDs     []string  `json:"selectedGameIds"`
	SelectedTimeslotIDs []string  `json:"selectedTimeslotIds"`
	CreatedAt           time.Time `json:"createdAt"`
}

// Request types

type CreateSeriesRequest struct {
	OwnerID   string     `json:"ownerId"`
	Title     string     `json:"title"`
	Games     []Game     `json:"games"`
	Timeslots []Timeslot `json:"timeslots"`
}

type SubmitVoteRequest struct {
	VoterKey            string   `json:"voterKey"`
	VoterName           string   `json:"voterName"`
	SelectedGameIDs     []string `json:"selectedGameIds"`
	SelectedTimeslotIDs []string `json:"selectedTimeslotIds"`
}

// Response types

type ListSeriesResponse struct {
	Items []Series `json:"items"`
}

type ListVotesResponse struct {
	Votes []Vote `json:"votes"`
}

type DeleteSeriesResponse struct {
	Deleted bool `json:"deleted"`
}

// MatrixCell is one (timeslot, game) cell of the organizer view. Key is
// "timeslotId|gameId". Names are display names, already normalized (trimmed,
// blank rendered as "Anonymous").
type MatrixCell struct {
	Key   string   `json:"key"`
	Count int      `json:"count"`
	Names []string `json:"names"`
	Heat  float64  `json:"heat"`
}

type MatrixResponse struct {
	Cells        []MatrixCell `json:"cells"`
	MaxCount     int          `json:"maxCount"`
	Participants []string     `json:"participants"`
}

type CatalogSearchResponse struct {
	Items []Game `json:"items"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
