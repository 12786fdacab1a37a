// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// Dispatcher posts vote notifications to a configured webhook. This is
// strictly fire-and-forget: every failure is logged and discarded, and
// nothing here can block or fail the vote submission that triggered it.
type Dispatcher struct {
	url  string
	http *http.Client
}

// New returns a dispatcher for url. An empty url yields a no-op dispatcher.
func New(url string) *Dispatcher {
	return &Dispatcher{
		url:  url,
		http: &http.Client{Timeout: 5 * time.Second},
	}
}

// VoteEvent is the webhook payload for a submitted or replaced vote.
type VoteEvent struct {
	Slug          string `json:"slug"`
	SeriesID      string `json:"seriesId"`
	VoterName     string `json:"voterName"`
	GameCount     int    `json:"gameCount"`
	TimeslotCount int    `json:"timeslotCount"`
}

// VoteSubmitted dispatches ev in the background.
func (d *Dispatcher) VoteSubmitted(ev VoteEvent) {
	if d == nil || d.url == "" {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		body, err := json.Marshal(ev)
		if err != nil {
			slog.Warn("vote notification encode failed", "error", err)
			return
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(body))
		if err != nil {
			slog.Warn("vote notification request failed", "error", err)
			return
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := d.http.Do(req)
		if err != nil {
			slog.Warn("vote notification delivery failed", "error", err)
			return
		}
		resp.Body.Close()

		if resp.StatusCode >= 300 {
			slog.Warn("vote notification rejected", "status", resp.StatusCode)
		}
	}()
}
