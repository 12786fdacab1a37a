// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package bgg

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/danielhkuo/gamenight/models"
)

// DefaultBaseURL is the public BGG XML API2 endpoint.
const DefaultBaseURL = "https://boardgamegeek.com/xmlapi2"

// maxResults caps how many search hits get detail lookups.
const maxResults = 10

// Searcher is what the catalog handler consumes; Client and CachedSearcher
// both implement it.
type Searcher interface {
	Search(ctx context.Context, query string) ([]models.Game, error)
}

// Client talks to the BGG XML API2: a search call for ids and names, then a
// thing call for thumbnails.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// XML shapes for the two documents we read.

type xmlName struct {
	Type  string `xml:"type,attr"`
	Value string `xml:"value,attr"`
}

type xmlItem struct {
	Type      string    `xml:"type,attr"`
	ID        string    `xml:"id,attr"`
	Thumbnail string    `xml:"thumbnail"`
	Names     []xmlName `xml:"name"`
}

type xmlItems struct {
	Items []xmlItem `xml:"item"`
}

// Search returns up to maxResults board games matching query. A failed thing
// lookup degrades to names without thumbnails rather than failing the search.
func (c *Client) Search(ctx context.Context, query string) ([]models.Game, error) {
	searchURL := c.baseURL + "/search?query=" + url.QueryEscape(query) + "&type=boardgame"
	var searched xmlItems
	if err := c.fetchXML(ctx, searchURL, &searched); err != nil {
		return nil, fmt.Errorf("bgg search: %w", err)
	}

	games := []models.Game{}
	for _, item := range searched.Items {
		if item.Type != "boardgame" {
			continue
		}
		name := primaryName(item.Names)
		if name == "" {
			continue
		}
		games = append(games, models.Game{ID: item.ID, Name: name})
		if len(games) == maxResults {
			break
		}
	}
	if len(games) == 0 {
		return games, nil
	}

	ids := make([]string, len(games))
	for i, g := range games {
		ids[i] = g.ID
	}
	thingURL := c.baseURL + "/thing?id=" + strings.Join(ids, ",") + "&type=boardgame"
	var details xmlItems
	if err := c.fetchXML(ctx, thingURL, &details); err != nil {
		return games, nil
	}

	thumbs := make(map[string]string, len(details.Items))
	for _, item := range details.Items {
		thumbs[item.ID] = strings.TrimSpace(item.Thumbnail)
	}
	for i := range games {
		games[i].Thumbnail = thumbs[games[i].ID]
	}
	return games, nil
}

func (c *Client) fetchXML(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return xml.NewDecoder(resp.Body).Decode(out)
}

// primaryName prefers the name tagged primary, then falls back to the first
// one present.
func primaryName(names []xmlName) string {
	for _, n := range names {
		if n.Type == "primary" {
			if v := strings.TrimSpace(n.Value); v != "" {
				return v
			}
		}
	}
	for _, n := range names {
		if v := strings.TrimSpace(n.Value); v != "" {
			return v
		}
	}
	return ""
}
