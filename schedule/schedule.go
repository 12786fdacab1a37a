// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package schedule

import (
	"sort"
	"strings"

	"github.com/danielhkuo/gamenight/models"
)

// AnonymousName is the display label for voters who left the name blank.
// Blank-named voters are not deduplicated against each other in matrix cells:
// their votes count separately even though they render identically.
const AnonymousName = "Anonymous"

// CellKey joins a timeslot and game id into the map key used throughout the
// organizer view.
func CellKey(timeslotID, gameID string) string {
	return timeslotID + "|" + gameID
}

// Cell is one (timeslot, game) coordinate: how many voters cover both, and
// their display names (normalized, one entry per vote).
type Cell struct {
	Count int
	Names []string
}

// Matrix is the aggregated organizer view over all current votes.
type Matrix struct {
	Cells    map[string]*Cell
	MaxCount int
}

// DisplayName normalizes a vote's name for display: trimmed, or
// AnonymousName when blank.
func DisplayName(v models.Vote) string {
	if name := strings.TrimSpace(v.VoterName); name != "" {
		return name
	}
	return AnonymousName
}

// BuildMatrix folds votes into per-cell counts. Every (timeslot, game) pair
// in the Cartesian product of a vote's selections gets one increment, so a
// cell's count is the number of distinct voters whose selections cover both
// coordinates - support for "this game at this time", not total votes cast.
func BuildMatrix(votes []models.Vote) Matrix {
	m := Matrix{Cells: make(map[string]*Cell)}
	for _, v := range votes {
		name := DisplayName(v)
		for _, tsID := range v.SelectedTimeslotIDs {
			for _, gameID := range v.SelectedGameIDs {
				key := CellKey(tsID, gameID)
				cell := m.Cells[key]
				if cell == nil {
					cell = &Cell{}
					m.Cells[key] = cell
				}
				cell.Count++
				cell.Names = append(cell.Names, name)
				if cell.Count > m.MaxCount {
					m.MaxCount = cell.Count
				}
			}
		}
	}
	return m
}

// Participants returns distinct display names in first-submission order:
// votes sorted by createdAt ascending, each normalized name collected once.
// Two voters who both render as "Anonymous" collapse into a single entry
// here even though their votes count separately in the matrix.
func Participants(votes []models.Vote) []string {
	sorted := append([]models.Vote(nil), votes...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	names := []string{}
	seen := make(map[string]bool)
	for _, v := range sorted {
		name := DisplayName(v)
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

// CellsForName returns every cell key reachable by any vote whose normalized
// name equals name. Selecting a participant highlights these cells.
func CellsForName(votes []models.Vote, name string) map[string]bool {
	keys := make(map[string]bool)
	for _, v := range votes {
		if DisplayName(v) != name {
			continue
		}
		for _, tsID := range v.SelectedTimeslotIDs {
			for _, gameID := range v.SelectedGameIDs {
				keys[CellKey(tsID, gameID)] = true
			}
		}
	}
	return keys
}

// NamesForCell returns the set of normalized names present in a cell.
// Selecting a cell highlights these participants. The two highlight modes
// are mutually exclusive; clearing the other one is the client's job.
func NamesForCell(m Matrix, key string) map[string]bool {
	names := make(map[string]bool)
	cell := m.Cells[key]
	if cell == nil {
		return names
	}
	for _, name := range cell.Names {
		names[name] = true
	}
	return names
}

// Heat maps a cell count onto [0, 1] relative to the hottest cell. With no
// votes yet (maxCount 0) every cell weighs 0.
func Heat(count, maxCount int) float64 {
	if maxCount <= 0 || count <= 0 {
		return 0
	}
	h := float64(count) / float64(maxCount)
	if h > 1 {
		return 1
	}
	return h
}
