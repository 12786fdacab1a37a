// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package schedule

import (
	"reflect"
	"testing"
	"time"

	"github.com/danielhkuo/gamenight/models"
)

func voteAt(minute int, name string, games, timeslots []string) models.Vote {
	return models.Vote{
		ID:                  "v-" + name,
		SeriesID:            "s1",
		VoterKey:            "k-" + name,
		VoterName:           name,
		SelectedGameIDs:     games,
		SelectedTimeslotIDs: timeslots,
		CreatedAt:           time.Date(2025, 1, 10, 12, minute, 0, 0, time.UTC),
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain name", "Alice", "Alice"},
		{"padded name", "  Alice  ", "Alice"},
		{"empty", "", AnonymousName},
		{"whitespace only", "   ", AnonymousName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DisplayName(models.Vote{VoterName: tt.input})
			if got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestBuildMatrix(t *testing.T) {
	votes := []models.Vote{
		voteAt(0, "Alice", []string{"g1", "g2"}, []string{"t1"}),
		voteAt(1, "", []string{"g1"}, []string{"t1", "t2"}),
	}

	m := BuildMatrix(votes)

	// Alice covers (t1,g1) and (t1,g2); the blank-named voter covers (t1,g1)
	// and (t2,g1). The shared cell counts both.
	cell := m.Cells[CellKey("t1", "g1")]
	if cell == nil || cell.Count != 2 {
		t.Fatalf("Expected (t1,g1) count 2, got %+v", cell)
	}
	if !reflect.DeepEqual(cell.Names, []string{"Alice", AnonymousName}) {
		t.Errorf("Expected names [Alice Anonymous], got %v", cell.Names)
	}

	for key, want := range map[string]int{
		CellKey("t1", "g2"): 1,
		CellKey("t2", "g1"): 1,
	} {
		if c := m.Cells[key]; c == nil || c.Count != want {
			t.Errorf("Expected %s count %d, got %+v", key, want, c)
		}
	}

	if len(m.Cells) != 3 {
		t.Errorf("Expected 3 populated cells, got %d", len(m.Cells))
	}
	if m.MaxCount != 2 {
		t.Errorf("Expected maxCount 2, got %d", m.MaxCount)
	}
}

func TestBuildMatrixCountsBlankNamesSeparately(t *testing.T) {
	votes := []models.Vote{
		voteAt(0, "", []string{"g1"}, []string{"t1"}),
		voteAt(1, "  ", []string{"g1"}, []string{"t1"}),
	}

	m := BuildMatrix(votes)
	cell := m.Cells[CellKey("t1", "g1")]
	if cell == nil || cell.Count != 2 {
		t.Fatalf("Two anonymous voters must count separately, got %+v", cell)
	}
}

func TestBuildMatrixEmpty(t *testing.T) {
	m := BuildMatrix(nil)
	if len(m.Cells) != 0 {
		t.Errorf("Expected no cells, got %d", len(m.Cells))
	}
	if m.MaxCount != 0 {
		t.Errorf("Expected maxCount 0, got %d", m.MaxCount)
	}
}

func TestParticipants(t *testing.T) {
	votes := []models.Vote{
		// Deliberately out of submission order
		voteAt(2, "Bob", []string{"g1"}, []string{"t1"}),
		voteAt(0, "Alice", []string{"g1"}, []string{"t1"}),
		voteAt(3, "", []string{"g1"}, []string{"t1"}),
		voteAt(1, "  ", []string{"g1"}, []string{"t1"}),
	}

	got := Participants(votes)
	// First-submission order, anonymous entries collapsed into one
	want := []string{"Alice", AnonymousName, "Bob"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestParticipantsEmpty(t *testing.T) {
	got := Participants(nil)
	if got == nil || len(got) != 0 {
		t.Errorf("Expected empty non-nil slice, got %v", got)
	}
}

func TestCellsForName(t *testing.T) {
	votes := []models.Vote{
		voteAt(0, "Alice", []string{"g1", "g2"}, []string{"t1"}),
		voteAt(1, "Bob", []string{"g1"}, []string{"t2"}),
	}

	cells := CellsForName(votes, "Alice")
	if len(cells) != 2 || !cells[CellKey("t1", "g1")] || !cells[CellKey("t1", "g2")] {
		t.Errorf("Expected Alice's two cells, got %v", cells)
	}

	if cells := CellsForName(votes, "Nobody"); len(cells) != 0 {
		t.Errorf("Expected no cells for unknown name, got %v", cells)
	}
}

func TestNamesForCell(t *testing.T) {
	votes := []models.Vote{
		voteAt(0, "Alice", []string{"g1"}, []string{"t1"}),
		voteAt(1, "", []string{"g1"}, []string{"t1"}),
	}
	m := BuildMatrix(votes)

	names := NamesForCell(m, CellKey("t1", "g1"))
	if len(names) != 2 || !names["Alice"] || !names[AnonymousName] {
		t.Errorf("Expected {Alice Anonymous}, got %v", names)
	}

	if names := NamesForCell(m, CellKey("t9", "g9")); len(names) != 0 {
		t.Errorf("Expected no names for empty cell, got %v", names)
	}
}

func TestHeat(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		maxCount int
		expected float64
	}{
		{"zero max", 0, 0, 0},
		{"zero count", 0, 5, 0},
		{"half", 2, 4, 0.5},
		{"full", 4, 4, 1},
		{"over max clamps", 6, 4, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Heat(tt.count, tt.maxCount); got != tt.expected {
				t.Errorf("Heat(%d, %d) = %v, expected %v", tt.count, tt.maxCount, got, tt.expected)
			}
		})
	}
}
