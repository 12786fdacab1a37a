// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package schedule derives the organizer's decision-support views from votes.

Everything here is a pure function over []models.Vote; nothing is persisted.

# Count Matrix

	m := schedule.BuildMatrix(votes)

Each vote contributes one increment to every (timeslot, game) cell in the
Cartesian product of its selections. Cell keys are "timeslotId|gameId".

# Participants

	schedule.Participants(votes)

Distinct normalized display names in first-submission order. Not a unique
voter count: different voterKeys with the same (or blank) name collapse into
one displayed entry.

# Highlighting

CellsForName and NamesForCell back the two interactive highlight modes
(pick a participant, or pick a cell); Heat gives the presentational weight
count/maxCount clamped to [0, 1].
*/
package schedule
