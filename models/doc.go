// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

The two aggregates mirror the storage model:

  - Series: games × timeslots proposed by an organizer, addressed by slug
  - Vote: one voter's selected subsets, at most one per (seriesId, voterKey)

# Wire Format

Field names are camelCase to match the web client
(selectedGameIds, voterKey, startsAt). Timestamps are RFC 3339.

# Optional Fields

Optional strings (title, ownerId, voterName, thumbnail) use omitempty;
optional timestamps (endsAt) are pointers.
*/
package models
