// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth generates identifiers: record IDs, share slugs, and guest keys.

# Share Slugs

Slugs are 6 characters drawn from a 31-character alphabet that omits
easily-confused glyphs (I, L, O, 0, 1):

	slug, err := auth.NewSlug()

NewSlug does not check uniqueness; the store regenerates on collision.

# Identities

NewID produces record identifiers (UUIDs). NewGuestKey produces the durable
anonymous identity a browser presents as ownerId/voterKey when no account
exists. Both are opaque strings to the rest of the system.
*/
package auth
