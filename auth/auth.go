// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/rand"
	"fmt"

	"github.com/google/uuid"
)

// slugAlphabet excludes characters that read ambiguously when shared out loud
// or scribbled on paper (I, L, O, 0, 1).
const slugAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// SlugLength is the length of generated share slugs.
const SlugLength = 6

// NewID returns a fresh opaque record identifier.
func NewID() string {
	return uuid.NewString()
}

// NewGuestKey returns a durable anonymous identity for callers that have no
// authenticated account. Stored client-side and replayed on later requests.
func NewGuestKey() string {
	return uuid.NewString()
}

// NewSlug generates a random share slug. Uniqueness is the store's problem;
// this only guarantees the alphabet and length.
func NewSlug() (string, error) {
	b := make([]byte, SlugLength)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate slug: %w", err)
	}
	out := make([]byte, SlugLength)
	for i, c := range b {
		out[i] = slugAlphabet[int(c)%len(slugAlphabet)]
	}
	return string(out), nil
}
