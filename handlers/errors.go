// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/gamenight/middleware"
	"github.com/danielhkuo/gamenight/store"
)

// writeStoreError maps the store taxonomy onto HTTP statuses. NotFound and
// Forbidden stay distinct so clients can render the right message; a missing
// schema reads as 503 (fix the deployment), any other store failure as 502
// (retryable upstream fault) - never as an empty success.
func writeStoreError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Series not found")
	case errors.Is(err, store.ErrForbidden):
		middleware.ErrorResponse(w, http.StatusForbidden, "Owner does not match")
	case errors.Is(err, store.ErrInvalidInput):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid input")
	case store.IsSchemaNotReady(err):
		slog.Error("storage schema not ready", "op", op, "error", err)
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Storage not provisioned")
	default:
		slog.Error("store operation failed", "op", op, "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, "Storage unavailable")
	}
}
