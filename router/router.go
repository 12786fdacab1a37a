// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/gamenight/bgg"
	"github.com/danielhkuo/gamenight/handlers"
	"github.com/danielhkuo/gamenight/middleware"
	"github.com/danielhkuo/gamenight/notify"
	"github.com/danielhkuo/gamenight/store"
)

func New(st store.Store, search bgg.Searcher, notifier *notify.Dispatcher) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	seriesHandler := handlers.NewSeriesHandler(st)
	voteHandler := handlers.NewVoteHandler(st, notifier)
	catalogHandler := handlers.NewCatalogHandler(search)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Series lifecycle
	mux.HandleFunc("POST /series", middleware.WithLogging(seriesHandler.Create))
	mux.HandleFunc("GET /series", middleware.WithLogging(seriesHandler.List))
	mux.HandleFunc("GET /series/{slug}", middleware.WithLogging(seriesHandler.Get))
	mux.HandleFunc("DELETE /series/{slug}", middleware.WithLogging(seriesHandler.Delete))

	// Voting and aggregation
	mux.HandleFunc("POST /series/{slug}/votes", middleware.WithLogging(voteHandler.Submit))
	mux.HandleFunc("GET /series/{slug}/votes", middleware.WithLogging(voteHandler.List))
	mux.HandleFunc("GET /series/{slug}/matrix", middleware.WithLogging(voteHandler.Matrix))

	// Game catalog proxy
	mux.HandleFunc("GET /bgg/search", middleware.WithLogging(catalogHandler.Search))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("gamenight API v1"))
	})

	return mux
}
