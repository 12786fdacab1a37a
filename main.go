// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/gamenight/bgg"
	"github.com/danielhkuo/gamenight/cliparse"
	"github.com/danielhkuo/gamenight/db"
	"github.com/danielhkuo/gamenight/middleware"
	"github.com/danielhkuo/gamenight/notify"
	"github.com/danielhkuo/gamenight/router"
	"github.com/danielhkuo/gamenight/store"
)

// catalogCacheTTL bounds how stale cached BGG search results may get.
const catalogCacheTTL = 15 * time.Minute

func main() {
	// .env is a dev convenience; deployments set the environment directly
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Open the configured store
	st, cleanup, err := openStore(cfg)
	if err != nil {
		slog.Error("store initialization failed", "store", cfg.StoreType, "error", err)
		os.Exit(1)
	}
	defer cleanup()

	// Catalog search, optionally cached through Redis
	var search bgg.Searcher = bgg.NewClient(cfg.BGGBaseURL)
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		search = bgg.NewCachedSearcher(search, rdb, catalogCacheTTL)
		slog.Info("catalog search cache enabled", "addr", cfg.RedisAddr)
	}

	notifier := notify.New(cfg.NotifyWebhookURL)

	// Create router
	mux := router.New(st, search, notifier)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "store", cfg.StoreType)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

// openStore builds the configured backing. The memory store needs no
// teardown; SQL stores return their connection's Close.
func openStore(cfg cliparse.Config) (store.Store, func(), error) {
	if cfg.StoreType == cliparse.StoreMemory {
		return store.NewMemory(), func() {}, nil
	}

	driver, dialect := "postgres", db.DialectPostgres
	if cfg.StoreType == cliparse.StoreSQLite {
		driver, dialect = "sqlite", db.DialectSQLite
	}

	conn, err := sql.Open(driver, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, nil, err
	}

	// Schema is assumed pre-provisioned; -provision runs the DDL explicitly.
	if cfg.Provision {
		if err := db.CreateSchema(conn, dialect); err != nil {
			conn.Close()
			return nil, nil, err
		}
		slog.Info("Database schema ready", "dialect", dialect)
	}

	return store.NewSQL(conn), func() { conn.Close() }, nil
}
