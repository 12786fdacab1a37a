package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
)

// Store type constants
const (
	StoreMemory   = "memory"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
)

type Config struct {
	Port             int
	StoreType        string
	DatabaseURL      string
	RedisAddr        string
	NotifyWebhookURL string
	BGGBaseURL       string
	Provision        bool
}

// ParseFlags validates flags with environment variable fallbacks
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("gamenight", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.StoreType, "s", "", "Store type (memory, sqlite, or postgres)")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (sqlite path or postgres connection string)")
	fs.BoolVar(&cfg.Provision, "provision", false, "Create database schema on startup")

	// Optional integrations (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.RedisAddr, "redis", "", "Redis address for BGG search caching (optional)")
	fs.StringVar(&cfg.NotifyWebhookURL, "webhook", "", "Webhook URL for vote notifications (optional)")
	fs.StringVar(&cfg.BGGBaseURL, "bgg-url", "", "Override BGG XML API base URL (optional)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8764 // default
		}
	}

	if cfg.StoreType == "" {
		cfg.StoreType = os.Getenv("STORE_TYPE")
		if cfg.StoreType == "" {
			cfg.StoreType = StoreMemory
		}
	}
	switch cfg.StoreType {
	case StoreMemory, StoreSQLite, StorePostgres:
	default:
		return Config{}, fmt.Errorf("unknown store type %q (use memory, sqlite, or postgres)", cfg.StoreType)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.StoreType != StoreMemory && cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required for sqlite/postgres stores (use -d or DATABASE_URL env)")
	}

	if cfg.RedisAddr == "" {
		cfg.RedisAddr = os.Getenv("REDIS_ADDR")
	}
	if cfg.NotifyWebhookURL == "" {
		cfg.NotifyWebhookURL = os.Getenv("NOTIFY_WEBHOOK_URL")
	}
	if cfg.BGGBaseURL == "" {
		cfg.BGGBaseURL = os.Getenv("BGG_BASE_URL")
	}

	return cfg, nil
}
