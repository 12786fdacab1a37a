package cliparse

import (
	"testing"
)

// clearEnv keeps ambient environment variables from leaking into flag
// fallbacks during tests.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "STORE_TYPE", "DATABASE_URL", "REDIS_ADDR", "NOTIFY_WEBHOOK_URL", "BGG_BASE_URL"} {
		t.Setenv(key, "")
	}
}

func TestParseFlagsDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	if cfg.Port != 8764 {
		t.Errorf("Expected default port 8764, got %d", cfg.Port)
	}
	if cfg.StoreType != StoreMemory {
		t.Errorf("Expected default store %q, got %q", StoreMemory, cfg.StoreType)
	}
	if cfg.Provision {
		t.Error("Expected provision to default to false")
	}
}

func TestParseFlagsExplicit(t *testing.T) {
	clearEnv(t)
	cfg, err := ParseFlags([]string{
		"-p", "9000",
		"-s", "sqlite",
		"-d", "gamenight.db",
		"-provision",
		"-redis", "localhost:6379",
		"-webhook", "https://example.com/hook",
	})
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	if cfg.Port != 9000 {
		t.Errorf("Expected port 9000, got %d", cfg.Port)
	}
	if cfg.StoreType != StoreSQLite {
		t.Errorf("Expected store sqlite, got %q", cfg.StoreType)
	}
	if cfg.DatabaseURL != "gamenight.db" {
		t.Errorf("Expected database URL gamenight.db, got %q", cfg.DatabaseURL)
	}
	if !cfg.Provision {
		t.Error("Expected provision true")
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Errorf("Unexpected redis addr %q", cfg.RedisAddr)
	}
	if cfg.NotifyWebhookURL != "https://example.com/hook" {
		t.Errorf("Unexpected webhook URL %q", cfg.NotifyWebhookURL)
	}
}

func TestParseFlagsRejectsUnknownStore(t *testing.T) {
	clearEnv(t)
	if _, err := ParseFlags([]string{"-s", "mongodb"}); err == nil {
		t.Error("Expected error for unknown store type")
	}
}

func TestParseFlagsRequiresDatabaseURL(t *testing.T) {
	clearEnv(t)
	if _, err := ParseFlags([]string{"-s", "postgres"}); err == nil {
		t.Error("Expected error when postgres store has no database URL")
	}
}

func TestParseFlagsMemoryNeedsNoDatabase(t *testing.T) {
	clearEnv(t)
	cfg, err := ParseFlags([]string{"-s", "memory"})
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	if cfg.DatabaseURL != "" {
		t.Errorf("Expected empty database URL, got %q", cfg.DatabaseURL)
	}
}
