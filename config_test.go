package main

import (
	"os"
	"testing"
	"time"
)

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	unsetEnv(t, "MONGO_URL", "PORT", "LOG_LEVEL", "LOG_FORMAT", "CONNECT_TIMEOUT")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.MongoURL != "mongodb://localhost:27017/jupiter-orders" {
		t.Fatalf("unexpected mongo url %q", cfg.MongoURL)
	}
	if cfg.Port != "3001" {
		t.Fatalf("unexpected port %q", cfg.Port)
	}
	if cfg.LogLevel != "debug" || cfg.LogFormat != "console" {
		t.Fatalf("unexpected log settings %q %q", cfg.LogLevel, cfg.LogFormat)
	}
	if cfg.ConnectTimeout != 10*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.ConnectTimeout)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("MONGO_URL", "mongodb://db.internal:27017/shop")
	t.Setenv("PORT", "8080")
	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("CONNECT_TIMEOUT", "2s")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.MongoURL != "mongodb://db.internal:27017/shop" || cfg.Port != "8080" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.ConnectTimeout != 2*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.ConnectTimeout)
	}
}

func TestLoadConfigEmptyValuesFallBack(t *testing.T) {
	t.Setenv("MONGO_URL", "")
	t.Setenv("PORT", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.MongoURL != defaultMongoURL || cfg.Port != defaultPort {
		t.Fatalf("empty values should use defaults, got %+v", cfg)
	}
}

func TestLoadConfigBadTimeout(t *testing.T) {
	t.Setenv("CONNECT_TIMEOUT", "soon")
	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected error for bad duration")
	}
}

func TestDatabaseName(t *testing.T) {
	cases := map[string]string{
		"mongodb://localhost:27017/jupiter-orders":         "jupiter-orders",
		"mongodb://user:pw@a:1,b:2/shop?replicaSet=rs0":    "shop",
		"mongodb://localhost:27017":                        "test",
		"mongodb://localhost:27017/?connectTimeoutMS=1000": "test",
	}
	for url, want := range cases {
		got, err := DatabaseName(url)
		if err != nil {
			t.Fatalf("%s: %v", url, err)
		}
		if got != want {
			t.Fatalf("%s: expected %q got %q", url, want, got)
		}
	}
	if _, err := DatabaseName("localhost:27017"); err == nil {
		t.Fatalf("expected error without scheme")
	}
}
