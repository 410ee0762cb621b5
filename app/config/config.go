package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Supported store backends
const (
	StorePostgres = "postgres"
	StoreBadger   = "badger"
	StoreMemory   = "memory"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Store         string // postgres | badger | memory
	DatabaseURL   string // required when Store is postgres
	SessionSecret string // signs the flash-message cookie, always required
	DeleteKey     string // optional; empty blocks all deletion
	BadgerPath    string
	Port          string
}

// Load reads configuration from the environment. A missing session secret,
// or a missing database URL for the postgres backend, is a startup error.
func Load() (Config, error) {
	cfg := Config{
		Store:         getEnv("STORE", StoreMemory),
		DatabaseURL:   strings.TrimSpace(os.Getenv("DATABASE_URL")),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		DeleteKey:     os.Getenv("DELETE_KEY"),
		BadgerPath:    getEnv("BADGER_PATH", "data/badger"),
		Port:          getEnv("PORT", "8080"),
	}

	switch cfg.Store {
	case StorePostgres, StoreBadger, StoreMemory:
	default:
		return cfg, fmt.Errorf("unknown STORE %q (want postgres, badger or memory)", cfg.Store)
	}

	if cfg.SessionSecret == "" {
		return cfg, errors.New("SESSION_SECRET environment variable is not set")
	}
	if cfg.Store == StorePostgres && cfg.DatabaseURL == "" {
		return cfg, errors.New("DATABASE_URL environment variable is not set")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}
