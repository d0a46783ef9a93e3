package config

import "os"

// Config is everything read from the environment at startup.
type Config struct {
	Port        string
	DatabaseURL string // Postgres; when empty the local SQLite store is used
	StorePath   string
	LogLevel    string
	FrontendURL string
}

// Load reads the environment, applying local-first defaults: without a
// DATABASE_URL the app runs entirely against a single SQLite file next to
// the binary, which matches how the SPA kept everything on-device.
func Load() Config {
	cfg := Config{
		Port:        os.Getenv("PORT"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		StorePath:   os.Getenv("STORE_PATH"),
		LogLevel:    os.Getenv("LOG_LEVEL"),
		FrontendURL: os.Getenv("FRONTEND_URL"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.StorePath == "" {
		cfg.StorePath = "pocketpals.db"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.FrontendURL == "" {
		cfg.FrontendURL = "http://localhost:3000"
	}
	return cfg
}
