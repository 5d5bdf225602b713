package config

import (
	"log"
	"os"
)

const (
	defaultDBPath = "./calculadoria.db"
	defaultPort   = "8080"
	defaultEnv    = "dev"
)

// Config holds application configuration sourced from environment variables.
type Config struct {
	AppEnv        string
	SessionSecret string
	DBPath        string
	Port          string
}

// Load reads environment variables and returns a populated Config.
func Load() Config {
	// Best-effort: load local dev environment variables.
	// We don't fail if the file is missing; production should use real env injection.
	_ = loadDotEnv(".env")

	cfg := Config{
		AppEnv:        os.Getenv("APP_ENV"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		DBPath:        os.Getenv("DB_PATH"),
		Port:          os.Getenv("PORT"),
	}

	if cfg.AppEnv == "" {
		cfg.AppEnv = defaultEnv
	}
	if cfg.DBPath == "" {
		cfg.DBPath = defaultDBPath
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}

	if cfg.SessionSecret == "" {
		log.Print("warning: SESSION_SECRET is not set; draft cookies are signed with an empty key")
	}

	return cfg
}

// IsDev reports whether the app runs in the local development environment.
func (c Config) IsDev() bool {
	return c.AppEnv == "dev"
}
