package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIURL      string        // base URL of the practice backend
	StateDir    string        // where the session file lives
	HTTPTimeout time.Duration // 0 = no timeout, same as the original site
	LogLevel    string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		APIURL:   strings.TrimRight(env("FGMEDIC_API_URL", "http://127.0.0.1:5000"), "/"),
		StateDir: env("FGMEDIC_STATE_DIR", ""),
		LogLevel: env("FGMEDIC_LOG_LEVEL", "info"),
	}

	if raw := os.Getenv("FGMEDIC_HTTP_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("FGMEDIC_HTTP_TIMEOUT: %w", err)
		}
		cfg.HTTPTimeout = d
	}

	if cfg.StateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		cfg.StateDir = filepath.Join(home, ".fgmedic")
	}
	if err := os.MkdirAll(cfg.StateDir, 0o700); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}

	return cfg, nil
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
