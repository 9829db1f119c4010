package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
)

// Config holds all service settings, populated from the environment and an
// optional .env file.
type Config struct {
	HTTPAddr        string
	TLSCertFile     string
	TLSKeyFile      string
	DatabaseURL     string
	TokenKey        string
	LogDebug        bool
	ShutdownTimeout time.Duration
	RateLimit       rate.Limit
	RateBurst       int
	StaticDir       string
}

// Load reads .env (when present) and the environment, applying defaults where unset.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	shutdown, err := time.ParseDuration(envOrDefault("SHUTDOWN_TIMEOUT", "5s"))
	if err != nil || shutdown <= 0 {
		return nil, errors.New("invalid SHUTDOWN_TIMEOUT")
	}
	limit, err := strconv.ParseFloat(envOrDefault("RATE_LIMIT", "1"), 64)
	if err != nil || limit <= 0 {
		return nil, errors.New("invalid RATE_LIMIT")
	}
	burst, err := strconv.Atoi(envOrDefault("RATE_BURST", "3"))
	if err != nil || burst <= 0 {
		return nil, errors.New("invalid RATE_BURST")
	}

	cfg := &Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8443"),
		TLSCertFile:     os.Getenv("TLS_CERT_FILE"),
		TLSKeyFile:      os.Getenv("TLS_KEY_FILE"),
		DatabaseURL:     envOrDefault("DATABASE_URL", "user=postgres dbname=postgres password=password sslmode=disable"),
		TokenKey:        os.Getenv("TOKEN_KEY"),
		LogDebug:        os.Getenv("LOG_DEBUG") == "true",
		ShutdownTimeout: shutdown,
		RateLimit:       rate.Limit(limit),
		RateBurst:       burst,
		StaticDir:       envOrDefault("STATIC_DIR", "./static"),
	}

	if cfg.TokenKey == "" {
		return nil, errors.New("TOKEN_KEY is required")
	}
	if (cfg.TLSCertFile == "") != (cfg.TLSKeyFile == "") {
		return nil, errors.New("TLS_CERT_FILE and TLS_KEY_FILE must be set together")
	}
	return cfg, nil
}

// TLS reports whether the server should terminate TLS itself.
func (c *Config) TLS() bool {
	return c.TLSCertFile != "" && c.TLSKeyFile != ""
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
