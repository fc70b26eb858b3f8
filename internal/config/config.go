package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress        string
	DatabaseURI       string
	Environment       string
	TokenSecret       string
	TokenStrategy     string
	TokenTTL          time.Duration
	CORSOrigins       []string
	ReconcileInterval time.Duration
	ReconcileBatch    int
	ShutdownTimeout   time.Duration
}

const (
	defaultRunAddress        = ":8080"
	defaultEnvironment       = "development"
	defaultTokenStrategy     = "jwt"
	defaultTokenTTL          = 30 * time.Minute
	defaultCORSOrigins       = "http://localhost:3000"
	defaultReconcileInterval = 5 * time.Minute
	defaultReconcileBatch    = 100
	defaultShutdownTimeout   = 10 * time.Second
)

// Load parses configuration from .env, environment variables, and flags.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:        getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:       getString(lookup, "DATABASE_URI", ""),
		Environment:       getString(lookup, "APP_ENV", defaultEnvironment),
		TokenSecret:       getString(lookup, "TOKEN_SECRET", ""),
		TokenStrategy:     getString(lookup, "TOKEN_STRATEGY", defaultTokenStrategy),
		TokenTTL:          getDuration(lookup, "TOKEN_TTL", defaultTokenTTL),
		CORSOrigins:       splitList(getString(lookup, "CORS_ORIGINS", defaultCORSOrigins)),
		ReconcileInterval: getDuration(lookup, "RECONCILE_INTERVAL", defaultReconcileInterval),
		ReconcileBatch:    getInt(lookup, "RECONCILE_BATCH", defaultReconcileBatch),
		ShutdownTimeout:   getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("adminapi", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		tokenTTLStr          = cfg.TokenTTL.String()
		reconcileIntervalStr = cfg.ReconcileInterval.String()
		shutdownTimeoutStr   = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.Environment, "env", cfg.Environment, "Deployment environment name")
	fs.StringVar(&cfg.TokenSecret, "token-secret", cfg.TokenSecret, "Secret for signing session tokens")
	fs.StringVar(&cfg.TokenStrategy, "token-strategy", cfg.TokenStrategy, "Token signing strategy (jwt or hmac)")
	fs.StringVar(&tokenTTLStr, "token-ttl", tokenTTLStr, "Session token lifetime")
	fs.StringVar(&reconcileIntervalStr, "reconcile-interval", reconcileIntervalStr, "Interval between balance reconciliation sweeps")
	fs.IntVar(&cfg.ReconcileBatch, "reconcile-batch", cfg.ReconcileBatch, "Users sampled per reconciliation sweep")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.TokenTTL, err = time.ParseDuration(tokenTTLStr); err != nil {
		return nil, fmt.Errorf("invalid token ttl: %w", err)
	}

	if cfg.ReconcileInterval, err = time.ParseDuration(reconcileIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid reconcile interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("TOKEN_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read token secret file: %w", err)
		}
		cfg.TokenSecret = strings.TrimSpace(string(content))
	}

	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}

	if cfg.ReconcileInterval <= 0 {
		cfg.ReconcileInterval = defaultReconcileInterval
	}

	if cfg.ReconcileBatch <= 0 {
		cfg.ReconcileBatch = defaultReconcileBatch
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.TokenStrategy != "jwt" && cfg.TokenStrategy != "hmac" {
		return nil, fmt.Errorf("unknown token strategy %q", cfg.TokenStrategy)
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	// No insecure fallback: a missing secret is a startup error.
	if cfg.TokenSecret == "" {
		return nil, fmt.Errorf("token secret must be provided")
	}

	return cfg, nil
}

// Production reports whether the process runs in the production environment.
func (c *Config) Production() bool {
	return c.Environment == "production"
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}
