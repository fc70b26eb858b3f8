package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func lookupFrom(env map[string]string) envLookup {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func baseEnv() map[string]string {
	return map[string]string{
		"DATABASE_URI": "postgres://localhost/adminapi",
		"TOKEN_SECRET": "s3cret",
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(nil, lookupFrom(baseEnv()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RunAddress != defaultRunAddress {
		t.Fatalf("expected default address, got %q", cfg.RunAddress)
	}
	if cfg.Environment != defaultEnvironment {
		t.Fatalf("expected default environment, got %q", cfg.Environment)
	}
	if cfg.TokenStrategy != defaultTokenStrategy {
		t.Fatalf("expected default strategy, got %q", cfg.TokenStrategy)
	}
	if cfg.TokenTTL != defaultTokenTTL {
		t.Fatalf("expected default ttl, got %v", cfg.TokenTTL)
	}
	if !reflect.DeepEqual(cfg.CORSOrigins, []string{"http://localhost:3000"}) {
		t.Fatalf("unexpected cors origins: %v", cfg.CORSOrigins)
	}
	if cfg.ReconcileInterval != defaultReconcileInterval || cfg.ReconcileBatch != defaultReconcileBatch {
		t.Fatalf("unexpected reconcile settings: %v %d", cfg.ReconcileInterval, cfg.ReconcileBatch)
	}
}

func TestLoadEnvValues(t *testing.T) {
	env := baseEnv()
	env["RUN_ADDRESS"] = ":9090"
	env["APP_ENV"] = "production"
	env["TOKEN_STRATEGY"] = "hmac"
	env["TOKEN_TTL"] = "15m"
	env["CORS_ORIGINS"] = "https://shop.example, https://admin.example"
	env["RECONCILE_BATCH"] = "25"

	cfg, err := load(nil, lookupFrom(env))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RunAddress != ":9090" {
		t.Fatalf("expected env address, got %q", cfg.RunAddress)
	}
	if !cfg.Production() {
		t.Fatal("expected production environment")
	}
	if cfg.TokenStrategy != "hmac" {
		t.Fatalf("expected hmac strategy, got %q", cfg.TokenStrategy)
	}
	if cfg.TokenTTL != 15*time.Minute {
		t.Fatalf("expected 15m ttl, got %v", cfg.TokenTTL)
	}
	if !reflect.DeepEqual(cfg.CORSOrigins, []string{"https://shop.example", "https://admin.example"}) {
		t.Fatalf("unexpected cors origins: %v", cfg.CORSOrigins)
	}
	if cfg.ReconcileBatch != 25 {
		t.Fatalf("expected batch 25, got %d", cfg.ReconcileBatch)
	}
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	env := baseEnv()
	env["RUN_ADDRESS"] = ":9090"
	env["TOKEN_TTL"] = "15m"

	args := []string{"-a", ":7070", "-token-ttl", "45m", "-d", "postgres://flag/adminapi"}
	cfg, err := load(args, lookupFrom(env))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RunAddress != ":7070" {
		t.Fatalf("expected flag address, got %q", cfg.RunAddress)
	}
	if cfg.TokenTTL != 45*time.Minute {
		t.Fatalf("expected flag ttl, got %v", cfg.TokenTTL)
	}
	if cfg.DatabaseURI != "postgres://flag/adminapi" {
		t.Fatalf("expected flag dsn, got %q", cfg.DatabaseURI)
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{name: "missing database uri", env: map[string]string{"TOKEN_SECRET": "s3cret"}},
		{name: "missing token secret", env: map[string]string{"DATABASE_URI": "postgres://localhost/adminapi"}},
		{name: "unknown strategy", env: func() map[string]string {
			env := baseEnv()
			env["TOKEN_STRATEGY"] = "paseto"
			return env
		}()},
		{name: "bad ttl flag", env: baseEnv(), args: []string{"-token-ttl", "soon"}},
		{name: "unknown flag", env: baseEnv(), args: []string{"-nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := load(tt.args, lookupFrom(tt.env)); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestLoadTokenSecretFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secret")
	if err := os.WriteFile(path, []byte("  file-secret\n"), 0o600); err != nil {
		t.Fatalf("write secret file: %v", err)
	}

	env := baseEnv()
	env["TOKEN_SECRET_FILE"] = path
	cfg, err := load(nil, lookupFrom(env))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TokenSecret != "file-secret" {
		t.Fatalf("expected trimmed file secret, got %q", cfg.TokenSecret)
	}

	env["TOKEN_SECRET_FILE"] = filepath.Join(t.TempDir(), "missing")
	if _, err := load(nil, lookupFrom(env)); err == nil {
		t.Fatal("expected error for unreadable secret file")
	}
}

func TestLoadCoercesNonPositiveDurations(t *testing.T) {
	env := baseEnv()
	env["TOKEN_TTL"] = "-5m"
	env["RECONCILE_INTERVAL"] = "0s"
	env["RECONCILE_BATCH"] = "-3"

	cfg, err := load(nil, lookupFrom(env))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TokenTTL != defaultTokenTTL {
		t.Fatalf("expected default ttl, got %v", cfg.TokenTTL)
	}
	if cfg.ReconcileInterval != defaultReconcileInterval {
		t.Fatalf("expected default interval, got %v", cfg.ReconcileInterval)
	}
	if cfg.ReconcileBatch != defaultReconcileBatch {
		t.Fatalf("expected default batch, got %d", cfg.ReconcileBatch)
	}
}
