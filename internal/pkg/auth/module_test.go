package auth

import (
	"testing"
	"time"

	"github.com/shopcore/adminapi/internal/config"
)

func TestNewPasswordHasher(t *testing.T) {
	hasher := newPasswordHasher()
	if hasher == nil {
		t.Fatal("expected hasher instance")
	}
	if _, ok := hasher.(*BcryptHasher); !ok {
		t.Fatalf("unexpected hasher type: %T", hasher)
	}
}

func TestNewTokenStrategy_Selection(t *testing.T) {
	tests := []struct {
		name     string
		strategy string
		want     string
	}{
		{name: "jwt", strategy: "jwt", want: "jwt"},
		{name: "hmac", strategy: "hmac", want: "hmac"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{TokenSecret: "secret", TokenStrategy: tt.strategy, TokenTTL: time.Minute}
			strategy := newTokenStrategy(strategyParams{Config: cfg})
			if strategy.Name() != tt.want {
				t.Fatalf("expected %s strategy, got %s", tt.want, strategy.Name())
			}
		})
	}
}

func TestNewTokenStrategy_RoundTrip(t *testing.T) {
	cfg := &config.Config{TokenSecret: "secret", TokenStrategy: "jwt", TokenTTL: time.Minute}
	strategy := newTokenStrategy(strategyParams{Config: cfg})
	token, err := strategy.IssueToken(Identity{ID: 3, Username: "carol"})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	identity, err := strategy.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if identity.ID != 3 || identity.Username != "carol" {
		t.Fatalf("unexpected identity: %+v", identity)
	}
}
