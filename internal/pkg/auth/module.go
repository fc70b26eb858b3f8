package auth

import (
	"github.com/shopcore/adminapi/internal/config"
	"go.uber.org/fx"
)

// Module provides authentication primitives via fx.
var Module = fx.Options(
	fx.Provide(newPasswordHasher),
	fx.Provide(newTokenStrategy),
)

func newPasswordHasher() PasswordHasher {
	return NewBcryptHasher(0)
}

type strategyParams struct {
	fx.In

	Config *config.Config
}

func newTokenStrategy(p strategyParams) Strategy {
	opts := Options{TTL: p.Config.TokenTTL}
	if p.Config.TokenStrategy == "hmac" {
		return NewHMACStrategy(p.Config.TokenSecret, opts)
	}
	return NewJWTStrategy(p.Config.TokenSecret, opts)
}
