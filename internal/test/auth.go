package test

import (
	"context"
	"errors"

	"github.com/shopcore/adminapi/internal/domain/model"
	pkgAuth "github.com/shopcore/adminapi/internal/pkg/auth"
)

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn    func(string) (string, error)
	CompareFn func(string, string) error
}

// Hash returns a predictable hash for the supplied password.
func (h HasherStub) Hash(password string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(password)
	}
	return "hash:" + password, nil
}

// Compare validates password against stored hash.
func (h HasherStub) Compare(hash string, password string) error {
	if h.CompareFn != nil {
		return h.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

// StrategyStub issues and parses tokens via function overrides.
type StrategyStub struct {
	IssueFn func(pkgAuth.Identity) (string, error)
	ParseFn func(string) (pkgAuth.Identity, error)
	NameVal string
}

// IssueToken returns deterministic tokens for tests.
func (s StrategyStub) IssueToken(identity pkgAuth.Identity) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(identity)
	}
	return "token", nil
}

// ParseToken parses previously issued token strings.
func (s StrategyStub) ParseToken(token string) (pkgAuth.Identity, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return pkgAuth.Identity{ID: 1, Username: "user"}, nil
}

// Name returns the strategy identifier used in tests.
func (s StrategyStub) Name() string {
	if s.NameVal != "" {
		return s.NameVal
	}
	return "stub"
}

// AuthorizerStub implements the middleware token gate contract.
type AuthorizerStub struct {
	User        *model.User
	Err         error
	AuthorizeFn func(context.Context, string) (*model.User, error)
}

// Authorize either delegates to the override or returns predefined results.
func (s AuthorizerStub) Authorize(ctx context.Context, token string) (*model.User, error) {
	if s.AuthorizeFn != nil {
		return s.AuthorizeFn(ctx, token)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if s.User != nil {
		return s.User, nil
	}
	return &model.User{ID: 1, Username: "user", Role: model.RoleCustomer}, nil
}

var _ pkgAuth.PasswordHasher = HasherStub{}
var _ pkgAuth.Strategy = StrategyStub{}
