package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/shopcore/adminapi/internal/domain/errors"
	"github.com/shopcore/adminapi/internal/domain/model"
	"github.com/shopcore/adminapi/internal/domain/repository"
	pkgAuth "github.com/shopcore/adminapi/internal/pkg/auth"
)

// AuthUseCase handles account lifecycle and session token management.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy}
}

// RegisterInput carries signup fields.
type RegisterInput struct {
	Username string
	Password string
	FullName string
	Email    string
	Role     model.Role
}

// Register creates a new account and returns it with a session token.
func (u *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*model.User, string, error) {
	input.Username = strings.TrimSpace(input.Username)
	if input.Username == "" || input.Password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	hash, err := u.hasher.Hash(input.Password)
	if err != nil {
		return nil, "", err
	}

	usr, err := u.users.Create(ctx, model.User{
		Username:     input.Username,
		PasswordHash: hash,
		Role:         input.Role,
		FullName:     input.FullName,
		Email:        input.Email,
	})
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, "", domainErrors.ErrAlreadyExists
		}
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(pkgAuth.Identity{ID: usr.ID, Username: usr.Username})
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// Authenticate validates credentials and returns the account with a session token.
func (u *AuthUseCase) Authenticate(ctx context.Context, username, password string) (*model.User, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(pkgAuth.Identity{ID: usr.ID, Username: usr.Username})
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// ParseToken verifies the token and returns the embedded identity.
func (u *AuthUseCase) ParseToken(token string) (pkgAuth.Identity, error) {
	if token == "" {
		return pkgAuth.Identity{}, pkgAuth.ErrTokenInvalid
	}
	return u.tokens.ParseToken(token)
}

// GetByID fetches an account by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}

// ListUsers returns all accounts, newest first.
func (u *AuthUseCase) ListUsers(ctx context.Context) ([]model.User, error) {
	return u.users.List(ctx)
}
