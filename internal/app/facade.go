package app

import (
	"context"

	"github.com/shopcore/adminapi/internal/domain/model"
	"github.com/shopcore/adminapi/internal/usecase"
)

// PlatformFacade aggregates the application use cases behind one surface for
// the HTTP layer and the reconciliation worker.
type PlatformFacade struct {
	*usecase.AuthUseCase
	*usecase.LoyaltyUseCase
	*usecase.CatalogUseCase
	*usecase.ContentUseCase
	*usecase.FavoriteUseCase
}

// NewPlatformFacade constructs PlatformFacade.
func NewPlatformFacade(
	auth *usecase.AuthUseCase,
	loyalty *usecase.LoyaltyUseCase,
	catalog *usecase.CatalogUseCase,
	content *usecase.ContentUseCase,
	favorites *usecase.FavoriteUseCase,
) *PlatformFacade {
	return &PlatformFacade{
		AuthUseCase:     auth,
		LoyaltyUseCase:  loyalty,
		CatalogUseCase:  catalog,
		ContentUseCase:  content,
		FavoriteUseCase: favorites,
	}
}

// Authorize verifies a session token and loads the referenced user. Token
// failures keep their sentinel (expired vs invalid); a valid token whose user
// no longer resolves returns ErrNotFound for the gate to reject.
func (f *PlatformFacade) Authorize(ctx context.Context, token string) (*model.User, error) {
	identity, err := f.ParseToken(token)
	if err != nil {
		return nil, err
	}
	return f.GetByID(ctx, identity.ID)
}
