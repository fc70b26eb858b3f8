package usecase

import (
	"context"

	"github.com/shopcore/adminapi/internal/domain/model"
	"github.com/shopcore/adminapi/internal/domain/repository"
)

// FavoriteUseCase manages per-user saved products.
type FavoriteUseCase struct {
	favorites repository.FavoriteRepository
	products  repository.ProductRepository
}

// NewFavoriteUseCase constructs FavoriteUseCase.
func NewFavoriteUseCase(f repository.FavoriteRepository, p repository.ProductRepository) *FavoriteUseCase {
	return &FavoriteUseCase{favorites: f, products: p}
}

// AddFavorite saves the product for the user. Adding twice is a no-op.
func (u *FavoriteUseCase) AddFavorite(ctx context.Context, userID, productID int64) (*model.Favorite, error) {
	if _, err := u.products.GetByID(ctx, productID); err != nil {
		return nil, err
	}
	return u.favorites.Add(ctx, userID, productID)
}

// RemoveFavorite unsaves the product for the user.
func (u *FavoriteUseCase) RemoveFavorite(ctx context.Context, userID, productID int64) error {
	return u.favorites.Remove(ctx, userID, productID)
}

// ListFavorites returns the user's saved products, most recently added first.
func (u *FavoriteUseCase) ListFavorites(ctx context.Context, userID int64) ([]model.Product, error) {
	return u.favorites.ListByUser(ctx, userID)
}
