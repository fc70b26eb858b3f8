package repository

import (
	"context"

	"github.com/shopcore/adminapi/internal/domain/model"
)

// FavoriteRepository manages per-user saved products.
type FavoriteRepository interface {
	Add(ctx context.Context, userID, productID int64) (*model.Favorite, error)
	Remove(ctx context.Context, userID, productID int64) error
	ListByUser(ctx context.Context, userID int64) ([]model.Product, error)
}
