package repository

import (
	"context"

	"github.com/shopcore/adminapi/internal/domain/model"
)

// ProductRepository describes persistence operations for catalog products.
type ProductRepository interface {
	Create(ctx context.Context, product model.Product) (*model.Product, error)
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	List(ctx context.Context, onlyActive bool) ([]model.Product, error)
	Update(ctx context.Context, product model.Product) (*model.Product, error)
	Delete(ctx context.Context, id int64) error
}

// CategoryRepository describes persistence operations for categories.
type CategoryRepository interface {
	Create(ctx context.Context, category model.Category) (*model.Category, error)
	GetByID(ctx context.Context, id int64) (*model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
	Update(ctx context.Context, category model.Category) (*model.Category, error)
	Delete(ctx context.Context, id int64) error
}

// ShippingZoneRepository describes persistence operations for shipping zones.
type ShippingZoneRepository interface {
	Create(ctx context.Context, zone model.ShippingZone) (*model.ShippingZone, error)
	GetByID(ctx context.Context, id int64) (*model.ShippingZone, error)
	List(ctx context.Context) ([]model.ShippingZone, error)
	Update(ctx context.Context, zone model.ShippingZone) (*model.ShippingZone, error)
	Delete(ctx context.Context, id int64) error
}
