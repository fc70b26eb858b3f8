package usecase

import (
	"context"

	domainErrors "github.com/shopcore/adminapi/internal/domain/errors"
	"github.com/shopcore/adminapi/internal/domain/model"
	"github.com/shopcore/adminapi/internal/domain/repository"
)

// CatalogUseCase manages products, categories, and shipping zones.
type CatalogUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	zones      repository.ShippingZoneRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(p repository.ProductRepository, c repository.CategoryRepository, z repository.ShippingZoneRepository) *CatalogUseCase {
	return &CatalogUseCase{products: p, categories: c, zones: z}
}

func (u *CatalogUseCase) CreateProduct(ctx context.Context, product model.Product) (*model.Product, error) {
	if product.Price < 0 {
		return nil, domainErrors.ErrInvalidAmount
	}
	return u.products.Create(ctx, product)
}

func (u *CatalogUseCase) Product(ctx context.Context, id int64) (*model.Product, error) {
	return u.products.GetByID(ctx, id)
}

func (u *CatalogUseCase) Products(ctx context.Context, onlyActive bool) ([]model.Product, error) {
	return u.products.List(ctx, onlyActive)
}

func (u *CatalogUseCase) UpdateProduct(ctx context.Context, product model.Product) (*model.Product, error) {
	if product.Price < 0 {
		return nil, domainErrors.ErrInvalidAmount
	}
	return u.products.Update(ctx, product)
}

func (u *CatalogUseCase) DeleteProduct(ctx context.Context, id int64) error {
	return u.products.Delete(ctx, id)
}

// CreateCategory derives the slug from the name when absent.
func (u *CatalogUseCase) CreateCategory(ctx context.Context, category model.Category) (*model.Category, error) {
	if category.Slug == "" {
		category.Slug = Slugify(category.Name)
	}
	return u.categories.Create(ctx, category)
}

func (u *CatalogUseCase) Category(ctx context.Context, id int64) (*model.Category, error) {
	return u.categories.GetByID(ctx, id)
}

func (u *CatalogUseCase) Categories(ctx context.Context) ([]model.Category, error) {
	return u.categories.List(ctx)
}

func (u *CatalogUseCase) UpdateCategory(ctx context.Context, category model.Category) (*model.Category, error) {
	if category.Slug == "" {
		category.Slug = Slugify(category.Name)
	}
	return u.categories.Update(ctx, category)
}

func (u *CatalogUseCase) DeleteCategory(ctx context.Context, id int64) error {
	return u.categories.Delete(ctx, id)
}

func (u *CatalogUseCase) CreateShippingZone(ctx context.Context, zone model.ShippingZone) (*model.ShippingZone, error) {
	if zone.Price < 0 || zone.MinOrderTotal < 0 {
		return nil, domainErrors.ErrInvalidAmount
	}
	return u.zones.Create(ctx, zone)
}

func (u *CatalogUseCase) ShippingZone(ctx context.Context, id int64) (*model.ShippingZone, error) {
	return u.zones.GetByID(ctx, id)
}

func (u *CatalogUseCase) ShippingZones(ctx context.Context) ([]model.ShippingZone, error) {
	return u.zones.List(ctx)
}

func (u *CatalogUseCase) UpdateShippingZone(ctx context.Context, zone model.ShippingZone) (*model.ShippingZone, error) {
	if zone.Price < 0 || zone.MinOrderTotal < 0 {
		return nil, domainErrors.ErrInvalidAmount
	}
	return u.zones.Update(ctx, zone)
}

func (u *CatalogUseCase) DeleteShippingZone(ctx context.Context, id int64) error {
	return u.zones.Delete(ctx, id)
}
