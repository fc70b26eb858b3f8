package usecase_test

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/shopcore/adminapi/internal/domain/errors"
	"github.com/shopcore/adminapi/internal/domain/model"
	testhelpers "github.com/shopcore/adminapi/internal/test"
	. "github.com/shopcore/adminapi/internal/usecase"
)

func newCatalogUseCase() (*CatalogUseCase, *testhelpers.ProductRepositoryStub, *testhelpers.CategoryRepositoryStub, *testhelpers.ShippingZoneRepositoryStub) {
	products := testhelpers.NewProductRepositoryStub()
	categories := &testhelpers.CategoryRepositoryStub{}
	zones := &testhelpers.ShippingZoneRepositoryStub{}
	return NewCatalogUseCase(products, categories, zones), products, categories, zones
}

func TestCatalogProductLifecycle(t *testing.T) {
	uc, _, _, _ := newCatalogUseCase()

	created, err := uc.CreateProduct(context.Background(), model.Product{Name: "Sneakers", Price: 4999, Active: true})
	if err != nil {
		t.Fatalf("create product: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected assigned identifier")
	}

	fetched, err := uc.Product(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get product: %v", err)
	}
	if fetched.Name != "Sneakers" {
		t.Fatalf("unexpected product: %+v", fetched)
	}

	fetched.Price = 3999
	updated, err := uc.UpdateProduct(context.Background(), *fetched)
	if err != nil {
		t.Fatalf("update product: %v", err)
	}
	if updated.Price != 3999 {
		t.Fatalf("unexpected price: %d", updated.Price)
	}

	if err := uc.DeleteProduct(context.Background(), created.ID); err != nil {
		t.Fatalf("delete product: %v", err)
	}
	if _, err := uc.Product(context.Background(), created.ID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestCatalogProductNegativePrice(t *testing.T) {
	uc, _, _, _ := newCatalogUseCase()

	if _, err := uc.CreateProduct(context.Background(), model.Product{Name: "Bad", Price: -1}); !errors.Is(err, domainErrors.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
	if _, err := uc.UpdateProduct(context.Background(), model.Product{ID: 1, Name: "Bad", Price: -1}); !errors.Is(err, domainErrors.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestCatalogProductListActiveOnly(t *testing.T) {
	uc, _, _, _ := newCatalogUseCase()
	if _, err := uc.CreateProduct(context.Background(), model.Product{Name: "Visible", Active: true}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := uc.CreateProduct(context.Background(), model.Product{Name: "Hidden", Active: false}); err != nil {
		t.Fatalf("create: %v", err)
	}

	active, err := uc.Products(context.Background(), true)
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(active) != 1 || active[0].Name != "Visible" {
		t.Fatalf("unexpected active listing: %+v", active)
	}

	all, err := uc.Products(context.Background(), false)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 products, got %d", len(all))
	}
}

func TestCatalogCategorySlugDerived(t *testing.T) {
	uc, _, categories, _ := newCatalogUseCase()

	created, err := uc.CreateCategory(context.Background(), model.Category{Name: "Summer Sale"})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	if created.Slug != "summer-sale" {
		t.Fatalf("expected derived slug, got %q", created.Slug)
	}

	explicit, err := uc.CreateCategory(context.Background(), model.Category{Name: "Summer Sale", Slug: "sale-2026"})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	if explicit.Slug != "sale-2026" {
		t.Fatalf("explicit slug must win, got %q", explicit.Slug)
	}

	if len(categories.Created) != 2 {
		t.Fatalf("expected 2 creates, got %d", len(categories.Created))
	}
}

func TestCatalogShippingZoneValidation(t *testing.T) {
	uc, _, _, _ := newCatalogUseCase()

	if _, err := uc.CreateShippingZone(context.Background(), model.ShippingZone{Name: "Bad", Price: -1}); !errors.Is(err, domainErrors.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount for negative price, got %v", err)
	}
	if _, err := uc.CreateShippingZone(context.Background(), model.ShippingZone{Name: "Bad", MinOrderTotal: -1}); !errors.Is(err, domainErrors.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount for negative minimum, got %v", err)
	}

	zone, err := uc.CreateShippingZone(context.Background(), model.ShippingZone{Name: "City", Regions: []string{"NY"}, Price: 500})
	if err != nil {
		t.Fatalf("create zone: %v", err)
	}
	if zone.ID == 0 {
		t.Fatal("expected assigned identifier")
	}
}
