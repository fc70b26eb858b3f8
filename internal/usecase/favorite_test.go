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

func newFavoriteUseCase() (*FavoriteUseCase, *testhelpers.ProductRepositoryStub) {
	products := testhelpers.NewProductRepositoryStub()
	favorites := testhelpers.NewFavoriteRepositoryStub(products)
	return NewFavoriteUseCase(favorites, products), products
}

func TestFavoriteAddUnknownProduct(t *testing.T) {
	uc, _ := newFavoriteUseCase()
	if _, err := uc.AddFavorite(context.Background(), 1, 404); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFavoriteAddListRemove(t *testing.T) {
	uc, products := newFavoriteUseCase()
	product, err := products.Create(context.Background(), model.Product{Name: "Sneakers", Active: true})
	if err != nil {
		t.Fatalf("create product: %v", err)
	}

	if _, err := uc.AddFavorite(context.Background(), 1, product.ID); err != nil {
		t.Fatalf("add favorite: %v", err)
	}
	// Saving again is a no-op, not a failure.
	if _, err := uc.AddFavorite(context.Background(), 1, product.ID); err != nil {
		t.Fatalf("repeat add favorite: %v", err)
	}

	saved, err := uc.ListFavorites(context.Background(), 1)
	if err != nil {
		t.Fatalf("list favorites: %v", err)
	}
	if len(saved) != 1 || saved[0].ID != product.ID {
		t.Fatalf("unexpected favorites: %+v", saved)
	}

	other, err := uc.ListFavorites(context.Background(), 2)
	if err != nil {
		t.Fatalf("list favorites: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("favorites must be per-user, got %+v", other)
	}

	if err := uc.RemoveFavorite(context.Background(), 1, product.ID); err != nil {
		t.Fatalf("remove favorite: %v", err)
	}
	if err := uc.RemoveFavorite(context.Background(), 1, product.ID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second remove, got %v", err)
	}
}
