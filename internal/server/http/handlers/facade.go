package handlers

import (
	"context"

	"github.com/shopcore/adminapi/internal/domain/model"
	"github.com/shopcore/adminapi/internal/server/http/middleware"
	"github.com/shopcore/adminapi/internal/usecase"
)

// AuthFacade describes account capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, input usecase.RegisterInput) (*model.User, string, error)
	Authenticate(ctx context.Context, username, password string) (*model.User, string, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
}

// LoyaltyFacade encapsulates ledger and bonus operations exposed via HTTP.
type LoyaltyFacade interface {
	Record(ctx context.Context, input usecase.RecordInput) (*model.PointTransaction, bool, error)
	Balance(ctx context.Context, userID int64) (int64, error)
	Transactions(ctx context.Context, userID int64) ([]model.PointTransaction, error)
	Reconcile(ctx context.Context, userID int64) (*model.BalanceReport, error)
	UsersByPointRange(ctx context.Context, min, max int64) ([]model.User, error)
	Redeemers(ctx context.Context, bonusID int64) ([]model.User, error)

	CreateBonus(ctx context.Context, bonus model.Bonus) (*model.Bonus, error)
	Bonus(ctx context.Context, id int64) (*model.Bonus, error)
	Bonuses(ctx context.Context) ([]model.Bonus, error)
	UpdateBonus(ctx context.Context, bonus model.Bonus) (*model.Bonus, error)
	DeleteBonus(ctx context.Context, id int64) error
}

// CatalogFacade provides product, category, and shipping zone operations.
type CatalogFacade interface {
	CreateProduct(ctx context.Context, product model.Product) (*model.Product, error)
	Product(ctx context.Context, id int64) (*model.Product, error)
	Products(ctx context.Context, onlyActive bool) ([]model.Product, error)
	UpdateProduct(ctx context.Context, product model.Product) (*model.Product, error)
	DeleteProduct(ctx context.Context, id int64) error

	CreateCategory(ctx context.Context, category model.Category) (*model.Category, error)
	Category(ctx context.Context, id int64) (*model.Category, error)
	Categories(ctx context.Context) ([]model.Category, error)
	UpdateCategory(ctx context.Context, category model.Category) (*model.Category, error)
	DeleteCategory(ctx context.Context, id int64) error

	CreateShippingZone(ctx context.Context, zone model.ShippingZone) (*model.ShippingZone, error)
	ShippingZone(ctx context.Context, id int64) (*model.ShippingZone, error)
	ShippingZones(ctx context.Context) ([]model.ShippingZone, error)
	UpdateShippingZone(ctx context.Context, zone model.ShippingZone) (*model.ShippingZone, error)
	DeleteShippingZone(ctx context.Context, id int64) error
}

// ContentFacade provides storefront presentation operations.
type ContentFacade interface {
	CreateBanner(ctx context.Context, banner model.Banner) (*model.Banner, error)
	Banner(ctx context.Context, id int64) (*model.Banner, error)
	Banners(ctx context.Context, onlyActive bool) ([]model.Banner, error)
	UpdateBanner(ctx context.Context, banner model.Banner) (*model.Banner, error)
	DeleteBanner(ctx context.Context, id int64) error

	CreatePopup(ctx context.Context, popup model.Popup) (*model.Popup, error)
	Popup(ctx context.Context, id int64) (*model.Popup, error)
	Popups(ctx context.Context, onlyActive bool) ([]model.Popup, error)
	UpdatePopup(ctx context.Context, popup model.Popup) (*model.Popup, error)
	DeletePopup(ctx context.Context, id int64) error

	CreatePlaylist(ctx context.Context, playlist model.Playlist) (*model.Playlist, error)
	Playlist(ctx context.Context, id int64) (*model.Playlist, error)
	Playlists(ctx context.Context) ([]model.Playlist, error)
	UpdatePlaylist(ctx context.Context, playlist model.Playlist) (*model.Playlist, error)
	DeletePlaylist(ctx context.Context, id int64) error

	CreateVideo(ctx context.Context, video model.Video) (*model.Video, error)
	Video(ctx context.Context, id int64) (*model.Video, error)
	Videos(ctx context.Context, playlistID *int64) ([]model.Video, error)
	UpdateVideo(ctx context.Context, video model.Video) (*model.Video, error)
	DeleteVideo(ctx context.Context, id int64) error
}

// FavoriteFacade provides saved-product operations.
type FavoriteFacade interface {
	AddFavorite(ctx context.Context, userID, productID int64) (*model.Favorite, error)
	RemoveFavorite(ctx context.Context, userID, productID int64) error
	ListFavorites(ctx context.Context, userID int64) ([]model.Product, error)
}

// PlatformFacade aggregates the full set of operations used across handlers
// and the auth gate.
type PlatformFacade interface {
	middleware.Authorizer
	AuthFacade
	LoyaltyFacade
	CatalogFacade
	ContentFacade
	FavoriteFacade
}
