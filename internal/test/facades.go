package test

import (
	"context"

	"github.com/shopcore/adminapi/internal/domain/model"
	"github.com/shopcore/adminapi/internal/usecase"
)

// AuthFacadeStub simulates account operations for HTTP layer tests.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, usecase.RegisterInput) (*model.User, string, error)
	AuthenticateFn func(context.Context, string, string) (*model.User, string, error)
	GetByIDFn      func(context.Context, int64) (*model.User, error)
	ListUsersFn    func(context.Context) ([]model.User, error)
}

// Register returns a default account and token for successful signups.
func (s AuthFacadeStub) Register(ctx context.Context, input usecase.RegisterInput) (*model.User, string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, input)
	}
	return &model.User{ID: 1, Username: input.Username, Role: input.Role}, "token", nil
}

// Authenticate returns a default account and token for successful logins.
func (s AuthFacadeStub) Authenticate(ctx context.Context, username, password string) (*model.User, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, username, password)
	}
	return &model.User{ID: 1, Username: username, Role: model.RoleCustomer}, "token", nil
}

// GetByID returns the configured account.
func (s AuthFacadeStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	return &model.User{ID: id, Username: "user", Role: model.RoleCustomer}, nil
}

// ListUsers returns the configured account list.
func (s AuthFacadeStub) ListUsers(ctx context.Context) ([]model.User, error) {
	if s.ListUsersFn != nil {
		return s.ListUsersFn(ctx)
	}
	return []model.User{{ID: 1, Username: "user"}}, nil
}

// LoyaltyFacadeStub simulates ledger and bonus operations.
type LoyaltyFacadeStub struct {
	RecordFn            func(context.Context, usecase.RecordInput) (*model.PointTransaction, bool, error)
	BalanceFn           func(context.Context, int64) (int64, error)
	TransactionsFn      func(context.Context, int64) ([]model.PointTransaction, error)
	ReconcileFn         func(context.Context, int64) (*model.BalanceReport, error)
	UsersByPointRangeFn func(context.Context, int64, int64) ([]model.User, error)
	RedeemersFn         func(context.Context, int64) ([]model.User, error)
	CreateBonusFn       func(context.Context, model.Bonus) (*model.Bonus, error)
	BonusFn             func(context.Context, int64) (*model.Bonus, error)
	BonusesFn           func(context.Context) ([]model.Bonus, error)
	UpdateBonusFn       func(context.Context, model.Bonus) (*model.Bonus, error)
	DeleteBonusFn       func(context.Context, int64) error
}

// Record returns a freshly applied entry by default.
func (s LoyaltyFacadeStub) Record(ctx context.Context, input usecase.RecordInput) (*model.PointTransaction, bool, error) {
	if s.RecordFn != nil {
		return s.RecordFn(ctx, input)
	}
	return &model.PointTransaction{ID: 1, UserID: input.UserID, Type: input.Type, Amount: input.Amount}, true, nil
}

// Balance returns the configured balance.
func (s LoyaltyFacadeStub) Balance(ctx context.Context, userID int64) (int64, error) {
	if s.BalanceFn != nil {
		return s.BalanceFn(ctx, userID)
	}
	return 0, nil
}

// Transactions returns the configured history.
func (s LoyaltyFacadeStub) Transactions(ctx context.Context, userID int64) ([]model.PointTransaction, error) {
	if s.TransactionsFn != nil {
		return s.TransactionsFn(ctx, userID)
	}
	return nil, nil
}

// Reconcile returns a drift-free report by default.
func (s LoyaltyFacadeStub) Reconcile(ctx context.Context, userID int64) (*model.BalanceReport, error) {
	if s.ReconcileFn != nil {
		return s.ReconcileFn(ctx, userID)
	}
	return &model.BalanceReport{UserID: userID}, nil
}

// UsersByPointRange returns the configured slice.
func (s LoyaltyFacadeStub) UsersByPointRange(ctx context.Context, min, max int64) ([]model.User, error) {
	if s.UsersByPointRangeFn != nil {
		return s.UsersByPointRangeFn(ctx, min, max)
	}
	return nil, nil
}

// Redeemers returns the configured slice.
func (s LoyaltyFacadeStub) Redeemers(ctx context.Context, bonusID int64) ([]model.User, error) {
	if s.RedeemersFn != nil {
		return s.RedeemersFn(ctx, bonusID)
	}
	return nil, nil
}

// CreateBonus echoes the bonus with an identifier.
func (s LoyaltyFacadeStub) CreateBonus(ctx context.Context, bonus model.Bonus) (*model.Bonus, error) {
	if s.CreateBonusFn != nil {
		return s.CreateBonusFn(ctx, bonus)
	}
	bonus.ID = 1
	return &bonus, nil
}

// Bonus returns the configured bonus.
func (s LoyaltyFacadeStub) Bonus(ctx context.Context, id int64) (*model.Bonus, error) {
	if s.BonusFn != nil {
		return s.BonusFn(ctx, id)
	}
	return &model.Bonus{ID: id, Name: "bonus", Points: 10}, nil
}

// Bonuses returns the configured bonus list.
func (s LoyaltyFacadeStub) Bonuses(ctx context.Context) ([]model.Bonus, error) {
	if s.BonusesFn != nil {
		return s.BonusesFn(ctx)
	}
	return nil, nil
}

// UpdateBonus echoes the bonus.
func (s LoyaltyFacadeStub) UpdateBonus(ctx context.Context, bonus model.Bonus) (*model.Bonus, error) {
	if s.UpdateBonusFn != nil {
		return s.UpdateBonusFn(ctx, bonus)
	}
	return &bonus, nil
}

// DeleteBonus delegates to the override or succeeds.
func (s LoyaltyFacadeStub) DeleteBonus(ctx context.Context, id int64) error {
	if s.DeleteBonusFn != nil {
		return s.DeleteBonusFn(ctx, id)
	}
	return nil
}

// CatalogFacadeStub simulates catalog operations.
type CatalogFacadeStub struct {
	CreateProductFn func(context.Context, model.Product) (*model.Product, error)
	ProductFn       func(context.Context, int64) (*model.Product, error)
	ProductsFn      func(context.Context, bool) ([]model.Product, error)
	UpdateProductFn func(context.Context, model.Product) (*model.Product, error)
	DeleteProductFn func(context.Context, int64) error

	CreateCategoryFn func(context.Context, model.Category) (*model.Category, error)
	CategoryFn       func(context.Context, int64) (*model.Category, error)
	CategoriesFn     func(context.Context) ([]model.Category, error)
	UpdateCategoryFn func(context.Context, model.Category) (*model.Category, error)
	DeleteCategoryFn func(context.Context, int64) error

	CreateShippingZoneFn func(context.Context, model.ShippingZone) (*model.ShippingZone, error)
	ShippingZoneFn       func(context.Context, int64) (*model.ShippingZone, error)
	ShippingZonesFn      func(context.Context) ([]model.ShippingZone, error)
	UpdateShippingZoneFn func(context.Context, model.ShippingZone) (*model.ShippingZone, error)
	DeleteShippingZoneFn func(context.Context, int64) error
}

func (s CatalogFacadeStub) CreateProduct(ctx context.Context, product model.Product) (*model.Product, error) {
	if s.CreateProductFn != nil {
		return s.CreateProductFn(ctx, product)
	}
	product.ID = 1
	return &product, nil
}

func (s CatalogFacadeStub) Product(ctx context.Context, id int64) (*model.Product, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, id)
	}
	return &model.Product{ID: id, Name: "product", Active: true}, nil
}

func (s CatalogFacadeStub) Products(ctx context.Context, onlyActive bool) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx, onlyActive)
	}
	return nil, nil
}

func (s CatalogFacadeStub) UpdateProduct(ctx context.Context, product model.Product) (*model.Product, error) {
	if s.UpdateProductFn != nil {
		return s.UpdateProductFn(ctx, product)
	}
	return &product, nil
}

func (s CatalogFacadeStub) DeleteProduct(ctx context.Context, id int64) error {
	if s.DeleteProductFn != nil {
		return s.DeleteProductFn(ctx, id)
	}
	return nil
}

func (s CatalogFacadeStub) CreateCategory(ctx context.Context, category model.Category) (*model.Category, error) {
	if s.CreateCategoryFn != nil {
		return s.CreateCategoryFn(ctx, category)
	}
	category.ID = 1
	return &category, nil
}

func (s CatalogFacadeStub) Category(ctx context.Context, id int64) (*model.Category, error) {
	if s.CategoryFn != nil {
		return s.CategoryFn(ctx, id)
	}
	return &model.Category{ID: id, Name: "category", Slug: "category"}, nil
}

func (s CatalogFacadeStub) Categories(ctx context.Context) ([]model.Category, error) {
	if s.CategoriesFn != nil {
		return s.CategoriesFn(ctx)
	}
	return nil, nil
}

func (s CatalogFacadeStub) UpdateCategory(ctx context.Context, category model.Category) (*model.Category, error) {
	if s.UpdateCategoryFn != nil {
		return s.UpdateCategoryFn(ctx, category)
	}
	return &category, nil
}

func (s CatalogFacadeStub) DeleteCategory(ctx context.Context, id int64) error {
	if s.DeleteCategoryFn != nil {
		return s.DeleteCategoryFn(ctx, id)
	}
	return nil
}

func (s CatalogFacadeStub) CreateShippingZone(ctx context.Context, zone model.ShippingZone) (*model.ShippingZone, error) {
	if s.CreateShippingZoneFn != nil {
		return s.CreateShippingZoneFn(ctx, zone)
	}
	zone.ID = 1
	return &zone, nil
}

func (s CatalogFacadeStub) ShippingZone(ctx context.Context, id int64) (*model.ShippingZone, error) {
	if s.ShippingZoneFn != nil {
		return s.ShippingZoneFn(ctx, id)
	}
	return &model.ShippingZone{ID: id, Name: "zone"}, nil
}

func (s CatalogFacadeStub) ShippingZones(ctx context.Context) ([]model.ShippingZone, error) {
	if s.ShippingZonesFn != nil {
		return s.ShippingZonesFn(ctx)
	}
	return nil, nil
}

func (s CatalogFacadeStub) UpdateShippingZone(ctx context.Context, zone model.ShippingZone) (*model.ShippingZone, error) {
	if s.UpdateShippingZoneFn != nil {
		return s.UpdateShippingZoneFn(ctx, zone)
	}
	return &zone, nil
}

func (s CatalogFacadeStub) DeleteShippingZone(ctx context.Context, id int64) error {
	if s.DeleteShippingZoneFn != nil {
		return s.DeleteShippingZoneFn(ctx, id)
	}
	return nil
}

// ContentFacadeStub simulates storefront presentation operations.
type ContentFacadeStub struct {
	CreateBannerFn func(context.Context, model.Banner) (*model.Banner, error)
	BannerFn       func(context.Context, int64) (*model.Banner, error)
	BannersFn      func(context.Context, bool) ([]model.Banner, error)
	UpdateBannerFn func(context.Context, model.Banner) (*model.Banner, error)
	DeleteBannerFn func(context.Context, int64) error

	CreatePopupFn func(context.Context, model.Popup) (*model.Popup, error)
	PopupFn       func(context.Context, int64) (*model.Popup, error)
	PopupsFn      func(context.Context, bool) ([]model.Popup, error)
	UpdatePopupFn func(context.Context, model.Popup) (*model.Popup, error)
	DeletePopupFn func(context.Context, int64) error

	CreatePlaylistFn func(context.Context, model.Playlist) (*model.Playlist, error)
	PlaylistFn       func(context.Context, int64) (*model.Playlist, error)
	PlaylistsFn      func(context.Context) ([]model.Playlist, error)
	UpdatePlaylistFn func(context.Context, model.Playlist) (*model.Playlist, error)
	DeletePlaylistFn func(context.Context, int64) error

	CreateVideoFn func(context.Context, model.Video) (*model.Video, error)
	VideoFn       func(context.Context, int64) (*model.Video, error)
	VideosFn      func(context.Context, *int64) ([]model.Video, error)
	UpdateVideoFn func(context.Context, model.Video) (*model.Video, error)
	DeleteVideoFn func(context.Context, int64) error
}

func (s ContentFacadeStub) CreateBanner(ctx context.Context, banner model.Banner) (*model.Banner, error) {
	if s.CreateBannerFn != nil {
		return s.CreateBannerFn(ctx, banner)
	}
	banner.ID = 1
	return &banner, nil
}

func (s ContentFacadeStub) Banner(ctx context.Context, id int64) (*model.Banner, error) {
	if s.BannerFn != nil {
		return s.BannerFn(ctx, id)
	}
	return &model.Banner{ID: id, Title: "banner"}, nil
}

func (s ContentFacadeStub) Banners(ctx context.Context, onlyActive bool) ([]model.Banner, error) {
	if s.BannersFn != nil {
		return s.BannersFn(ctx, onlyActive)
	}
	return nil, nil
}

func (s ContentFacadeStub) UpdateBanner(ctx context.Context, banner model.Banner) (*model.Banner, error) {
	if s.UpdateBannerFn != nil {
		return s.UpdateBannerFn(ctx, banner)
	}
	return &banner, nil
}

func (s ContentFacadeStub) DeleteBanner(ctx context.Context, id int64) error {
	if s.DeleteBannerFn != nil {
		return s.DeleteBannerFn(ctx, id)
	}
	return nil
}

func (s ContentFacadeStub) CreatePopup(ctx context.Context, popup model.Popup) (*model.Popup, error) {
	if s.CreatePopupFn != nil {
		return s.CreatePopupFn(ctx, popup)
	}
	popup.ID = 1
	return &popup, nil
}

func (s ContentFacadeStub) Popup(ctx context.Context, id int64) (*model.Popup, error) {
	if s.PopupFn != nil {
		return s.PopupFn(ctx, id)
	}
	return &model.Popup{ID: id, Title: "popup"}, nil
}

func (s ContentFacadeStub) Popups(ctx context.Context, onlyActive bool) ([]model.Popup, error) {
	if s.PopupsFn != nil {
		return s.PopupsFn(ctx, onlyActive)
	}
	return nil, nil
}

func (s ContentFacadeStub) UpdatePopup(ctx context.Context, popup model.Popup) (*model.Popup, error) {
	if s.UpdatePopupFn != nil {
		return s.UpdatePopupFn(ctx, popup)
	}
	return &popup, nil
}

func (s ContentFacadeStub) DeletePopup(ctx context.Context, id int64) error {
	if s.DeletePopupFn != nil {
		return s.DeletePopupFn(ctx, id)
	}
	return nil
}

func (s ContentFacadeStub) CreatePlaylist(ctx context.Context, playlist model.Playlist) (*model.Playlist, error) {
	if s.CreatePlaylistFn != nil {
		return s.CreatePlaylistFn(ctx, playlist)
	}
	playlist.ID = 1
	return &playlist, nil
}

func (s ContentFacadeStub) Playlist(ctx context.Context, id int64) (*model.Playlist, error) {
	if s.PlaylistFn != nil {
		return s.PlaylistFn(ctx, id)
	}
	return &model.Playlist{ID: id, Title: "playlist"}, nil
}

func (s ContentFacadeStub) Playlists(ctx context.Context) ([]model.Playlist, error) {
	if s.PlaylistsFn != nil {
		return s.PlaylistsFn(ctx)
	}
	return nil, nil
}

func (s ContentFacadeStub) UpdatePlaylist(ctx context.Context, playlist model.Playlist) (*model.Playlist, error) {
	if s.UpdatePlaylistFn != nil {
		return s.UpdatePlaylistFn(ctx, playlist)
	}
	return &playlist, nil
}

func (s ContentFacadeStub) DeletePlaylist(ctx context.Context, id int64) error {
	if s.DeletePlaylistFn != nil {
		return s.DeletePlaylistFn(ctx, id)
	}
	return nil
}

func (s ContentFacadeStub) CreateVideo(ctx context.Context, video model.Video) (*model.Video, error) {
	if s.CreateVideoFn != nil {
		return s.CreateVideoFn(ctx, video)
	}
	video.ID = 1
	return &video, nil
}

func (s ContentFacadeStub) Video(ctx context.Context, id int64) (*model.Video, error) {
	if s.VideoFn != nil {
		return s.VideoFn(ctx, id)
	}
	return &model.Video{ID: id, Title: "video", URL: "https://example.com/v"}, nil
}

func (s ContentFacadeStub) Videos(ctx context.Context, playlistID *int64) ([]model.Video, error) {
	if s.VideosFn != nil {
		return s.VideosFn(ctx, playlistID)
	}
	return nil, nil
}

func (s ContentFacadeStub) UpdateVideo(ctx context.Context, video model.Video) (*model.Video, error) {
	if s.UpdateVideoFn != nil {
		return s.UpdateVideoFn(ctx, video)
	}
	return &video, nil
}

func (s ContentFacadeStub) DeleteVideo(ctx context.Context, id int64) error {
	if s.DeleteVideoFn != nil {
		return s.DeleteVideoFn(ctx, id)
	}
	return nil
}

// FavoriteFacadeStub simulates saved-product operations.
type FavoriteFacadeStub struct {
	AddFavoriteFn    func(context.Context, int64, int64) (*model.Favorite, error)
	RemoveFavoriteFn func(context.Context, int64, int64) error
	ListFavoritesFn  func(context.Context, int64) ([]model.Product, error)
}

// AddFavorite echoes the pair or delegates to the override.
func (s FavoriteFacadeStub) AddFavorite(ctx context.Context, userID, productID int64) (*model.Favorite, error) {
	if s.AddFavoriteFn != nil {
		return s.AddFavoriteFn(ctx, userID, productID)
	}
	return &model.Favorite{UserID: userID, ProductID: productID}, nil
}

// RemoveFavorite delegates to the override or succeeds.
func (s FavoriteFacadeStub) RemoveFavorite(ctx context.Context, userID, productID int64) error {
	if s.RemoveFavoriteFn != nil {
		return s.RemoveFavoriteFn(ctx, userID, productID)
	}
	return nil
}

// ListFavorites returns the configured product list.
func (s FavoriteFacadeStub) ListFavorites(ctx context.Context, userID int64) ([]model.Product, error) {
	if s.ListFavoritesFn != nil {
		return s.ListFavoritesFn(ctx, userID)
	}
	return nil, nil
}

// WorkerFacadeStub mimics the reconciliation worker's facade contract.
type WorkerFacadeStub struct {
	SampleFn    func(context.Context, int) ([]int64, error)
	ReconcileFn func(context.Context, int64) (*model.BalanceReport, error)
}

// SampleUserIDs delegates to the override or returns a single user.
func (s WorkerFacadeStub) SampleUserIDs(ctx context.Context, limit int) ([]int64, error) {
	if s.SampleFn != nil {
		return s.SampleFn(ctx, limit)
	}
	return []int64{1}, nil
}

// Reconcile delegates to the override or returns a drift-free report.
func (s WorkerFacadeStub) Reconcile(ctx context.Context, userID int64) (*model.BalanceReport, error) {
	if s.ReconcileFn != nil {
		return s.ReconcileFn(ctx, userID)
	}
	return &model.BalanceReport{UserID: userID}, nil
}

// PlatformFacadeStub aggregates facade dependencies for HTTP layer tests.
type PlatformFacadeStub struct {
	AuthorizerStub
	AuthFacadeStub
	LoyaltyFacadeStub
	CatalogFacadeStub
	ContentFacadeStub
	FavoriteFacadeStub
}
