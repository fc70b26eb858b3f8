package test

import (
	"context"

	domainErrors "github.com/shopcore/adminapi/internal/domain/errors"
	"github.com/shopcore/adminapi/internal/domain/model"
)

// CategoryRepositoryStub allows tests to customize category persistence.
type CategoryRepositoryStub struct {
	CreateFn  func(context.Context, model.Category) (*model.Category, error)
	GetByIDFn func(context.Context, int64) (*model.Category, error)
	ListFn    func(context.Context) ([]model.Category, error)
	UpdateFn  func(context.Context, model.Category) (*model.Category, error)
	DeleteFn  func(context.Context, int64) error

	Created []model.Category
}

// Create tracks invocations and echoes the category with an identifier.
func (s *CategoryRepositoryStub) Create(ctx context.Context, category model.Category) (*model.Category, error) {
	s.Created = append(s.Created, category)
	if s.CreateFn != nil {
		return s.CreateFn(ctx, category)
	}
	category.ID = int64(len(s.Created))
	return &category, nil
}

// GetByID returns the configured response or not found.
func (s *CategoryRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

// List returns previously created categories.
func (s *CategoryRepositoryStub) List(ctx context.Context) ([]model.Category, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return s.Created, nil
}

// Update echoes the category or delegates to the override.
func (s *CategoryRepositoryStub) Update(ctx context.Context, category model.Category) (*model.Category, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, category)
	}
	return &category, nil
}

// Delete delegates to the override or succeeds.
func (s *CategoryRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// ShippingZoneRepositoryStub allows tests to customize zone persistence.
type ShippingZoneRepositoryStub struct {
	CreateFn  func(context.Context, model.ShippingZone) (*model.ShippingZone, error)
	GetByIDFn func(context.Context, int64) (*model.ShippingZone, error)
	ListFn    func(context.Context) ([]model.ShippingZone, error)
	UpdateFn  func(context.Context, model.ShippingZone) (*model.ShippingZone, error)
	DeleteFn  func(context.Context, int64) error
}

// Create echoes the zone or delegates to the override.
func (s *ShippingZoneRepositoryStub) Create(ctx context.Context, zone model.ShippingZone) (*model.ShippingZone, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, zone)
	}
	zone.ID = 1
	return &zone, nil
}

// GetByID returns the configured response or not found.
func (s *ShippingZoneRepositoryStub) GetByID(ctx context.Context, id int64) (*model.ShippingZone, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

// List delegates to the override or returns nothing.
func (s *ShippingZoneRepositoryStub) List(ctx context.Context) ([]model.ShippingZone, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return nil, nil
}

// Update echoes the zone or delegates to the override.
func (s *ShippingZoneRepositoryStub) Update(ctx context.Context, zone model.ShippingZone) (*model.ShippingZone, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, zone)
	}
	return &zone, nil
}

// Delete delegates to the override or succeeds.
func (s *ShippingZoneRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// BannerRepositoryStub allows tests to customize banner persistence.
type BannerRepositoryStub struct {
	CreateFn  func(context.Context, model.Banner) (*model.Banner, error)
	GetByIDFn func(context.Context, int64) (*model.Banner, error)
	ListFn    func(context.Context, bool) ([]model.Banner, error)
	UpdateFn  func(context.Context, model.Banner) (*model.Banner, error)
	DeleteFn  func(context.Context, int64) error
}

// Create echoes the banner or delegates to the override.
func (s *BannerRepositoryStub) Create(ctx context.Context, banner model.Banner) (*model.Banner, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, banner)
	}
	banner.ID = 1
	return &banner, nil
}

// GetByID returns the configured response or not found.
func (s *BannerRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Banner, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

// List delegates to the override or returns nothing.
func (s *BannerRepositoryStub) List(ctx context.Context, onlyActive bool) ([]model.Banner, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, onlyActive)
	}
	return nil, nil
}

// Update echoes the banner or delegates to the override.
func (s *BannerRepositoryStub) Update(ctx context.Context, banner model.Banner) (*model.Banner, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, banner)
	}
	return &banner, nil
}

// Delete delegates to the override or succeeds.
func (s *BannerRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// PopupRepositoryStub allows tests to customize popup persistence.
type PopupRepositoryStub struct {
	CreateFn  func(context.Context, model.Popup) (*model.Popup, error)
	GetByIDFn func(context.Context, int64) (*model.Popup, error)
	ListFn    func(context.Context, bool) ([]model.Popup, error)
	UpdateFn  func(context.Context, model.Popup) (*model.Popup, error)
	DeleteFn  func(context.Context, int64) error
}

// Create echoes the popup or delegates to the override.
func (s *PopupRepositoryStub) Create(ctx context.Context, popup model.Popup) (*model.Popup, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, popup)
	}
	popup.ID = 1
	return &popup, nil
}

// GetByID returns the configured response or not found.
func (s *PopupRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Popup, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

// List delegates to the override or returns nothing.
func (s *PopupRepositoryStub) List(ctx context.Context, onlyActive bool) ([]model.Popup, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, onlyActive)
	}
	return nil, nil
}

// Update echoes the popup or delegates to the override.
func (s *PopupRepositoryStub) Update(ctx context.Context, popup model.Popup) (*model.Popup, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, popup)
	}
	return &popup, nil
}

// Delete delegates to the override or succeeds.
func (s *PopupRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// PlaylistRepositoryStub allows tests to customize playlist persistence.
type PlaylistRepositoryStub struct {
	CreateFn  func(context.Context, model.Playlist) (*model.Playlist, error)
	GetByIDFn func(context.Context, int64) (*model.Playlist, error)
	ListFn    func(context.Context) ([]model.Playlist, error)
	UpdateFn  func(context.Context, model.Playlist) (*model.Playlist, error)
	DeleteFn  func(context.Context, int64) error
}

// Create echoes the playlist or delegates to the override.
func (s *PlaylistRepositoryStub) Create(ctx context.Context, playlist model.Playlist) (*model.Playlist, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, playlist)
	}
	playlist.ID = 1
	return &playlist, nil
}

// GetByID returns the configured response or not found.
func (s *PlaylistRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Playlist, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

// List delegates to the override or returns nothing.
func (s *PlaylistRepositoryStub) List(ctx context.Context) ([]model.Playlist, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return nil, nil
}

// Update echoes the playlist or delegates to the override.
func (s *PlaylistRepositoryStub) Update(ctx context.Context, playlist model.Playlist) (*model.Playlist, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, playlist)
	}
	return &playlist, nil
}

// Delete delegates to the override or succeeds.
func (s *PlaylistRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// VideoRepositoryStub allows tests to customize video persistence.
type VideoRepositoryStub struct {
	CreateFn  func(context.Context, model.Video) (*model.Video, error)
	GetByIDFn func(context.Context, int64) (*model.Video, error)
	ListFn    func(context.Context, *int64) ([]model.Video, error)
	UpdateFn  func(context.Context, model.Video) (*model.Video, error)
	DeleteFn  func(context.Context, int64) error
}

// Create echoes the video or delegates to the override.
func (s *VideoRepositoryStub) Create(ctx context.Context, video model.Video) (*model.Video, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, video)
	}
	video.ID = 1
	return &video, nil
}

// GetByID returns the configured response or not found.
func (s *VideoRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Video, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

// List delegates to the override or returns nothing.
func (s *VideoRepositoryStub) List(ctx context.Context, playlistID *int64) ([]model.Video, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, playlistID)
	}
	return nil, nil
}

// Update echoes the video or delegates to the override.
func (s *VideoRepositoryStub) Update(ctx context.Context, video model.Video) (*model.Video, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, video)
	}
	return &video, nil
}

// Delete delegates to the override or succeeds.
func (s *VideoRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}
