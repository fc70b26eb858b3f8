package repository

import (
	"context"

	"github.com/shopcore/adminapi/internal/domain/model"
)

// BannerRepository describes persistence operations for banners.
type BannerRepository interface {
	Create(ctx context.Context, banner model.Banner) (*model.Banner, error)
	GetByID(ctx context.Context, id int64) (*model.Banner, error)
	List(ctx context.Context, onlyActive bool) ([]model.Banner, error)
	Update(ctx context.Context, banner model.Banner) (*model.Banner, error)
	Delete(ctx context.Context, id int64) error
}

// PopupRepository describes persistence operations for popups.
type PopupRepository interface {
	Create(ctx context.Context, popup model.Popup) (*model.Popup, error)
	GetByID(ctx context.Context, id int64) (*model.Popup, error)
	List(ctx context.Context, onlyActive bool) ([]model.Popup, error)
	Update(ctx context.Context, popup model.Popup) (*model.Popup, error)
	Delete(ctx context.Context, id int64) error
}

// PlaylistRepository describes persistence operations for playlists.
type PlaylistRepository interface {
	Create(ctx context.Context, playlist model.Playlist) (*model.Playlist, error)
	GetByID(ctx context.Context, id int64) (*model.Playlist, error)
	List(ctx context.Context) ([]model.Playlist, error)
	Update(ctx context.Context, playlist model.Playlist) (*model.Playlist, error)
	Delete(ctx context.Context, id int64) error
}

// VideoRepository describes persistence operations for videos.
type VideoRepository interface {
	Create(ctx context.Context, video model.Video) (*model.Video, error)
	GetByID(ctx context.Context, id int64) (*model.Video, error)
	List(ctx context.Context, playlistID *int64) ([]model.Video, error)
	Update(ctx context.Context, video model.Video) (*model.Video, error)
	Delete(ctx context.Context, id int64) error
}
