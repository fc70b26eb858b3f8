package usecase

import (
	"context"

	"github.com/shopcore/adminapi/internal/domain/model"
	"github.com/shopcore/adminapi/internal/domain/repository"
)

// ContentUseCase manages storefront presentation entities.
type ContentUseCase struct {
	banners   repository.BannerRepository
	popups    repository.PopupRepository
	playlists repository.PlaylistRepository
	videos    repository.VideoRepository
}

// NewContentUseCase constructs ContentUseCase.
func NewContentUseCase(b repository.BannerRepository, po repository.PopupRepository, pl repository.PlaylistRepository, v repository.VideoRepository) *ContentUseCase {
	return &ContentUseCase{banners: b, popups: po, playlists: pl, videos: v}
}

func (u *ContentUseCase) CreateBanner(ctx context.Context, banner model.Banner) (*model.Banner, error) {
	return u.banners.Create(ctx, banner)
}

func (u *ContentUseCase) Banner(ctx context.Context, id int64) (*model.Banner, error) {
	return u.banners.GetByID(ctx, id)
}

func (u *ContentUseCase) Banners(ctx context.Context, onlyActive bool) ([]model.Banner, error) {
	return u.banners.List(ctx, onlyActive)
}

func (u *ContentUseCase) UpdateBanner(ctx context.Context, banner model.Banner) (*model.Banner, error) {
	return u.banners.Update(ctx, banner)
}

func (u *ContentUseCase) DeleteBanner(ctx context.Context, id int64) error {
	return u.banners.Delete(ctx, id)
}

func (u *ContentUseCase) CreatePopup(ctx context.Context, popup model.Popup) (*model.Popup, error) {
	return u.popups.Create(ctx, popup)
}

func (u *ContentUseCase) Popup(ctx context.Context, id int64) (*model.Popup, error) {
	return u.popups.GetByID(ctx, id)
}

func (u *ContentUseCase) Popups(ctx context.Context, onlyActive bool) ([]model.Popup, error) {
	return u.popups.List(ctx, onlyActive)
}

func (u *ContentUseCase) UpdatePopup(ctx context.Context, popup model.Popup) (*model.Popup, error) {
	return u.popups.Update(ctx, popup)
}

func (u *ContentUseCase) DeletePopup(ctx context.Context, id int64) error {
	return u.popups.Delete(ctx, id)
}

func (u *ContentUseCase) CreatePlaylist(ctx context.Context, playlist model.Playlist) (*model.Playlist, error) {
	return u.playlists.Create(ctx, playlist)
}

func (u *ContentUseCase) Playlist(ctx context.Context, id int64) (*model.Playlist, error) {
	return u.playlists.GetByID(ctx, id)
}

func (u *ContentUseCase) Playlists(ctx context.Context) ([]model.Playlist, error) {
	return u.playlists.List(ctx)
}

func (u *ContentUseCase) UpdatePlaylist(ctx context.Context, playlist model.Playlist) (*model.Playlist, error) {
	return u.playlists.Update(ctx, playlist)
}

func (u *ContentUseCase) DeletePlaylist(ctx context.Context, id int64) error {
	return u.playlists.Delete(ctx, id)
}

// CreateVideo verifies the playlist exists when one is referenced.
func (u *ContentUseCase) CreateVideo(ctx context.Context, video model.Video) (*model.Video, error) {
	if video.PlaylistID != nil {
		if _, err := u.playlists.GetByID(ctx, *video.PlaylistID); err != nil {
			return nil, err
		}
	}
	return u.videos.Create(ctx, video)
}

func (u *ContentUseCase) Video(ctx context.Context, id int64) (*model.Video, error) {
	return u.videos.GetByID(ctx, id)
}

func (u *ContentUseCase) Videos(ctx context.Context, playlistID *int64) ([]model.Video, error) {
	return u.videos.List(ctx, playlistID)
}

func (u *ContentUseCase) UpdateVideo(ctx context.Context, video model.Video) (*model.Video, error) {
	return u.videos.Update(ctx, video)
}

func (u *ContentUseCase) DeleteVideo(ctx context.Context, id int64) error {
	return u.videos.Delete(ctx, id)
}
