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

func newContentUseCase() (*ContentUseCase, *testhelpers.PlaylistRepositoryStub, *testhelpers.VideoRepositoryStub) {
	playlists := &testhelpers.PlaylistRepositoryStub{}
	videos := &testhelpers.VideoRepositoryStub{}
	uc := NewContentUseCase(&testhelpers.BannerRepositoryStub{}, &testhelpers.PopupRepositoryStub{}, playlists, videos)
	return uc, playlists, videos
}

func TestContentCreateVideoChecksPlaylist(t *testing.T) {
	uc, playlists, _ := newContentUseCase()

	missing := int64(404)
	if _, err := uc.CreateVideo(context.Background(), model.Video{Title: "Clip", URL: "https://example.com/v", PlaylistID: &missing}); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown playlist, got %v", err)
	}

	playlists.GetByIDFn = func(ctx context.Context, id int64) (*model.Playlist, error) {
		return &model.Playlist{ID: id, Title: "Haul"}, nil
	}
	known := int64(2)
	video, err := uc.CreateVideo(context.Background(), model.Video{Title: "Clip", URL: "https://example.com/v", PlaylistID: &known})
	if err != nil {
		t.Fatalf("create video: %v", err)
	}
	if video.PlaylistID == nil || *video.PlaylistID != known {
		t.Fatalf("unexpected playlist reference: %+v", video)
	}
}

func TestContentCreateVideoWithoutPlaylist(t *testing.T) {
	uc, _, _ := newContentUseCase()
	video, err := uc.CreateVideo(context.Background(), model.Video{Title: "Standalone", URL: "https://example.com/v"})
	if err != nil {
		t.Fatalf("create video: %v", err)
	}
	if video.PlaylistID != nil {
		t.Fatalf("expected detached video, got %+v", video)
	}
}

func TestContentBannerPassthrough(t *testing.T) {
	uc, _, _ := newContentUseCase()
	banner, err := uc.CreateBanner(context.Background(), model.Banner{Title: "Sale", ImageURL: "https://example.com/b.png", Active: true})
	if err != nil {
		t.Fatalf("create banner: %v", err)
	}
	if banner.ID == 0 {
		t.Fatal("expected assigned identifier")
	}
	if err := uc.DeleteBanner(context.Background(), banner.ID); err != nil {
		t.Fatalf("delete banner: %v", err)
	}
}

func TestContentVideosFilterPropagated(t *testing.T) {
	uc, _, videos := newContentUseCase()
	var gotFilter *int64
	videos.ListFn = func(ctx context.Context, playlistID *int64) ([]model.Video, error) {
		gotFilter = playlistID
		return nil, nil
	}

	filter := int64(7)
	if _, err := uc.Videos(context.Background(), &filter); err != nil {
		t.Fatalf("videos: %v", err)
	}
	if gotFilter == nil || *gotFilter != 7 {
		t.Fatalf("filter not propagated: %v", gotFilter)
	}
}
