package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/shopcore/adminapi/internal/domain/errors"
	"github.com/shopcore/adminapi/internal/domain/model"
)

type bannerRepository struct {
	storage *Storage
}

func (r *bannerRepository) Create(ctx context.Context, banner model.Banner) (*model.Banner, error) {
	const query = `INSERT INTO banners (title, image_url, link_url, position, active)
                   VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.storage.pool.QueryRow(ctx, query, banner.Title, banner.ImageURL, banner.LinkURL, banner.Position, banner.Active).
		Scan(&banner.ID)
	if err != nil {
		return nil, err
	}
	return &banner, nil
}

func (r *bannerRepository) GetByID(ctx context.Context, id int64) (*model.Banner, error) {
	const query = `SELECT id, title, image_url, link_url, position, active FROM banners WHERE id=$1`
	var b model.Banner
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&b.ID, &b.Title, &b.ImageURL, &b.LinkURL, &b.Position, &b.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *bannerRepository) List(ctx context.Context, onlyActive bool) ([]model.Banner, error) {
	query := `SELECT id, title, image_url, link_url, position, active FROM banners`
	if onlyActive {
		query += ` WHERE active`
	}
	query += ` ORDER BY position, id`

	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Banner
	for rows.Next() {
		var b model.Banner
		if err := rows.Scan(&b.ID, &b.Title, &b.ImageURL, &b.LinkURL, &b.Position, &b.Active); err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *bannerRepository) Update(ctx context.Context, banner model.Banner) (*model.Banner, error) {
	const query = `UPDATE banners SET title=$2, image_url=$3, link_url=$4, position=$5, active=$6
                   WHERE id=$1 RETURNING id`
	err := r.storage.pool.QueryRow(ctx, query, banner.ID, banner.Title, banner.ImageURL, banner.LinkURL, banner.Position, banner.Active).
		Scan(&banner.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &banner, nil
}

func (r *bannerRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.storage, `DELETE FROM banners WHERE id=$1`, id)
}

type popupRepository struct {
	storage *Storage
}

func (r *popupRepository) Create(ctx context.Context, popup model.Popup) (*model.Popup, error) {
	const query = `INSERT INTO popups (title, image_url, link_url, active, starts_at, ends_at)
                   VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := r.storage.pool.QueryRow(ctx, query, popup.Title, popup.ImageURL, popup.LinkURL, popup.Active, popup.StartsAt, popup.EndsAt).
		Scan(&popup.ID)
	if err != nil {
		return nil, err
	}
	return &popup, nil
}

func (r *popupRepository) GetByID(ctx context.Context, id int64) (*model.Popup, error) {
	const query = `SELECT id, title, image_url, link_url, active, starts_at, ends_at FROM popups WHERE id=$1`
	var p model.Popup
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&p.ID, &p.Title, &p.ImageURL, &p.LinkURL, &p.Active, &p.StartsAt, &p.EndsAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *popupRepository) List(ctx context.Context, onlyActive bool) ([]model.Popup, error) {
	query := `SELECT id, title, image_url, link_url, active, starts_at, ends_at FROM popups`
	if onlyActive {
		query += ` WHERE active AND (starts_at IS NULL OR starts_at <= NOW()) AND (ends_at IS NULL OR ends_at >= NOW())`
	}
	query += ` ORDER BY id`

	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Popup
	for rows.Next() {
		var p model.Popup
		if err := rows.Scan(&p.ID, &p.Title, &p.ImageURL, &p.LinkURL, &p.Active, &p.StartsAt, &p.EndsAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *popupRepository) Update(ctx context.Context, popup model.Popup) (*model.Popup, error) {
	const query = `UPDATE popups SET title=$2, image_url=$3, link_url=$4, active=$5, starts_at=$6, ends_at=$7
                   WHERE id=$1 RETURNING id`
	err := r.storage.pool.QueryRow(ctx, query, popup.ID, popup.Title, popup.ImageURL, popup.LinkURL, popup.Active, popup.StartsAt, popup.EndsAt).
		Scan(&popup.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &popup, nil
}

func (r *popupRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.storage, `DELETE FROM popups WHERE id=$1`, id)
}

type playlistRepository struct {
	storage *Storage
}

func (r *playlistRepository) Create(ctx context.Context, playlist model.Playlist) (*model.Playlist, error) {
	const query = `INSERT INTO playlists (title, position) VALUES ($1, $2) RETURNING id`
	if err := r.storage.pool.QueryRow(ctx, query, playlist.Title, playlist.Position).Scan(&playlist.ID); err != nil {
		return nil, err
	}
	return &playlist, nil
}

func (r *playlistRepository) GetByID(ctx context.Context, id int64) (*model.Playlist, error) {
	const query = `SELECT id, title, position FROM playlists WHERE id=$1`
	var p model.Playlist
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&p.ID, &p.Title, &p.Position)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *playlistRepository) List(ctx context.Context) ([]model.Playlist, error) {
	const query = `SELECT id, title, position FROM playlists ORDER BY position, id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Playlist
	for rows.Next() {
		var p model.Playlist
		if err := rows.Scan(&p.ID, &p.Title, &p.Position); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *playlistRepository) Update(ctx context.Context, playlist model.Playlist) (*model.Playlist, error) {
	const query = `UPDATE playlists SET title=$2, position=$3 WHERE id=$1 RETURNING id`
	err := r.storage.pool.QueryRow(ctx, query, playlist.ID, playlist.Title, playlist.Position).Scan(&playlist.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &playlist, nil
}

func (r *playlistRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.storage, `DELETE FROM playlists WHERE id=$1`, id)
}

type videoRepository struct {
	storage *Storage
}

func (r *videoRepository) Create(ctx context.Context, video model.Video) (*model.Video, error) {
	const query = `INSERT INTO videos (playlist_id, title, url, position) VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.storage.pool.QueryRow(ctx, query, video.PlaylistID, video.Title, video.URL, video.Position).Scan(&video.ID)
	if err != nil {
		return nil, err
	}
	return &video, nil
}

func (r *videoRepository) GetByID(ctx context.Context, id int64) (*model.Video, error) {
	const query = `SELECT id, playlist_id, title, url, position FROM videos WHERE id=$1`
	var v model.Video
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&v.ID, &v.PlaylistID, &v.Title, &v.URL, &v.Position)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (r *videoRepository) List(ctx context.Context, playlistID *int64) ([]model.Video, error) {
	query := `SELECT id, playlist_id, title, url, position FROM videos`
	var args []any
	if playlistID != nil {
		query += ` WHERE playlist_id=$1`
		args = append(args, *playlistID)
	}
	query += ` ORDER BY position, id`

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Video
	for rows.Next() {
		var v model.Video
		if err := rows.Scan(&v.ID, &v.PlaylistID, &v.Title, &v.URL, &v.Position); err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *videoRepository) Update(ctx context.Context, video model.Video) (*model.Video, error) {
	const query = `UPDATE videos SET playlist_id=$2, title=$3, url=$4, position=$5 WHERE id=$1 RETURNING id`
	err := r.storage.pool.QueryRow(ctx, query, video.ID, video.PlaylistID, video.Title, video.URL, video.Position).Scan(&video.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &video, nil
}

func (r *videoRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.storage, `DELETE FROM videos WHERE id=$1`, id)
}
