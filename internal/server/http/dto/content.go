package dto

import "time"

// BannerRequest describes a banner write.
type BannerRequest struct {
	Title    string `json:"title" binding:"required"`
	ImageURL string `json:"image_url" binding:"required,url"`
	LinkURL  string `json:"link_url" binding:"omitempty,url"`
	Position int    `json:"position"`
	Active   bool   `json:"active"`
}

// BannerResponse describes a banner.
type BannerResponse struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
	LinkURL  string `json:"link_url,omitempty"`
	Position int    `json:"position"`
	Active   bool   `json:"active"`
}

// PopupRequest describes a popup write.
type PopupRequest struct {
	Title    string     `json:"title" binding:"required"`
	ImageURL string     `json:"image_url" binding:"required,url"`
	LinkURL  string     `json:"link_url" binding:"omitempty,url"`
	Active   bool       `json:"active"`
	StartsAt *time.Time `json:"starts_at"`
	EndsAt   *time.Time `json:"ends_at"`
}

// PopupResponse describes a popup.
type PopupResponse struct {
	ID       int64      `json:"id"`
	Title    string     `json:"title"`
	ImageURL string     `json:"image_url"`
	LinkURL  string     `json:"link_url,omitempty"`
	Active   bool       `json:"active"`
	StartsAt *time.Time `json:"starts_at,omitempty"`
	EndsAt   *time.Time `json:"ends_at,omitempty"`
}

// PlaylistRequest describes a playlist write.
type PlaylistRequest struct {
	Title    string `json:"title" binding:"required"`
	Position int    `json:"position"`
}

// PlaylistResponse describes a playlist.
type PlaylistResponse struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Position int    `json:"position"`
}

// VideoRequest describes a video write.
type VideoRequest struct {
	PlaylistID *int64 `json:"playlist_id"`
	Title      string `json:"title" binding:"required"`
	URL        string `json:"url" binding:"required,url"`
	Position   int    `json:"position"`
}

// VideoResponse describes a video.
type VideoResponse struct {
	ID         int64  `json:"id"`
	PlaylistID *int64 `json:"playlist_id,omitempty"`
	Title      string `json:"title"`
	URL        string `json:"url"`
	Position   int    `json:"position"`
}
