package model

import "time"

// Banner is a promotional image shown on storefront pages.
type Banner struct {
	ID       int64
	Title    string
	ImageURL string
	LinkURL  string
	Position int
	Active   bool
}

// Popup is a time-boxed promotional overlay.
type Popup struct {
	ID       int64
	Title    string
	ImageURL string
	LinkURL  string
	Active   bool
	StartsAt *time.Time
	EndsAt   *time.Time
}

// Playlist orders videos for the storefront media section.
type Playlist struct {
	ID       int64
	Title    string
	Position int
}

// Video is an embedded media item, optionally attached to a playlist.
type Video struct {
	ID         int64
	PlaylistID *int64
	Title      string
	URL        string
	Position   int
}
