package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopcore/adminapi/internal/domain/model"
	"github.com/shopcore/adminapi/internal/server/http/dto"
)

// ContentHandler serves banners, popups, playlists, and videos.
type ContentHandler struct {
	facade ContentFacade
	logger *slog.Logger
}

// NewContentHandler constructs ContentHandler.
func NewContentHandler(facade ContentFacade, logger *slog.Logger) *ContentHandler {
	return &ContentHandler{facade: facade, logger: logger}
}

// CreateBanner handles POST /api/admin/banners.
func (h *ContentHandler) CreateBanner(c *gin.Context) {
	var req dto.BannerRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	banner, err := h.facade.CreateBanner(c.Request.Context(), bannerFromRequest(req, 0))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, toBannerResponse(*banner))
}

// GetBanner handles GET /api/content/banners/:id.
func (h *ContentHandler) GetBanner(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	banner, err := h.facade.Banner(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toBannerResponse(*banner))
}

// ListBanners handles GET /api/content/banners. Public callers only see
// active entries.
func (h *ContentHandler) ListBanners(onlyActive bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		banners, err := h.facade.Banners(c.Request.Context(), onlyActive)
		if err != nil {
			respondError(c, h.logger, err)
			return
		}

		resp := make([]dto.BannerResponse, 0, len(banners))
		for _, b := range banners {
			resp = append(resp, toBannerResponse(b))
		}
		c.JSON(http.StatusOK, resp)
	}
}

// UpdateBanner handles PUT /api/admin/banners/:id.
func (h *ContentHandler) UpdateBanner(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.BannerRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	banner, err := h.facade.UpdateBanner(c.Request.Context(), bannerFromRequest(req, id))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toBannerResponse(*banner))
}

// DeleteBanner handles DELETE /api/admin/banners/:id.
func (h *ContentHandler) DeleteBanner(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.facade.DeleteBanner(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreatePopup handles POST /api/admin/popups.
func (h *ContentHandler) CreatePopup(c *gin.Context) {
	var req dto.PopupRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	popup, err := h.facade.CreatePopup(c.Request.Context(), popupFromRequest(req, 0))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, toPopupResponse(*popup))
}

// GetPopup handles GET /api/content/popups/:id.
func (h *ContentHandler) GetPopup(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	popup, err := h.facade.Popup(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toPopupResponse(*popup))
}

// ListPopups handles GET /api/content/popups.
func (h *ContentHandler) ListPopups(onlyActive bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		popups, err := h.facade.Popups(c.Request.Context(), onlyActive)
		if err != nil {
			respondError(c, h.logger, err)
			return
		}

		resp := make([]dto.PopupResponse, 0, len(popups))
		for _, p := range popups {
			resp = append(resp, toPopupResponse(p))
		}
		c.JSON(http.StatusOK, resp)
	}
}

// UpdatePopup handles PUT /api/admin/popups/:id.
func (h *ContentHandler) UpdatePopup(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.PopupRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	popup, err := h.facade.UpdatePopup(c.Request.Context(), popupFromRequest(req, id))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toPopupResponse(*popup))
}

// DeletePopup handles DELETE /api/admin/popups/:id.
func (h *ContentHandler) DeletePopup(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.facade.DeletePopup(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreatePlaylist handles POST /api/admin/playlists.
func (h *ContentHandler) CreatePlaylist(c *gin.Context) {
	var req dto.PlaylistRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	playlist, err := h.facade.CreatePlaylist(c.Request.Context(), playlistFromRequest(req, 0))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, toPlaylistResponse(*playlist))
}

// GetPlaylist handles GET /api/content/playlists/:id.
func (h *ContentHandler) GetPlaylist(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	playlist, err := h.facade.Playlist(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toPlaylistResponse(*playlist))
}

// ListPlaylists handles GET /api/content/playlists.
func (h *ContentHandler) ListPlaylists(c *gin.Context) {
	playlists, err := h.facade.Playlists(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	resp := make([]dto.PlaylistResponse, 0, len(playlists))
	for _, p := range playlists {
		resp = append(resp, toPlaylistResponse(p))
	}
	c.JSON(http.StatusOK, resp)
}

// UpdatePlaylist handles PUT /api/admin/playlists/:id.
func (h *ContentHandler) UpdatePlaylist(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.PlaylistRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	playlist, err := h.facade.UpdatePlaylist(c.Request.Context(), playlistFromRequest(req, id))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toPlaylistResponse(*playlist))
}

// DeletePlaylist handles DELETE /api/admin/playlists/:id. Attached videos
// survive with their playlist reference cleared.
func (h *ContentHandler) DeletePlaylist(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.facade.DeletePlaylist(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateVideo handles POST /api/admin/videos.
func (h *ContentHandler) CreateVideo(c *gin.Context) {
	var req dto.VideoRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	video, err := h.facade.CreateVideo(c.Request.Context(), videoFromRequest(req, 0))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, toVideoResponse(*video))
}

// GetVideo handles GET /api/content/videos/:id.
func (h *ContentHandler) GetVideo(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	video, err := h.facade.Video(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toVideoResponse(*video))
}

// ListVideos handles GET /api/content/videos with an optional playlist_id
// filter.
func (h *ContentHandler) ListVideos(c *gin.Context) {
	var playlistID *int64
	if raw := c.Query("playlist_id"); raw != "" {
		id, ok := queryInt(c, "playlist_id", 0)
		if !ok {
			return
		}
		playlistID = &id
	}

	videos, err := h.facade.Videos(c.Request.Context(), playlistID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	resp := make([]dto.VideoResponse, 0, len(videos))
	for _, v := range videos {
		resp = append(resp, toVideoResponse(v))
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateVideo handles PUT /api/admin/videos/:id.
func (h *ContentHandler) UpdateVideo(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.VideoRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	video, err := h.facade.UpdateVideo(c.Request.Context(), videoFromRequest(req, id))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toVideoResponse(*video))
}

// DeleteVideo handles DELETE /api/admin/videos/:id.
func (h *ContentHandler) DeleteVideo(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.facade.DeleteVideo(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func bannerFromRequest(req dto.BannerRequest, id int64) model.Banner {
	return model.Banner{
		ID:       id,
		Title:    req.Title,
		ImageURL: req.ImageURL,
		LinkURL:  req.LinkURL,
		Position: req.Position,
		Active:   req.Active,
	}
}

func toBannerResponse(b model.Banner) dto.BannerResponse {
	return dto.BannerResponse{
		ID:       b.ID,
		Title:    b.Title,
		ImageURL: b.ImageURL,
		LinkURL:  b.LinkURL,
		Position: b.Position,
		Active:   b.Active,
	}
}

func popupFromRequest(req dto.PopupRequest, id int64) model.Popup {
	return model.Popup{
		ID:       id,
		Title:    req.Title,
		ImageURL: req.ImageURL,
		LinkURL:  req.LinkURL,
		Active:   req.Active,
		StartsAt: req.StartsAt,
		EndsAt:   req.EndsAt,
	}
}

func toPopupResponse(p model.Popup) dto.PopupResponse {
	return dto.PopupResponse{
		ID:       p.ID,
		Title:    p.Title,
		ImageURL: p.ImageURL,
		LinkURL:  p.LinkURL,
		Active:   p.Active,
		StartsAt: p.StartsAt,
		EndsAt:   p.EndsAt,
	}
}

func playlistFromRequest(req dto.PlaylistRequest, id int64) model.Playlist {
	return model.Playlist{
		ID:       id,
		Title:    req.Title,
		Position: req.Position,
	}
}

func toPlaylistResponse(p model.Playlist) dto.PlaylistResponse {
	return dto.PlaylistResponse{
		ID:       p.ID,
		Title:    p.Title,
		Position: p.Position,
	}
}

func videoFromRequest(req dto.VideoRequest, id int64) model.Video {
	return model.Video{
		ID:         id,
		PlaylistID: req.PlaylistID,
		Title:      req.Title,
		URL:        req.URL,
		Position:   req.Position,
	}
}

func toVideoResponse(v model.Video) dto.VideoResponse {
	return dto.VideoResponse{
		ID:         v.ID,
		PlaylistID: v.PlaylistID,
		Title:      v.Title,
		URL:        v.URL,
		Position:   v.Position,
	}
}
