package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopcore/adminapi/internal/server/http/dto"
)

// FavoriteHandler serves the authenticated user's saved products.
type FavoriteHandler struct {
	facade FavoriteFacade
	logger *slog.Logger
}

// NewFavoriteHandler constructs FavoriteHandler.
func NewFavoriteHandler(facade FavoriteFacade, logger *slog.Logger) *FavoriteHandler {
	return &FavoriteHandler{facade: facade, logger: logger}
}

// Add handles POST /api/favorites. Saving an already saved product is a no-op
// and still answers 201.
func (h *FavoriteHandler) Add(c *gin.Context) {
	var req dto.FavoriteRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	identity := CurrentIdentity(c)
	if _, err := h.facade.AddFavorite(c.Request.Context(), identity.UserID, req.ProductID); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusCreated)
}

// Remove handles DELETE /api/favorites/:productID.
func (h *FavoriteHandler) Remove(c *gin.Context) {
	productID, ok := pathID(c, "productID")
	if !ok {
		return
	}

	identity := CurrentIdentity(c)
	if err := h.facade.RemoveFavorite(c.Request.Context(), identity.UserID, productID); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// List handles GET /api/favorites.
func (h *FavoriteHandler) List(c *gin.Context) {
	identity := CurrentIdentity(c)
	products, err := h.facade.ListFavorites(c.Request.Context(), identity.UserID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	resp := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, toProductResponse(p))
	}
	c.JSON(http.StatusOK, resp)
}
