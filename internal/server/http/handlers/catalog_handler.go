package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopcore/adminapi/internal/domain/model"
	"github.com/shopcore/adminapi/internal/server/http/dto"
)

// CatalogHandler serves products, categories, and shipping zones.
type CatalogHandler struct {
	facade CatalogFacade
	logger *slog.Logger
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(facade CatalogFacade, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{facade: facade, logger: logger}
}

// CreateProduct handles POST /api/admin/products.
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req dto.ProductRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	product, err := h.facade.CreateProduct(c.Request.Context(), productFromRequest(req, 0))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, toProductResponse(*product))
}

// GetProduct handles GET /api/catalog/products/:id.
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	product, err := h.facade.Product(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toProductResponse(*product))
}

// ListProducts handles GET /api/catalog/products. Public callers only see
// active items; the admin listing includes everything.
func (h *CatalogHandler) ListProducts(onlyActive bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := h.facade.Products(c.Request.Context(), onlyActive)
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
}

// UpdateProduct handles PUT /api/admin/products/:id.
func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.ProductRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	product, err := h.facade.UpdateProduct(c.Request.Context(), productFromRequest(req, id))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toProductResponse(*product))
}

// DeleteProduct handles DELETE /api/admin/products/:id.
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.facade.DeleteProduct(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateCategory handles POST /api/admin/categories.
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req dto.CategoryRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	category, err := h.facade.CreateCategory(c.Request.Context(), categoryFromRequest(req, 0))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, toCategoryResponse(*category))
}

// GetCategory handles GET /api/catalog/categories/:id.
func (h *CatalogHandler) GetCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	category, err := h.facade.Category(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toCategoryResponse(*category))
}

// ListCategories handles GET /api/catalog/categories.
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.facade.Categories(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	resp := make([]dto.CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		resp = append(resp, toCategoryResponse(cat))
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateCategory handles PUT /api/admin/categories/:id.
func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.CategoryRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	category, err := h.facade.UpdateCategory(c.Request.Context(), categoryFromRequest(req, id))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toCategoryResponse(*category))
}

// DeleteCategory handles DELETE /api/admin/categories/:id.
func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.facade.DeleteCategory(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateShippingZone handles POST /api/admin/shipping-zones.
func (h *CatalogHandler) CreateShippingZone(c *gin.Context) {
	var req dto.ShippingZoneRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	zone, err := h.facade.CreateShippingZone(c.Request.Context(), zoneFromRequest(req, 0))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, toZoneResponse(*zone))
}

// GetShippingZone handles GET /api/catalog/shipping-zones/:id.
func (h *CatalogHandler) GetShippingZone(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	zone, err := h.facade.ShippingZone(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toZoneResponse(*zone))
}

// ListShippingZones handles GET /api/catalog/shipping-zones.
func (h *CatalogHandler) ListShippingZones(c *gin.Context) {
	zones, err := h.facade.ShippingZones(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	resp := make([]dto.ShippingZoneResponse, 0, len(zones))
	for _, z := range zones {
		resp = append(resp, toZoneResponse(z))
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateShippingZone handles PUT /api/admin/shipping-zones/:id.
func (h *CatalogHandler) UpdateShippingZone(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.ShippingZoneRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	zone, err := h.facade.UpdateShippingZone(c.Request.Context(), zoneFromRequest(req, id))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toZoneResponse(*zone))
}

// DeleteShippingZone handles DELETE /api/admin/shipping-zones/:id.
func (h *CatalogHandler) DeleteShippingZone(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.facade.DeleteShippingZone(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func productFromRequest(req dto.ProductRequest, id int64) model.Product {
	return model.Product{
		ID:          id,
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Active:      req.Active,
	}
}

func toProductResponse(p model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		CategoryID:  p.CategoryID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func categoryFromRequest(req dto.CategoryRequest, id int64) model.Category {
	return model.Category{
		ID:       id,
		Name:     req.Name,
		Slug:     req.Slug,
		Position: req.Position,
	}
}

func toCategoryResponse(cat model.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:       cat.ID,
		Name:     cat.Name,
		Slug:     cat.Slug,
		Position: cat.Position,
	}
}

func zoneFromRequest(req dto.ShippingZoneRequest, id int64) model.ShippingZone {
	return model.ShippingZone{
		ID:            id,
		Name:          req.Name,
		Regions:       req.Regions,
		Price:         req.Price,
		MinOrderTotal: req.MinOrderTotal,
	}
}

func toZoneResponse(z model.ShippingZone) dto.ShippingZoneResponse {
	return dto.ShippingZoneResponse{
		ID:            z.ID,
		Name:          z.Name,
		Regions:       z.Regions,
		Price:         z.Price,
		MinOrderTotal: z.MinOrderTotal,
	}
}
