package dto

import "time"

// ProductRequest describes a product write. Price is in minor currency units.
type ProductRequest struct {
	CategoryID  *int64 `json:"category_id"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       int64  `json:"price" binding:"gte=0"`
	Active      bool   `json:"active"`
}

// ProductResponse describes a product.
type ProductResponse struct {
	ID          int64     `json:"id"`
	CategoryID  *int64    `json:"category_id,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       int64     `json:"price"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CategoryRequest describes a category write; a missing slug is derived from the name.
type CategoryRequest struct {
	Name     string `json:"name" binding:"required"`
	Slug     string `json:"slug"`
	Position int    `json:"position"`
}

// CategoryResponse describes a category.
type CategoryResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Position int    `json:"position"`
}

// ShippingZoneRequest describes a shipping zone write.
type ShippingZoneRequest struct {
	Name          string   `json:"name" binding:"required"`
	Regions       []string `json:"regions"`
	Price         int64    `json:"price" binding:"gte=0"`
	MinOrderTotal int64    `json:"min_order_total" binding:"gte=0"`
}

// ShippingZoneResponse describes a shipping zone.
type ShippingZoneResponse struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Regions       []string `json:"regions"`
	Price         int64    `json:"price"`
	MinOrderTotal int64    `json:"min_order_total"`
}
