package model

import "time"

// Product is a sellable catalog item. Price is stored in minor currency units.
type Product struct {
	ID          int64
	CategoryID  *int64
	Name        string
	Description string
	Price       int64
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Category groups products; Slug is unique and URL-safe.
type Category struct {
	ID       int64
	Name     string
	Slug     string
	Position int
}

// ShippingZone describes a delivery area with a flat price. Amounts are in
// minor currency units.
type ShippingZone struct {
	ID            int64
	Name          string
	Regions       []string
	Price         int64
	MinOrderTotal int64
}
