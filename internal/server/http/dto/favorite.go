package dto

// FavoriteRequest marks a product as saved.
type FavoriteRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
}
