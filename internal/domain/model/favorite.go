package model

import "time"

// Favorite marks a product as saved by a user. The user/product pair is unique.
type Favorite struct {
	UserID    int64
	ProductID int64
	CreatedAt time.Time
}
