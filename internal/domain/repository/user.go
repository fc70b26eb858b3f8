package repository

import (
	"context"

	"github.com/shopcore/adminapi/internal/domain/model"
)

// UserRepository describes persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user model.User) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	ListByPointRange(ctx context.Context, min, max int64) ([]model.User, error)
	Points(ctx context.Context, userID int64) (int64, error)
	SampleIDs(ctx context.Context, limit int) ([]int64, error)
}
