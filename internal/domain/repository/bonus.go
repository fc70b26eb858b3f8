package repository

import (
	"context"

	"github.com/shopcore/adminapi/internal/domain/model"
)

// BonusRepository describes persistence operations for reward rules.
type BonusRepository interface {
	Create(ctx context.Context, bonus model.Bonus) (*model.Bonus, error)
	GetByID(ctx context.Context, id int64) (*model.Bonus, error)
	List(ctx context.Context) ([]model.Bonus, error)
	Update(ctx context.Context, bonus model.Bonus) (*model.Bonus, error)
	Delete(ctx context.Context, id int64) error
}
