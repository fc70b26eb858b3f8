package postgres

import (
	"context"

	domainErrors "github.com/shopcore/adminapi/internal/domain/errors"
	"github.com/shopcore/adminapi/internal/domain/model"
)

type favoriteRepository struct {
	storage *Storage
}

func (r *favoriteRepository) Add(ctx context.Context, userID, productID int64) (*model.Favorite, error) {
	const query = `INSERT INTO favorites (user_id, product_id) VALUES ($1, $2)
                   ON CONFLICT (user_id, product_id) DO UPDATE SET user_id = favorites.user_id
                   RETURNING created_at`
	fav := model.Favorite{UserID: userID, ProductID: productID}
	if err := r.storage.pool.QueryRow(ctx, query, userID, productID).Scan(&fav.CreatedAt); err != nil {
		return nil, err
	}
	return &fav, nil
}

func (r *favoriteRepository) Remove(ctx context.Context, userID, productID int64) error {
	const query = `DELETE FROM favorites WHERE user_id=$1 AND product_id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, userID, productID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *favoriteRepository) ListByUser(ctx context.Context, userID int64) ([]model.Product, error) {
	const query = `SELECT p.id, p.category_id, p.name, p.description, p.price, p.active, p.created_at, p.updated_at
                   FROM products p
                   JOIN favorites f ON f.product_id = p.id
                   WHERE f.user_id=$1
                   ORDER BY f.created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.CategoryID, &p.Name, &p.Description, &p.Price, &p.Active, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
