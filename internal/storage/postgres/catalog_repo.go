package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/shopcore/adminapi/internal/domain/errors"
	"github.com/shopcore/adminapi/internal/domain/model"
)

type productRepository struct {
	storage *Storage
}

const productColumns = `id, category_id, name, description, price, active, created_at, updated_at`

func (r *productRepository) Create(ctx context.Context, product model.Product) (*model.Product, error) {
	const query = `INSERT INTO products (category_id, name, description, price, active)
                   VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at, updated_at`
	err := r.storage.pool.QueryRow(ctx, query, product.CategoryID, product.Name, product.Description, product.Price, product.Active).
		Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	const query = `SELECT ` + productColumns + ` FROM products WHERE id=$1`
	var p model.Product
	err := r.storage.pool.QueryRow(ctx, query, id).
		Scan(&p.ID, &p.CategoryID, &p.Name, &p.Description, &p.Price, &p.Active, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) List(ctx context.Context, onlyActive bool) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`
	if onlyActive {
		query += ` WHERE active`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.storage.pool.Query(ctx, query)
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

func (r *productRepository) Update(ctx context.Context, product model.Product) (*model.Product, error) {
	const query = `UPDATE products SET category_id=$2, name=$3, description=$4, price=$5, active=$6, updated_at=NOW()
                   WHERE id=$1 RETURNING created_at, updated_at`
	err := r.storage.pool.QueryRow(ctx, query, product.ID, product.CategoryID, product.Name, product.Description, product.Price, product.Active).
		Scan(&product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.storage, `DELETE FROM products WHERE id=$1`, id)
}

type categoryRepository struct {
	storage *Storage
}

func (r *categoryRepository) Create(ctx context.Context, category model.Category) (*model.Category, error) {
	const query = `INSERT INTO categories (name, slug, position) VALUES ($1, $2, $3) RETURNING id`
	err := r.storage.pool.QueryRow(ctx, query, category.Name, category.Slug, category.Position).Scan(&category.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	const query = `SELECT id, name, slug, position FROM categories WHERE id=$1`
	var c model.Category
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.Slug, &c.Position)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepository) List(ctx context.Context) ([]model.Category, error) {
	const query = `SELECT id, name, slug, position FROM categories ORDER BY position, id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Position); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *categoryRepository) Update(ctx context.Context, category model.Category) (*model.Category, error) {
	const query = `UPDATE categories SET name=$2, slug=$3, position=$4 WHERE id=$1 RETURNING id`
	err := r.storage.pool.QueryRow(ctx, query, category.ID, category.Name, category.Slug, category.Position).Scan(&category.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.storage, `DELETE FROM categories WHERE id=$1`, id)
}

type shippingZoneRepository struct {
	storage *Storage
}

func (r *shippingZoneRepository) Create(ctx context.Context, zone model.ShippingZone) (*model.ShippingZone, error) {
	const query = `INSERT INTO shipping_zones (name, regions, price, min_order_total)
                   VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.storage.pool.QueryRow(ctx, query, zone.Name, zone.Regions, zone.Price, zone.MinOrderTotal).Scan(&zone.ID)
	if err != nil {
		return nil, err
	}
	return &zone, nil
}

func (r *shippingZoneRepository) GetByID(ctx context.Context, id int64) (*model.ShippingZone, error) {
	const query = `SELECT id, name, regions, price, min_order_total FROM shipping_zones WHERE id=$1`
	var z model.ShippingZone
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&z.ID, &z.Name, &z.Regions, &z.Price, &z.MinOrderTotal)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &z, nil
}

func (r *shippingZoneRepository) List(ctx context.Context) ([]model.ShippingZone, error) {
	const query = `SELECT id, name, regions, price, min_order_total FROM shipping_zones ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.ShippingZone
	for rows.Next() {
		var z model.ShippingZone
		if err := rows.Scan(&z.ID, &z.Name, &z.Regions, &z.Price, &z.MinOrderTotal); err != nil {
			return nil, err
		}
		result = append(result, z)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *shippingZoneRepository) Update(ctx context.Context, zone model.ShippingZone) (*model.ShippingZone, error) {
	const query = `UPDATE shipping_zones SET name=$2, regions=$3, price=$4, min_order_total=$5
                   WHERE id=$1 RETURNING id`
	err := r.storage.pool.QueryRow(ctx, query, zone.ID, zone.Name, zone.Regions, zone.Price, zone.MinOrderTotal).Scan(&zone.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &zone, nil
}

func (r *shippingZoneRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.storage, `DELETE FROM shipping_zones WHERE id=$1`, id)
}

func deleteByID(ctx context.Context, storage *Storage, query string, id int64) error {
	tag, err := storage.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
