package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/shopcore/adminapi/internal/domain/errors"
	"github.com/shopcore/adminapi/internal/domain/model"
)

type bonusRepository struct {
	storage *Storage
}

const bonusColumns = `id, name, description, points, active, created_at`

func scanBonus(row pgx.Row) (*model.Bonus, error) {
	var b model.Bonus
	err := row.Scan(&b.ID, &b.Name, &b.Description, &b.Points, &b.Active, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *bonusRepository) Create(ctx context.Context, bonus model.Bonus) (*model.Bonus, error) {
	const query = `INSERT INTO bonuses (name, description, points, active)
                   VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	err := r.storage.pool.QueryRow(ctx, query, bonus.Name, bonus.Description, bonus.Points, bonus.Active).
		Scan(&bonus.ID, &bonus.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &bonus, nil
}

func (r *bonusRepository) GetByID(ctx context.Context, id int64) (*model.Bonus, error) {
	const query = `SELECT ` + bonusColumns + ` FROM bonuses WHERE id=$1`
	return scanBonus(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *bonusRepository) List(ctx context.Context) ([]model.Bonus, error) {
	const query = `SELECT ` + bonusColumns + ` FROM bonuses ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Bonus
	for rows.Next() {
		var b model.Bonus
		if err := rows.Scan(&b.ID, &b.Name, &b.Description, &b.Points, &b.Active, &b.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *bonusRepository) Update(ctx context.Context, bonus model.Bonus) (*model.Bonus, error) {
	const query = `UPDATE bonuses SET name=$2, description=$3, points=$4, active=$5
                   WHERE id=$1 RETURNING created_at`
	err := r.storage.pool.QueryRow(ctx, query, bonus.ID, bonus.Name, bonus.Description, bonus.Points, bonus.Active).
		Scan(&bonus.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &bonus, nil
}

func (r *bonusRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM bonuses WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
