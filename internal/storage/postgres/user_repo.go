package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/shopcore/adminapi/internal/domain/errors"
	"github.com/shopcore/adminapi/internal/domain/model"
)

type userRepository struct {
	storage *Storage
}

const userColumns = `id, username, password_hash, role, full_name, email, points, created_at`

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.FullName, &u.Email, &u.Points, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) Create(ctx context.Context, user model.User) (*model.User, error) {
	const query = `INSERT INTO users (username, password_hash, role, full_name, email)
                   VALUES ($1, $2, $3, $4, $5)
                   RETURNING id, points, created_at`
	role := user.Role
	if role == "" {
		role = model.RoleCustomer
	}
	err := r.storage.pool.QueryRow(ctx, query, user.Username, user.PasswordHash, role, user.FullName, user.Email).
		Scan(&user.ID, &user.Points, &user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	user.Role = role
	return &user, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE username=$1`
	return scanUser(r.storage.pool.QueryRow(ctx, query, username))
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id=$1`
	return scanUser(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`
	return r.queryUsers(ctx, query)
}

func (r *userRepository) ListByPointRange(ctx context.Context, min, max int64) ([]model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users
                   WHERE points BETWEEN $1 AND $2 ORDER BY points DESC`
	return r.queryUsers(ctx, query, min, max)
}

func (r *userRepository) Points(ctx context.Context, userID int64) (int64, error) {
	const query = `SELECT points FROM users WHERE id=$1`
	var points int64
	err := r.storage.pool.QueryRow(ctx, query, userID).Scan(&points)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domainErrors.ErrNotFound
		}
		return 0, err
	}
	return points, nil
}

func (r *userRepository) SampleIDs(ctx context.Context, limit int) ([]int64, error) {
	const query = `SELECT id FROM users ORDER BY RANDOM() LIMIT $1`
	rows, err := r.storage.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *userRepository) queryUsers(ctx context.Context, query string, args ...any) ([]model.User, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.FullName, &u.Email, &u.Points, &u.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
