package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/shopcore/adminapi/internal/domain/errors"
	"github.com/shopcore/adminapi/internal/domain/model"
)

type ledgerRepository struct {
	storage *Storage
}

const ledgerColumns = `id, user_id, type, reason, amount, bonus_id, idempotency_key, created_at`

// Record appends a ledger entry and adjusts the cached user balance inside a
// single transaction. The balance change is an atomic SET points = points + n
// so concurrent records for one user never lose updates.
func (r *ledgerRepository) Record(ctx context.Context, entry model.PointTransaction) (*model.PointTransaction, bool, error) {
	stored := entry
	applied := true

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if entry.IdempotencyKey != nil {
			const lookup = `SELECT ` + ledgerColumns + ` FROM point_transactions WHERE idempotency_key=$1`
			existing, err := scanTransaction(tx.QueryRow(ctx, lookup, *entry.IdempotencyKey))
			if err == nil {
				stored = *existing
				applied = false
				return nil
			}
			if !errors.Is(err, domainErrors.ErrNotFound) {
				return err
			}
		}

		const insert = `INSERT INTO point_transactions (user_id, type, reason, amount, bonus_id, idempotency_key)
                        VALUES ($1, $2, $3, $4, $5, $6)
                        RETURNING id, created_at`
		err := tx.QueryRow(ctx, insert, entry.UserID, entry.Type, entry.Reason, entry.Amount, entry.BonusID, entry.IdempotencyKey).
			Scan(&stored.ID, &stored.CreatedAt)
		if err != nil {
			if isUniqueViolation(err) {
				return domainErrors.ErrAlreadyExists
			}
			return err
		}

		const adjust = `UPDATE users SET points = points + $2 WHERE id=$1`
		tag, err := tx.Exec(ctx, adjust, entry.UserID, entry.Type.Effect(entry.Amount))
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domainErrors.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return &stored, applied, nil
}

func (r *ledgerRepository) ListByUser(ctx context.Context, userID int64) ([]model.PointTransaction, error) {
	const query = `SELECT ` + ledgerColumns + ` FROM point_transactions
                   WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.PointTransaction
	for rows.Next() {
		var t model.PointTransaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.Type, &t.Reason, &t.Amount, &t.BonusID, &t.IdempotencyKey, &t.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *ledgerRepository) SumByUser(ctx context.Context, userID int64) (int64, error) {
	const query = `SELECT COALESCE(SUM(CASE WHEN type='spend' THEN -amount ELSE amount END), 0)
                   FROM point_transactions WHERE user_id=$1`
	var sum int64
	if err := r.storage.pool.QueryRow(ctx, query, userID).Scan(&sum); err != nil {
		return 0, err
	}
	return sum, nil
}

func (r *ledgerRepository) Redeemers(ctx context.Context, bonusID int64) ([]model.User, error) {
	const query = `SELECT DISTINCT u.id, u.username, u.password_hash, u.role, u.full_name, u.email, u.points, u.created_at
                   FROM users u
                   JOIN point_transactions t ON t.user_id = u.id
                   WHERE t.bonus_id=$1
                   ORDER BY u.id`
	rows, err := r.storage.pool.Query(ctx, query, bonusID)
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

func scanTransaction(row pgx.Row) (*model.PointTransaction, error) {
	var t model.PointTransaction
	err := row.Scan(&t.ID, &t.UserID, &t.Type, &t.Reason, &t.Amount, &t.BonusID, &t.IdempotencyKey, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}
