package repository

import (
	"context"

	"github.com/shopcore/adminapi/internal/domain/model"
)

// LedgerRepository manages the append-only loyalty ledger. Record must apply
// the ledger insert and the cached balance adjustment in a single transaction;
// the balance change is an atomic increment at the storage layer.
type LedgerRepository interface {
	// Record appends an entry and adjusts the user's cached balance. The
	// boolean is false when the entry's idempotency key was already applied
	// and the previously stored entry is returned instead.
	Record(ctx context.Context, entry model.PointTransaction) (*model.PointTransaction, bool, error)
	ListByUser(ctx context.Context, userID int64) ([]model.PointTransaction, error)
	SumByUser(ctx context.Context, userID int64) (int64, error)
	Redeemers(ctx context.Context, bonusID int64) ([]model.User, error)
}
