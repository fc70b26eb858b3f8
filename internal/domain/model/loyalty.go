package model

import "time"

// TransactionType tags a ledger entry as earning or spending points.
type TransactionType string

const (
	TransactionEarn  TransactionType = "earn"
	TransactionSpend TransactionType = "spend"
)

// Effect returns the signed balance contribution of an amount under this type.
func (t TransactionType) Effect(amount int64) int64 {
	if t == TransactionSpend {
		return -amount
	}
	return amount
}

// Valid reports whether the type is one of the known ledger entry kinds.
func (t TransactionType) Valid() bool {
	return t == TransactionEarn || t == TransactionSpend
}

// PointTransaction is an immutable loyalty ledger entry. Amount is always
// positive; the sign of its balance effect is carried by Type.
type PointTransaction struct {
	ID             int64
	UserID         int64
	Type           TransactionType
	Reason         string
	Amount         int64
	BonusID        *int64
	IdempotencyKey *string
	CreatedAt      time.Time
}

// Bonus is a named reward rule with a fixed point value.
type Bonus struct {
	ID          int64
	Name        string
	Description string
	Points      int64
	Active      bool
	CreatedAt   time.Time
}

// BalanceReport compares the cached user balance against the summed ledger.
type BalanceReport struct {
	UserID    int64
	Cached    int64
	LedgerSum int64
}

// Drift reports whether the cached balance disagrees with the ledger.
func (r BalanceReport) Drift() bool {
	return r.Cached != r.LedgerSum
}
