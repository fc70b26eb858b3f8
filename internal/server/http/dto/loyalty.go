package dto

import "time"

// TransactionRequest describes a ledger write.
type TransactionRequest struct {
	UserID         int64   `json:"user_id" binding:"required"`
	Type           string  `json:"type" binding:"required,oneof=earn spend"`
	Reason         string  `json:"reason"`
	Amount         int64   `json:"amount" binding:"required,gt=0"`
	BonusID        *int64  `json:"bonus_id"`
	IdempotencyKey *string `json:"idempotency_key"`
}

// TransactionResponse describes a stored ledger entry.
type TransactionResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Type      string    `json:"type"`
	Reason    string    `json:"reason"`
	Amount    int64     `json:"amount"`
	BonusID   *int64    `json:"bonus_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// BalanceResponse reports the cached point balance.
type BalanceResponse struct {
	UserID int64 `json:"user_id"`
	Points int64 `json:"points"`
}

// ReconcileResponse reports cached balance versus summed ledger.
type ReconcileResponse struct {
	UserID    int64 `json:"user_id"`
	Cached    int64 `json:"cached"`
	LedgerSum int64 `json:"ledger_sum"`
	Drift     bool  `json:"drift"`
}

// BonusRequest describes a reward rule write.
type BonusRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Points      int64  `json:"points" binding:"required,gt=0"`
	Active      bool   `json:"active"`
}

// BonusResponse describes a reward rule.
type BonusResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Points      int64     `json:"points"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}
