package usecase

import (
	"context"
	"errors"

	domainErrors "github.com/shopcore/adminapi/internal/domain/errors"
	"github.com/shopcore/adminapi/internal/domain/model"
	"github.com/shopcore/adminapi/internal/domain/repository"
)

// LoyaltyUseCase manages the point ledger and derived balances.
type LoyaltyUseCase struct {
	users   repository.UserRepository
	ledger  repository.LedgerRepository
	bonuses repository.BonusRepository
}

// NewLoyaltyUseCase constructs LoyaltyUseCase.
func NewLoyaltyUseCase(users repository.UserRepository, ledger repository.LedgerRepository, bonuses repository.BonusRepository) *LoyaltyUseCase {
	return &LoyaltyUseCase{users: users, ledger: ledger, bonuses: bonuses}
}

// RecordInput carries a ledger write request.
type RecordInput struct {
	UserID         int64
	Type           model.TransactionType
	Reason         string
	Amount         int64
	BonusID        *int64
	IdempotencyKey *string
}

// Record appends a ledger entry. The amount is always positive; its balance
// effect is signed by the type. Overspending is permitted and the balance
// may go negative.
func (u *LoyaltyUseCase) Record(ctx context.Context, input RecordInput) (*model.PointTransaction, bool, error) {
	if err := ValidateTransaction(input.Type, input.Amount); err != nil {
		return nil, false, err
	}

	entry := model.PointTransaction{
		UserID:         input.UserID,
		Type:           input.Type,
		Reason:         input.Reason,
		Amount:         input.Amount,
		BonusID:        input.BonusID,
		IdempotencyKey: input.IdempotencyKey,
	}

	if input.BonusID != nil {
		bonus, err := u.bonuses.GetByID(ctx, *input.BonusID)
		if err != nil {
			return nil, false, err
		}
		if entry.Reason == "" {
			entry.Reason = bonus.Name
		}
	}

	return u.ledger.Record(ctx, entry)
}

// Balance returns the cached point balance for the user.
func (u *LoyaltyUseCase) Balance(ctx context.Context, userID int64) (int64, error) {
	return u.users.Points(ctx, userID)
}

// Transactions lists ledger entries for the user, newest first.
func (u *LoyaltyUseCase) Transactions(ctx context.Context, userID int64) ([]model.PointTransaction, error) {
	return u.ledger.ListByUser(ctx, userID)
}

// Reconcile compares the cached balance against the summed ledger.
func (u *LoyaltyUseCase) Reconcile(ctx context.Context, userID int64) (*model.BalanceReport, error) {
	cached, err := u.users.Points(ctx, userID)
	if err != nil {
		return nil, err
	}
	sum, err := u.ledger.SumByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &model.BalanceReport{UserID: userID, Cached: cached, LedgerSum: sum}, nil
}

// UsersByPointRange lists users whose cached balance falls inside [min, max].
func (u *LoyaltyUseCase) UsersByPointRange(ctx context.Context, min, max int64) ([]model.User, error) {
	if min > max {
		return nil, domainErrors.ErrInvalidAmount
	}
	return u.users.ListByPointRange(ctx, min, max)
}

// Redeemers lists users with at least one ledger entry tied to the bonus.
func (u *LoyaltyUseCase) Redeemers(ctx context.Context, bonusID int64) ([]model.User, error) {
	if _, err := u.bonuses.GetByID(ctx, bonusID); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return u.ledger.Redeemers(ctx, bonusID)
}

// SampleUserIDs picks random users for a reconciliation sweep.
func (u *LoyaltyUseCase) SampleUserIDs(ctx context.Context, limit int) ([]int64, error) {
	return u.users.SampleIDs(ctx, limit)
}

func (u *LoyaltyUseCase) CreateBonus(ctx context.Context, bonus model.Bonus) (*model.Bonus, error) {
	if bonus.Points <= 0 {
		return nil, domainErrors.ErrInvalidAmount
	}
	return u.bonuses.Create(ctx, bonus)
}

func (u *LoyaltyUseCase) Bonus(ctx context.Context, id int64) (*model.Bonus, error) {
	return u.bonuses.GetByID(ctx, id)
}

func (u *LoyaltyUseCase) Bonuses(ctx context.Context) ([]model.Bonus, error) {
	return u.bonuses.List(ctx)
}

func (u *LoyaltyUseCase) UpdateBonus(ctx context.Context, bonus model.Bonus) (*model.Bonus, error) {
	if bonus.Points <= 0 {
		return nil, domainErrors.ErrInvalidAmount
	}
	return u.bonuses.Update(ctx, bonus)
}

func (u *LoyaltyUseCase) DeleteBonus(ctx context.Context, id int64) error {
	return u.bonuses.Delete(ctx, id)
}
