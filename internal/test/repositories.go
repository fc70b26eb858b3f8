package test

import (
	"context"
	"sync"
	"time"

	domainErrors "github.com/shopcore/adminapi/internal/domain/errors"
	"github.com/shopcore/adminapi/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests. All access is
// mutex-guarded so ledger stubs can adjust balances concurrently.
type UserRepositoryStub struct {
	mu    sync.Mutex
	users map[int64]*model.User
	next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized state.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{users: make(map[int64]*model.User), next: 1}
}

// Seed inserts a user directly, assigning an identifier when missing.
func (s *UserRepositoryStub) Seed(user model.User) *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user.ID == 0 {
		user.ID = s.next
		s.next++
	} else if user.ID >= s.next {
		s.next = user.ID + 1
	}
	stored := user
	s.users[stored.ID] = &stored
	return &stored
}

// Create registers user unless the username is taken.
func (s *UserRepositoryStub) Create(ctx context.Context, user model.User) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Username == user.Username {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	user.ID = s.next
	user.CreatedAt = time.Now()
	s.next++
	stored := user
	s.users[stored.ID] = &stored
	result := stored
	return &result, nil
}

// GetByUsername fetches user by username or returns not found.
func (s *UserRepositoryStub) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username {
			result := *u
			return &result, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[id]; ok {
		result := *u
		return &result, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns all stored users.
func (s *UserRepositoryStub) List(ctx context.Context) ([]model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		result = append(result, *u)
	}
	return result, nil
}

// ListByPointRange returns users whose balance falls inside [min, max].
func (s *UserRepositoryStub) ListByPointRange(ctx context.Context, min, max int64) ([]model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]model.User, 0)
	for _, u := range s.users {
		if u.Points >= min && u.Points <= max {
			result = append(result, *u)
		}
	}
	return result, nil
}

// Points returns the cached balance for the user.
func (s *UserRepositoryStub) Points(ctx context.Context, userID int64) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[userID]; ok {
		return u.Points, nil
	}
	return 0, domainErrors.ErrNotFound
}

// SampleIDs returns up to limit stored user identifiers.
func (s *UserRepositoryStub) SampleIDs(ctx context.Context, limit int) ([]int64, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]int64, 0, limit)
	for id := range s.users {
		if len(ids) == limit {
			break
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// adjustPoints applies a signed delta to the cached balance.
func (s *UserRepositoryStub) adjustPoints(userID, delta int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	u.Points += delta
	return nil
}

// LedgerRepositoryStub keeps ledger entries in memory and mirrors the
// transactional contract: every recorded entry also moves the cached balance
// in the shared user stub, atomically with respect to other Record calls.
type LedgerRepositoryStub struct {
	mu      sync.Mutex
	Users   *UserRepositoryStub
	Entries []model.PointTransaction
	next    int64

	RecordFn    func(context.Context, model.PointTransaction) (*model.PointTransaction, bool, error)
	RedeemersFn func(context.Context, int64) ([]model.User, error)
	Err         error
}

// NewLedgerRepositoryStub constructs ledger stub bound to a user stub.
func NewLedgerRepositoryStub(users *UserRepositoryStub) *LedgerRepositoryStub {
	return &LedgerRepositoryStub{Users: users, next: 1}
}

// Record appends the entry and adjusts the cached balance.
func (s *LedgerRepositoryStub) Record(ctx context.Context, entry model.PointTransaction) (*model.PointTransaction, bool, error) {
	if s.RecordFn != nil {
		return s.RecordFn(ctx, entry)
	}
	if s.Err != nil {
		return nil, false, s.Err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if entry.IdempotencyKey != nil {
		for _, existing := range s.Entries {
			if existing.IdempotencyKey != nil && *existing.IdempotencyKey == *entry.IdempotencyKey {
				replay := existing
				return &replay, false, nil
			}
		}
	}

	if err := s.Users.adjustPoints(entry.UserID, entry.Type.Effect(entry.Amount)); err != nil {
		return nil, false, err
	}

	entry.ID = s.next
	entry.CreatedAt = time.Now()
	s.next++
	s.Entries = append(s.Entries, entry)
	stored := entry
	return &stored, true, nil
}

// ListByUser returns entries recorded for the user, newest first.
func (s *LedgerRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.PointTransaction, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]model.PointTransaction, 0)
	for i := len(s.Entries) - 1; i >= 0; i-- {
		if s.Entries[i].UserID == userID {
			result = append(result, s.Entries[i])
		}
	}
	return result, nil
}

// SumByUser folds the signed effects of the user's entries.
func (s *LedgerRepositoryStub) SumByUser(ctx context.Context, userID int64) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var sum int64
	for _, e := range s.Entries {
		if e.UserID == userID {
			sum += e.Type.Effect(e.Amount)
		}
	}
	return sum, nil
}

// Redeemers returns users having at least one entry for the bonus.
func (s *LedgerRepositoryStub) Redeemers(ctx context.Context, bonusID int64) ([]model.User, error) {
	if s.RedeemersFn != nil {
		return s.RedeemersFn(ctx, bonusID)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	seen := make(map[int64]bool)
	for _, e := range s.Entries {
		if e.BonusID != nil && *e.BonusID == bonusID {
			seen[e.UserID] = true
		}
	}
	s.mu.Unlock()

	result := make([]model.User, 0, len(seen))
	for id := range seen {
		if u, err := s.Users.GetByID(ctx, id); err == nil {
			result = append(result, *u)
		}
	}
	return result, nil
}

// BonusRepositoryStub keeps reward rules in memory.
type BonusRepositoryStub struct {
	mu      sync.Mutex
	Bonuses map[int64]*model.Bonus
	next    int64
	Err     error
}

// NewBonusRepositoryStub constructs bonus stub with initialized state.
func NewBonusRepositoryStub() *BonusRepositoryStub {
	return &BonusRepositoryStub{Bonuses: make(map[int64]*model.Bonus), next: 1}
}

// Create stores the bonus with a fresh identifier.
func (s *BonusRepositoryStub) Create(ctx context.Context, bonus model.Bonus) (*model.Bonus, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	bonus.ID = s.next
	bonus.CreatedAt = time.Now()
	s.next++
	stored := bonus
	s.Bonuses[stored.ID] = &stored
	result := stored
	return &result, nil
}

// GetByID fetches the bonus or returns not found.
func (s *BonusRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Bonus, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok := s.Bonuses[id]; ok {
		result := *b
		return &result, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns all stored bonuses.
func (s *BonusRepositoryStub) List(ctx context.Context) ([]model.Bonus, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]model.Bonus, 0, len(s.Bonuses))
	for _, b := range s.Bonuses {
		result = append(result, *b)
	}
	return result, nil
}

// Update replaces the stored bonus or returns not found.
func (s *BonusRepositoryStub) Update(ctx context.Context, bonus model.Bonus) (*model.Bonus, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.Bonuses[bonus.ID]; !ok {
		return nil, domainErrors.ErrNotFound
	}
	stored := bonus
	s.Bonuses[stored.ID] = &stored
	result := stored
	return &result, nil
}

// Delete removes the stored bonus or returns not found.
func (s *BonusRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.Bonuses[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Bonuses, id)
	return nil
}

// ProductRepositoryStub keeps catalog products in memory.
type ProductRepositoryStub struct {
	mu       sync.Mutex
	Products map[int64]*model.Product
	next     int64
	Err      error
}

// NewProductRepositoryStub constructs product stub with initialized state.
func NewProductRepositoryStub() *ProductRepositoryStub {
	return &ProductRepositoryStub{Products: make(map[int64]*model.Product), next: 1}
}

// Create stores the product with a fresh identifier.
func (s *ProductRepositoryStub) Create(ctx context.Context, product model.Product) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	product.ID = s.next
	product.CreatedAt = time.Now()
	product.UpdatedAt = product.CreatedAt
	s.next++
	stored := product
	s.Products[stored.ID] = &stored
	result := stored
	return &result, nil
}

// GetByID fetches the product or returns not found.
func (s *ProductRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.Products[id]; ok {
		result := *p
		return &result, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns stored products, optionally active ones only.
func (s *ProductRepositoryStub) List(ctx context.Context, onlyActive bool) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]model.Product, 0, len(s.Products))
	for _, p := range s.Products {
		if onlyActive && !p.Active {
			continue
		}
		result = append(result, *p)
	}
	return result, nil
}

// Update replaces the stored product or returns not found.
func (s *ProductRepositoryStub) Update(ctx context.Context, product model.Product) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.Products[product.ID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	product.CreatedAt = existing.CreatedAt
	product.UpdatedAt = time.Now()
	stored := product
	s.Products[stored.ID] = &stored
	result := stored
	return &result, nil
}

// Delete removes the stored product or returns not found.
func (s *ProductRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.Products[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Products, id)
	return nil
}

// FavoriteRepositoryStub keeps saved products in memory.
type FavoriteRepositoryStub struct {
	mu       sync.Mutex
	Saved    map[[2]int64]time.Time
	Products *ProductRepositoryStub
	Err      error
}

// NewFavoriteRepositoryStub constructs favorite stub bound to a product stub.
func NewFavoriteRepositoryStub(products *ProductRepositoryStub) *FavoriteRepositoryStub {
	return &FavoriteRepositoryStub{Saved: make(map[[2]int64]time.Time), Products: products}
}

// Add saves the product for the user. Saving twice is a no-op.
func (s *FavoriteRepositoryStub) Add(ctx context.Context, userID, productID int64) (*model.Favorite, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	key := [2]int64{userID, productID}
	if _, ok := s.Saved[key]; !ok {
		s.Saved[key] = time.Now()
	}
	return &model.Favorite{UserID: userID, ProductID: productID, CreatedAt: s.Saved[key]}, nil
}

// Remove unsaves the product for the user or returns not found.
func (s *FavoriteRepositoryStub) Remove(ctx context.Context, userID, productID int64) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	key := [2]int64{userID, productID}
	if _, ok := s.Saved[key]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Saved, key)
	return nil
}

// ListByUser returns the user's saved products.
func (s *FavoriteRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	keys := make([]int64, 0)
	for key := range s.Saved {
		if key[0] == userID {
			keys = append(keys, key[1])
		}
	}
	s.mu.Unlock()

	result := make([]model.Product, 0, len(keys))
	for _, id := range keys {
		if p, err := s.Products.GetByID(ctx, id); err == nil {
			result = append(result, *p)
		}
	}
	return result, nil
}
