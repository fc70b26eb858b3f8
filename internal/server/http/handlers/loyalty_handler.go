package handlers

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shopcore/adminapi/internal/domain/model"
	"github.com/shopcore/adminapi/internal/server/http/dto"
	"github.com/shopcore/adminapi/internal/usecase"
)

// LoyaltyHandler manages the point ledger and bonus endpoints.
type LoyaltyHandler struct {
	facade LoyaltyFacade
	logger *slog.Logger
}

// NewLoyaltyHandler constructs LoyaltyHandler.
func NewLoyaltyHandler(facade LoyaltyFacade, logger *slog.Logger) *LoyaltyHandler {
	return &LoyaltyHandler{facade: facade, logger: logger}
}

// RecordTransaction handles POST /api/loyalty/transactions. A replayed
// idempotency key answers 200 with the previously stored entry instead of 201.
func (h *LoyaltyHandler) RecordTransaction(c *gin.Context) {
	var req dto.TransactionRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	entry, applied, err := h.facade.Record(c.Request.Context(), usecase.RecordInput{
		UserID:         req.UserID,
		Type:           model.TransactionType(req.Type),
		Reason:         req.Reason,
		Amount:         req.Amount,
		BonusID:        req.BonusID,
		IdempotencyKey: req.IdempotencyKey,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	status := http.StatusCreated
	if !applied {
		status = http.StatusOK
	}
	c.JSON(status, toTransactionResponse(*entry))
}

// UserTransactions handles GET /api/loyalty/users/:id/transactions.
func (h *LoyaltyHandler) UserTransactions(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	transactions, err := h.facade.Transactions(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	resp := make([]dto.TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		resp = append(resp, toTransactionResponse(t))
	}
	c.JSON(http.StatusOK, resp)
}

// UserBalance handles GET /api/loyalty/users/:id/balance.
func (h *LoyaltyHandler) UserBalance(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	points, err := h.facade.Balance(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.BalanceResponse{UserID: userID, Points: points})
}

// UserReconcile handles GET /api/loyalty/users/:id/reconcile.
func (h *LoyaltyHandler) UserReconcile(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	report, err := h.facade.Reconcile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ReconcileResponse{
		UserID:    report.UserID,
		Cached:    report.Cached,
		LedgerSum: report.LedgerSum,
		Drift:     report.Drift(),
	})
}

// UsersByRange handles GET /api/loyalty/users?min=&max=.
func (h *LoyaltyHandler) UsersByRange(c *gin.Context) {
	min, ok := queryInt(c, "min", 0)
	if !ok {
		return
	}
	max, ok := queryInt(c, "max", math.MaxInt64)
	if !ok {
		return
	}

	users, err := h.facade.UsersByPointRange(c.Request.Context(), min, max)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, toUserResponse(u))
	}
	c.JSON(http.StatusOK, resp)
}

// BonusRedeemers handles GET /api/loyalty/bonuses/:id/redeemers.
func (h *LoyaltyHandler) BonusRedeemers(c *gin.Context) {
	bonusID, ok := pathID(c, "id")
	if !ok {
		return
	}

	users, err := h.facade.Redeemers(c.Request.Context(), bonusID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, toUserResponse(u))
	}
	c.JSON(http.StatusOK, resp)
}

// CreateBonus handles POST /api/admin/bonuses.
func (h *LoyaltyHandler) CreateBonus(c *gin.Context) {
	var req dto.BonusRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	bonus, err := h.facade.CreateBonus(c.Request.Context(), bonusFromRequest(req, 0))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, toBonusResponse(*bonus))
}

// GetBonus handles GET /api/admin/bonuses/:id.
func (h *LoyaltyHandler) GetBonus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	bonus, err := h.facade.Bonus(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toBonusResponse(*bonus))
}

// ListBonuses handles GET /api/admin/bonuses.
func (h *LoyaltyHandler) ListBonuses(c *gin.Context) {
	bonuses, err := h.facade.Bonuses(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	resp := make([]dto.BonusResponse, 0, len(bonuses))
	for _, b := range bonuses {
		resp = append(resp, toBonusResponse(b))
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateBonus handles PUT /api/admin/bonuses/:id.
func (h *LoyaltyHandler) UpdateBonus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.BonusRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	bonus, err := h.facade.UpdateBonus(c.Request.Context(), bonusFromRequest(req, id))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toBonusResponse(*bonus))
}

// DeleteBonus handles DELETE /api/admin/bonuses/:id.
func (h *LoyaltyHandler) DeleteBonus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.facade.DeleteBonus(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func queryInt(c *gin.Context, name string, def int64) (int64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + name})
		return 0, false
	}
	return v, true
}

func bonusFromRequest(req dto.BonusRequest, id int64) model.Bonus {
	return model.Bonus{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Points:      req.Points,
		Active:      req.Active,
	}
}

func toBonusResponse(b model.Bonus) dto.BonusResponse {
	return dto.BonusResponse{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Points:      b.Points,
		Active:      b.Active,
		CreatedAt:   b.CreatedAt,
	}
}

func toTransactionResponse(t model.PointTransaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:        t.ID,
		UserID:    t.UserID,
		Type:      string(t.Type),
		Reason:    t.Reason,
		Amount:    t.Amount,
		BonusID:   t.BonusID,
		CreatedAt: t.CreatedAt,
	}
}
