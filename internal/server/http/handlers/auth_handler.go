package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopcore/adminapi/internal/config"
	domainErrors "github.com/shopcore/adminapi/internal/domain/errors"
	"github.com/shopcore/adminapi/internal/domain/model"
	"github.com/shopcore/adminapi/internal/server/http/dto"
	"github.com/shopcore/adminapi/internal/server/http/middleware"
	"github.com/shopcore/adminapi/internal/usecase"
)

// AuthHandler processes registration, login, logout, and account lookups.
type AuthHandler struct {
	facade AuthFacade
	config *config.Config
	logger *slog.Logger
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{facade: facade, config: cfg, logger: logger}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	user, token, err := h.facade.Register(c.Request.Context(), usecase.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		FullName: req.FullName,
		Email:    req.Email,
		Role:     model.RoleCustomer,
	})
	if err != nil {
		if errors.Is(err, domainErrors.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid credentials"})
			return
		}
		respondError(c, h.logger, err)
		return
	}

	middleware.SetAuthCookie(c, h.config, token)
	c.JSON(http.StatusCreated, dto.TokenResponse{Token: token, User: toUserResponse(*user)})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	user, token, err := h.facade.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	middleware.SetAuthCookie(c, h.config, token)
	c.JSON(http.StatusOK, dto.TokenResponse{Token: token, User: toUserResponse(*user)})
}

// Logout handles POST /api/auth/logout. Tokens are stateless; logout only
// clears the cookie and the credential expires on its own.
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearAuthCookie(c, h.config)
	c.Status(http.StatusNoContent)
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(c *gin.Context) {
	identity := CurrentIdentity(c)
	user, err := h.facade.GetByID(c.Request.Context(), identity.UserID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(*user))
}

// ListUsers handles GET /api/admin/users.
func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.facade.ListUsers(c.Request.Context())
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

func toUserResponse(u model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      string(u.Role),
		FullName:  u.FullName,
		Email:     u.Email,
		Points:    u.Points,
		CreatedAt: u.CreatedAt,
	}
}
