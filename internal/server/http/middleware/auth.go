package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shopcore/adminapi/internal/config"
	domainErrors "github.com/shopcore/adminapi/internal/domain/errors"
	"github.com/shopcore/adminapi/internal/domain/model"
	pkgAuth "github.com/shopcore/adminapi/internal/pkg/auth"
	"github.com/shopcore/adminapi/internal/server/http/dto"
)

const (
	// IdentityContextKey is the gin context key for the authenticated identity.
	IdentityContextKey = "identity"
	// AuthCookieName is the session cookie carrying the signed token.
	AuthCookieName = "token"
)

// Identity is the immutable authenticated-user view attached to the request
// context. Handlers read it; nothing downstream can mutate the stored value.
type Identity struct {
	UserID   int64
	Username string
	Role     model.Role
}

// Authorizer verifies a token and resolves the referenced user.
type Authorizer interface {
	Authorize(ctx context.Context, token string) (*model.User, error)
}

// AuthRequired ensures the request carries a valid session token for an
// existing user. All rejections are uniform 401s; only the reason string
// differs, and callers must not branch on it.
func AuthRequired(auth Authorizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized"})
			return
		}

		user, err := auth.Authorize(c.Request.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, pkgAuth.ErrTokenExpired):
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "expired"})
			case errors.Is(err, pkgAuth.ErrTokenInvalid):
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid token"})
			case errors.Is(err, domainErrors.ErrNotFound):
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized"})
			default:
				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal error"})
			}
			return
		}

		c.Set(IdentityContextKey, Identity{UserID: user.ID, Username: user.Username, Role: user.Role})
		c.Next()
	}
}

// AdminRequired rejects authenticated users without the admin role. It must
// run after AuthRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		val, ok := c.Get(IdentityContextKey)
		identity, cast := val.(Identity)
		if !ok || !cast || identity.Role != model.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Error: "forbidden"})
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(AuthCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetAuthCookie writes the session cookie and mirrors the token in the
// Authorization header for non-browser clients.
func SetAuthCookie(c *gin.Context, cfg *config.Config, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(AuthCookieName, token, int(cfg.TokenTTL.Seconds()), "/", "", cfg.Production(), true)
	c.Header("Authorization", "Bearer "+token)
}

// ClearAuthCookie expires the session cookie.
func ClearAuthCookie(c *gin.Context, cfg *config.Config) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(AuthCookieName, "", -1, "/", "", cfg.Production(), true)
}
