package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	domainErrors "github.com/shopcore/adminapi/internal/domain/errors"
	"github.com/shopcore/adminapi/internal/server/http/dto"
	"github.com/shopcore/adminapi/internal/server/http/middleware"
)

// CurrentIdentity extracts the authenticated identity from the context.
func CurrentIdentity(c *gin.Context) middleware.Identity {
	val, ok := c.Get(middleware.IdentityContextKey)
	if !ok {
		return middleware.Identity{}
	}
	identity, _ := val.(middleware.Identity)
	return identity
}

// bindJSON binds the request body, answering malformed payloads with a 400
// that carries field-level validation detail when available.
func bindJSON(c *gin.Context, logger *slog.Logger, req any) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[strings.ToLower(fe.Field())] = fe.Tag()
		}
		logger.Warn("request validation failed",
			slog.String("request_id", middleware.CurrentRequestID(c)),
			slog.String("path", c.Request.URL.Path),
			slog.Int("fields", len(fields)),
		)
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "validation failed", Fields: fields})
		return false
	}

	logger.Warn("malformed request body",
		slog.String("request_id", middleware.CurrentRequestID(c)),
		slog.String("path", c.Request.URL.Path),
		slog.String("error", err.Error()),
	)
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
	return false
}

// pathID parses a numeric path parameter, answering a 400 when it is not a
// positive integer.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + name})
		return 0, false
	}
	return id, true
}

// respondError maps domain sentinels onto the HTTP error taxonomy and logs
// the failure.
func respondError(c *gin.Context, logger *slog.Logger, err error) {
	status := http.StatusInternalServerError
	message := "internal error"

	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		status, message = http.StatusNotFound, "not found"
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		status, message = http.StatusConflict, "already exists"
	case errors.Is(err, domainErrors.ErrInvalidAmount):
		status, message = http.StatusBadRequest, "invalid amount"
	case errors.Is(err, domainErrors.ErrInvalidTransactionType):
		status, message = http.StatusBadRequest, "invalid transaction type"
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		status, message = http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domainErrors.ErrForbidden):
		status, message = http.StatusForbidden, "forbidden"
	}

	logger.Error("request failed",
		slog.String("request_id", middleware.CurrentRequestID(c)),
		slog.String("path", c.Request.URL.Path),
		slog.Int("status", status),
		slog.String("error", err.Error()),
	)
	c.JSON(status, dto.ErrorResponse{Error: message})
}
