package middleware

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shopcore/adminapi/internal/config"
	domainErrors "github.com/shopcore/adminapi/internal/domain/errors"
	"github.com/shopcore/adminapi/internal/domain/model"
	pkgAuth "github.com/shopcore/adminapi/internal/pkg/auth"
	"github.com/shopcore/adminapi/internal/server/http/dto"
	testhelpers "github.com/shopcore/adminapi/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func runGate(t *testing.T, auth Authorizer, adminGate bool, decorate func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	group := router.Group("")
	group.Use(AuthRequired(auth))
	if adminGate {
		group.Use(AdminRequired())
	}
	group.GET("/protected", func(c *gin.Context) {
		identity, _ := c.Get(IdentityContextKey)
		c.JSON(http.StatusOK, gin.H{"user_id": identity.(Identity).UserID})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if decorate != nil {
		decorate(req)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthRequiredBearerHeader(t *testing.T) {
	auth := testhelpers.AuthorizerStub{User: &model.User{ID: 42, Username: "alice", Role: model.RoleCustomer}}
	resp := runGate(t, auth, false, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer good")
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "42") {
		t.Fatalf("expected identity to reach handler, got %s", resp.Body.String())
	}
}

func TestAuthRequiredCookie(t *testing.T) {
	auth := testhelpers.AuthorizerStub{User: &model.User{ID: 42, Username: "alice", Role: model.RoleCustomer}}
	resp := runGate(t, auth, false, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: "good"})
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
}

func TestAuthRequiredRejections(t *testing.T) {
	tests := []struct {
		name     string
		auth     testhelpers.AuthorizerStub
		decorate func(*http.Request)
		status   int
		reason   string
	}{
		{name: "missing token", auth: testhelpers.AuthorizerStub{}, status: http.StatusUnauthorized, reason: "unauthorized"},
		{name: "expired", auth: testhelpers.AuthorizerStub{Err: pkgAuth.ErrTokenExpired}, decorate: func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer expired")
		}, status: http.StatusUnauthorized, reason: "expired"},
		{name: "invalid", auth: testhelpers.AuthorizerStub{Err: pkgAuth.ErrTokenInvalid}, decorate: func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer invalid")
		}, status: http.StatusUnauthorized, reason: "invalid token"},
		{name: "user gone", auth: testhelpers.AuthorizerStub{Err: domainErrors.ErrNotFound}, decorate: func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer orphan")
		}, status: http.StatusUnauthorized, reason: "unauthorized"},
		{name: "storage failure", auth: testhelpers.AuthorizerStub{Err: errors.New("boom")}, decorate: func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer any")
		}, status: http.StatusInternalServerError, reason: "internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := runGate(t, tt.auth, false, tt.decorate)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
			var payload dto.ErrorResponse
			if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if payload.Error != tt.reason {
				t.Fatalf("expected reason %q, got %q", tt.reason, payload.Error)
			}
		})
	}
}

func TestAdminRequired(t *testing.T) {
	customer := testhelpers.AuthorizerStub{User: &model.User{ID: 1, Username: "alice", Role: model.RoleCustomer}}
	resp := runGate(t, customer, true, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer good")
	})
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected status 403 for customer, got %d", resp.Code)
	}

	admin := testhelpers.AuthorizerStub{User: &model.User{ID: 1, Username: "root", Role: model.RoleAdmin}}
	resp = runGate(t, admin, true, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer good")
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for admin, got %d", resp.Code)
	}
}

func TestAdminRequiredWithoutIdentity(t *testing.T) {
	router := gin.New()
	router.GET("/admin", AdminRequired(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", w.Code)
	}
}

func TestSetAndClearAuthCookie(t *testing.T) {
	cfg := &config.Config{TokenTTL: time.Minute, Environment: "development"}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/login", nil)
	SetAuthCookie(c, cfg, "session-token")

	result := w.Result()
	t.Cleanup(func() { _ = result.Body.Close() })
	cookies := result.Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected one cookie, got %d", len(cookies))
	}
	cookie := cookies[0]
	if cookie.Name != AuthCookieName || cookie.Value != "session-token" {
		t.Fatalf("unexpected cookie: %+v", cookie)
	}
	if !cookie.HttpOnly {
		t.Fatal("auth cookie must be http-only")
	}
	if cookie.Secure {
		t.Fatal("cookie must not be secure outside production")
	}
	if cookie.MaxAge != 60 {
		t.Fatalf("unexpected max age: %d", cookie.MaxAge)
	}
	if got := w.Header().Get("Authorization"); got != "Bearer session-token" {
		t.Fatalf("unexpected authorization header: %q", got)
	}

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/logout", nil)
	ClearAuthCookie(c, cfg)
	result = w.Result()
	t.Cleanup(func() { _ = result.Body.Close() })
	cookies = result.Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge >= 0 {
		t.Fatalf("expected expired cookie, got %+v", cookies)
	}
}

func TestSetAuthCookieSecureInProduction(t *testing.T) {
	cfg := &config.Config{TokenTTL: time.Minute, Environment: "production"}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/login", nil)
	SetAuthCookie(c, cfg, "session-token")

	result := w.Result()
	t.Cleanup(func() { _ = result.Body.Close() })
	if cookies := result.Cookies(); len(cookies) != 1 || !cookies[0].Secure {
		t.Fatalf("expected secure cookie in production, got %+v", cookies)
	}
}

func TestRequestIDAssigned(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	var seen string
	router.GET("/", func(c *gin.Context) {
		seen = CurrentRequestID(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if seen == "" {
		t.Fatal("expected request id to be assigned")
	}
	if got := w.Header().Get(RequestIDHeader); got != seen {
		t.Fatalf("expected header %q, got %q", seen, got)
	}
}

func TestRequestIDHonorsCaller(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "caller-id")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if got := w.Header().Get(RequestIDHeader); got != "caller-id" {
		t.Fatalf("expected caller-supplied id, got %q", got)
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	router := gin.New()
	router.Use(RequestID(), RequestLogger(logger))
	router.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	out := buf.String()
	if !strings.Contains(out, `"path":"/ping"`) {
		t.Fatalf("expected path in log output: %s", out)
	}
	if !strings.Contains(out, "request_id") {
		t.Fatalf("expected request id in log output: %s", out)
	}
}

func TestDecompressRequest(t *testing.T) {
	router := gin.New()
	router.Use(DecompressRequest())
	router.POST("/", func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, string(body))
	})

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte("payload")); err != nil {
		t.Fatalf("write gzip: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close gzip: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Encoding", "gzip")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "payload" {
		t.Fatalf("unexpected body: %q", w.Body.String())
	}
}

func TestDecompressRequestBadPayload(t *testing.T) {
	router := gin.New()
	router.Use(DecompressRequest())
	router.POST("/", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}
