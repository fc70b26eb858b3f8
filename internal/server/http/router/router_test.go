package router

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shopcore/adminapi/internal/app"
	"github.com/shopcore/adminapi/internal/config"
	"github.com/shopcore/adminapi/internal/domain/model"
	pkgAuth "github.com/shopcore/adminapi/internal/pkg/auth"
	"github.com/shopcore/adminapi/internal/server/http/dto"
	"github.com/shopcore/adminapi/internal/server/http/handlers"
	testhelpers "github.com/shopcore/adminapi/internal/test"
	"github.com/shopcore/adminapi/internal/usecase"
)

var _ handlers.PlatformFacade = (*app.PlatformFacade)(nil)

func init() {
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	engine *gin.Engine
	users  *testhelpers.UserRepositoryStub
}

func newTestEnv(t *testing.T, strategy pkgAuth.Strategy) *testEnv {
	t.Helper()

	users := testhelpers.NewUserRepositoryStub()
	ledger := testhelpers.NewLedgerRepositoryStub(users)
	bonuses := testhelpers.NewBonusRepositoryStub()
	products := testhelpers.NewProductRepositoryStub()
	favorites := testhelpers.NewFavoriteRepositoryStub(products)

	facade := app.NewPlatformFacade(
		usecase.NewAuthUseCase(users, testhelpers.HasherStub{}, strategy),
		usecase.NewLoyaltyUseCase(users, ledger, bonuses),
		usecase.NewCatalogUseCase(products, &testhelpers.CategoryRepositoryStub{}, &testhelpers.ShippingZoneRepositoryStub{}),
		usecase.NewContentUseCase(&testhelpers.BannerRepositoryStub{}, &testhelpers.PopupRepositoryStub{}, &testhelpers.PlaylistRepositoryStub{}, &testhelpers.VideoRepositoryStub{}),
		usecase.NewFavoriteUseCase(favorites, products),
	)

	cfg := &config.Config{
		RunAddress:    ":0",
		Environment:   "development",
		TokenTTL:      time.Minute,
		TokenStrategy: strategy.Name(),
		CORSOrigins:   []string{"http://localhost:3000"},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &testEnv{engine: Setup(facade, cfg, logger), users: users}
}

func (e *testEnv) do(t *testing.T, method, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if payload != nil {
		body, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

func (e *testEnv) loginAdmin(t *testing.T) string {
	t.Helper()
	e.users.Seed(model.User{Username: "root", PasswordHash: "hash:rootpass1", Role: model.RoleAdmin})
	resp := e.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Username: "root", Password: "rootpass1"})
	if resp.Code != http.StatusOK {
		t.Fatalf("admin login failed: %d %s", resp.Code, resp.Body.String())
	}
	var payload dto.TokenResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	return payload.Token
}

func TestPublicRoutesNeedNoToken(t *testing.T) {
	env := newTestEnv(t, pkgAuth.NewJWTStrategy("secret", pkgAuth.Options{TTL: time.Minute}))

	for _, path := range []string{
		"/api/catalog/products",
		"/api/catalog/categories",
		"/api/catalog/shipping-zones",
		"/api/content/banners",
		"/api/content/popups",
		"/api/content/playlists",
		"/api/content/videos",
	} {
		resp := env.do(t, http.MethodGet, path, "", nil)
		if resp.Code != http.StatusOK {
			t.Fatalf("GET %s: expected 200, got %d", path, resp.Code)
		}
	}
}

func TestRegisterLoginMeFlow(t *testing.T) {
	env := newTestEnv(t, pkgAuth.NewJWTStrategy("secret", pkgAuth.Options{TTL: time.Minute}))

	resp := env.do(t, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{Username: "alice", Password: "password1"})
	if resp.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d %s", resp.Code, resp.Body.String())
	}
	var registered dto.TokenResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &registered); err != nil {
		t.Fatalf("decode register response: %v", err)
	}
	if registered.User.Role != string(model.RoleCustomer) {
		t.Fatalf("expected customer role, got %q", registered.User.Role)
	}

	resp = env.do(t, http.MethodGet, "/api/auth/me", registered.Token, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("me: expected 200, got %d %s", resp.Code, resp.Body.String())
	}

	resp = env.do(t, http.MethodGet, "/api/auth/me", "", nil)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("me without token: expected 401, got %d", resp.Code)
	}
}

func TestExpiredTokenRejectedWithReason(t *testing.T) {
	strategy := pkgAuth.NewJWTStrategy("secret", pkgAuth.Options{TTL: time.Nanosecond})
	env := newTestEnv(t, strategy)

	resp := env.do(t, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{Username: "alice", Password: "password1"})
	if resp.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d", resp.Code)
	}
	var registered dto.TokenResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &registered); err != nil {
		t.Fatalf("decode register response: %v", err)
	}

	time.Sleep(10 * time.Millisecond)
	resp = env.do(t, http.MethodGet, "/api/auth/me", registered.Token, nil)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
	var payload dto.ErrorResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if payload.Error != "expired" {
		t.Fatalf("expected reason %q, got %q", "expired", payload.Error)
	}
}

func TestCustomerCannotReachAdminRoutes(t *testing.T) {
	env := newTestEnv(t, pkgAuth.NewJWTStrategy("secret", pkgAuth.Options{TTL: time.Minute}))

	resp := env.do(t, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{Username: "alice", Password: "password1"})
	if resp.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d", resp.Code)
	}
	var registered dto.TokenResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &registered); err != nil {
		t.Fatalf("decode register response: %v", err)
	}

	for _, probe := range []struct {
		method string
		path   string
	}{
		{method: http.MethodGet, path: "/api/admin/users"},
		{method: http.MethodGet, path: "/api/admin/products"},
		{method: http.MethodGet, path: "/api/loyalty/users/1/balance"},
	} {
		resp := env.do(t, probe.method, probe.path, registered.Token, nil)
		if resp.Code != http.StatusForbidden {
			t.Fatalf("%s %s: expected 403, got %d", probe.method, probe.path, resp.Code)
		}
	}
}

func TestLedgerFlowThroughAPI(t *testing.T) {
	env := newTestEnv(t, pkgAuth.NewJWTStrategy("secret", pkgAuth.Options{TTL: time.Minute}))
	adminToken := env.loginAdmin(t)
	customer := env.users.Seed(model.User{Username: "alice", PasswordHash: "hash:password1", Role: model.RoleCustomer})

	resp := env.do(t, http.MethodPost, "/api/loyalty/transactions", adminToken, dto.TransactionRequest{
		UserID: customer.ID, Type: "earn", Amount: 50, Reason: "signup",
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("earn: expected 201, got %d %s", resp.Code, resp.Body.String())
	}

	resp = env.do(t, http.MethodPost, "/api/loyalty/transactions", adminToken, dto.TransactionRequest{
		UserID: customer.ID, Type: "spend", Amount: 20, Reason: "order",
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("spend: expected 201, got %d %s", resp.Code, resp.Body.String())
	}

	resp = env.do(t, http.MethodGet, "/api/loyalty/users/2/balance", adminToken, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("balance: expected 200, got %d", resp.Code)
	}
	var balance dto.BalanceResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &balance); err != nil {
		t.Fatalf("decode balance: %v", err)
	}
	if balance.Points != 30 {
		t.Fatalf("expected balance 30, got %d", balance.Points)
	}

	resp = env.do(t, http.MethodGet, "/api/loyalty/users/2/transactions", adminToken, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("transactions: expected 200, got %d", resp.Code)
	}
	var history []dto.TransactionResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &history); err != nil {
		t.Fatalf("decode transactions: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(history))
	}

	resp = env.do(t, http.MethodGet, "/api/loyalty/users/2/reconcile", adminToken, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("reconcile: expected 200, got %d", resp.Code)
	}
	var report dto.ReconcileResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &report); err != nil {
		t.Fatalf("decode reconcile: %v", err)
	}
	if report.Drift {
		t.Fatalf("unexpected drift: %+v", report)
	}
}

func TestIdempotentReplayThroughAPI(t *testing.T) {
	env := newTestEnv(t, pkgAuth.NewJWTStrategy("secret", pkgAuth.Options{TTL: time.Minute}))
	adminToken := env.loginAdmin(t)
	customer := env.users.Seed(model.User{Username: "alice", Role: model.RoleCustomer})

	key := "req-1"
	body := dto.TransactionRequest{UserID: customer.ID, Type: "earn", Amount: 50, IdempotencyKey: &key}

	resp := env.do(t, http.MethodPost, "/api/loyalty/transactions", adminToken, body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("first write: expected 201, got %d", resp.Code)
	}
	resp = env.do(t, http.MethodPost, "/api/loyalty/transactions", adminToken, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("replay: expected 200, got %d", resp.Code)
	}

	resp = env.do(t, http.MethodGet, "/api/loyalty/users/2/balance", adminToken, nil)
	var balance dto.BalanceResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &balance); err != nil {
		t.Fatalf("decode balance: %v", err)
	}
	if balance.Points != 50 {
		t.Fatalf("replay must not move balance, got %d", balance.Points)
	}
}

func TestFavoritesFlowThroughAPI(t *testing.T) {
	env := newTestEnv(t, pkgAuth.NewJWTStrategy("secret", pkgAuth.Options{TTL: time.Minute}))
	adminToken := env.loginAdmin(t)

	resp := env.do(t, http.MethodPost, "/api/admin/products", adminToken, dto.ProductRequest{Name: "Sneakers", Price: 4999, Active: true})
	if resp.Code != http.StatusCreated {
		t.Fatalf("create product: expected 201, got %d %s", resp.Code, resp.Body.String())
	}
	var product dto.ProductResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &product); err != nil {
		t.Fatalf("decode product: %v", err)
	}

	resp = env.do(t, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{Username: "alice", Password: "password1"})
	if resp.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d", resp.Code)
	}
	var registered dto.TokenResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &registered); err != nil {
		t.Fatalf("decode register response: %v", err)
	}

	resp = env.do(t, http.MethodPost, "/api/favorites", registered.Token, dto.FavoriteRequest{ProductID: product.ID})
	if resp.Code != http.StatusCreated {
		t.Fatalf("add favorite: expected 201, got %d %s", resp.Code, resp.Body.String())
	}

	resp = env.do(t, http.MethodGet, "/api/favorites", registered.Token, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("list favorites: expected 200, got %d", resp.Code)
	}
	var saved []dto.ProductResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &saved); err != nil {
		t.Fatalf("decode favorites: %v", err)
	}
	if len(saved) != 1 || saved[0].ID != product.ID {
		t.Fatalf("unexpected favorites: %+v", saved)
	}

	resp = env.do(t, http.MethodDelete, "/api/favorites/1", registered.Token, nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("remove favorite: expected 204, got %d", resp.Code)
	}
}

func TestRequestIDPropagated(t *testing.T) {
	env := newTestEnv(t, pkgAuth.NewJWTStrategy("secret", pkgAuth.Options{TTL: time.Minute}))
	resp := env.do(t, http.MethodGet, "/api/catalog/products", "", nil)
	if resp.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected request id header on responses")
	}
}

func TestSetupWithStubFacade(t *testing.T) {
	facade := testhelpers.PlatformFacadeStub{
		AuthorizerStub: testhelpers.AuthorizerStub{User: &model.User{ID: 7, Username: "alice", Role: model.RoleCustomer}},
	}
	cfg := &config.Config{
		RunAddress:    ":0",
		Environment:   "development",
		TokenTTL:      time.Minute,
		TokenStrategy: "jwt",
		CORSOrigins:   []string{"http://localhost:3000"},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	engine := Setup(facade, cfg, logger)

	req := httptest.NewRequest(http.MethodGet, "/api/catalog/products/3", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("get product: expected 200, got %d %s", rec.Code, rec.Body.String())
	}
	var product dto.ProductResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &product); err != nil {
		t.Fatalf("decode product: %v", err)
	}
	if product.ID != 3 {
		t.Fatalf("unexpected product: %+v", product)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer any")
	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("me: expected 200, got %d %s", rec.Code, rec.Body.String())
	}
}
