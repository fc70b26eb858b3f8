package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shopcore/adminapi/internal/config"
	testhelpers "github.com/shopcore/adminapi/internal/test"
	"github.com/shopcore/adminapi/internal/worker"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewHTTPServer(t *testing.T) {
	cfg := &config.Config{RunAddress: ":9099"}
	router := gin.New()

	server := newHTTPServer(serverParams{Config: cfg, Router: router})
	if server.Addr != ":9099" {
		t.Fatalf("unexpected addr: %q", server.Addr)
	}
	if server.Handler == nil {
		t.Fatal("expected router as handler")
	}
}

func TestRegisterLifecycleStartStop(t *testing.T) {
	lifecycle := &testhelpers.LifecycleRecorder{}
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}
	logger := discardLogger()

	server := &http.Server{Addr: "127.0.0.1:0", Handler: gin.New()}
	reconciler := worker.NewReconciler(testhelpers.WorkerFacadeStub{}, time.Hour, 1, logger)

	registerLifecycle(lifecycleParams{
		Lifecycle:  lifecycle,
		Shutdowner: shutdowner,
		Logger:     logger,
		Server:     server,
		Worker:     reconciler,
		Config:     &config.Config{ShutdownTimeout: time.Second},
	})

	if len(lifecycle.Hooks) != 1 {
		t.Fatalf("expected one lifecycle hook, got %d", len(lifecycle.Hooks))
	}

	hook := lifecycle.Hooks[0]
	if err := hook.OnStart(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := hook.OnStop(context.Background()); err != nil {
		t.Fatalf("stop: %v", err)
	}
}

func TestRegisterLifecycleServerFailureShutsDown(t *testing.T) {
	lifecycle := &testhelpers.LifecycleRecorder{}
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}
	logger := discardLogger()

	// An unresolvable address makes ListenAndServe fail immediately.
	server := &http.Server{Addr: "127.0.0.1:-1", Handler: gin.New()}
	reconciler := worker.NewReconciler(testhelpers.WorkerFacadeStub{}, time.Hour, 1, logger)

	registerLifecycle(lifecycleParams{
		Lifecycle:  lifecycle,
		Shutdowner: shutdowner,
		Logger:     logger,
		Server:     server,
		Worker:     reconciler,
		Config:     &config.Config{ShutdownTimeout: time.Second},
	})

	hook := lifecycle.Hooks[0]
	if err := hook.OnStart(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	t.Cleanup(func() { _ = hook.OnStop(context.Background()) })

	select {
	case <-shutdowner.Called:
	case <-time.After(2 * time.Second):
		t.Fatal("expected shutdown after listen failure")
	}
}

func TestNewReconciler(t *testing.T) {
	facade := NewPlatformFacade(nil, nil, nil, nil, nil)
	cfg := &config.Config{ReconcileInterval: time.Minute, ReconcileBatch: 5}

	r := newReconciler(workerParams{Facade: facade, Config: cfg, Logger: discardLogger()})
	if r == nil {
		t.Fatal("expected reconciler")
	}
}
