package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/shopcore/adminapi/internal/domain/model"
)

// LoyaltyFacade exposes the subset of application functionality required by the worker.
type LoyaltyFacade interface {
	SampleUserIDs(ctx context.Context, limit int) ([]int64, error)
	Reconcile(ctx context.Context, userID int64) (*model.BalanceReport, error)
}

// Reconciler periodically samples users and compares their cached point
// balance against the summed ledger, logging any drift. It is a detector, not
// a repairer: ledger writes are transactional, so drift means a write path
// bypassed the ledger.
type Reconciler struct {
	facade   LoyaltyFacade
	interval time.Duration
	batch    int
	logger   *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewReconciler constructs the balance reconciliation worker.
func NewReconciler(facade LoyaltyFacade, interval time.Duration, batch int, logger *slog.Logger) *Reconciler {
	if batch <= 0 {
		batch = 1
	}
	return &Reconciler{
		facade:   facade,
		interval: interval,
		batch:    batch,
		logger:   logger,
	}
}

// Start launches the background sweep loop.
func (r *Reconciler) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel

	r.wg.Add(1)
	go r.loop(runCtx)
}

// Stop waits for the sweep loop to finish.
func (r *Reconciler) Stop() {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.mu.Unlock()

	r.wg.Wait()
}

func (r *Reconciler) loop(ctx context.Context) {
	defer r.wg.Done()
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.sweep(ctx)
		}
	}
}

func (r *Reconciler) sweep(ctx context.Context) {
	ids, err := r.facade.SampleUserIDs(ctx, r.batch)
	if err != nil {
		r.logger.Error("sample users for reconciliation failed", slog.String("error", err.Error()))
		return
	}

	for _, id := range ids {
		select {
		case <-ctx.Done():
			return
		default:
		}

		report, err := r.facade.Reconcile(ctx, id)
		if err != nil {
			r.logger.Error("reconcile balance failed", slog.Int64("user_id", id), slog.String("error", err.Error()))
			continue
		}
		if report.Drift() {
			r.logger.Warn("balance drift detected",
				slog.Int64("user_id", report.UserID),
				slog.Int64("cached", report.Cached),
				slog.Int64("ledger_sum", report.LedgerSum),
			)
		}
	}
}
