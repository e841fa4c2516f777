package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/polkiloo/loyaltyhub/internal/domain/model"
)

// LoyaltyFacade exposes the subset of application functionality required by the worker.
type LoyaltyFacade interface {
	UsersForTierReview(ctx context.Context, limit int) ([]model.LoyaltyUser, error)
	ReconcileTier(ctx context.Context, user model.LoyaltyUser) error
}

// TierReconciler polls for members flagged after earning points and settles
// their tier concurrently. Purchases never wait on a tier recalculation.
type TierReconciler struct {
	facade       LoyaltyFacade
	pollInterval time.Duration
	batchSize    int
	workers      int
	logger       *slog.Logger

	jobs   chan model.LoyaltyUser
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewTierReconciler constructs the tier review worker pool.
func NewTierReconciler(facade LoyaltyFacade, pollInterval time.Duration, batchSize, workers int, logger *slog.Logger) *TierReconciler {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &TierReconciler{
		facade:       facade,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan model.LoyaltyUser, batchSize*workers),
	}
}

// Start launches background processing.
func (r *TierReconciler) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel

	for i := 0; i < r.workers; i++ {
		r.wg.Add(1)
		go r.worker(runCtx)
	}

	r.wg.Add(1)
	go r.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (r *TierReconciler) Stop() {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.mu.Unlock()

	r.wg.Wait()
}

func (r *TierReconciler) dispatch(ctx context.Context) {
	defer r.wg.Done()
	defer close(r.jobs)
	ticker := time.NewTicker(r.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.fetchAndDispatch(ctx)
		}
	}
}

func (r *TierReconciler) fetchAndDispatch(ctx context.Context) {
	users, err := r.facade.UsersForTierReview(ctx, r.batchSize)
	if err != nil {
		r.logger.Error("fetch users for tier review failed", slog.String("error", err.Error()))
		return
	}
	for _, user := range users {
		select {
		case <-ctx.Done():
			return
		case r.jobs <- user:
		}
	}
}

func (r *TierReconciler) worker(ctx context.Context) {
	defer r.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case user, ok := <-r.jobs:
			if !ok {
				return
			}
			if err := r.facade.ReconcileTier(ctx, user); err != nil {
				r.logger.Error("tier review failed",
					slog.String("user", user.ID.String()),
					slog.String("error", err.Error()))
			}
		}
	}
}
