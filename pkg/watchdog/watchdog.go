// Package watchdog fails executions that stopped making progress.
package watchdog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/kanzfinance/kanz-middleware/internal/metrics"
	"github.com/kanzfinance/kanz-middleware/pkg/config"
	"github.com/kanzfinance/kanz-middleware/pkg/execution"
	"github.com/kanzfinance/kanz-middleware/pkg/executionstore"
)

// ErrorCodeTimeout is written to executions failed by the watchdog.
const ErrorCodeTimeout = "timeout"

const (
	sweepBatchSize = 100
	sweepTimeout   = 2 * time.Minute
)

// Store is the subset of the execution store the watchdog needs
type Store interface {
	ListExecutions(ctx context.Context, opts ...executionstore.QueryOption) ([]*execution.Execution, error)
	TransitionExecution(ctx context.Context, id string, from []execution.Status, u execution.Update) (*execution.Execution, error)
}

// Watchdog periodically marks stale non-terminal executions as FAILED
type Watchdog struct {
	store    Store
	interval time.Duration
	maxAge   time.Duration
	logger   *zap.Logger
	now      func() time.Time

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New creates a Watchdog from configuration
func New(store Store, cfg *config.WatchdogConfig, logger *zap.Logger) *Watchdog {
	return &Watchdog{
		store:    store,
		interval: cfg.Interval,
		maxAge:   cfg.MaxAge,
		logger:   logger,
		now:      time.Now,
		stopCh:   make(chan struct{}),
	}
}

// Enabled reports whether periodic sweeping is configured
func (w *Watchdog) Enabled() bool {
	return w.interval > 0
}

// Sweep fails every non-terminal execution not updated within maxAge and
// returns how many it moved. Executions that changed concurrently are skipped.
func (w *Watchdog) Sweep(ctx context.Context) (int, error) {
	from, to, err := execution.Transition(execution.EventFail)
	if err != nil {
		return 0, err
	}

	cutoff := w.now().Add(-w.maxAge)
	code := ErrorCodeTimeout
	message := fmt.Sprintf("no progress for %s", w.maxAge)

	var expired int
	for {
		stale, err := w.store.ListExecutions(ctx,
			executionstore.WithStatuses(from...),
			executionstore.WithUpdatedBefore(cutoff),
			executionstore.WithLimit(sweepBatchSize),
		)
		if err != nil {
			return expired, fmt.Errorf("failed to list stale executions: %w", err)
		}

		moved := 0
		for _, e := range stale {
			_, err := w.store.TransitionExecution(ctx, e.ID, from, execution.Update{
				Status:       to,
				ErrorCode:    &code,
				ErrorMessage: &message,
			})
			switch {
			case err == nil:
				moved++
				metrics.WatchdogExpired.Inc()
				w.logger.Info("Expired stale execution",
					zap.String("execution_id", e.ID),
					zap.String("previous_status", string(e.Status)),
					zap.Time("updated_at", e.UpdatedAt),
				)
			case errors.Is(err, executionstore.ErrStatusConflict), errors.Is(err, executionstore.ErrExecutionNotFound):
				w.logger.Debug("Skipped execution that changed during sweep", zap.String("execution_id", e.ID))
			default:
				return expired + moved, fmt.Errorf("failed to expire execution %s: %w", e.ID, err)
			}
		}
		expired += moved

		// a short page, or a page where nothing moved, means the backlog is drained
		if len(stale) < sweepBatchSize || moved == 0 {
			return expired, nil
		}
	}
}

// Start runs Sweep every interval until Stop is called. It is a no-op when disabled.
func (w *Watchdog) Start() {
	if !w.Enabled() {
		return
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.logger.Info("Started execution watchdog",
			zap.Duration("interval", w.interval),
			zap.Duration("max_age", w.maxAge),
		)

		for {
			select {
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
				if n, err := w.Sweep(ctx); err != nil {
					w.logger.Error("Watchdog sweep failed", zap.Int("expired", n), zap.Error(err))
				} else if n > 0 {
					w.logger.Info("Watchdog sweep completed", zap.Int("expired", n))
				}
				cancel()
			case <-w.stopCh:
				w.logger.Info("Stopping execution watchdog")
				return
			}
		}
	}()
}

// Stop stops the periodic sweep and waits for it to exit
func (w *Watchdog) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}
