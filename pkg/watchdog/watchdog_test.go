package watchdog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kanzfinance/kanz-middleware/pkg/config"
	"github.com/kanzfinance/kanz-middleware/pkg/execution"
	"github.com/kanzfinance/kanz-middleware/pkg/executionstore"
)

func seed(t *testing.T, store executionstore.Store, status execution.Status, age time.Duration) *execution.Execution {
	t.Helper()
	e := execution.New("u1", "1", execution.ChainBase, "0xabc", "So1", "")
	e.Status = status
	e.UpdatedAt = time.Now().UTC().Add(-age)
	stored, _, err := store.CreateExecution(context.Background(), e)
	require.NoError(t, err)
	return stored
}

func status(t *testing.T, store executionstore.Store, id string) *execution.Execution {
	t.Helper()
	e, err := store.GetExecution(context.Background(), id)
	require.NoError(t, err)
	return e
}

func TestSweep_FailsOnlyStaleNonTerminal(t *testing.T) {
	store := executionstore.NewMemoryStore()
	w := New(store, &config.WatchdogConfig{Interval: time.Minute, MaxAge: 24 * time.Hour}, zap.NewNop())

	stalePending := seed(t, store, execution.StatusPending, 48*time.Hour)
	staleBridged := seed(t, store, execution.StatusBridged, 25*time.Hour)
	fresh := seed(t, store, execution.StatusPending, time.Hour)
	completed := seed(t, store, execution.StatusCompleted, 72*time.Hour)

	n, err := w.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	for _, id := range []string{stalePending.ID, staleBridged.ID} {
		e := status(t, store, id)
		assert.Equal(t, execution.StatusFailed, e.Status)
		assert.Equal(t, ErrorCodeTimeout, e.ErrorCode)
		assert.NotEmpty(t, e.ErrorMessage)
	}
	assert.Equal(t, execution.StatusPending, status(t, store, fresh.ID).Status)
	assert.Equal(t, execution.StatusCompleted, status(t, store, completed.ID).Status)

	n, err = w.Sweep(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSweep_DrainsMoreThanOneBatch(t *testing.T) {
	store := executionstore.NewMemoryStore()
	w := New(store, &config.WatchdogConfig{MaxAge: time.Hour}, zap.NewNop())

	total := sweepBatchSize + 5
	for i := 0; i < total; i++ {
		seed(t, store, execution.StatusBridging, 2*time.Hour)
	}

	n, err := w.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, total, n)
}

func TestWatchdog_DisabledByDefault(t *testing.T) {
	w := New(executionstore.NewMemoryStore(), &config.WatchdogConfig{MaxAge: time.Hour}, zap.NewNop())
	assert.False(t, w.Enabled())

	w.Start()
	w.Stop()
}

func TestWatchdog_StartSweepsPeriodically(t *testing.T) {
	store := executionstore.NewMemoryStore()
	w := New(store, &config.WatchdogConfig{Interval: 10 * time.Millisecond, MaxAge: time.Hour}, zap.NewNop())
	stale := seed(t, store, execution.StatusPending, 2*time.Hour)

	w.Start()
	defer w.Stop()

	require.Eventually(t, func() bool {
		e, err := store.GetExecution(context.Background(), stale.ID)
		return err == nil && e.Status == execution.StatusFailed
	}, 2*time.Second, 10*time.Millisecond)
}
