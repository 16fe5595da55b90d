package executionstore

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kanzfinance/kanz-middleware/pkg/execution"
	"github.com/kanzfinance/kanz-middleware/pkg/pgutil"
	mghelper "github.com/kanzfinance/kanz-middleware/pkg/pgutil/migrations"
)

type storeFactory func(t *testing.T) Store

func newMemory(*testing.T) Store {
	return NewMemoryStore()
}

func newPostgres(t *testing.T) Store {
	t.Helper()

	db, cleanup := pgutil.SetupTestDB(t)
	t.Cleanup(cleanup)

	if err := mghelper.CreateSchema(context.Background(), db, &ExecutionDao{}); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
	return NewStore(db)
}

func newTestExecution(userID, key string) *execution.Execution {
	return execution.New(userID, "50", execution.ChainBase, "0x1111111111111111111111111111111111111111", "So1", key)
}

func ptr(s string) *string { return &s }

func TestMemoryStore(t *testing.T) {
	runStoreSuite(t, newMemory)
}

func TestPostgresStore(t *testing.T) {
	runStoreSuite(t, newPostgres)
}

func runStoreSuite(t *testing.T, factory storeFactory) {
	t.Run("CreateAndGet", func(t *testing.T) {
		store := factory(t)
		ctx := context.Background()

		e := newTestExecution("user-1", "")
		stored, dup, err := store.CreateExecution(ctx, e)
		require.NoError(t, err)
		require.False(t, dup)
		require.Equal(t, e.ID, stored.ID)

		got, err := store.GetExecution(ctx, e.ID)
		require.NoError(t, err)
		assert.Equal(t, execution.StatusPending, got.Status)
		assert.Equal(t, "50", got.AmountUSDC)
		assert.Equal(t, execution.ChainBase, got.SourceChain)
		assert.Equal(t, e.EVMAddress, got.EVMAddress)
		assert.Equal(t, "So1", got.SolanaAddress)
		assert.Empty(t, got.EVMTxHash)
		assert.WithinDuration(t, e.CreatedAt, got.CreatedAt, time.Millisecond)

		_, err = store.GetExecution(ctx, "7b6f1b9e-0000-4000-8000-000000000000")
		require.ErrorIs(t, err, ErrExecutionNotFound)
		_, err = store.GetExecution(ctx, "not-a-uuid")
		require.ErrorIs(t, err, ErrExecutionNotFound)
	})

	t.Run("IdempotencyKey", func(t *testing.T) {
		store := factory(t)
		ctx := context.Background()

		first, dup, err := store.CreateExecution(ctx, newTestExecution("user-1", "key-1"))
		require.NoError(t, err)
		require.False(t, dup)

		again, dup, err := store.CreateExecution(ctx, newTestExecution("user-1", "key-1"))
		require.NoError(t, err)
		require.True(t, dup)
		require.Equal(t, first.ID, again.ID)

		other, dup, err := store.CreateExecution(ctx, newTestExecution("user-2", "key-1"))
		require.NoError(t, err)
		require.False(t, dup)
		require.NotEqual(t, first.ID, other.ID)

		_, dup, err = store.CreateExecution(ctx, newTestExecution("user-1", ""))
		require.NoError(t, err)
		require.False(t, dup)
		_, dup, err = store.CreateExecution(ctx, newTestExecution("user-1", ""))
		require.NoError(t, err)
		require.False(t, dup)
	})

	t.Run("TransitionCompareAndSwap", func(t *testing.T) {
		store := factory(t)
		ctx := context.Background()

		e := newTestExecution("user-1", "")
		_, _, err := store.CreateExecution(ctx, e)
		require.NoError(t, err)

		from, to, err := execution.Transition(execution.EventReportEVMTx)
		require.NoError(t, err)

		updated, err := store.TransitionExecution(ctx, e.ID, from, execution.Update{
			Status:          to,
			EVMTxHash:       ptr("0xabc"),
			BridgeMessageID: ptr("msg-1"),
		})
		require.NoError(t, err)
		assert.Equal(t, execution.StatusBridged, updated.Status)
		assert.Equal(t, "0xabc", updated.EVMTxHash)
		assert.Equal(t, "msg-1", updated.BridgeMessageID)
		assert.False(t, updated.UpdatedAt.Before(updated.CreatedAt))

		// Same transition again no longer matches the expected status.
		current, err := store.TransitionExecution(ctx, e.ID, from, execution.Update{
			Status:    to,
			EVMTxHash: ptr("0xdef"),
		})
		require.ErrorIs(t, err, ErrStatusConflict)
		assert.Equal(t, "0xabc", current.EVMTxHash)

		_, err = store.TransitionExecution(ctx, "missing", from, execution.Update{Status: to})
		require.ErrorIs(t, err, ErrExecutionNotFound)
	})

	t.Run("ConcurrentTransitionsHaveOneWinner", func(t *testing.T) {
		store := factory(t)
		ctx := context.Background()

		e := newTestExecution("user-1", "")
		_, _, err := store.CreateExecution(ctx, e)
		require.NoError(t, err)

		from, to, err := execution.Transition(execution.EventReportEVMTx)
		require.NoError(t, err)

		const racers = 8
		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			wins      int
			conflicts int
		)
		for i := 0; i < racers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				hash := "0x" + string(rune('a'+i))
				_, err := store.TransitionExecution(ctx, e.ID, from, execution.Update{Status: to, EVMTxHash: &hash})
				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					wins++
				case errors.Is(err, ErrStatusConflict):
					conflicts++
				default:
					t.Errorf("unexpected error: %v", err)
				}
			}(i)
		}
		wg.Wait()

		assert.Equal(t, 1, wins)
		assert.Equal(t, racers-1, conflicts)
	})

	t.Run("ListExecutions", func(t *testing.T) {
		store := factory(t)
		ctx := context.Background()

		old := newTestExecution("user-1", "")
		old.CreatedAt = time.Now().UTC().Add(-48 * time.Hour)
		old.UpdatedAt = old.CreatedAt
		_, _, err := store.CreateExecution(ctx, old)
		require.NoError(t, err)

		fresh := newTestExecution("user-2", "")
		_, _, err = store.CreateExecution(ctx, fresh)
		require.NoError(t, err)

		stale, err := store.ListExecutions(ctx,
			WithStatuses(execution.StatusPending, execution.StatusBridged),
			WithUpdatedBefore(time.Now().UTC().Add(-24*time.Hour)),
		)
		require.NoError(t, err)
		require.Len(t, stale, 1)
		assert.Equal(t, old.ID, stale[0].ID)

		mine, err := store.ListExecutions(ctx, WithUserID("user-2"))
		require.NoError(t, err)
		require.Len(t, mine, 1)
		assert.Equal(t, fresh.ID, mine[0].ID)

		all, err := store.ListExecutions(ctx, WithLimit(1))
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, old.ID, all[0].ID)
	})
}
