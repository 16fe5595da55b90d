package client

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeReceipts struct {
	calls   int
	results []func() (*types.Receipt, error)
}

func (f *fakeReceipts) TransactionReceipt(_ context.Context, _ common.Hash) (*types.Receipt, error) {
	i := f.calls
	f.calls++
	if i < len(f.results) {
		return f.results[i]()
	}
	return nil, ethereum.NotFound
}

func notFound() (*types.Receipt, error) { return nil, ethereum.NotFound }

func TestReceiptWaiter_ConfirmsAfterRetries(t *testing.T) {
	reader := &fakeReceipts{results: []func() (*types.Receipt, error){
		notFound,
		func() (*types.Receipt, error) { return nil, errors.New("connection reset") },
		func() (*types.Receipt, error) {
			return &types.Receipt{BlockNumber: big.NewInt(42), Status: types.ReceiptStatusSuccessful}, nil
		},
	}}
	w := NewReceiptWaiter(reader, time.Millisecond, 10, zap.NewNop())

	receipt, confirmed, err := w.Wait(context.Background(), common.HexToHash("0x01"))
	require.NoError(t, err)
	assert.True(t, confirmed)
	assert.Equal(t, uint64(42), receipt.BlockNumber.Uint64())
	assert.Equal(t, 3, reader.calls)
}

func TestReceiptWaiter_ExhaustedIsNotAnError(t *testing.T) {
	reader := &fakeReceipts{}
	w := NewReceiptWaiter(reader, time.Millisecond, 3, zap.NewNop())

	receipt, confirmed, err := w.Wait(context.Background(), common.HexToHash("0x01"))
	require.NoError(t, err)
	assert.False(t, confirmed)
	assert.Nil(t, receipt)
	assert.Equal(t, 3, reader.calls)
}

func TestReceiptWaiter_ReceiptWithoutBlockKeepsPolling(t *testing.T) {
	reader := &fakeReceipts{results: []func() (*types.Receipt, error){
		func() (*types.Receipt, error) { return &types.Receipt{}, nil },
	}}
	w := NewReceiptWaiter(reader, time.Millisecond, 2, zap.NewNop())

	_, confirmed, err := w.Wait(context.Background(), common.HexToHash("0x01"))
	require.NoError(t, err)
	assert.False(t, confirmed)
	assert.Equal(t, 2, reader.calls)
}

func TestReceiptWaiter_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	w := NewReceiptWaiter(&fakeReceipts{}, time.Hour, 0, zap.NewNop())

	_, confirmed, err := w.Wait(ctx, common.HexToHash("0x01"))
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, confirmed)
}

func TestNewReceiptWaiter_Defaults(t *testing.T) {
	w := NewReceiptWaiter(&fakeReceipts{}, 0, 0, zap.NewNop())
	assert.Equal(t, DefaultReceiptInterval, w.interval)
	assert.Equal(t, DefaultReceiptAttempts, w.attempts)
}
