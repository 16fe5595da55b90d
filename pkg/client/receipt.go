package client

import (
	"context"
	"errors"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

// Default receipt polling used before sending the bridge transaction
const (
	DefaultReceiptInterval = time.Second
	DefaultReceiptAttempts = 30
)

// ReceiptReader is satisfied by *ethclient.Client
type ReceiptReader interface {
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

// ReceiptWaiter polls for a transaction receipt a bounded number of times
type ReceiptWaiter struct {
	reader   ReceiptReader
	interval time.Duration
	attempts int
	logger   *zap.Logger
}

// NewReceiptWaiter creates a waiter; non-positive interval or attempts use the defaults
func NewReceiptWaiter(reader ReceiptReader, interval time.Duration, attempts int, logger *zap.Logger) *ReceiptWaiter {
	if interval <= 0 {
		interval = DefaultReceiptInterval
	}
	if attempts <= 0 {
		attempts = DefaultReceiptAttempts
	}
	return &ReceiptWaiter{
		reader:   reader,
		interval: interval,
		attempts: attempts,
		logger:   logger,
	}
}

// Wait polls for the receipt of hash. When attempts run out it returns
// confirmed=false without error so the caller can proceed optimistically.
// RPC errors other than not-found are logged and retried.
func (w *ReceiptWaiter) Wait(ctx context.Context, hash common.Hash) (*types.Receipt, bool, error) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for attempt := 1; attempt <= w.attempts; attempt++ {
		select {
		case <-ctx.Done():
			return nil, false, ctx.Err()
		case <-ticker.C:
		}

		receipt, err := w.reader.TransactionReceipt(ctx, hash)
		switch {
		case err == nil && receipt != nil && receipt.BlockNumber != nil:
			w.logger.Debug("Transaction confirmed",
				zap.String("tx_hash", hash.Hex()),
				zap.Uint64("block", receipt.BlockNumber.Uint64()),
				zap.Int("attempt", attempt),
			)
			return receipt, true, nil
		case err == nil, errors.Is(err, ethereum.NotFound):
		default:
			w.logger.Warn("Receipt lookup failed",
				zap.String("tx_hash", hash.Hex()),
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
		}
	}

	w.logger.Info("Receipt not found, proceeding unconfirmed",
		zap.String("tx_hash", hash.Hex()),
		zap.Int("attempts", w.attempts),
	)
	return nil, false, nil
}
