package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kanzfinance/kanz-middleware/internal/metrics"
	apperrors "github.com/kanzfinance/kanz-middleware/pkg/app/errors"
	"github.com/kanzfinance/kanz-middleware/pkg/execution"
)

const serviceName = "ExecutionService"

const hashDisplaySize = 16

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the execution Service.
// It logs method entry/exit, duration, errors, and redacted identifiers.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

func (ls *logService) started(method string, fields ...zap.Field) time.Time {
	ls.logger.Info(method+" started", append([]zap.Field{
		zap.String("service", serviceName),
		zap.String("method", method),
	}, fields...)...)
	return time.Now()
}

func (ls *logService) finished(method string, start time.Time, err error, fields ...zap.Field) {
	base := []zap.Field{
		zap.String("service", serviceName),
		zap.String("method", method),
		zap.Duration("duration", time.Since(start)),
	}

	if err != nil {
		kind := apperrors.CategoryGeneralError.Kind()
		if svcErr, ok := apperrors.As(err); ok {
			kind = svcErr.Category.Kind()
		}
		metrics.ErrorsTotal.WithLabelValues("execution_service", kind).Inc()

		if apperrors.IsInternalError(err) {
			ls.logger.Error(method+" failed", append(base, zap.String("kind", kind), zap.Error(err))...)
		} else {
			ls.logger.Warn(method+" failed", append(base, zap.String("kind", kind), zap.Error(err))...)
		}
		return
	}
	ls.logger.Info(method+" completed", append(base, fields...)...)
}

// Create wraps the service method with logging
func (ls *logService) Create(
	ctx context.Context,
	userID string,
	req *execution.CreateRequest,
) (resp *execution.CreateResponse, err error) {
	start := ls.started("Create",
		zap.String("user_id", userID),
		zap.String("amount_usdc", req.AmountUSDC),
		zap.String("source_chain", req.SourceChain),
		zap.Bool("has_idempotency_key", req.IdempotencyKey != ""),
	)
	defer func() {
		if err != nil {
			ls.finished("Create", start, err, zap.String("user_id", userID))
			return
		}
		ls.finished("Create", start, nil,
			zap.String("execution_id", resp.ExecutionID),
			zap.String("status", string(resp.Status)),
			zap.Bool("is_duplicate", resp.IsDuplicate),
		)
	}()

	return ls.svc.Create(ctx, userID, req)
}

// Get wraps the service method with logging
func (ls *logService) Get(ctx context.Context, userID, id string) (resp *execution.Response, err error) {
	start := time.Now()
	defer func() {
		if err != nil {
			ls.finished("Get", start, err, zap.String("execution_id", id))
		}
	}()

	return ls.svc.Get(ctx, userID, id)
}

// BridgePayload wraps the service method with logging
func (ls *logService) BridgePayload(
	ctx context.Context,
	userID, id, provider string,
) (resp *execution.BridgePayload, err error) {
	start := ls.started("BridgePayload",
		zap.String("execution_id", id),
		zap.String("bridge_provider", provider),
	)
	defer func() {
		if err != nil {
			ls.finished("BridgePayload", start, err, zap.String("execution_id", id))
			return
		}
		ls.finished("BridgePayload", start, nil,
			zap.String("execution_id", id),
			zap.String("to", resp.To),
			zap.Bool("needs_approval", resp.NeedsApproval()),
		)
	}()

	return ls.svc.BridgePayload(ctx, userID, id, provider)
}

// ReportEVMTx wraps the service method with logging
func (ls *logService) ReportEVMTx(
	ctx context.Context,
	userID, id string,
	req *execution.ReportEVMTxRequest,
) (resp *execution.OKResponse, err error) {
	start := ls.started("ReportEVMTx",
		zap.String("execution_id", id),
		zap.String("evm_tx_hash", req.EVMTxHash),
		zap.Bool("has_bridge_message_id", req.BridgeMessageID != ""),
	)
	defer func() {
		ls.finished("ReportEVMTx", start, err, zap.String("execution_id", id))
	}()

	return ls.svc.ReportEVMTx(ctx, userID, id, req)
}

// SwapPayload wraps the service method with logging
func (ls *logService) SwapPayload(ctx context.Context, userID, id string) (resp *execution.SwapPayload, err error) {
	start := ls.started("SwapPayload", zap.String("execution_id", id))
	defer func() {
		if err != nil {
			ls.finished("SwapPayload", start, err, zap.String("execution_id", id))
			return
		}
		ls.finished("SwapPayload", start, nil,
			zap.String("execution_id", id),
			zap.Int("serialized_tx_len", len(resp.SerializedTx)),
		)
	}()

	return ls.svc.SwapPayload(ctx, userID, id)
}

// ReportSwapTx wraps the service method with logging
func (ls *logService) ReportSwapTx(
	ctx context.Context,
	userID, id string,
	req *execution.ReportSwapTxRequest,
) (resp *execution.SwapTxResponse, err error) {
	start := ls.started("ReportSwapTx",
		zap.String("execution_id", id),
		zap.String("swap_tx_hash", req.SwapTxHash),
	)
	defer func() {
		ls.finished("ReportSwapTx", start, err, zap.String("execution_id", id))
	}()

	return ls.svc.ReportSwapTx(ctx, userID, id, req)
}

// SignAndSend wraps the service method with logging
func (ls *logService) SignAndSend(ctx context.Context, userID, id string) (resp *execution.SwapTxResponse, err error) {
	start := ls.started("SignAndSend", zap.String("execution_id", id), zap.String("user_id", userID))
	defer func() {
		if err != nil {
			ls.finished("SignAndSend", start, err, zap.String("execution_id", id))
			return
		}
		ls.finished("SignAndSend", start, nil,
			zap.String("execution_id", id),
			zap.String("swap_tx_hash", resp.SwapTxHash),
		)
	}()

	return ls.svc.SignAndSend(ctx, userID, id)
}

// SignaturePayload wraps the service method with logging
func (ls *logService) SignaturePayload(
	ctx context.Context,
	userID, id string,
) (resp *execution.SignaturePayloadResponse, err error) {
	start := ls.started("SignaturePayload", zap.String("execution_id", id))
	defer func() {
		if err != nil {
			ls.finished("SignaturePayload", start, err, zap.String("execution_id", id))
			return
		}
		ls.finished("SignaturePayload", start, nil,
			zap.String("execution_id", id),
			zap.String("url", resp.Payload.URL),
		)
	}()

	return ls.svc.SignaturePayload(ctx, userID, id)
}

// SignAndSendWithSignature wraps the service method with logging
func (ls *logService) SignAndSendWithSignature(
	ctx context.Context,
	userID, id string,
	req *execution.SignAndSendWithSignatureRequest,
) (resp *execution.SwapTxResponse, err error) {
	start := ls.started("SignAndSendWithSignature",
		zap.String("execution_id", id),
		zap.String("signature", redact(req.Signature)),
	)
	defer func() {
		if err != nil {
			ls.finished("SignAndSendWithSignature", start, err, zap.String("execution_id", id))
			return
		}
		ls.finished("SignAndSendWithSignature", start, nil,
			zap.String("execution_id", id),
			zap.String("swap_tx_hash", resp.SwapTxHash),
		)
	}()

	return ls.svc.SignAndSendWithSignature(ctx, userID, id, req)
}

// Fail wraps the service method with logging
func (ls *logService) Fail(
	ctx context.Context,
	userID, id string,
	req *execution.FailRequest,
) (resp *execution.Response, err error) {
	start := ls.started("Fail",
		zap.String("execution_id", id),
		zap.String("error_code", req.ErrorCode),
	)
	defer func() {
		ls.finished("Fail", start, err, zap.String("execution_id", id))
	}()

	return ls.svc.Fail(ctx, userID, id, req)
}

// redact shows only the edges of a signature
func redact(s string) string {
	if s == "" {
		return "<empty>"
	}
	if len(s) > hashDisplaySize {
		return fmt.Sprintf("%s...%s (%d bytes)", s[:8], s[len(s)-4:], len(s))
	}
	return fmt.Sprintf("<%d bytes>", len(s))
}
