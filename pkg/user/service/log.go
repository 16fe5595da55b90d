package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/kanzfinance/kanz-middleware/pkg/user"
)

const serviceName = "UserSyncService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the sync Service.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

// Sync wraps the service method with logging
func (ls *logService) Sync(
	ctx context.Context,
	userID string,
	req *user.SyncRequest,
) (resp *user.SyncResponse, err error) {
	start := time.Now()

	ls.logger.Info("Sync started",
		zap.String("service", serviceName),
		zap.String("method", "Sync"),
		zap.String("user_id", userID),
		zap.Int("linked_accounts", len(req.LinkedAccounts)),
	)

	defer func() {
		duration := time.Since(start)

		if err != nil {
			ls.logger.Error("Sync failed",
				zap.String("service", serviceName),
				zap.String("method", "Sync"),
				zap.String("user_id", userID),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
		} else {
			ls.logger.Info("Sync completed",
				zap.String("service", serviceName),
				zap.String("method", "Sync"),
				zap.String("user_id", resp.UserID),
				zap.Int("wallets", len(resp.Wallets)),
				zap.Duration("duration", duration),
			)
		}
	}()

	return ls.svc.Sync(ctx, userID, req)
}
