package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	apperrors "github.com/kanzfinance/kanz-middleware/pkg/app/errors"
	"github.com/kanzfinance/kanz-middleware/pkg/user"
)

var (
	ErrMissingUserID = errors.New("missing user id")
)

// Store is the narrow data-access interface for the sync service.
// Defined here to keep the sync service decoupled from userstore implementation details.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	SyncUser(ctx context.Context, userID string, wallets []user.Wallet) (*user.User, error)
}

// Service defines the interface for the identity sync business logic
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	Sync(ctx context.Context, userID string, req *user.SyncRequest) (*user.SyncResponse, error)
}

type syncService struct {
	store  Store
	logger *zap.Logger
}

// NewService creates a new identity sync service
func NewService(store Store, logger *zap.Logger) Service {
	return &syncService{
		store:  store,
		logger: logger,
	}
}

// Sync merges the client reported linked wallets into the stored user record.
// The user is created on first sync. Wallets missing a chain type or address
// are dropped; wallets already stored but absent from the request are kept.
func (s *syncService) Sync(ctx context.Context, userID string, req *user.SyncRequest) (*user.SyncResponse, error) {
	if userID == "" {
		return nil, apperrors.UnAuthorizedError(ErrMissingUserID, "not authenticated")
	}

	wallets := user.ToWallets(req.LinkedAccounts)
	if dropped := len(req.LinkedAccounts) - len(wallets); dropped > 0 {
		s.logger.Debug("Dropped incomplete linked accounts",
			zap.String("user_id", userID),
			zap.Int("dropped", dropped),
		)
	}

	u, err := s.store.SyncUser(ctx, userID, wallets)
	if err != nil {
		return nil, fmt.Errorf("failed to sync user: %w", err)
	}

	resp := &user.SyncResponse{
		UserID:  u.UserID,
		Wallets: u.Wallets,
	}
	if resp.Wallets == nil {
		resp.Wallets = []user.Wallet{}
	}
	return resp, nil
}
