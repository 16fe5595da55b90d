package userstore

import (
	"context"
	"errors"

	"github.com/kanzfinance/kanz-middleware/pkg/user"
)

// ErrUserNotFound is returned when a user lookup finds no matching record.
var ErrUserNotFound = errors.New("user not found")

// Store defines the interface for synced user persistence
type Store interface {
	GetUser(ctx context.Context, userID string) (*user.User, error)
	// SyncUser creates the user if needed and merges wallets into its wallet
	// list keyed on (chain type, address). Existing wallets keep their position.
	SyncUser(ctx context.Context, userID string, wallets []user.Wallet) (*user.User, error)
}
