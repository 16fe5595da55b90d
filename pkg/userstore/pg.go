package userstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/kanzfinance/kanz-middleware/pkg/user"
)

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the user store
func NewStore(db *bun.DB) *pgStore {
	return &pgStore{db: db}
}

func (s *pgStore) GetUser(ctx context.Context, userID string) (*user.User, error) {
	return getUser(ctx, s.db, userID)
}

func (s *pgStore) SyncUser(ctx context.Context, userID string, wallets []user.Wallet) (*user.User, error) {
	var usr *user.User
	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		now := time.Now().UTC()

		_, err := tx.NewInsert().
			Model(&UserDao{UserID: userID, CreatedAt: now, UpdatedAt: now}).
			On("CONFLICT (user_id) DO UPDATE").
			Set("updated_at = EXCLUDED.updated_at").
			Returning("NULL").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to upsert user: %w", err)
		}

		// Collapse duplicates within the request; the last descriptor wins.
		incoming := user.MergeWallets(nil, wallets)
		if len(incoming) > 0 {
			daos := toWalletDaos(userID, incoming, now)
			_, err = tx.NewInsert().
				Model(&daos).
				On("CONFLICT (user_id, chain_type, address) DO UPDATE").
				Set("is_embedded = EXCLUDED.is_embedded").
				Set("updated_at = EXCLUDED.updated_at").
				Returning("NULL").
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to upsert wallets: %w", err)
			}
		}

		usr, err = getUser(ctx, tx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return usr, nil
}

func getUser(ctx context.Context, db bun.IDB, userID string) (*user.User, error) {
	dao := new(UserDao)
	err := db.NewSelect().
		Model(dao).
		Where("user_id = ?", userID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	var wallets []WalletDao
	err = db.NewSelect().
		Model(&wallets).
		Where("user_id = ?", userID).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get user wallets: %w", err)
	}

	return toUser(dao, wallets), nil
}
