package userstore

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/kanzfinance/kanz-middleware/pkg/user"
)

// UserDao is a data access object that maps directly to the 'users' table in PostgreSQL.
type UserDao struct {
	bun.BaseModel `bun:"table:users,alias:u"`
	UserID        string    `bun:"user_id,pk,type:varchar(255)"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt     time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// WalletDao maps to the 'user_wallets' table. Rows are ordered by id, which
// preserves the order in which wallets were first linked.
type WalletDao struct {
	bun.BaseModel `bun:"table:user_wallets,alias:w"`
	ID            int64     `bun:"id,pk,autoincrement"`
	UserID        string    `bun:"user_id,notnull,unique:user_wallets_key,type:varchar(255)"`
	ChainType     string    `bun:"chain_type,notnull,unique:user_wallets_key,type:varchar(32)"`
	Address       string    `bun:"address,notnull,unique:user_wallets_key,type:varchar(128)"`
	IsEmbedded    bool      `bun:"is_embedded,notnull,default:false"`
	UpdatedAt     time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

func toWalletDaos(userID string, wallets []user.Wallet, now time.Time) []WalletDao {
	daos := make([]WalletDao, len(wallets))
	for i, w := range wallets {
		daos[i] = WalletDao{
			UserID:     userID,
			ChainType:  w.ChainType,
			Address:    w.Address,
			IsEmbedded: w.IsEmbedded,
			UpdatedAt:  now,
		}
	}
	return daos
}

func toUser(dao *UserDao, wallets []WalletDao) *user.User {
	usr := &user.User{
		UserID:    dao.UserID,
		Wallets:   make([]user.Wallet, len(wallets)),
		CreatedAt: dao.CreatedAt,
		UpdatedAt: dao.UpdatedAt,
	}
	for i, w := range wallets {
		usr.Wallets[i] = user.Wallet{
			ChainType:  w.ChainType,
			Address:    w.Address,
			IsEmbedded: w.IsEmbedded,
		}
	}
	return usr
}
