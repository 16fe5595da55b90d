package apidb

import (
	"context"
	"log"

	mghelper "github.com/kanzfinance/kanz-middleware/pkg/pgutil/migrations"
	"github.com/kanzfinance/kanz-middleware/pkg/userstore"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating users and user_wallets tables...")
		if err := mghelper.CreateSchema(ctx, db, &userstore.UserDao{}, &userstore.WalletDao{}); err != nil {
			return err
		}
		// Create indexes
		return mghelper.CreateModelIndexes(ctx, db, &userstore.WalletDao{}, "user_id")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping users and user_wallets tables...")
		return mghelper.DropTables(ctx, db, &userstore.WalletDao{}, &userstore.UserDao{})
	})
}
