package apidb

import (
	"context"
	"log"

	"github.com/kanzfinance/kanz-middleware/pkg/executionstore"
	mghelper "github.com/kanzfinance/kanz-middleware/pkg/pgutil/migrations"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating executions table...")
		if err := mghelper.CreateSchema(ctx, db, &executionstore.ExecutionDao{}); err != nil {
			return err
		}
		// Create indexes
		return mghelper.CreateModelIndexes(ctx, db, &executionstore.ExecutionDao{}, "user_id", "status", "updated_at")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping executions table...")
		return mghelper.DropTables(ctx, db, &executionstore.ExecutionDao{})
	})
}
