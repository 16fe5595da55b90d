package migrations

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"

	"github.com/kanzfinance/kanz-middleware/pkg/config"
	"github.com/kanzfinance/kanz-middleware/pkg/pgutil"
)

type widgetDao struct {
	bun.BaseModel `bun:"table:widgets"`
	ID            int64     `bun:",pk,autoincrement"`
	OwnerID       string    `bun:",notnull,type:varchar(64)"`
	Status        string    `bun:",notnull,type:varchar(16)"`
	CreatedAt     time.Time `bun:",notnull"`
}

func TestConnectDB_InvalidHost(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	db, err := pgutil.ConnectDB(ctx, &config.DatabaseConfig{
		Host:     "invalid-host-that-does-not-exist",
		Port:     5432,
		User:     "test",
		Password: "test",
		Database: "test",
		SSLMode:  "disable",
	})
	if err == nil {
		_ = db.Close()
	}
	require.Error(t, err)
}

func TestCreateSchemaAndIndexes(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, CreateSchema(ctx, db, &widgetDao{}))
	pgutil.AssertTableExists(t, db, "widgets")

	// second call is a no-op
	require.NoError(t, CreateSchema(ctx, db, &widgetDao{}))

	require.NoError(t, CreateModelIndexes(ctx, db, &widgetDao{}, "owner_id", "status"))
	pgutil.AssertIndexExists(t, db, "idx_widgets_owner_id")
	pgutil.AssertIndexExists(t, db, "idx_widgets_status")

	require.NoError(t, DropTables(ctx, db, &widgetDao{}))
	pgutil.AssertTableNotExists(t, db, "widgets")
	require.NoError(t, DropTables(ctx, db, &widgetDao{}))
}

func TestRunMigrations(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	ms := migrate.NewMigrations()
	ms.MustRegister(func(ctx context.Context, db *bun.DB) error {
		return CreateSchema(ctx, db, &widgetDao{})
	}, func(ctx context.Context, db *bun.DB) error {
		return DropTables(ctx, db, &widgetDao{})
	})
	migrator := migrate.NewMigrator(db, ms)

	var out bytes.Buffer
	require.NoError(t, RunMigrations(ctx, migrator, &out, "init"))
	require.NoError(t, RunMigrations(ctx, migrator, &out, "up"))
	pgutil.AssertTableExists(t, db, "widgets")

	out.Reset()
	require.NoError(t, RunMigrations(ctx, migrator, &out, "up"))
	assert.Contains(t, out.String(), "up to date")

	out.Reset()
	require.NoError(t, RunMigrations(ctx, migrator, &out, "status"))
	assert.Contains(t, out.String(), "last group")

	require.NoError(t, RunMigrations(ctx, migrator, &out, "down"))
	pgutil.AssertTableNotExists(t, db, "widgets")

	out.Reset()
	require.NoError(t, RunMigrations(ctx, migrator, &out, "down"))
	assert.Contains(t, out.String(), "no migrations to roll back")
}

func TestRunMigrations_BadArgs(t *testing.T) {
	require.ErrorContains(t, RunMigrations(context.Background(), nil, &bytes.Buffer{}), "no command")
	require.ErrorContains(t, RunMigrations(context.Background(), nil, &bytes.Buffer{}, "sideways"), "unknown command")
}
