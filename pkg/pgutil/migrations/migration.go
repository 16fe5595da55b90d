// Package migrations holds migrations related helpers
package migrations

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"reflect"
	"strings"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
)

const usageText = `Usage:
  go run ./cmd/api-server/migrate -config config.yaml <command>

Commands:
  init    creates the bun migration tables
  up      applies every pending migration
  down    rolls back the last migration group
  status  prints applied and pending migrations

Use storage.driver: postgres; the memory driver has nothing to migrate.
`

// Usage prints command usage
func Usage() {
	fmt.Fprint(flag.CommandLine.Output(), usageText)
	flag.PrintDefaults()
	os.Exit(2)
}

// Exitf prints the message and usage, then exits
func Exitf(s string, args ...any) {
	fmt.Fprintf(os.Stderr, s+"\n", args...)
	Usage()
}

// CreateSchema creates a table per model, skipping existing ones
func CreateSchema(ctx context.Context, db bun.IDB, models ...any) error {
	for _, model := range models {
		log.Println("creating table for", reflect.TypeOf(model))
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("create table for %T: %w", model, err)
		}
	}
	return nil
}

// DropTables drops the tables of the given models in order
func DropTables(ctx context.Context, db bun.IDB, models ...any) error {
	for _, model := range models {
		log.Println("dropping table for", reflect.TypeOf(model))
		if _, err := db.NewDropTable().Model(model).IfExists().Cascade().Exec(ctx); err != nil {
			return fmt.Errorf("drop table for %T: %w", model, err)
		}
	}
	return nil
}

// CreateModelIndexes creates one idx_<table>_<column> index per column
func CreateModelIndexes(ctx context.Context, db bun.IDB, model any, columns ...string) error {
	for _, column := range columns {
		indexName, err := ModelIndexName(db, model, column)
		if err != nil {
			return err
		}
		_, err = db.NewCreateIndex().
			Model(model).
			Index(indexName).
			Column(column).
			IfNotExists().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("create index %s: %w", indexName, err)
		}
	}
	return nil
}

// ModelIndexName returns idx_<table>_<column> for the model's table
func ModelIndexName(db bun.IDB, model any, column string) (string, error) {
	if model == nil {
		return "", fmt.Errorf("model cannot be nil")
	}
	tableName := db.NewCreateIndex().Model(model).GetTableName()
	if tableName == "" {
		return "", fmt.Errorf("failed to resolve table name for model %T", model)
	}

	indexTableName := strings.NewReplacer(`"`, "", ".", "_").Replace(tableName)
	return fmt.Sprintf("idx_%s_%s", indexTableName, column), nil
}

type command func(ctx context.Context, m *migrate.Migrator, out io.Writer) error

var commands = map[string]command{
	"init": func(ctx context.Context, m *migrate.Migrator, out io.Writer) error {
		if err := m.Init(ctx); err != nil {
			return err
		}
		fmt.Fprintln(out, "migration tables created")
		return nil
	},
	"up": locked(func(ctx context.Context, m *migrate.Migrator, out io.Writer) error {
		group, err := m.Migrate(ctx)
		if err != nil {
			return err
		}
		if group.IsZero() {
			fmt.Fprintln(out, "database is up to date")
			return nil
		}
		fmt.Fprintf(out, "migrated to %s\n", group)
		return nil
	}),
	"down": locked(func(ctx context.Context, m *migrate.Migrator, out io.Writer) error {
		group, err := m.Rollback(ctx)
		if err != nil {
			return err
		}
		if group.IsZero() {
			fmt.Fprintln(out, "no migrations to roll back")
			return nil
		}
		fmt.Fprintf(out, "rolled back %s\n", group)
		return nil
	}),
	"status": func(ctx context.Context, m *migrate.Migrator, out io.Writer) error {
		ms, err := m.MigrationsWithStatus(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "migrations: %s\n", ms)
		fmt.Fprintf(out, "pending: %s\n", ms.Unapplied())
		fmt.Fprintf(out, "last group: %s\n", ms.LastGroup())
		return nil
	},
}

// locked holds the migration lock for the duration of cmd
func locked(cmd command) command {
	return func(ctx context.Context, m *migrate.Migrator, out io.Writer) error {
		if err := m.Lock(ctx); err != nil {
			return fmt.Errorf("failed to acquire migration lock: %w", err)
		}
		defer func() {
			if err := m.Unlock(ctx); err != nil {
				log.Printf("failed to release migration lock: %v", err)
			}
		}()
		return cmd(ctx, m, out)
	}
}

// RunMigrations runs the command named by args[0] and reports to out
func RunMigrations(ctx context.Context, migrator *migrate.Migrator, out io.Writer, args ...string) error {
	if len(args) == 0 {
		return fmt.Errorf("no command provided")
	}
	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("unknown command: %s", args[0])
	}
	return cmd(ctx, migrator, out)
}
