package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/kanzfinance/kanz-middleware/pkg/config"
	"github.com/kanzfinance/kanz-middleware/pkg/migrations/apidb"
	"github.com/kanzfinance/kanz-middleware/pkg/pgutil"
	mghelper "github.com/kanzfinance/kanz-middleware/pkg/pgutil/migrations"

	"github.com/joho/godotenv"
	"github.com/uptrace/bun/migrate"
)

func main() {
	cfgPath := flag.String("config", "config.example.yaml", "Path to configuration file")
	flag.Usage = mghelper.Usage
	flag.Parse()

	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.LoadAPIServer(*cfgPath)
	if err != nil {
		log.Fatalf("error reading configuration file: %s", err.Error())
	}
	if cfg.Storage.Driver != config.StoragePostgres {
		log.Fatalf("storage driver %q has no database to migrate", cfg.Storage.Driver)
	}

	// Connect to database
	db, err := pgutil.ConnectDB(context.Background(), &cfg.Database)
	if err != nil {
		log.Fatalf("error connecting to database: %s", err.Error())
	}
	defer db.Close()

	log.Printf("Running migrations for API Server database (%s)...\n", cfg.Database.Database)

	// Create migrator
	migrator := migrate.NewMigrator(db, apidb.Migrations)

	// Run migrations with args
	err = mghelper.RunMigrations(context.Background(), migrator, os.Stdout, flag.Args()...)
	if err != nil {
		mghelper.Exitf(err.Error())
	}
}
