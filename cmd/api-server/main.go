package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/kanzfinance/kanz-middleware/pkg/app"
	"github.com/kanzfinance/kanz-middleware/pkg/app/api"
	"github.com/kanzfinance/kanz-middleware/pkg/config"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	flag.Parse()

	// Secrets (PRIVY_APP_SECRET, JUPITER_API_KEY, ...) may come from a local .env
	_ = godotenv.Load()

	cfg, err := config.LoadAPIServer(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	var runner app.Runner = api.NewServer(cfg)
	if err := runner.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "API server stopped with error: %v\n", err)
		os.Exit(1)
	}
}
