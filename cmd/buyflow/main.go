// buyflow drives one bridge-then-swap execution against a running API server
// from the command line: create, approve and bridge from an EVM key, report
// the hash, then have custody sign and send the swap.
//
// Usage:
//
//	KANZ_ACCESS_TOKEN=... EVM_PRIVATE_KEY=... go run ./cmd/buyflow \
//	  -api http://localhost:8080 -rpc https://mainnet.base.org -amount 10
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/kanzfinance/kanz-middleware/pkg/client"
	"github.com/kanzfinance/kanz-middleware/pkg/config"
	"github.com/kanzfinance/kanz-middleware/pkg/execution"
)

var (
	apiURL    = flag.String("api", "http://localhost:8080", "Execution API base URL")
	rpcURL    = flag.String("rpc", "", "EVM RPC URL for the source chain")
	amount    = flag.String("amount", "", "USDC amount to spend")
	chain     = flag.String("chain", string(execution.ChainBase), "Source chain")
	provider  = flag.String("bridge-provider", "", "Bridge provider (server default when empty)")
	tokenEnv  = flag.String("token-env", "KANZ_ACCESS_TOKEN", "Env variable holding the access token")
	keyEnv    = flag.String("key-env", "EVM_PRIVATE_KEY", "Env variable holding the EVM private key")
	skipSwap  = flag.Bool("skip-swap", false, "Stop after the bridge leg is reported")
	logFormat = flag.String("log-format", "console", "Log format (json or console)")
)

func main() {
	flag.Parse()
	_ = godotenv.Load()

	logger, err := config.NewLogger(config.LoggingConfig{Level: "info", Format: *logFormat})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to setup logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger); err != nil {
		logger.Error("Buy flow failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *zap.Logger) error {
	if *amount == "" || *rpcURL == "" {
		return errors.New("-amount and -rpc are required")
	}
	token := os.Getenv(*tokenEnv)
	if token == "" {
		return fmt.Errorf("access token not set: env=%s", *tokenEnv)
	}

	api := client.New(client.Config{BaseURL: *apiURL, Timeout: 60 * time.Second}, client.StaticToken(token), logger)

	backend, err := ethclient.DialContext(ctx, *rpcURL)
	if err != nil {
		return fmt.Errorf("failed to connect to EVM RPC: %w", err)
	}
	defer backend.Close()

	waiter := client.NewReceiptWaiter(backend, client.DefaultReceiptInterval, client.DefaultReceiptAttempts, logger)

	sender, err := client.NewEVMSender(backend, os.Getenv(*keyEnv), logger)
	if err != nil {
		return err
	}

	flow := client.NewBuyFlow(api, sender, waiter, logger)
	flow.BridgeProvider = *provider
	flow.SkipSwap = *skipSwap

	logger.Info("Starting buy flow", zap.String("from", sender.From().Hex()))
	final, err := flow.Run(ctx, &execution.CreateRequest{
		AmountUSDC:     *amount,
		SourceChain:    *chain,
		IdempotencyKey: uuid.NewString(),
	})
	if err != nil {
		return err
	}
	logger.Info("Execution finished",
		zap.String("execution_id", final.ID),
		zap.String("status", string(final.Status)),
	)
	return nil
}
