// Package api implements app.Runner for the API server process.
package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	apphttp "github.com/kanzfinance/kanz-middleware/pkg/app/http"
	"github.com/kanzfinance/kanz-middleware/pkg/auth"
	"github.com/kanzfinance/kanz-middleware/pkg/config"
	executionservice "github.com/kanzfinance/kanz-middleware/pkg/execution/service"
	"github.com/kanzfinance/kanz-middleware/pkg/executionstore"
	"github.com/kanzfinance/kanz-middleware/pkg/jupiter"
	"github.com/kanzfinance/kanz-middleware/pkg/lifi"
	"github.com/kanzfinance/kanz-middleware/pkg/payload"
	"github.com/kanzfinance/kanz-middleware/pkg/pgutil"
	"github.com/kanzfinance/kanz-middleware/pkg/privy"
	"github.com/kanzfinance/kanz-middleware/pkg/txcache"
	userservice "github.com/kanzfinance/kanz-middleware/pkg/user/service"
	"github.com/kanzfinance/kanz-middleware/pkg/userstore"
	"github.com/kanzfinance/kanz-middleware/pkg/watchdog"
)

// Server holds cfg to init the api server.
type Server struct {
	cfg *config.APIServerConfig
}

type stores struct {
	executions executionstore.Store
	users      userstore.Store
	close      func()
}

// NewServer initializes new api server.
func NewServer(cfg *config.APIServerConfig) *Server {
	return &Server{cfg: cfg}
}

func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("api server config is nil")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting execution API server",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
		zap.String("storage", cfg.Storage.Driver),
	)

	st, err := s.openStores(ctx, logger)
	if err != nil {
		return err
	}
	defer st.close()

	cache, err := txcache.New(ctx, &cfg.TxCache)
	if err != nil {
		return fmt.Errorf("open tx cache: %w", err)
	}
	defer func() { _ = cache.Close() }()

	validator, err := auth.NewJWTValidator(cfg.Privy.AppID, cfg.Privy.Issuer, cfg.Privy.VerificationKey, cfg.Privy.JWKSEndpoint())
	if err != nil {
		return fmt.Errorf("create token validator: %w", err)
	}

	jupiterClient := jupiter.NewClient(&cfg.Jupiter, logger)
	if !jupiterClient.Configured() {
		logger.Warn("Jupiter API key not set, swap endpoints will report unavailable",
			zap.String("env", cfg.Jupiter.APIKeyEnv),
		)
	}

	builder := payload.NewBuilder(lifi.NewClient(&cfg.LiFi, logger), jupiterClient, &cfg.LiFi, &cfg.Jupiter)
	custody := privy.NewClient(&cfg.Privy, logger)

	executionService := executionservice.NewLog(
		executionservice.NewService(st.executions, st.users, builder, custody, cache, logger),
		logger,
	)
	syncService := userservice.NewLog(userservice.NewService(st.users, logger), logger)

	wd := watchdog.New(st.executions, &cfg.Watchdog, logger)
	stopWatchdog := s.startWatchdog(wd, logger)
	// Explicit stop after ServeAndWait keeps shutdown ordering deterministic.
	defer stopWatchdog()

	router := s.setupRouter(validator, syncService, executionService, logger)

	err = apphttp.ServeAndWait(ctx, router, logger, &cfg.Server)

	// Stop background work before deferred store and cache closes kick in.
	stopWatchdog()

	return err
}

func (s *Server) openStores(ctx context.Context, logger *zap.Logger) (*stores, error) {
	if s.cfg.Storage.Driver == config.StorageMemory {
		logger.Warn("Using in-memory storage, executions are lost on restart")
		return &stores{
			executions: executionstore.NewMemoryStore(),
			users:      userstore.NewMemoryStore(),
			close:      func() {},
		}, nil
	}

	db, err := pgutil.ConnectDB(ctx, &s.cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	logger.Info("Connected to database",
		zap.String("host", s.cfg.Database.Host),
		zap.String("database", s.cfg.Database.Database),
	)

	return &stores{
		executions: executionstore.NewStore(db),
		users:      userstore.NewStore(db),
		close:      func() { _ = db.Close() },
	}, nil
}

func (s *Server) startWatchdog(wd *watchdog.Watchdog, logger *zap.Logger) func() {
	if !wd.Enabled() {
		return func() {}
	}

	logger.Info("Starting execution watchdog",
		zap.Duration("interval", s.cfg.Watchdog.Interval),
		zap.Duration("max_age", s.cfg.Watchdog.MaxAge),
	)
	wd.Start()

	// Return stopper for deterministic shutdown ordering.
	return wd.Stop
}

func (s *Server) setupRouter(
	validator auth.Verifier,
	syncService userservice.Service,
	executionService executionservice.Service,
	logger *zap.Logger,
) chi.Router {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.cfg.Server.RequestTimeout))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	if s.cfg.Metrics.Enabled {
		r.Handle(s.cfg.Metrics.Path, promhttp.Handler())
	}

	// Authenticated endpoints
	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(validator, logger))
		userservice.RegisterRoutes(r, syncService, logger)
		executionservice.RegisterRoutes(r, executionService, logger)
	})

	return r
}
