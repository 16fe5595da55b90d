package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/kanzfinance/kanz-middleware/pkg/solana"
)

// Storage drivers
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Swap transaction cache drivers
const (
	TxCacheMemory = "memory"
	TxCacheRedis  = "redis"
)

// APIServerConfig represents the execution API server configuration
type APIServerConfig struct {
	Server   ServerConfig   `yaml:"server"`
	Storage  StorageConfig  `yaml:"storage"`
	Database DatabaseConfig `yaml:"database"`
	Logging  LoggingConfig  `yaml:"logging"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	Privy    PrivyConfig    `yaml:"privy"`
	LiFi     LiFiConfig     `yaml:"lifi"`
	Jupiter  JupiterConfig  `yaml:"jupiter"`
	TxCache  TxCacheConfig  `yaml:"tx_cache"`
	Watchdog WatchdogConfig `yaml:"watchdog"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `yaml:"host" default:"0.0.0.0"`
	Port            int           `yaml:"port" default:"8080" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" default:"90s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"30s"`
	RequestTimeout  time.Duration `yaml:"request_timeout" default:"60s"`
}

// StorageConfig selects the execution and user store backend
type StorageConfig struct {
	Driver string `yaml:"driver" default:"postgres" validate:"oneof=postgres memory"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host" default:"localhost"`
	Port     int    `yaml:"port" default:"5432"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database" default:"kanz"`
	SSLMode  string `yaml:"ssl_mode" default:"disable"`
}

// GetConnectionString returns the PostgreSQL connection string
func (c *DatabaseConfig) GetConnectionString() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode)
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `yaml:"level" default:"info"`
	Format     string `yaml:"format" default:"json" validate:"oneof=json console"`
	OutputPath string `yaml:"output_path" default:"stdout"`
}

// MetricsConfig contains prometheus exposition settings
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" default:"true"`
	Path    string `yaml:"path" default:"/metrics"`
}

// PrivyConfig contains identity and custody provider settings
type PrivyConfig struct {
	AppID        string `yaml:"app_id" validate:"required"`
	AppSecretEnv string `yaml:"app_secret_env" default:"PRIVY_APP_SECRET"`
	APIBaseURL   string `yaml:"api_base_url" default:"https://api.privy.io" validate:"url"`
	Issuer       string `yaml:"issuer" default:"privy.io"`
	// VerificationKey is the PEM encoded ES256 public key from the Privy dashboard.
	// When empty, keys are fetched from JWKSURL.
	VerificationKey   string        `yaml:"verification_key"`
	JWKSURL           string        `yaml:"jwks_url"`
	Timeout           time.Duration `yaml:"timeout" default:"15s"`
	RequestsPerSecond float64       `yaml:"requests_per_second" default:"10"`
}

// AppSecret returns the Privy app secret from the configured env variable
func (c *PrivyConfig) AppSecret() string {
	return os.Getenv(c.AppSecretEnv)
}

// JWKSEndpoint returns the configured JWKS URL or the per-app default
func (c *PrivyConfig) JWKSEndpoint() string {
	if c.JWKSURL != "" {
		return c.JWKSURL
	}
	return fmt.Sprintf("https://auth.privy.io/api/v1/apps/%s/jwks.json", c.AppID)
}

// LiFiConfig contains bridge aggregator settings
type LiFiConfig struct {
	BaseURL           string        `yaml:"base_url" default:"https://li.quest" validate:"url"`
	APIKeyEnv         string        `yaml:"api_key_env" default:"LIFI_API_KEY"`
	Integrator        string        `yaml:"integrator" default:"kanz.finance"`
	Slippage          string        `yaml:"slippage" default:"0.005"`
	FromChainID       uint64        `yaml:"from_chain_id" default:"8453"`
	ToChainID         uint64        `yaml:"to_chain_id" default:"1151111081099710"`
	FromToken         string        `yaml:"from_token" default:"0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913" validate:"eth_addr"`
	ToToken           string        `yaml:"to_token" default:"EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v" validate:"solana_addr"`
	Timeout           time.Duration `yaml:"timeout" default:"20s"`
	RequestsPerSecond float64       `yaml:"requests_per_second" default:"5"`
}

// APIKey returns the optional LiFi API key from the configured env variable
func (c *LiFiConfig) APIKey() string {
	return os.Getenv(c.APIKeyEnv)
}

// JupiterConfig contains swap aggregator settings
type JupiterConfig struct {
	BaseURL           string        `yaml:"base_url" default:"https://api.jup.ag" validate:"url"`
	APIKeyEnv         string        `yaml:"api_key_env" default:"JUPITER_API_KEY"`
	InputMint         string        `yaml:"input_mint" default:"EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v" validate:"solana_addr"`
	OutputMint        string        `yaml:"output_mint" default:"GoLDppdjB1vDTPSGxyMJFqdnj134yH6Prg9eqsGDiw6A" validate:"solana_addr"`
	SlippageBps       int           `yaml:"slippage_bps" default:"50" validate:"min=1,max=10000"`
	Timeout           time.Duration `yaml:"timeout" default:"20s"`
	RequestsPerSecond float64       `yaml:"requests_per_second" default:"5"`
}

// APIKey returns the Jupiter API key from the configured env variable
func (c *JupiterConfig) APIKey() string {
	return os.Getenv(c.APIKeyEnv)
}

// TxCacheConfig configures the short-lived swap transaction cache
type TxCacheConfig struct {
	Driver           string        `yaml:"driver" default:"memory" validate:"oneof=memory redis"`
	RedisAddr        string        `yaml:"redis_addr" default:"localhost:6379"`
	RedisPasswordEnv string        `yaml:"redis_password_env" default:"REDIS_PASSWORD"`
	RedisDB          int           `yaml:"redis_db"`
	TTL              time.Duration `yaml:"ttl" default:"2m"`
}

// RedisPassword returns the redis password from the configured env variable
func (c *TxCacheConfig) RedisPassword() string {
	return os.Getenv(c.RedisPasswordEnv)
}

// WatchdogConfig configures the stale execution sweeper. Interval 0 disables it.
type WatchdogConfig struct {
	Interval time.Duration `yaml:"interval"`
	MaxAge   time.Duration `yaml:"max_age" default:"24h"`
}

// LoadAPIServer loads API server configuration from file
func LoadAPIServer(configPath string) (*APIServerConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return ParseAPIServer(data)
}

// ParseAPIServer applies defaults, decodes YAML and validates the result
func ParseAPIServer(data []byte) (*APIServerConfig, error) {
	cfg := &APIServerConfig{}
	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("failed to set config defaults: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateAPIServer(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("solana_addr", func(fl validator.FieldLevel) bool {
		return solana.IsAddress(fl.Field().String())
	})
	return v
}

func validateAPIServer(cfg *APIServerConfig) error {
	if err := newValidator().Struct(cfg); err != nil {
		return err
	}
	if cfg.Storage.Driver == StoragePostgres && cfg.Database.Host == "" {
		return errors.New("database.host is required")
	}
	if cfg.Watchdog.Interval > 0 && cfg.Watchdog.MaxAge <= 0 {
		return errors.New("watchdog.max_age must be positive when watchdog is enabled")
	}
	return nil
}
