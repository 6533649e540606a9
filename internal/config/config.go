package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment selects which MOF deployment the service talks to.
type Environment string

const (
	EnvStaging    Environment = "Staging"
	EnvProduction Environment = "Production"
)

// Config carries all runtime settings. It is built once at startup and
// passed by value into constructors; nothing mutates it afterwards.
type Config struct {
	Environment Environment

	// Regulator-issued credentials for the ITC OAuth2 realm.
	Username  string
	Password  string
	UserRegNo string
	OrgRegNo  string

	// PerMapUserRoleID is discovered via getUserRoles and cached here
	// after a successful connection test.
	PerMapUserRoleID string

	// Base URL overrides, mainly for tests. Empty means the well-known
	// endpoint for the configured environment.
	AuthBaseURL string
	APIBaseURL  string

	RequestTimeout time.Duration
	MaxAttempts    int
	RetryBackoff   time.Duration

	// TokenSafetyWindow is how long before expiry a cached token is
	// considered stale and refreshed.
	TokenSafetyWindow time.Duration

	// BalanceEpsilon is the tolerance for the Assets = Liabilities + Equity
	// identity check, in report currency units.
	BalanceEpsilon string

	DatabaseDSN string
	HTTPAddr    string

	Tracing TracingConfig
}

// TracingConfig configures the OTLP exporter.
type TracingConfig struct {
	Enabled          bool
	ExporterEndpoint string
	ExporterProtocol string
	SamplingRatio    float64
}

// Load reads configuration from the environment. A .env file in the working
// directory is honoured for local development.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Environment:       Environment(envOr("EBALANCE_ENV", string(EnvStaging))),
		Username:          os.Getenv("EBALANCE_USERNAME"),
		Password:          os.Getenv("EBALANCE_PASSWORD"),
		UserRegNo:         os.Getenv("EBALANCE_USER_REGNO"),
		OrgRegNo:          os.Getenv("EBALANCE_ORG_REGNO"),
		PerMapUserRoleID:  os.Getenv("EBALANCE_ROLE_ID"),
		AuthBaseURL:       os.Getenv("EBALANCE_AUTH_URL"),
		APIBaseURL:        os.Getenv("EBALANCE_API_URL"),
		RequestTimeout:    durationOr("EBALANCE_REQUEST_TIMEOUT", 60*time.Second),
		MaxAttempts:       intOr("EBALANCE_MAX_ATTEMPTS", 3),
		RetryBackoff:      durationOr("EBALANCE_RETRY_BACKOFF", 500*time.Millisecond),
		TokenSafetyWindow: durationOr("EBALANCE_TOKEN_WINDOW", 60*time.Second),
		BalanceEpsilon:    envOr("EBALANCE_BALANCE_EPSILON", "0.01"),
		DatabaseDSN:       envOr("EBALANCE_DB_DSN", "file:ebalance.db?_pragma=busy_timeout(5000)"),
		HTTPAddr:          envOr("EBALANCE_HTTP_ADDR", ":8080"),
		Tracing: TracingConfig{
			Enabled:          boolOr("EBALANCE_TRACING_ENABLED", false),
			ExporterEndpoint: os.Getenv("EBALANCE_OTLP_ENDPOINT"),
			ExporterProtocol: envOr("EBALANCE_OTLP_PROTOCOL", "grpc"),
			SamplingRatio:    floatOr("EBALANCE_TRACE_SAMPLING", 0.1),
		},
	}

	switch cfg.Environment {
	case EnvStaging, EnvProduction:
	default:
		return Config{}, fmt.Errorf("unknown environment %q", cfg.Environment)
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func durationOr(key string, fallback time.Duration) time.Duration {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func intOr(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func floatOr(key string, fallback float64) float64 {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func boolOr(key string, fallback bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
