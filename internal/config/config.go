// Package config loads application settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"min=1,max=65535"`
	LogLevel    string `validate:"oneof=debug info warn warning error"`
	LogFormat   string `validate:"oneof=text json"`
	ServiceName string `validate:"required"`
	Version     string
	Environment string `validate:"required"`

	APIKey         string `validate:"required"`
	TrustedProxies []string
	RateLimit      int           `validate:"gt=0"`
	RateWindow     time.Duration `validate:"gt=0"`
	MaxBodyBytes   int64         `validate:"gt=0"`

	StorageBackend    string `validate:"oneof=memory postgres"`
	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int           `validate:"gt=0"`
	DBMaxConnIdleTime time.Duration `validate:"gt=0"`
	DBMaxConnLifetime time.Duration `validate:"gt=0"`
	AutoMigrate       bool

	// CatalogPath points at a cases.json; empty uses the embedded catalog.
	CatalogPath     string
	StartingBalance float64       `validate:"gt=0"`
	MarketCacheTTL  time.Duration `validate:"gt=0"`
	MarketCacheSize int           `validate:"gt=0"`

	// DevMode disables case cooldowns.
	DevMode         bool
	ShutdownTimeout time.Duration `validate:"gt=0"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// A missing .env is fine; real env vars may be set.
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", DefaultLogFormat)),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", DefaultVersion),
		Environment: getEnv("ENVIRONMENT", EnvDev),

		APIKey:         getEnv("API_KEY", ""),
		TrustedProxies: getEnvAsSlice("TRUSTED_PROXIES"),
		RateLimit:      getEnvAsInt("RATE_LIMIT", DefaultRateLimit),
		RateWindow:     getEnvAsDuration("RATE_WINDOW", DefaultRateWindow),
		MaxBodyBytes:   int64(getEnvAsInt("MAX_BODY_BYTES", DefaultMaxBodyBytes)),

		StorageBackend:    strings.ToLower(getEnv("STORAGE_BACKEND", DefaultStorageBackend)),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "caseopener"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),
		AutoMigrate:       getEnvAsBool("AUTO_MIGRATE", true),

		CatalogPath:     getEnv("CATALOG_PATH", ""),
		MarketCacheTTL:  getEnvAsDuration("MARKET_CACHE_TTL", DefaultMarketCacheTTL),
		MarketCacheSize: getEnvAsInt("MARKET_CACHE_SIZE", DefaultMarketCacheSize),
		DevMode:         getEnvAsBool("DEV_MODE", false),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout),
	}

	port, err := strconv.Atoi(getEnv("PORT", strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidPort, err)
	}
	cfg.Port = port

	balance, err := getEnvAsFloat("STARTING_BALANCE", DefaultStartingBalance)
	if err != nil {
		return nil, err
	}
	cfg.StartingBalance = balance

	if cfg.APIKey == "" {
		return nil, errors.New(ErrMsgAPIKeyRequired)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the struct tags and reports every failing field.
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%s: %w", ErrMsgInvalidConfig, err)
	}

	fields := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		if fe.Param() != "" {
			fields = append(fields, fmt.Sprintf("%s (%s=%s)", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
		}
	}
	return fmt.Errorf("%s: %s", ErrMsgInvalidConfig, strings.Join(fields, ", "))
}

// UsesPostgres reports whether the Postgres backend is selected.
func (c *Config) UsesPostgres() bool {
	return c.StorageBackend == StoragePostgres
}

// IsDevelopment reports whether the service runs in a development environment.
func (c *Config) IsDevelopment() bool {
	return c.Environment == EnvDev || c.Environment == "development"
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns defaultValue when the variable is unset or not an integer.
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration returns defaultValue when the variable is unset or not a duration.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsBool returns defaultValue when the variable is unset or not a bool.
func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsFloat fails loudly on a malformed value since money depends on it.
func getEnvAsFloat(key string, defaultValue float64) (float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgInvalidFloatValue+": %w", key, err)
	}
	return value, nil
}

// getEnvAsSlice splits a comma separated variable, dropping blanks.
func getEnvAsSlice(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
