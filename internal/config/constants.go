package config

import "time"

// Storage backends
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Environments
const (
	EnvDev        = "dev"
	EnvStaging    = "staging"
	EnvProduction = "prod"
)

// Defaults
const (
	DefaultPort              = 8080
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultServiceName       = "caseopener"
	DefaultVersion           = "dev"
	DefaultStorageBackend    = StorageMemory
	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute
	DefaultStartingBalance   = 1000.0
	DefaultMarketCacheTTL    = 5 * time.Minute
	DefaultMarketCacheSize   = 1024
	DefaultRateLimit         = 1000
	DefaultRateWindow        = 5 * time.Minute
	DefaultMaxBodyBytes      = 1 << 20
	DefaultShutdownTimeout   = 10 * time.Second
)

// Error messages
const (
	ErrMsgInvalidPort       = "invalid PORT value"
	ErrMsgAPIKeyRequired    = "API_KEY environment variable must be set for security"
	ErrMsgInvalidConfig     = "invalid configuration"
	ErrMsgInvalidFloatValue = "invalid %s value"
)
