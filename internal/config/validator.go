package config

import (
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars must be set for every storage backend
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"API_KEY",
}

// PostgresEnvVars must also be set when STORAGE_BACKEND=postgres
var PostgresEnvVars = []string{
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
}

const (
	exampleDBPassword = "change_this_secure_password"
	exampleAPIKey     = "generate_with_openssl_rand_hex_32"
)

// ValidateEnv checks that all required environment variables are set
// and that the schema version matches expectations
func ValidateEnv() error {
	schemaVersion := os.Getenv("ENV_SCHEMA_VERSION")
	if schemaVersion == "" {
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)", ExpectedEnvSchemaVersion)
	}

	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}

	required := RequiredEnvVars
	if strings.EqualFold(os.Getenv("STORAGE_BACKEND"), StoragePostgres) {
		required = append(append([]string{}, RequiredEnvVars...), PostgresEnvVars...)
	}

	var missing []string
	for _, envVar := range required {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues (like using default values)
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv("DB_PASSWORD") == exampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}

	if os.Getenv("API_KEY") == exampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}

	if strings.EqualFold(os.Getenv("DEV_MODE"), "true") && os.Getenv("ENVIRONMENT") == EnvProduction {
		warnings = append(warnings, "DEV_MODE is enabled in production - case cooldowns are disabled")
	}

	return warnings, nil
}
