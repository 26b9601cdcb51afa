// Command migrate applies the embedded schema migrations to PostgreSQL.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/osse101/CaseOpener_Go/internal/database"
)

const migrateTimeout = 2 * time.Minute

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	registry := NewRegistry()
	registry.Register(&UpCommand{})
	registry.Register(&DownCommand{})
	registry.Register(&StatusCommand{out: os.Stdout})
	registry.Register(&VersionCommand{out: os.Stdout})

	if len(os.Args) < 2 {
		fmt.Print(registry.Usage())
		os.Exit(1)
	}

	cmd, ok := registry.Get(os.Args[1])
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command %q\n", os.Args[1])
		fmt.Print(registry.Usage())
		os.Exit(1)
	}

	if err := run(cmd); err != nil {
		fmt.Fprintf(os.Stderr, "migrate %s: %v\n", cmd.Name(), err)
		os.Exit(1)
	}
}

func run(cmd Command) error {
	ctx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
	defer cancel()

	pool, err := database.NewPool(ctx, dbURL(), 2, time.Minute, 5*time.Minute)
	if err != nil {
		return err
	}
	defer pool.Close()

	m, err := database.NewMigrator(pool)
	if err != nil {
		return err
	}
	defer m.Close()

	return cmd.Run(ctx, m)
}

// dbURL prefers DB_URL and otherwise assembles one from the DB_* variables.
func dbURL() string {
	if url := os.Getenv("DB_URL"); url != "" {
		return url
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "postgres"),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_NAME", "caseopener"),
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
