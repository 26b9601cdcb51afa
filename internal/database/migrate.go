package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/osse101/CaseOpener_Go/internal/logger"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// Migrations returns the embedded goose migration files.
func Migrations() (fs.FS, error) {
	sub, err := fs.Sub(migrationFS, migrationsDir)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadMigrations, err)
	}
	return sub, nil
}

// Migrator applies the embedded schema migrations.
type Migrator struct {
	db       *sql.DB
	provider *goose.Provider
}

// NewMigrator opens a database/sql handle over pool for goose.
// Close releases the handle but leaves the pool open.
func NewMigrator(pool *pgxpool.Pool) (*Migrator, error) {
	migrations, err := Migrations()
	if err != nil {
		return nil, err
	}

	db := stdlib.OpenDBFromPool(pool)
	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreateMigrator, err)
	}
	return &Migrator{db: db, provider: provider}, nil
}

// Up applies every pending migration.
func (m *Migrator) Up(ctx context.Context) error {
	log := logger.FromContext(ctx)

	results, err := m.provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToApplyMigrations, err)
	}
	for _, r := range results {
		log.Info(LogMsgMigrationApplied, "version", r.Source.Version, "duration", r.Duration)
	}
	if len(results) == 0 {
		log.Info(LogMsgSchemaUpToDate)
	}
	return nil
}

// Down rolls back the most recent migration.
func (m *Migrator) Down(ctx context.Context) error {
	result, err := m.provider.Down(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToRollbackMigration, err)
	}
	logger.FromContext(ctx).Info(LogMsgMigrationRolledBack, "version", result.Source.Version)
	return nil
}

// MigrationState is one migration's applied state.
type MigrationState struct {
	Version int64
	Path    string
	Applied bool
}

// Status lists every known migration and whether it is applied.
func (m *Migrator) Status(ctx context.Context) ([]MigrationState, error) {
	statuses, err := m.provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToReadStatus, err)
	}
	out := make([]MigrationState, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, MigrationState{
			Version: s.Source.Version,
			Path:    s.Source.Path,
			Applied: s.State == goose.StateApplied,
		})
	}
	return out, nil
}

// Version returns the highest applied migration version.
func (m *Migrator) Version(ctx context.Context) (int64, error) {
	v, err := m.provider.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToReadVersion, err)
	}
	return v, nil
}

// Close releases the database/sql handle.
func (m *Migrator) Close() error {
	return m.db.Close()
}

// Migrate applies all pending migrations against pool.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	m, err := NewMigrator(pool)
	if err != nil {
		return err
	}
	defer m.Close()
	return m.Up(ctx)
}
