package database

// Database Connection Pool Constants
const (
	// DefaultMinConnections is the minimum number of connections to maintain in the pool
	DefaultMinConnections = 2
)

// migrationsDir is the embedded directory holding goose migrations.
const migrationsDir = "migrations"

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString   = "failed to parse connection string"
	ErrMsgFailedToCreatePool        = "failed to create connection pool"
	ErrMsgFailedToPingDatabase      = "failed to ping database"
	ErrMsgFailedToLoadMigrations    = "failed to load migrations"
	ErrMsgFailedToCreateMigrator    = "failed to create migration provider"
	ErrMsgFailedToApplyMigrations   = "failed to apply migrations"
	ErrMsgFailedToRollbackMigration = "failed to roll back migration"
	ErrMsgFailedToReadStatus        = "failed to read migration status"
	ErrMsgFailedToReadVersion       = "failed to read schema version"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
	LogMsgMigrationApplied                = "Migration applied"
	LogMsgMigrationRolledBack             = "Migration rolled back"
	LogMsgSchemaUpToDate                  = "Database schema is up to date"
)
