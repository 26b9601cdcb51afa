package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
	// PgErrorCodeForeignKeyViolation is raised when a referenced user does not exist
	PgErrorCodeForeignKeyViolation = "23503"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
	ErrMsgFailedToLockUser          = "failed to acquire user lock"
)

// Error Messages - Queries
const (
	ErrMsgFailedToInsertUser     = "failed to insert user"
	ErrMsgFailedToGetUser        = "failed to get user"
	ErrMsgFailedToInsertState    = "failed to insert game state"
	ErrMsgFailedToGetState       = "failed to get game state"
	ErrMsgFailedToUpdateState    = "failed to update game state"
	ErrMsgFailedToGetInventory   = "failed to get inventory"
	ErrMsgFailedToInsertItem     = "failed to insert inventory item"
	ErrMsgFailedToDeleteItems    = "failed to delete inventory items"
	ErrMsgFailedToGetCooldown    = "failed to get cooldown"
	ErrMsgFailedToUpsertCooldown = "failed to upsert cooldown"
	ErrMsgFailedToDeleteCooldown = "failed to delete cooldown"
	ErrMsgFailedToConvertNumeric = "failed to convert numeric to float64"
)

// userLockMask keeps advisory lock keys positive.
const userLockMask = 0x7FFFFFFFFFFFFFFF
