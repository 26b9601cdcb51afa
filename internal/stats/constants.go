package stats

// Error messages
const (
	ErrMsgGetStateFailed     = "failed to get game state: %w"
	ErrMsgGetInventoryFailed = "failed to get inventory: %w"
)

// Log messages
const (
	LogMsgStatsComputed = "User statistics computed"
	LogFieldUserID      = "user_id"
	LogFieldItems       = "items"
)

// percentScale turns a ratio into a percentage.
const percentScale = 100
