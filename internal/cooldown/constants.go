package cooldown

// =============================================================================
// Error Message Constants
// =============================================================================

const (
	// ErrMsgCheckCooldownFailed is returned when checking cooldown state fails
	ErrMsgCheckCooldownFailed = "failed to check cooldown: %w"

	// ErrMsgUpdateCooldownFailed is returned when updating the cooldown fails
	ErrMsgUpdateCooldownFailed = "failed to update cooldown: %w"

	// ErrMsgResetCooldownFailed is returned when manual cooldown reset fails
	ErrMsgResetCooldownFailed = "failed to reset cooldown: %w"

	// ErrMsgListCooldownsFailed is returned when listing a user's cooldowns fails
	ErrMsgListCooldownsFailed = "failed to list cooldowns: %w"
)

// =============================================================================
// Log Message Constants
// =============================================================================

const (
	// LogMsgDevModeBypass is logged when dev mode bypasses cooldown enforcement
	LogMsgDevModeBypass = "DEV_MODE: Bypassing cooldown enforcement"

	// LogMsgCooldownEnforced is logged when a cooldown starts after a successful open
	LogMsgCooldownEnforced = "Cooldown enforced successfully"

	// LogMsgCooldownReset is logged when a cooldown is cleared manually
	LogMsgCooldownReset = "Cooldown reset"
)

// Log field keys
const (
	LogFieldCaseID = "case_id"
	LogFieldUserID = "user_id"
	LogFieldUntil  = "until"
)

// =============================================================================
// Error Message Format Strings (for ErrOnCooldown.Error())
// =============================================================================

const (
	// ErrFmtCooldownWithMinutes formats cooldown error with minutes and seconds
	ErrFmtCooldownWithMinutes = "You can open %s again in %dm %ds"

	// ErrFmtCooldownSecondsOnly formats cooldown error with seconds only
	ErrFmtCooldownSecondsOnly = "You can open %s again in %ds"
)

// =============================================================================
// Time Conversion Constants
// =============================================================================

const (
	// SecondsPerMinute is used for time duration calculations
	SecondsPerMinute = 60
)
