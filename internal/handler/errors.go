package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingPathParam      = "Missing %s path parameter"
)

// User-facing messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidInputError   = "Invalid request. Please check your inputs."
	ErrMsgUnavailableError    = "Server is temporarily unavailable. Please try again later."
	ErrMsgDatabaseUnavailable = "database connection failed"

	ErrMsgUserNotFoundError      = "User not found"
	ErrMsgGameStateNotFoundError = "Game state not found"
	ErrMsgUsernameTakenError     = "Username is already taken"

	ErrMsgCaseNotFoundError     = "Case not found"
	ErrMsgEmptyCaseError        = "Case has no items"
	ErrMsgItemNotFoundError     = "Item not found"
	ErrMsgCooldownNotFoundError = "Cooldown not found"

	ErrMsgNotEnoughMoneyError = "Not enough money"
	ErrMsgInvalidTradeUpError = "A trade-up needs exactly 10 items of one rarity below covert"
	ErrMsgOnCooldownError     = "Case is on cooldown. Try again later"
)

// Success messages for API responses
const (
	MsgItemRemovedSuccess     = "Item removed successfully"
	MsgCooldownClearedSuccess = "Cooldown cleared successfully"
)
