package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// User errors
	ErrMsgUserNotFound  = "user not found"
	ErrMsgUsernameTaken = "username already taken"
	ErrMsgStateNotFound = "game state not found"

	// Catalog errors
	ErrMsgCaseNotFound = "case not found"
	ErrMsgEmptyCase    = "case has no items"

	// Inventory errors
	ErrMsgItemNotFound = "item not found"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"

	// Trade-up errors
	ErrMsgInvalidTradeUp = "invalid trade-up contract"

	// Cooldown errors
	ErrMsgCooldownNotFound = "cooldown not found"

	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrUserNotFound      = errors.New(ErrMsgUserNotFound)
	ErrUsernameTaken     = errors.New(ErrMsgUsernameTaken)
	ErrGameStateNotFound = errors.New(ErrMsgStateNotFound)

	ErrCaseNotFound = errors.New(ErrMsgCaseNotFound)
	ErrEmptyCase    = errors.New(ErrMsgEmptyCase)

	ErrItemNotFound = errors.New(ErrMsgItemNotFound)

	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	ErrInvalidTradeUp = errors.New(ErrMsgInvalidTradeUp)

	ErrCooldownNotFound = errors.New(ErrMsgCooldownNotFound)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
)
