package game

import "time"

// ============================================================================
// Economy
// ============================================================================

// Sell prices are the item's current value scaled by a draw in [SellVarianceMin, SellVarianceMax).
const (
	SellVarianceMin = 0.85
	SellVarianceMax = 1.15
)

// Market price cache defaults
const (
	DefaultMarketCacheTTL  = 5 * time.Minute
	DefaultMarketCacheSize = 1024
)

// MaxUsernameLength bounds registered usernames.
const MaxUsernameLength = 32

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrMsgGetStateFailed       = "failed to get game state: %w"
	ErrMsgUpdateStateFailed    = "failed to update game state: %w"
	ErrMsgCreateStateFailed    = "failed to create game state: %w"
	ErrMsgCreateUserFailed     = "failed to create user: %w"
	ErrMsgGetInventoryFailed   = "failed to get inventory: %w"
	ErrMsgAddItemFailed        = "failed to add inventory item: %w"
	ErrMsgRemoveItemsFailed    = "failed to remove inventory items: %w"
	ErrMsgClearInventoryFailed = "failed to clear inventory: %w"
	ErrMsgOpenCaseFailed       = "failed to open case: %w"
	ErrMsgLockUserFailed       = "failed to lock user: %w"
	ErrMsgInsufficientFundsFmt = "%w: balance %.2f, price %.2f"
	ErrMsgTradeUpCountFmt      = "%w: need %d distinct items, got %d"
	ErrMsgNotListedFmt         = "%w: %s is not listed on the market"
	ErrMsgUsernameRequired     = "%w: username is required"
	ErrMsgUsernameTooLongFmt   = "%w: username longer than %d characters"
	ErrMsgNegativeBalance      = "%w: balance cannot be negative"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgUserRegistered   = "User registered"
	LogMsgCaseOpened       = "Case opened"
	LogMsgCasePurchased    = "Case purchased"
	LogMsgLevelUp          = "User leveled up"
	LogMsgItemSold         = "Item sold"
	LogMsgInventorySold    = "Inventory sold"
	LogMsgTradeUpCompleted = "Trade-up completed"
	LogMsgTradeUpRejected  = "Trade-up rejected"
	LogMsgMarketPriced     = "Market prices generated"
	LogMsgMarketItemBought = "Market item bought"
	LogMsgOnCooldown       = "Case open rejected by cooldown"
	LogMsgStateUpdated     = "Game state updated"
)

// Log field keys
const (
	LogFieldUserID   = "user_id"
	LogFieldUsername = "username"
	LogFieldCaseID   = "case_id"
	LogFieldItemID   = "item_id"
	LogFieldItemName = "item_name"
	LogFieldRarity   = "rarity"
	LogFieldValue    = "value"
	LogFieldPrice    = "price"
	LogFieldStatTrak = "stattrak"
	LogFieldLevel    = "level"
	LogFieldCount    = "count"
	LogFieldError    = "error"
	LogFieldReason   = "reason"
)
