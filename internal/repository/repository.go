// Package repository defines the persistence contracts shared by the
// memory and Postgres stores.
package repository

import (
	"context"

	"github.com/osse101/CaseOpener_Go/internal/domain"
)

// Users persists registered players.
type Users interface {
	// CreateUser fails with domain.ErrUsernameTaken on a duplicate username.
	CreateUser(ctx context.Context, user domain.User) error
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

// GameStates persists wallets and progression.
type GameStates interface {
	CreateGameState(ctx context.Context, state domain.GameState) error
	// GetGameState fails with domain.ErrGameStateNotFound when the user has none.
	GetGameState(ctx context.Context, userID string) (*domain.GameState, error)
	UpdateGameState(ctx context.Context, state domain.GameState) error
}

// Inventory persists owned items.
type Inventory interface {
	// GetInventory returns items oldest first.
	GetInventory(ctx context.Context, userID string) ([]domain.InventoryItem, error)
	GetInventoryItem(ctx context.Context, userID, itemID string) (*domain.InventoryItem, error)
	AddInventoryItem(ctx context.Context, item domain.InventoryItem) error
	// RemoveInventoryItems removes all ids or none; a missing id yields domain.ErrItemNotFound.
	RemoveInventoryItems(ctx context.Context, userID string, itemIDs ...string) error
	ClearInventory(ctx context.Context, userID string) (int, error)
}

// Cooldowns persists case cooldowns. Expired rows are returned as-is.
type Cooldowns interface {
	// GetCooldown returns nil, nil when no row exists.
	GetCooldown(ctx context.Context, userID, caseID string) (*domain.CaseCooldown, error)
	ListCooldowns(ctx context.Context, userID string) ([]domain.CaseCooldown, error)
	UpsertCooldown(ctx context.Context, cooldown domain.CaseCooldown) error
	// DeleteCooldown is a no-op when no row exists.
	DeleteCooldown(ctx context.Context, userID, caseID string) error
}

// Tx is a unit of work over one user's state.
type Tx interface {
	// CreateUser fails with domain.ErrUsernameTaken on a duplicate username.
	CreateUser(ctx context.Context, user domain.User) error
	GameStates
	Inventory
	Cooldowns

	// LockUser serializes concurrent transactions for the same user.
	LockUser(ctx context.Context, userID string) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Store is the full persistence surface.
type Store interface {
	Users
	GameStates
	Inventory
	Cooldowns

	BeginTx(ctx context.Context) (Tx, error)
	Ping(ctx context.Context) error
	Close()
}
