// Package game implements the player-facing operations: registering,
// opening and buying cases, selling, trade-up contracts and the market.
package game

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/CaseOpener_Go/internal/catalog"
	"github.com/osse101/CaseOpener_Go/internal/cooldown"
	"github.com/osse101/CaseOpener_Go/internal/domain"
	"github.com/osse101/CaseOpener_Go/internal/engine"
	"github.com/osse101/CaseOpener_Go/internal/metrics"
	"github.com/osse101/CaseOpener_Go/internal/repository"
	"github.com/osse101/CaseOpener_Go/internal/stats"
	"github.com/osse101/CaseOpener_Go/internal/utils"
)

// Service defines the interface for game operations
type Service interface {
	// Users and state
	RegisterUser(ctx context.Context, username string) (*domain.User, *domain.GameState, error)
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	GetState(ctx context.Context, userID string) (*domain.GameState, error)
	CreateState(ctx context.Context, userID string, balance *float64) (*domain.GameState, error)
	UpdateState(ctx context.Context, userID string, update domain.GameStateUpdate) (*domain.GameState, error)
	AdjustBalance(ctx context.Context, userID string, delta float64) (*domain.GameState, error)

	// Inventory
	GetInventory(ctx context.Context, userID string) ([]domain.InventoryItem, error)
	AddInventoryItem(ctx context.Context, item domain.InventoryItem) (*domain.InventoryItem, error)
	RemoveInventoryItem(ctx context.Context, userID, itemID string) error
	ClearInventory(ctx context.Context, userID string) (int, error)

	// Cases
	Cases() []domain.Case
	Case(caseID string) (domain.Case, error)
	CaseOdds(caseID string) ([]ItemOdds, error)
	OpenCase(ctx context.Context, userID, caseID string) (*OpenResult, error)
	PurchaseCase(ctx context.Context, userID, caseID string) (*domain.GameState, error)

	// Economy
	SellItem(ctx context.Context, userID, itemID string) (*SellResult, error)
	SellAll(ctx context.Context, userID string) (*SellResult, error)
	TradeUp(ctx context.Context, userID string, itemIDs []string) (*TradeUpResult, error)
	MarketPrices(ctx context.Context, userID string) (map[string]float64, error)
	BuyMarketItem(ctx context.Context, userID, itemID string) (*BuyResult, error)

	// Statistics and cooldowns
	Statistics(ctx context.Context, userID string) (*stats.Summary, error)
	Cooldowns(ctx context.Context, userID string) ([]domain.CaseCooldown, error)
	SetCooldown(ctx context.Context, userID, caseID string, until time.Time) (domain.CaseCooldown, error)
	ClearCooldown(ctx context.Context, userID, caseID string) error
}

// OpenResult is the outcome of opening a case.
type OpenResult struct {
	Item      domain.OpenedItem    `json:"item"`
	Inventory domain.InventoryItem `json:"inventory_item"`
	State     domain.GameState     `json:"state"`
	XPGained  int                  `json:"xp_gained"`
	LeveledUp bool                 `json:"leveled_up"`
}

// SellResult is the outcome of selling one or more items.
type SellResult struct {
	ItemsSold int              `json:"items_sold"`
	Earned    float64          `json:"earned"`
	State     domain.GameState `json:"state"`
}

// TradeUpResult is the outcome of a trade-up contract.
type TradeUpResult struct {
	Item     domain.OpenedItem    `json:"item"`
	Received domain.InventoryItem `json:"inventory_item"`
	Consumed []string             `json:"consumed"`
}

// BuyResult is the outcome of buying a market listing.
type BuyResult struct {
	Item  domain.InventoryItem `json:"item"`
	Price float64              `json:"price"`
	State domain.GameState     `json:"state"`
}

// ItemOdds is one item's selection chance within a case.
type ItemOdds struct {
	ItemID      string            `json:"item_id"`
	Name        string            `json:"name"`
	Rarity      domain.RarityTier `json:"rarity"`
	Probability float64           `json:"probability"`
}

// Config holds game service configuration
type Config struct {
	StartingBalance float64
	MarketCacheTTL  time.Duration
	MarketCacheSize int
}

// Deps groups the collaborators of the game service.
type Deps struct {
	Store     repository.Store
	Catalog   *catalog.Catalog
	Engine    *engine.Engine
	Cooldowns cooldown.Service
	Stats     stats.Service
	Recorder  metrics.Recorder
}

type service struct {
	store     repository.Store
	catalog   *catalog.Catalog
	engine    *engine.Engine
	cooldowns cooldown.Service
	stats     stats.Service
	recorder  metrics.Recorder
	config    Config

	market   *expirable.LRU[string, map[string]float64]
	marketMu sync.Mutex

	rnd   func() float64 // sell price variance
	now   func() time.Time
	newID func() string
}

// NewService creates a new game service
func NewService(deps Deps, config Config) Service {
	if config.StartingBalance <= 0 {
		config.StartingBalance = domain.DefaultStartingBalance
	}
	if config.MarketCacheTTL <= 0 {
		config.MarketCacheTTL = DefaultMarketCacheTTL
	}
	if config.MarketCacheSize <= 0 {
		config.MarketCacheSize = DefaultMarketCacheSize
	}
	recorder := deps.Recorder
	if recorder == nil {
		recorder = metrics.NopRecorder{}
	}
	statsSvc := deps.Stats
	if statsSvc == nil {
		statsSvc = stats.NewService(deps.Store)
	}

	return &service{
		store:     deps.Store,
		catalog:   deps.Catalog,
		engine:    deps.Engine,
		cooldowns: deps.Cooldowns,
		stats:     statsSvc,
		recorder:  recorder,
		config:    config,
		market:    expirable.NewLRU[string, map[string]float64](config.MarketCacheSize, nil, config.MarketCacheTTL),
		rnd:       utils.RandomFloat,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// withUserTx runs fn in a transaction holding the user's lock.
func (s *service) withUserTx(ctx context.Context, userID string, fn func(tx repository.Tx) error) error {
	return repository.WithTx(ctx, s.store, func(tx repository.Tx) error {
		if err := tx.LockUser(ctx, userID); err != nil {
			return fmt.Errorf(ErrMsgLockUserFailed, err)
		}
		return fn(tx)
	})
}

// toOpenedItem rebuilds an engine item from an inventory entry. The entry id
// becomes the item id so engine output stays keyed by inventory entry.
func (s *service) toOpenedItem(item domain.InventoryItem) domain.OpenedItem {
	condition, ok := s.catalog.Condition(item.Condition)
	if !ok {
		condition = domain.WearCondition{
			Name:        item.Condition,
			DisplayName: item.Condition.DefaultDisplayName(),
			Multiplier:  1,
		}
	}
	return domain.OpenedItem{
		CaseItem: domain.CaseItem{
			ID:        item.ID,
			Name:      item.ItemName,
			Type:      item.ItemType,
			Rarity:    item.Rarity,
			BaseValue: item.BaseValue,
			Image:     item.Image,
		},
		Condition:  condition,
		StatTrak:   item.StatTrak,
		Kills:      item.Kills,
		FinalValue: item.CurrentValue,
		AcquiredAt: item.AcquiredAt,
	}
}
