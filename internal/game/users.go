package game

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/osse101/CaseOpener_Go/internal/domain"
	"github.com/osse101/CaseOpener_Go/internal/engine"
	"github.com/osse101/CaseOpener_Go/internal/logger"
	"github.com/osse101/CaseOpener_Go/internal/repository"
	"github.com/osse101/CaseOpener_Go/internal/utils"
)

func (s *service) RegisterUser(ctx context.Context, username string) (*domain.User, *domain.GameState, error) {
	log := logger.FromContext(ctx)

	username = strings.TrimSpace(username)
	if username == "" {
		return nil, nil, fmt.Errorf(ErrMsgUsernameRequired, domain.ErrInvalidInput)
	}
	if len(username) > MaxUsernameLength {
		return nil, nil, fmt.Errorf(ErrMsgUsernameTooLongFmt, domain.ErrInvalidInput, MaxUsernameLength)
	}

	now := s.now()
	user := domain.User{ID: s.newID(), Username: username, CreatedAt: now}
	state := domain.NewGameState(s.newID(), user.ID, s.config.StartingBalance, now)

	err := repository.WithTx(ctx, s.store, func(tx repository.Tx) error {
		if err := tx.CreateUser(ctx, user); err != nil {
			return fmt.Errorf(ErrMsgCreateUserFailed, err)
		}
		if err := tx.CreateGameState(ctx, state); err != nil {
			return fmt.Errorf(ErrMsgCreateStateFailed, err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	log.Info(LogMsgUserRegistered, LogFieldUserID, user.ID, LogFieldUsername, username)
	return &user, &state, nil
}

func (s *service) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	return s.store.GetUser(ctx, userID)
}

func (s *service) GetState(ctx context.Context, userID string) (*domain.GameState, error) {
	state, err := s.store.GetGameState(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetStateFailed, err)
	}
	return state, nil
}

// CreateState gives an existing user a fresh game state. A nil balance uses
// the configured starting balance.
func (s *service) CreateState(ctx context.Context, userID string, balance *float64) (*domain.GameState, error) {
	if _, err := s.store.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	starting := s.config.StartingBalance
	if balance != nil {
		if *balance < 0 {
			return nil, fmt.Errorf(ErrMsgNegativeBalance, domain.ErrInvalidInput)
		}
		starting = *balance
	}

	state := domain.NewGameState(s.newID(), userID, starting, s.now())
	if err := s.store.CreateGameState(ctx, state); err != nil {
		return nil, fmt.Errorf(ErrMsgCreateStateFailed, err)
	}
	return &state, nil
}

// UpdateState applies a partial update. The level follows the XP unless the
// update sets it explicitly.
func (s *service) UpdateState(ctx context.Context, userID string, update domain.GameStateUpdate) (*domain.GameState, error) {
	if update.Balance != nil && *update.Balance < 0 {
		return nil, fmt.Errorf(ErrMsgNegativeBalance, domain.ErrInvalidInput)
	}

	var updated domain.GameState
	err := s.withUserTx(ctx, userID, func(tx repository.Tx) error {
		state, err := tx.GetGameState(ctx, userID)
		if err != nil {
			return fmt.Errorf(ErrMsgGetStateFailed, err)
		}

		update.Apply(state)
		if update.XP != nil && update.Level == nil {
			state.Level = engine.LevelFromXP(state.XP)
		}
		state.UpdatedAt = s.now()

		if err := tx.UpdateGameState(ctx, *state); err != nil {
			return fmt.Errorf(ErrMsgUpdateStateFailed, err)
		}
		updated = *state
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Debug(LogMsgStateUpdated, LogFieldUserID, userID)
	return &updated, nil
}

// AdjustBalance adds delta to the balance; the result may not go below zero.
func (s *service) AdjustBalance(ctx context.Context, userID string, delta float64) (*domain.GameState, error) {
	var updated domain.GameState
	err := s.withUserTx(ctx, userID, func(tx repository.Tx) error {
		state, err := tx.GetGameState(ctx, userID)
		if err != nil {
			return fmt.Errorf(ErrMsgGetStateFailed, err)
		}

		balance := utils.Round2(state.Balance + delta)
		if balance < 0 {
			return fmt.Errorf(ErrMsgInsufficientFundsFmt, domain.ErrInsufficientFunds, state.Balance, -delta)
		}
		state.Balance = balance
		state.UpdatedAt = s.now()

		if err := tx.UpdateGameState(ctx, *state); err != nil {
			return fmt.Errorf(ErrMsgUpdateStateFailed, err)
		}
		updated = *state
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// ============================================================================
// Inventory
// ============================================================================

func (s *service) GetInventory(ctx context.Context, userID string) ([]domain.InventoryItem, error) {
	items, err := s.store.GetInventory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetInventoryFailed, err)
	}
	return items, nil
}

// AddInventoryItem stores an entry directly. Missing ids and timestamps are filled in.
func (s *service) AddInventoryItem(ctx context.Context, item domain.InventoryItem) (*domain.InventoryItem, error) {
	if _, err := s.store.GetUser(ctx, item.UserID); err != nil {
		return nil, err
	}
	if item.CurrentValue < 0 || item.BaseValue < 0 {
		return nil, fmt.Errorf("%w: item values cannot be negative", domain.ErrInvalidInput)
	}
	if item.ID == "" {
		item.ID = s.newID()
	}
	if item.AcquiredAt.IsZero() {
		item.AcquiredAt = s.now()
	}

	err := s.withUserTx(ctx, item.UserID, func(tx repository.Tx) error {
		if err := tx.AddInventoryItem(ctx, item); err != nil {
			return fmt.Errorf(ErrMsgAddItemFailed, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *service) RemoveInventoryItem(ctx context.Context, userID, itemID string) error {
	return s.withUserTx(ctx, userID, func(tx repository.Tx) error {
		if err := tx.RemoveInventoryItems(ctx, userID, itemID); err != nil {
			return fmt.Errorf(ErrMsgRemoveItemsFailed, err)
		}
		return nil
	})
}

func (s *service) ClearInventory(ctx context.Context, userID string) (int, error) {
	var n int
	err := s.withUserTx(ctx, userID, func(tx repository.Tx) error {
		var err error
		n, err = tx.ClearInventory(ctx, userID)
		if err != nil {
			return fmt.Errorf(ErrMsgClearInventoryFailed, err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	s.market.Remove(userID)
	return n, nil
}

// ============================================================================
// Cooldowns
// ============================================================================

func (s *service) Cooldowns(ctx context.Context, userID string) ([]domain.CaseCooldown, error) {
	return s.cooldowns.ActiveCooldowns(ctx, userID)
}

func (s *service) SetCooldown(ctx context.Context, userID, caseID string, until time.Time) (domain.CaseCooldown, error) {
	if _, err := s.catalog.Case(caseID); err != nil {
		return domain.CaseCooldown{}, err
	}

	var cd domain.CaseCooldown
	err := s.withUserTx(ctx, userID, func(tx repository.Tx) error {
		var err error
		cd, err = s.cooldowns.SetCooldown(ctx, tx, userID, caseID, until)
		return err
	})
	if err != nil {
		return domain.CaseCooldown{}, err
	}
	return cd, nil
}

func (s *service) ClearCooldown(ctx context.Context, userID, caseID string) error {
	return s.withUserTx(ctx, userID, func(tx repository.Tx) error {
		return s.cooldowns.ResetCooldown(ctx, tx, userID, caseID)
	})
}
