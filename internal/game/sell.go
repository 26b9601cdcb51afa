package game

import (
	"context"
	"fmt"

	"github.com/osse101/CaseOpener_Go/internal/domain"
	"github.com/osse101/CaseOpener_Go/internal/logger"
	"github.com/osse101/CaseOpener_Go/internal/repository"
	"github.com/osse101/CaseOpener_Go/internal/utils"
)

// sellPrice quotes an item at its current value with a random spread.
func (s *service) sellPrice(item domain.InventoryItem) float64 {
	return utils.Round2(item.CurrentValue * utils.Uniform(s.rnd(), SellVarianceMin, SellVarianceMax))
}

func (s *service) SellItem(ctx context.Context, userID, itemID string) (*SellResult, error) {
	var (
		result SellResult
		sold   domain.InventoryItem
	)
	err := s.withUserTx(ctx, userID, func(tx repository.Tx) error {
		state, err := tx.GetGameState(ctx, userID)
		if err != nil {
			return fmt.Errorf(ErrMsgGetStateFailed, err)
		}
		item, err := tx.GetInventoryItem(ctx, userID, itemID)
		if err != nil {
			return err
		}

		price := s.sellPrice(*item)
		if err := tx.RemoveInventoryItems(ctx, userID, item.ID); err != nil {
			return fmt.Errorf(ErrMsgRemoveItemsFailed, err)
		}

		credit(state, price)
		state.UpdatedAt = s.now()
		if err := tx.UpdateGameState(ctx, *state); err != nil {
			return fmt.Errorf(ErrMsgUpdateStateFailed, err)
		}

		sold = *item
		result = SellResult{ItemsSold: 1, Earned: price, State: *state}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.market.Remove(userID)
	s.recorder.ItemsSold([]domain.InventoryItem{sold}, result.Earned)
	logger.FromContext(ctx).Info(LogMsgItemSold,
		LogFieldUserID, userID,
		LogFieldItemID, itemID,
		LogFieldItemName, sold.ItemName,
		LogFieldPrice, result.Earned)
	return &result, nil
}

// SellAll sells every item at an independently drawn price.
func (s *service) SellAll(ctx context.Context, userID string) (*SellResult, error) {
	var (
		result SellResult
		sold   []domain.InventoryItem
	)
	err := s.withUserTx(ctx, userID, func(tx repository.Tx) error {
		state, err := tx.GetGameState(ctx, userID)
		if err != nil {
			return fmt.Errorf(ErrMsgGetStateFailed, err)
		}
		items, err := tx.GetInventory(ctx, userID)
		if err != nil {
			return fmt.Errorf(ErrMsgGetInventoryFailed, err)
		}
		if len(items) == 0 {
			result = SellResult{State: *state}
			return nil
		}

		ids := make([]string, len(items))
		prices := make([]float64, len(items))
		for i, item := range items {
			ids[i] = item.ID
			prices[i] = s.sellPrice(item)
		}
		total := utils.Round2(utils.Sum(prices))

		// Remove exactly what was priced so nothing unpaid is dropped.
		if err := tx.RemoveInventoryItems(ctx, userID, ids...); err != nil {
			return fmt.Errorf(ErrMsgRemoveItemsFailed, err)
		}

		credit(state, total)
		state.UpdatedAt = s.now()
		if err := tx.UpdateGameState(ctx, *state); err != nil {
			return fmt.Errorf(ErrMsgUpdateStateFailed, err)
		}

		sold = items
		result = SellResult{ItemsSold: len(items), Earned: total, State: *state}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(sold) > 0 {
		s.market.Remove(userID)
		s.recorder.ItemsSold(sold, result.Earned)
		logger.FromContext(ctx).Info(LogMsgInventorySold,
			LogFieldUserID, userID,
			LogFieldCount, result.ItemsSold,
			LogFieldPrice, result.Earned)
	}
	return &result, nil
}

func credit(state *domain.GameState, amount float64) {
	state.Balance = utils.Round2(state.Balance + amount)
	state.TotalEarned = utils.Round2(state.TotalEarned + amount)
}
