package game

import (
	"context"
	"fmt"

	"github.com/osse101/CaseOpener_Go/internal/domain"
	"github.com/osse101/CaseOpener_Go/internal/engine"
	"github.com/osse101/CaseOpener_Go/internal/logger"
	"github.com/osse101/CaseOpener_Go/internal/repository"
)

// TradeUp consumes ten owned items of one rarity and stores the contract
// result. A rejected contract leaves the inventory untouched.
func (s *service) TradeUp(ctx context.Context, userID string, itemIDs []string) (*TradeUpResult, error) {
	log := logger.FromContext(ctx)

	if n := countDistinct(itemIDs); n != engine.TradeUpInputCount || len(itemIDs) != n {
		return nil, fmt.Errorf(ErrMsgTradeUpCountFmt, domain.ErrInvalidTradeUp, engine.TradeUpInputCount, n)
	}

	var result TradeUpResult
	err := s.withUserTx(ctx, userID, func(tx repository.Tx) error {
		inputs := make([]domain.OpenedItem, 0, len(itemIDs))
		for _, id := range itemIDs {
			item, err := tx.GetInventoryItem(ctx, userID, id)
			if err != nil {
				return err
			}
			inputs = append(inputs, s.toOpenedItem(*item))
		}

		if err := engine.ValidateTradeUp(inputs); err != nil {
			log.Debug(LogMsgTradeUpRejected, LogFieldUserID, userID, LogFieldReason, err)
			return err
		}
		output, ok := s.engine.TradeUp(inputs)
		if !ok {
			return fmt.Errorf("%w: contract rejected", domain.ErrInvalidTradeUp)
		}

		if err := tx.RemoveInventoryItems(ctx, userID, itemIDs...); err != nil {
			return fmt.Errorf(ErrMsgRemoveItemsFailed, err)
		}
		received := domain.NewInventoryItem(s.newID(), userID, output, domain.SourceTradeUp)
		if err := tx.AddInventoryItem(ctx, received); err != nil {
			return fmt.Errorf(ErrMsgAddItemFailed, err)
		}

		consumed := make([]string, len(itemIDs))
		copy(consumed, itemIDs)
		result = TradeUpResult{Item: output, Received: received, Consumed: consumed}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.recorder.TradeUp(result.Item)
	log.Info(LogMsgTradeUpCompleted,
		LogFieldUserID, userID,
		LogFieldRarity, result.Item.Rarity,
		LogFieldValue, result.Item.FinalValue)
	return &result, nil
}

func countDistinct(ids []string) int {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		seen[id] = struct{}{}
	}
	return len(seen)
}
