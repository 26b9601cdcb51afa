package game

import (
	"context"
	"fmt"

	"github.com/osse101/CaseOpener_Go/internal/domain"
	"github.com/osse101/CaseOpener_Go/internal/logger"
	"github.com/osse101/CaseOpener_Go/internal/repository"
	"github.com/osse101/CaseOpener_Go/internal/utils"
)

// MarketPrices quotes every inventory entry, keyed by entry id. Quotes are
// cached per user; entries added since the last quote are priced on demand
// and removed entries are dropped.
func (s *service) MarketPrices(ctx context.Context, userID string) (map[string]float64, error) {
	items, err := s.store.GetInventory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetInventoryFailed, err)
	}

	s.marketMu.Lock()
	defer s.marketMu.Unlock()

	cached, found := s.market.Get(userID)
	prices := make(map[string]float64, len(items))
	var missing []domain.OpenedItem
	for _, item := range items {
		if price, ok := cached[item.ID]; ok {
			prices[item.ID] = price
			continue
		}
		missing = append(missing, s.toOpenedItem(item))
	}
	if len(missing) > 0 {
		for id, price := range s.engine.GenerateMarketPrices(missing) {
			prices[id] = price
		}
		logger.FromContext(ctx).Debug(LogMsgMarketPriced, LogFieldUserID, userID, LogFieldCount, len(missing))
	}

	// Add restarts the entry's TTL, so only write when quotes changed.
	if !found || len(missing) > 0 {
		s.market.Add(userID, prices)
	}

	out := make(map[string]float64, len(prices))
	for id, price := range prices {
		out[id] = price
	}
	return out, nil
}

// BuyMarketItem buys a copy of a listed entry at its quoted price.
func (s *service) BuyMarketItem(ctx context.Context, userID, itemID string) (*BuyResult, error) {
	prices, err := s.MarketPrices(ctx, userID)
	if err != nil {
		return nil, err
	}
	price, ok := prices[itemID]
	if !ok {
		return nil, fmt.Errorf(ErrMsgNotListedFmt, domain.ErrItemNotFound, itemID)
	}

	var result BuyResult
	err = s.withUserTx(ctx, userID, func(tx repository.Tx) error {
		state, err := tx.GetGameState(ctx, userID)
		if err != nil {
			return fmt.Errorf(ErrMsgGetStateFailed, err)
		}
		listed, err := tx.GetInventoryItem(ctx, userID, itemID)
		if err != nil {
			return err
		}
		if state.Balance < price {
			return fmt.Errorf(ErrMsgInsufficientFundsFmt, domain.ErrInsufficientFunds, state.Balance, price)
		}

		state.Balance = utils.Round2(state.Balance - price)
		state.TotalSpent = utils.Round2(state.TotalSpent + price)
		state.UpdatedAt = s.now()
		if err := tx.UpdateGameState(ctx, *state); err != nil {
			return fmt.Errorf(ErrMsgUpdateStateFailed, err)
		}

		bought := *listed
		bought.ID = s.newID()
		bought.CaseSource = domain.SourceMarket
		bought.AcquiredAt = s.now()
		if err := tx.AddInventoryItem(ctx, bought); err != nil {
			return fmt.Errorf(ErrMsgAddItemFailed, err)
		}

		result = BuyResult{Item: bought, Price: price, State: *state}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.recorder.ItemBought(result.Item, price)
	logger.FromContext(ctx).Info(LogMsgMarketItemBought,
		LogFieldUserID, userID,
		LogFieldItemID, itemID,
		LogFieldPrice, price)
	return &result, nil
}
