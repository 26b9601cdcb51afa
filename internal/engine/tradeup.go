package engine

import "github.com/osse101/CaseOpener_Go/internal/domain"

// TradeUp converts exactly ten items of one tradeable rarity into a single
// item one tier higher, worth 1.5x the mean input value. ok is false when
// the contract is invalid; nothing is produced in that case.
func (e *Engine) TradeUp(items []domain.OpenedItem) (domain.OpenedItem, bool) {
	if err := ValidateTradeUp(items); err != nil {
		return domain.OpenedItem{}, false
	}

	next, _ := items[0].Rarity.Next()
	value := meanFinalValue(items) * TradeUpMultiplier

	conditions := make([]domain.WearCondition, len(e.tables.Wear))
	copy(conditions, e.tables.Wear)

	return domain.OpenedItem{
		CaseItem: domain.CaseItem{
			ID:         TradeUpIDPrefix + e.newID(),
			Name:       TradeUpResultName,
			Type:       TradeUpResultType,
			Rarity:     next,
			BaseValue:  value,
			Image:      items[0].Image,
			Conditions: conditions,
		},
		Condition:  items[0].Condition,
		FinalValue: value,
		AcquiredAt: e.now(),
	}, true
}

// ValidateTradeUp reports why a set of items cannot form a contract.
func ValidateTradeUp(items []domain.OpenedItem) error {
	if len(items) != TradeUpInputCount {
		return tradeUpError("need exactly %d items, got %d", TradeUpInputCount, len(items))
	}
	rarity := items[0].Rarity
	for _, item := range items[1:] {
		if item.Rarity != rarity {
			return tradeUpError("mixed rarities %s and %s", rarity, item.Rarity)
		}
	}
	if _, ok := rarity.Next(); !ok {
		return tradeUpError("no tier above %s", rarity)
	}
	return nil
}

func meanFinalValue(items []domain.OpenedItem) float64 {
	var total float64
	for _, item := range items {
		total += item.FinalValue
	}
	return total / float64(len(items))
}
