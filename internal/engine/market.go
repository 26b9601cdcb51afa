package engine

import (
	"github.com/osse101/CaseOpener_Go/internal/domain"
	"github.com/osse101/CaseOpener_Go/internal/utils"
)

// GenerateMarketPrices quotes a display price for every item, keyed by item
// ID. Each quote is the final value scaled by an independent draw in
// [0.8, 1.2), rounded to cents. Prices are cosmetic.
func (e *Engine) GenerateMarketPrices(items []domain.OpenedItem) map[string]float64 {
	prices := make(map[string]float64, len(items))
	for _, item := range items {
		fluctuation := utils.Uniform(e.src.Float64(), MarketFluctuationMin, MarketFluctuationMax)
		prices[item.ID] = utils.Round2(item.FinalValue * fluctuation)
	}
	return prices
}
