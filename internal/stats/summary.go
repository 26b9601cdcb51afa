package stats

import (
	"github.com/osse101/CaseOpener_Go/internal/domain"
	"github.com/osse101/CaseOpener_Go/internal/engine"
	"github.com/osse101/CaseOpener_Go/internal/utils"
)

// RarityCount is one slice of the rarity distribution.
type RarityCount struct {
	Rarity      domain.RarityTier `json:"rarity"`
	DisplayName string            `json:"display_name"`
	Count       int               `json:"count"`
}

// TypeValue is the summed inventory value of one item type.
type TypeValue struct {
	Type  domain.ItemType `json:"type"`
	Value float64         `json:"value"`
}

// Summary is a player's statistics page.
type Summary struct {
	UserID           string           `json:"user_id"`
	Balance          float64          `json:"balance"`
	CasesOpened      int              `json:"cases_opened"`
	TotalSpent       float64          `json:"total_spent"`
	TotalEarned      float64          `json:"total_earned"`
	TotalProfit      float64          `json:"total_profit"`
	ProfitPercentage float64          `json:"profit_percentage"`
	InventoryValue   float64          `json:"inventory_value"`
	ItemCount        int              `json:"item_count"`
	StatTrakCount    int              `json:"stattrak_count"`
	ByRarity         []RarityCount    `json:"by_rarity"`
	ByType           []TypeValue      `json:"by_type"`
	Progress         engine.Progress  `json:"progress"`
	BestDrop         *domain.BestDrop `json:"best_drop,omitempty"`
}

// Summarize computes statistics from a game state and its inventory.
// Rarity and type breakdowns only list tiers that are present, in tier order.
func Summarize(state domain.GameState, items []domain.InventoryItem) Summary {
	profit := utils.Round2(state.TotalEarned - state.TotalSpent)
	percentage := 0.0
	if state.TotalSpent > 0 {
		percentage = utils.Round2(profit / state.TotalSpent * percentScale)
	}

	rarityCounts := make(map[domain.RarityTier]int)
	typeValues := make(map[domain.ItemType]float64)
	var value float64
	statTrak := 0
	for _, item := range items {
		rarityCounts[item.Rarity]++
		typeValues[item.ItemType] += item.CurrentValue
		value += item.CurrentValue
		if item.StatTrak {
			statTrak++
		}
	}

	byRarity := make([]RarityCount, 0, len(rarityCounts))
	for _, tier := range domain.AllRarities {
		if n := rarityCounts[tier]; n > 0 {
			byRarity = append(byRarity, RarityCount{Rarity: tier, DisplayName: tier.DisplayName(), Count: n})
		}
	}

	byType := make([]TypeValue, 0, len(typeValues))
	for _, t := range []domain.ItemType{domain.ItemTypeWeapon, domain.ItemTypeGlove, domain.ItemTypeSticker, domain.ItemTypeKnife} {
		if v, ok := typeValues[t]; ok {
			byType = append(byType, TypeValue{Type: t, Value: utils.Round2(v)})
		}
	}

	var best *domain.BestDrop
	if state.BestDrop != nil {
		bd := *state.BestDrop
		best = &bd
	}

	return Summary{
		UserID:           state.UserID,
		Balance:          state.Balance,
		CasesOpened:      state.CasesOpened,
		TotalSpent:       state.TotalSpent,
		TotalEarned:      state.TotalEarned,
		TotalProfit:      profit,
		ProfitPercentage: percentage,
		InventoryValue:   utils.Round2(value),
		ItemCount:        len(items),
		StatTrakCount:    statTrak,
		ByRarity:         byRarity,
		ByType:           byType,
		Progress:         engine.LevelProgress(state.XP),
		BestDrop:         best,
	}
}
