package domain

import "time"

// Case sources for inventory entries that did not come out of a case.
const (
	SourceTradeUp = "Trade-Up Contract"
	SourceMarket  = "Market"
)

// InventoryItem is an owned item. CurrentValue is the FinalValue at acquisition.
type InventoryItem struct {
	ID           string            `json:"id"`
	UserID       string            `json:"user_id"`
	ItemID       string            `json:"item_id"`
	ItemName     string            `json:"item_name"`
	ItemType     ItemType          `json:"item_type"`
	Rarity       RarityTier        `json:"rarity"`
	Condition    WearConditionName `json:"condition"`
	StatTrak     bool              `json:"stattrak"`
	Kills        int               `json:"kills"`
	BaseValue    float64           `json:"base_value"`
	CurrentValue float64           `json:"current_value"`
	CaseSource   string            `json:"case_source"`
	Image        string            `json:"image,omitempty"`
	AcquiredAt   time.Time         `json:"acquired_at"`
}

// NewInventoryItem builds an inventory entry from an engine outcome.
func NewInventoryItem(id, userID string, item OpenedItem, source string) InventoryItem {
	return InventoryItem{
		ID:           id,
		UserID:       userID,
		ItemID:       item.ID,
		ItemName:     item.Name,
		ItemType:     item.Type,
		Rarity:       item.Rarity,
		Condition:    item.Condition.Name,
		StatTrak:     item.StatTrak,
		Kills:        item.Kills,
		BaseValue:    item.BaseValue,
		CurrentValue: item.FinalValue,
		CaseSource:   source,
		Image:        item.Image,
		AcquiredAt:   item.AcquiredAt,
	}
}

// CaseCooldown gates repeat opens of a case until CooldownUntil.
type CaseCooldown struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	CaseID        string    `json:"case_id"`
	CooldownUntil time.Time `json:"cooldown_until"`
}

// Active reports whether the cooldown is still running at now.
func (c CaseCooldown) Active(now time.Time) bool {
	return c.CooldownUntil.After(now)
}
