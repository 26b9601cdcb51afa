package domain

import (
	"fmt"
	"strings"
	"time"
)

// ItemType is the kind of cosmetic an item is.
type ItemType string

const (
	ItemTypeWeapon  ItemType = "weapon"
	ItemTypeGlove   ItemType = "glove"
	ItemTypeSticker ItemType = "sticker"
	ItemTypeKnife   ItemType = "knife"
)

// ParseItemType converts a catalog string into an ItemType.
func ParseItemType(s string) (ItemType, error) {
	switch t := ItemType(strings.ToLower(strings.TrimSpace(s))); t {
	case ItemTypeWeapon, ItemTypeGlove, ItemTypeSticker, ItemTypeKnife:
		return t, nil
	default:
		return "", fmt.Errorf("%w: unknown item type %q", ErrInvalidInput, s)
	}
}

// CaseTier is the marketing tier label of a case.
type CaseTier string

const (
	CaseTierFree     CaseTier = "free"
	CaseTierBudget   CaseTier = "budget"
	CaseTierStandard CaseTier = "standard"
	CaseTierPremium  CaseTier = "premium"
	CaseTierElite    CaseTier = "elite"
)

// ParseCaseTier converts a catalog string into a CaseTier.
func ParseCaseTier(s string) (CaseTier, error) {
	switch t := CaseTier(strings.ToLower(strings.TrimSpace(s))); t {
	case CaseTierFree, CaseTierBudget, CaseTierStandard, CaseTierPremium, CaseTierElite:
		return t, nil
	default:
		return "", fmt.Errorf("%w: unknown case tier %q", ErrInvalidInput, s)
	}
}

// CaseItem is an immutable catalog entry that a case can drop.
type CaseItem struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Type           ItemType        `json:"type"`
	Rarity         RarityTier      `json:"rarity"`
	BaseValue      float64         `json:"base_value"`
	StatTrakChance *float64        `json:"stattrak_chance,omitempty"` // nil uses the global chance
	Image          string          `json:"image"`
	Conditions     []WearCondition `json:"conditions"`
}

// Case is an immutable purchasable container yielding one random item.
type Case struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Description       string     `json:"description"`
	Price             float64    `json:"price"`
	Tier              CaseTier   `json:"tier"`
	CooldownMinutes   int        `json:"cooldown_minutes,omitempty"`
	Items             []CaseItem `json:"items"`
	Image             string     `json:"image"`
	GuaranteedSpecial bool       `json:"guaranteed_special,omitempty"`
}

// Cooldown returns the repeat-open gate of the case (zero when ungated).
func (c Case) Cooldown() time.Duration {
	return time.Duration(c.CooldownMinutes) * time.Minute
}

// IsFree reports whether the case costs nothing to open.
func (c Case) IsFree() bool {
	return c.Price == 0
}

// OpenedItem is the outcome of one case open or trade-up.
// FinalValue is frozen at creation and never recomputed.
type OpenedItem struct {
	CaseItem
	Condition  WearCondition `json:"condition"`
	StatTrak   bool          `json:"stattrak"`
	Kills      int           `json:"kills"`
	FinalValue float64       `json:"final_value"`
	AcquiredAt time.Time     `json:"acquired_at"`
}
