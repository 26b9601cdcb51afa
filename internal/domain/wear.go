package domain

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// WearConditionName identifies one of the five fixed wear conditions.
type WearConditionName string

const (
	WearFactoryNew    WearConditionName = "factory_new"
	WearMinimalWear   WearConditionName = "minimal_wear"
	WearFieldTested   WearConditionName = "field_tested"
	WearWellWorn      WearConditionName = "well_worn"
	WearBattleScarred WearConditionName = "battle_scarred"
)

// WearOrder is the fixed sampling order, best condition first.
var WearOrder = []WearConditionName{
	WearFactoryNew,
	WearMinimalWear,
	WearFieldTested,
	WearWellWorn,
	WearBattleScarred,
}

// ParseWearCondition converts a catalog string into a WearConditionName.
func ParseWearCondition(s string) (WearConditionName, error) {
	w := WearConditionName(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range WearOrder {
		if w == known {
			return w, nil
		}
	}
	return "", fmt.Errorf("%w: unknown wear condition %q", ErrInvalidInput, s)
}

// DefaultDisplayName derives a "Field Tested" style name from the identifier.
// Catalogs normally carry their own display names.
func (w WearConditionName) DefaultDisplayName() string {
	parts := strings.Split(string(w), "_")
	return cases.Title(language.English).String(strings.Join(parts, " "))
}

// WearCondition is a cosmetic state that scales an item's value.
type WearCondition struct {
	Name        WearConditionName `json:"name"`
	DisplayName string            `json:"display_name"`
	Multiplier  float64           `json:"multiplier"`
	Probability float64           `json:"probability"`
}
