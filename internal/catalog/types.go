package catalog

// catalogFile mirrors configs/cases.json.
type catalogFile struct {
	Version        string             `json:"version"`
	Settings       settingsDef        `json:"settings"`
	DropRates      map[string]float64 `json:"drop_rates"`
	WearConditions []wearDef          `json:"wear_conditions"`
	Cases          []caseDef          `json:"cases"`
}

type settingsDef struct {
	StatTrakChance     float64 `json:"stattrak_chance"`
	StatTrakMultiplier float64 `json:"stattrak_multiplier"`
	XPPerCase          int     `json:"xp_per_case"`
}

type wearDef struct {
	Name        string  `json:"name"`
	DisplayName string  `json:"display_name"`
	Multiplier  float64 `json:"multiplier"`
	Probability float64 `json:"probability"`
}

type caseDef struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	Price             float64   `json:"price"`
	Tier              string    `json:"tier"`
	CooldownMinutes   int       `json:"cooldown_minutes"`
	Image             string    `json:"image"`
	GuaranteedSpecial bool      `json:"guaranteed_special"`
	Items             []itemDef `json:"items"`
}

type itemDef struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Type           string   `json:"type"`
	Rarity         string   `json:"rarity"`
	BaseValue      float64  `json:"base_value"`
	StatTrakChance *float64 `json:"stattrak_chance"`
	Image          string   `json:"image"`
	Conditions     []string `json:"conditions"`
}
