package engine

import "github.com/osse101/CaseOpener_Go/internal/domain"

// Tables is the read-only configuration the engine rolls against.
type Tables struct {
	// DropRates maps a tier to its per-item selection weight. Weights need not sum to 1.
	DropRates map[domain.RarityTier]float64
	// Wear is walked in order; probabilities sum to 1.
	Wear               []domain.WearCondition
	StatTrakChance     float64
	StatTrakMultiplier float64
	XPPerCase          int
}

// DefaultTables returns the built-in rates, matching the shipped catalog.
func DefaultTables() Tables {
	return Tables{
		DropRates: map[domain.RarityTier]float64{
			domain.RarityConsumer:   0.50,
			domain.RarityIndustrial: 0.30,
			domain.RarityRestricted: 0.13,
			domain.RarityClassified: 0.05,
			domain.RarityCovert:     0.015,
			domain.RarityKnife:      0.005,
		},
		Wear: []domain.WearCondition{
			{Name: domain.WearFactoryNew, DisplayName: "Factory New", Multiplier: 1.5, Probability: 0.10},
			{Name: domain.WearMinimalWear, DisplayName: "Minimal Wear", Multiplier: 1.2, Probability: 0.20},
			{Name: domain.WearFieldTested, DisplayName: "Field-Tested", Multiplier: 1.0, Probability: 0.40},
			{Name: domain.WearWellWorn, DisplayName: "Well-Worn", Multiplier: 0.8, Probability: 0.20},
			{Name: domain.WearBattleScarred, DisplayName: "Battle-Scarred", Multiplier: 0.6, Probability: 0.10},
		},
		StatTrakChance:     DefaultStatTrakChance,
		StatTrakMultiplier: DefaultStatTrakMultiplier,
		XPPerCase:          DefaultXPPerCase,
	}
}

// Condition looks up a wear condition by name.
func (t Tables) Condition(name domain.WearConditionName) (domain.WearCondition, bool) {
	for _, c := range t.Wear {
		if c.Name == name {
			return c, true
		}
	}
	return domain.WearCondition{}, false
}

// MultiplierRange returns the smallest and largest wear multipliers.
func (t Tables) MultiplierRange() (lo, hi float64) {
	for i, c := range t.Wear {
		if i == 0 || c.Multiplier < lo {
			lo = c.Multiplier
		}
		if i == 0 || c.Multiplier > hi {
			hi = c.Multiplier
		}
	}
	return lo, hi
}

// ratesFor returns the drop-rate table for a case, applying the
// guaranteed-special override.
func (t Tables) ratesFor(c domain.Case) map[domain.RarityTier]float64 {
	if !c.GuaranteedSpecial {
		return t.DropRates
	}
	rates := make(map[domain.RarityTier]float64, len(t.DropRates)+1)
	for tier, rate := range t.DropRates {
		rates[tier] = rate
	}
	rates[domain.RarityKnife] = GuaranteedKnifeRate
	rates[domain.RarityCovert] = GuaranteedCovertRate
	return rates
}
