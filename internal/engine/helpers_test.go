package engine

import (
	"time"

	"github.com/osse101/CaseOpener_Go/internal/domain"
)

var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// seqSource replays a fixed list of draws, wrapping around.
type seqSource struct {
	draws []float64
	next  int
}

func newSeq(draws ...float64) *seqSource {
	return &seqSource{draws: draws}
}

func (s *seqSource) Float64() float64 {
	v := s.draws[s.next%len(s.draws)]
	s.next++
	return v
}

func newTestEngine(tables Tables, src Source) *Engine {
	return New(tables, src,
		WithClock(func() time.Time { return testNow }),
		WithIDGenerator(func() string { return "fixed" }),
	)
}

func scenarioTables() Tables {
	t := DefaultTables()
	t.DropRates = map[domain.RarityTier]float64{
		domain.RarityConsumer: 0.8,
		domain.RarityCovert:   0.2,
	}
	return t
}

func scenarioCase() domain.Case {
	return domain.Case{
		ID:    "scenario",
		Name:  "Scenario Case",
		Price: 2.50,
		Tier:  domain.CaseTierBudget,
		Items: []domain.CaseItem{
			{ID: "cheap", Name: "Cheap Skin", Type: domain.ItemTypeWeapon, Rarity: domain.RarityConsumer, BaseValue: 1.00, Image: "cheap.png"},
			{ID: "rare", Name: "Rare Skin", Type: domain.ItemTypeWeapon, Rarity: domain.RarityCovert, BaseValue: 100.00, Image: "rare.png"},
		},
	}
}

func knifeCase() domain.Case {
	return domain.Case{
		ID:                "knives",
		Name:              "Knife Case",
		Price:             100,
		Tier:              domain.CaseTierElite,
		GuaranteedSpecial: true,
		Items: []domain.CaseItem{
			{ID: "karambit", Name: "Karambit", Type: domain.ItemTypeKnife, Rarity: domain.RarityKnife, BaseValue: 850},
			{ID: "awp", Name: "AWP", Type: domain.ItemTypeWeapon, Rarity: domain.RarityCovert, BaseValue: 95},
			{ID: "bayonet", Name: "Bayonet", Type: domain.ItemTypeKnife, Rarity: domain.RarityKnife, BaseValue: 420},
		},
	}
}

func openedItems(n int, rarity domain.RarityTier, values ...float64) []domain.OpenedItem {
	fieldTested := DefaultTables().Wear[2]
	items := make([]domain.OpenedItem, n)
	for i := range items {
		v := 1.0
		if i < len(values) {
			v = values[i]
		}
		items[i] = domain.OpenedItem{
			CaseItem: domain.CaseItem{
				ID:        "item",
				Name:      "Input",
				Type:      domain.ItemTypeWeapon,
				Rarity:    rarity,
				BaseValue: v,
				Image:     "input.png",
			},
			Condition:  fieldTested,
			FinalValue: v,
		}
	}
	return items
}

func float64Ptr(v float64) *float64 { return &v }
