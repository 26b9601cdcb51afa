package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CaseOpener_Go/internal/domain"
)

func TestTradeUp_Rejections(t *testing.T) {
	mixed := openedItems(10, domain.RarityConsumer)
	mixed[7].Rarity = domain.RarityIndustrial

	tests := []struct {
		name  string
		items []domain.OpenedItem
	}{
		{name: "nine items", items: openedItems(9, domain.RarityConsumer)},
		{name: "eleven items", items: openedItems(11, domain.RarityConsumer)},
		{name: "no items", items: nil},
		{name: "mixed rarities", items: mixed},
		{name: "covert is top tier", items: openedItems(10, domain.RarityCovert)},
		{name: "knife is outside the order", items: openedItems(10, domain.RarityKnife)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(DefaultTables(), newSeq(0.5))
			before := append([]domain.OpenedItem(nil), tt.items...)

			got, ok := e.TradeUp(tt.items)
			assert.False(t, ok)
			assert.Equal(t, domain.OpenedItem{}, got)
			assert.Equal(t, before, tt.items, "inputs must be left untouched")

			err := ValidateTradeUp(tt.items)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidTradeUp)
		})
	}
}

func TestTradeUp_TierProgression(t *testing.T) {
	tests := []struct {
		from domain.RarityTier
		to   domain.RarityTier
	}{
		{domain.RarityConsumer, domain.RarityIndustrial},
		{domain.RarityIndustrial, domain.RarityRestricted},
		{domain.RarityRestricted, domain.RarityClassified},
		{domain.RarityClassified, domain.RarityCovert},
	}

	for _, tt := range tests {
		t.Run(string(tt.from), func(t *testing.T) {
			e := newTestEngine(DefaultTables(), newSeq(0.5))
			got, ok := e.TradeUp(openedItems(10, tt.from))
			require.True(t, ok)
			assert.Equal(t, tt.to, got.Rarity)
		})
	}
}

func TestTradeUp_ResultShape(t *testing.T) {
	values := []float64{1.10, 0.95, 2.40, 0.33, 1.00, 5.25, 0.70, 0.80, 1.99, 3.12}
	items := openedItems(10, domain.RarityConsumer, values...)
	items[0].Condition = DefaultTables().Wear[0]
	items[0].Image = "first.png"
	items[3].StatTrak = true
	items[3].Kills = 77

	e := newTestEngine(DefaultTables(), newSeq(0.5))
	got, ok := e.TradeUp(items)
	require.True(t, ok)

	var sum float64
	for _, v := range values {
		sum += v
	}
	want := sum / 10 * 1.5

	assert.Equal(t, want, got.FinalValue, "value is exact, no rounding or randomness")
	assert.Equal(t, want, got.BaseValue)
	assert.Equal(t, "tradeup_fixed", got.ID)
	assert.Equal(t, TradeUpResultName, got.Name)
	assert.Equal(t, domain.ItemTypeWeapon, got.Type)
	assert.Equal(t, domain.RarityIndustrial, got.Rarity)
	assert.Equal(t, domain.WearFactoryNew, got.Condition.Name)
	assert.Equal(t, "first.png", got.Image)
	assert.False(t, got.StatTrak)
	assert.Zero(t, got.Kills)
	assert.Len(t, got.Conditions, len(DefaultTables().Wear))
	assert.Equal(t, testNow, got.AcquiredAt)
}

func TestTradeUp_IgnoresRandomSource(t *testing.T) {
	items := openedItems(10, domain.RarityRestricted, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4)

	a, okA := newTestEngine(DefaultTables(), rand.New(rand.NewSource(1))).TradeUp(items)
	b, okB := newTestEngine(DefaultTables(), rand.New(rand.NewSource(99))).TradeUp(items)
	require.True(t, okA)
	require.True(t, okB)
	assert.Equal(t, a.FinalValue, b.FinalValue)
	assert.Equal(t, 6.0, a.FinalValue)
}

func TestTradeUp_DefaultIDIsUnique(t *testing.T) {
	e := New(DefaultTables(), newSeq(0.5))
	items := openedItems(10, domain.RarityConsumer)

	a, _ := e.TradeUp(items)
	b, _ := e.TradeUp(items)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Contains(t, a.ID, TradeUpIDPrefix)
}
