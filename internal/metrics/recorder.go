package metrics

import (
	"github.com/osse101/CaseOpener_Go/internal/domain"
)

// Spend sources for MoneySpent.
const (
	SpendSourceCase   = "case"
	SpendSourceMarket = "market"
)

// Recorder receives business events from the game service.
type Recorder interface {
	CaseOpened(c domain.Case, item domain.OpenedItem)
	TradeUp(result domain.OpenedItem)
	ItemsSold(items []domain.InventoryItem, earned float64)
	ItemBought(item domain.InventoryItem, price float64)
	CooldownRejected(caseID string)
}

// PrometheusRecorder records business events into the package collectors.
type PrometheusRecorder struct{}

// NewPrometheusRecorder returns a Recorder backed by the default registry.
func NewPrometheusRecorder() *PrometheusRecorder {
	return &PrometheusRecorder{}
}

func (PrometheusRecorder) CaseOpened(c domain.Case, item domain.OpenedItem) {
	CasesOpened.WithLabelValues(c.ID).Inc()
	ItemsDropped.WithLabelValues(string(item.Rarity)).Inc()
	if item.StatTrak {
		StatTrakDropped.Inc()
	}
	if c.Price > 0 {
		MoneySpent.WithLabelValues(SpendSourceCase).Add(c.Price)
	}
}

func (PrometheusRecorder) TradeUp(result domain.OpenedItem) {
	TradeUps.WithLabelValues(string(result.Rarity)).Inc()
}

func (PrometheusRecorder) ItemsSold(items []domain.InventoryItem, earned float64) {
	for _, item := range items {
		ItemsSold.WithLabelValues(string(item.Rarity)).Inc()
	}
	if earned > 0 {
		MoneyEarned.Add(earned)
	}
}

func (PrometheusRecorder) ItemBought(item domain.InventoryItem, price float64) {
	ItemsBought.WithLabelValues(string(item.Rarity)).Inc()
	if price > 0 {
		MoneySpent.WithLabelValues(SpendSourceMarket).Add(price)
	}
}

func (PrometheusRecorder) CooldownRejected(caseID string) {
	CooldownHits.WithLabelValues(caseID).Inc()
}

// NopRecorder discards every event.
type NopRecorder struct{}

func (NopRecorder) CaseOpened(domain.Case, domain.OpenedItem) {}

func (NopRecorder) TradeUp(domain.OpenedItem) {}

func (NopRecorder) ItemsSold([]domain.InventoryItem, float64) {}

func (NopRecorder) ItemBought(domain.InventoryItem, float64) {}

func (NopRecorder) CooldownRejected(string) {}
