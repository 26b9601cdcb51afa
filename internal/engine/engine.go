// Package engine rolls case openings and resolves trade-up contracts.
// Every operation is a pure function of the catalog tables, its inputs
// and the injected random source.
package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/CaseOpener_Go/internal/domain"
	"github.com/osse101/CaseOpener_Go/internal/utils"
)

// Source draws uniformly from [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func() float64

// Float64 calls f.
func (f SourceFunc) Float64() float64 { return f() }

// Engine is safe for concurrent use when its Source is.
type Engine struct {
	tables Tables
	src    Source
	now    func() time.Time
	newID  func() string
}

// Option customizes an Engine.
type Option func(*Engine)

// WithClock overrides the acquisition timestamp source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithIDGenerator overrides the id generator used for trade-up results.
func WithIDGenerator(newID func() string) Option {
	return func(e *Engine) { e.newID = newID }
}

// New creates an engine. A nil src uses the process-wide generator.
func New(tables Tables, src Source, opts ...Option) *Engine {
	if src == nil {
		src = SourceFunc(utils.RandomFloat)
	}
	e := &Engine{
		tables: tables,
		src:    src,
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Tables returns the tables the engine rolls against.
func (e *Engine) Tables() Tables {
	return e.tables
}

// OpenCase rolls one item out of c. The draws happen in a fixed order:
// item, wear, StatTrak, market variance, kills.
func (e *Engine) OpenCase(c domain.Case) (domain.OpenedItem, error) {
	if len(c.Items) == 0 {
		return domain.OpenedItem{}, fmt.Errorf("%w: %s", domain.ErrEmptyCase, c.ID)
	}

	item := e.selectItem(c)
	condition := e.selectCondition()
	statTrak := e.rollStatTrak(item)
	value := e.rollValue(item.BaseValue, condition, statTrak)

	kills := 0
	if statTrak {
		kills = int(e.src.Float64() * MaxKills)
	}

	return domain.OpenedItem{
		CaseItem:   item,
		Condition:  condition,
		StatTrak:   statTrak,
		Kills:      kills,
		FinalValue: value,
		AcquiredAt: e.now(),
	}, nil
}

// SelectionProbabilities returns the normalized chance of each item in c,
// in catalog order. All zeros when no item carries weight.
func (e *Engine) SelectionProbabilities(c domain.Case) []float64 {
	weights, total := e.weights(c)
	probs := make([]float64, len(weights))
	if total <= 0 {
		return probs
	}
	for i, w := range weights {
		probs[i] = w / total
	}
	return probs
}

// weights assigns each item the full rate of its tier. Items sharing a tier
// do not split the rate, so a case with more items of a tier is biased
// toward that tier. Kept for compatibility with existing drop odds.
func (e *Engine) weights(c domain.Case) ([]float64, float64) {
	rates := e.tables.ratesFor(c)
	weights := make([]float64, len(c.Items))
	var total float64
	for i, item := range c.Items {
		weights[i] = rates[item.Rarity]
		total += weights[i]
	}
	return weights, total
}

func (e *Engine) selectItem(c domain.Case) domain.CaseItem {
	u := e.src.Float64()
	weights, total := e.weights(c)
	if total <= 0 {
		return c.Items[0]
	}

	var cumulative float64
	for i, w := range weights {
		cumulative += w / total
		if u <= cumulative {
			return c.Items[i]
		}
	}
	return c.Items[0]
}

func (e *Engine) selectCondition() domain.WearCondition {
	u := e.src.Float64()
	var cumulative float64
	for _, c := range e.tables.Wear {
		cumulative += c.Probability
		if u <= cumulative {
			return c
		}
	}
	if c, ok := e.tables.Condition(fallbackCondition); ok {
		return c
	}
	return domain.WearCondition{
		Name:        fallbackCondition,
		DisplayName: fallbackCondition.DefaultDisplayName(),
		Multiplier:  1,
	}
}

func (e *Engine) rollStatTrak(item domain.CaseItem) bool {
	chance := e.tables.StatTrakChance
	if item.StatTrakChance != nil {
		chance = *item.StatTrakChance
	}
	return e.src.Float64() < chance
}

func (e *Engine) rollValue(base float64, condition domain.WearCondition, statTrak bool) float64 {
	multiplier := 1.0
	if statTrak {
		multiplier = e.tables.StatTrakMultiplier
	}
	variance := utils.Uniform(e.src.Float64(), VarianceMin, VarianceMax)
	value := utils.Round2(base * condition.Multiplier * multiplier * variance)
	if value < 0 {
		return 0
	}
	return value
}
