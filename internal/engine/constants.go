package engine

import "github.com/osse101/CaseOpener_Go/internal/domain"

// Value roll
const (
	VarianceMin = 0.7
	VarianceMax = 1.3
	MaxKills    = 1000
)

// Trade-up contract
const (
	TradeUpInputCount = 10
	TradeUpMultiplier = 1.5
	TradeUpResultName = "Trade-Up Contract Result"
	TradeUpIDPrefix   = "tradeup_"
	TradeUpResultType = domain.ItemTypeWeapon
)

// Progression
const (
	XPBonusInterval = 10 // cases opened per bonus step
	XPBonusAmount   = 5
	XPPerLevel      = 1000
)

// Market display prices
const (
	MarketFluctuationMin = 0.8
	MarketFluctuationMax = 1.2
)

// Guaranteed-special overrides
const (
	GuaranteedKnifeRate  = 1.0
	GuaranteedCovertRate = 0.0
)

// Built-in defaults, used when no catalog settings are supplied.
const (
	DefaultStatTrakChance     = 0.1
	DefaultStatTrakMultiplier = 2.0
	DefaultXPPerCase          = 10
)

// fallbackCondition is returned when the wear walk finds no match.
const fallbackCondition = domain.WearFieldTested
