package domain

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// RarityTier classifies item value and scarcity.
// The first five tiers form a linear order used by trade-up contracts;
// RarityKnife sits outside that order and only drops from guaranteed-special cases.
type RarityTier string

const (
	RarityConsumer   RarityTier = "consumer"
	RarityIndustrial RarityTier = "industrial"
	RarityRestricted RarityTier = "restricted"
	RarityClassified RarityTier = "classified"
	RarityCovert     RarityTier = "covert"
	RarityKnife      RarityTier = "knife"
)

// RarityOrder is the linear trade-up order, lowest first.
var RarityOrder = []RarityTier{
	RarityConsumer,
	RarityIndustrial,
	RarityRestricted,
	RarityClassified,
	RarityCovert,
}

// AllRarities lists every tier including knife.
var AllRarities = append(append([]RarityTier{}, RarityOrder...), RarityKnife)

// ParseRarity converts a catalog string into a RarityTier.
func ParseRarity(s string) (RarityTier, error) {
	r := RarityTier(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AllRarities {
		if r == known {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: unknown rarity %q", ErrInvalidInput, s)
}

// Rank returns the index of the tier in RarityOrder, or -1 for knife and unknown tiers.
func (r RarityTier) Rank() int {
	for i, tier := range RarityOrder {
		if tier == r {
			return i
		}
	}
	return -1
}

// Next returns the tier one step above r in the linear order.
// ok is false for covert (top of the order), knife and unknown tiers.
func (r RarityTier) Next() (RarityTier, bool) {
	rank := r.Rank()
	if rank < 0 || rank == len(RarityOrder)-1 {
		return "", false
	}
	return RarityOrder[rank+1], true
}

// DisplayName returns a title-cased name ("Covert").
func (r RarityTier) DisplayName() string {
	return cases.Title(language.English).String(string(r))
}
