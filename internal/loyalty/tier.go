// Package loyalty holds the reward tiers and how points map onto them.
package loyalty

import (
	"errors"
	"strings"
)

type Tier string

const (
	TierBronze   Tier = "bronze"
	TierSilver   Tier = "silver"
	TierGold     Tier = "gold"
	TierPlatinum Tier = "platinum"
)

// Points needed to reach each tier above bronze.
const (
	SilverThreshold   = 100
	GoldThreshold     = 250
	PlatinumThreshold = 500
)

var ErrUnknownTier = errors.New("unknown reward tier")

// Tiers lists every tier from lowest to highest.
func Tiers() []Tier {
	return []Tier{TierBronze, TierSilver, TierGold, TierPlatinum}
}

func ParseTier(s string) (Tier, error) {
	t := Tier(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Tiers() {
		if t == known {
			return t, nil
		}
	}
	return "", ErrUnknownTier
}

// ForPoints returns the tier a balance of points qualifies for.
func ForPoints(points int) Tier {
	switch {
	case points >= PlatinumThreshold:
		return TierPlatinum
	case points >= GoldThreshold:
		return TierGold
	case points >= SilverThreshold:
		return TierSilver
	default:
		return TierBronze
	}
}

func (t Tier) String() string {
	return string(t)
}
