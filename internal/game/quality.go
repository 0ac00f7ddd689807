// Package game holds the pure economy rules of the garden: quality rolls,
// grow durations, click time reduction, sell pricing and catalog
// eligibility. No I/O happens here; services feed it state and persist the
// results.
package game

import (
	"fmt"
	"math/rand"

	"idle_garden/internal/domain"
)

// Quality distribution thresholds over a uniform draw in [0,100):
// <1 rainbow, [1,11) golden, [11,16) withered, rest normal.
const (
	rainbowUpper  = 1.0
	goldenUpper   = 11.0
	witheredUpper = 16.0
)

// QualityForRoll maps a uniform draw in [0,100) to a rarity tier.
func QualityForRoll(roll float64) domain.TreeQuality {
	switch {
	case roll < rainbowUpper:
		return domain.QualityRainbow
	case roll < goldenUpper:
		return domain.QualityGolden
	case roll < witheredUpper:
		return domain.QualityWithered
	default:
		return domain.QualityNormal
	}
}

// RollQuality draws a random rarity tier for a freshly planted tree.
func RollQuality(rng *rand.Rand) domain.TreeQuality {
	if rng == nil {
		return QualityForRoll(rand.Float64() * 100)
	}
	return QualityForRoll(rng.Float64() * 100)
}

// QualityMultiplier returns the sell price multiplier for a rarity tier.
// The mapping is closed; an unknown tier is a broken invariant, not user
// input, so it panics.
func QualityMultiplier(q domain.TreeQuality) float64 {
	switch q {
	case domain.QualityWithered:
		return 0.5
	case domain.QualityNormal:
		return 1
	case domain.QualityGolden:
		return 2
	case domain.QualityRainbow:
		return 5
	}
	panic(fmt.Sprintf("game: unknown tree quality %q", q))
}

// QualityRank orders tiers from most common to rarest, for the
// rarest-tree-sold stat.
func QualityRank(q domain.TreeQuality) int {
	switch q {
	case domain.QualityWithered:
		return 0
	case domain.QualityNormal:
		return 1
	case domain.QualityGolden:
		return 2
	case domain.QualityRainbow:
		return 3
	}
	panic(fmt.Sprintf("game: unknown tree quality %q", q))
}
