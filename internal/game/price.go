package game

import (
	"math"

	"idle_garden/internal/domain"
)

// Ad boost constants. Boosts are flat grants, never additive.
const (
	MaxDailyAds            = 2
	AdTimeReductionSeconds = 30
	AdSellMultiplier       = 2
)

// SellPrice computes the payout for a sold tree:
// floor(baseSellPrice * qualityMultiplier * adMultiplier).
func SellPrice(baseSellPrice int64, quality domain.TreeQuality, adMultiplier int) int64 {
	return int64(math.Floor(float64(baseSellPrice) * QualityMultiplier(quality) * float64(adMultiplier)))
}

// RarestAfterSale applies the rarest-tree-sold ratchet: rainbow always
// records itself, golden only fills an empty slot, everything else leaves
// the stat untouched. Returns the value to store and whether to store it.
func RarestAfterSale(current *string, sold domain.TreeQuality) (string, bool) {
	switch sold {
	case domain.QualityRainbow:
		if current == nil || *current != string(domain.QualityRainbow) {
			return string(domain.QualityRainbow), true
		}
	case domain.QualityGolden:
		if current == nil {
			return string(domain.QualityGolden), true
		}
	}
	return "", false
}
