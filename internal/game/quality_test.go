package game

import (
	"math/rand"
	"testing"

	"idle_garden/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestQualityForRoll(t *testing.T) {
	cases := []struct {
		roll float64
		want domain.TreeQuality
	}{
		{0, domain.QualityRainbow},
		{0.99, domain.QualityRainbow},
		{1.0, domain.QualityGolden},
		{10.99, domain.QualityGolden},
		{11.0, domain.QualityWithered},
		{15.99, domain.QualityWithered},
		{16.0, domain.QualityNormal},
		{50, domain.QualityNormal},
		{99.99, domain.QualityNormal},
	}

	for _, tc := range cases {
		if got := QualityForRoll(tc.roll); got != tc.want {
			t.Fatalf("QualityForRoll(%v) = %s; want %s", tc.roll, got, tc.want)
		}
	}
}

func TestRollQualityDistribution(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const n = 100000

	counts := map[domain.TreeQuality]int{}
	for i := 0; i < n; i++ {
		counts[RollQuality(rng)]++
	}

	frac := func(q domain.TreeQuality) float64 { return float64(counts[q]) / n }

	assert.InDelta(t, 0.01, frac(domain.QualityRainbow), 0.005)
	assert.InDelta(t, 0.10, frac(domain.QualityGolden), 0.01)
	assert.InDelta(t, 0.05, frac(domain.QualityWithered), 0.01)
	assert.InDelta(t, 0.84, frac(domain.QualityNormal), 0.01)
}

func TestQualityMultiplier(t *testing.T) {
	cases := []struct {
		quality domain.TreeQuality
		want    float64
	}{
		{domain.QualityWithered, 0.5},
		{domain.QualityNormal, 1},
		{domain.QualityGolden, 2},
		{domain.QualityRainbow, 5},
	}

	for _, tc := range cases {
		if got := QualityMultiplier(tc.quality); got != tc.want {
			t.Fatalf("QualityMultiplier(%s) = %v; want %v", tc.quality, got, tc.want)
		}
	}
}

func TestQualityMultiplierPanicsOnUnknown(t *testing.T) {
	assert.Panics(t, func() { QualityMultiplier(domain.TreeQuality("legendary")) })
}

func TestQualityRankOrdering(t *testing.T) {
	assert.Less(t, QualityRank(domain.QualityWithered), QualityRank(domain.QualityNormal))
	assert.Less(t, QualityRank(domain.QualityNormal), QualityRank(domain.QualityGolden))
	assert.Less(t, QualityRank(domain.QualityGolden), QualityRank(domain.QualityRainbow))
}
