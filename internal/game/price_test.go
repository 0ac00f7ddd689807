package game

import (
	"testing"

	"idle_garden/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestSellPrice(t *testing.T) {
	cases := []struct {
		base    int64
		quality domain.TreeQuality
		adMult  int
		want    int64
	}{
		{100, domain.QualityNormal, 1, 100},
		{100, domain.QualityWithered, 1, 50},
		{100, domain.QualityGolden, 1, 200},
		{100, domain.QualityRainbow, 1, 500},
		{550, domain.QualityRainbow, 2, 5500},
		{101, domain.QualityWithered, 1, 50}, // 50.5 floors
		{850, domain.QualityGolden, 2, 3400},
	}

	for _, tc := range cases {
		if got := SellPrice(tc.base, tc.quality, tc.adMult); got != tc.want {
			t.Fatalf("SellPrice(%d, %s, %d) = %d; want %d", tc.base, tc.quality, tc.adMult, got, tc.want)
		}
	}
}

func TestRarestAfterSale(t *testing.T) {
	golden := string(domain.QualityGolden)
	rainbow := string(domain.QualityRainbow)

	cases := []struct {
		name      string
		current   *string
		sold      domain.TreeQuality
		want      string
		wantStore bool
	}{
		{"rainbow over empty", nil, domain.QualityRainbow, rainbow, true},
		{"rainbow over golden", &golden, domain.QualityRainbow, rainbow, true},
		{"rainbow idempotent", &rainbow, domain.QualityRainbow, "", false},
		{"golden fills empty", nil, domain.QualityGolden, golden, true},
		{"golden never downgrades rainbow", &rainbow, domain.QualityGolden, "", false},
		{"golden noop over golden", &golden, domain.QualityGolden, "", false},
		{"normal never recorded", nil, domain.QualityNormal, "", false},
		{"withered never recorded", nil, domain.QualityWithered, "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, store := RarestAfterSale(tc.current, tc.sold)
			assert.Equal(t, tc.wantStore, store)
			assert.Equal(t, tc.want, got)
		})
	}
}
