package game

import (
	"testing"
	"time"

	"idle_garden/internal/domain"

	"github.com/stretchr/testify/assert"
)

func seedWith(req domain.UnlockRequirement) *domain.Seed {
	return &domain.Seed{Code: "test", UnlockRequirement: req}
}

func TestSeedAvailable(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name           string
		seed           *domain.Seed
		gold           int64
		totalTreesSold int64
		want           bool
	}{
		{"default always", seedWith(domain.UnlockRequirement{Type: domain.UnlockDefault}), 0, 0, true},
		{"gold met", seedWith(domain.UnlockRequirement{Type: domain.UnlockGold, Value: 300}), 300, 0, true},
		{"gold short", seedWith(domain.UnlockRequirement{Type: domain.UnlockGold, Value: 300}), 299, 0, false},
		{"trees sold met", seedWith(domain.UnlockRequirement{Type: domain.UnlockTreesSold, Value: 10}), 0, 10, true},
		{"trees sold short", seedWith(domain.UnlockRequirement{Type: domain.UnlockTreesSold, Value: 10}), 0, 9, false},
		{"unknown type never", seedWith(domain.UnlockRequirement{Type: "achievement", Value: 1}), 9999, 9999, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SeedAvailable(tc.seed, tc.gold, tc.totalTreesSold, now)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSeedAvailableEventWindow(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	seed := &domain.Seed{
		Code:              "event_seed",
		IsEvent:           true,
		EventStart:        &start,
		EventEnd:          &end,
		UnlockRequirement: domain.UnlockRequirement{Type: domain.UnlockEvent},
	}

	assert.True(t, SeedAvailable(seed, 0, 0, start), "window start is inclusive")
	assert.True(t, SeedAvailable(seed, 0, 0, end), "window end is inclusive")
	assert.True(t, SeedAvailable(seed, 0, 0, start.AddDate(0, 0, 14)))
	assert.False(t, SeedAvailable(seed, 0, 0, start.Add(-time.Second)))
	assert.False(t, SeedAvailable(seed, 0, 0, end.Add(time.Second)))

	// event requirement on a non-event seed is never satisfied
	plain := seedWith(domain.UnlockRequirement{Type: domain.UnlockEvent})
	assert.False(t, SeedAvailable(plain, 0, 0, start))

	// missing window bounds fail closed
	noEnd := &domain.Seed{IsEvent: true, EventStart: &start, UnlockRequirement: domain.UnlockRequirement{Type: domain.UnlockEvent}}
	assert.False(t, SeedAvailable(noEnd, 0, 0, start))
}

func TestFilterSeeds(t *testing.T) {
	now := time.Now()
	seeds := []domain.Seed{
		{Code: "free", UnlockRequirement: domain.UnlockRequirement{Type: domain.UnlockDefault}},
		{Code: "cheap", UnlockRequirement: domain.UnlockRequirement{Type: domain.UnlockGold, Value: 100}},
		{Code: "pricey", UnlockRequirement: domain.UnlockRequirement{Type: domain.UnlockGold, Value: 1000}},
	}

	got := FilterSeeds(seeds, 100, 0, now)
	codes := make([]string, len(got))
	for i, s := range got {
		codes[i] = s.Code
	}
	assert.Equal(t, []string{"free", "cheap"}, codes)
}

func TestFilterLocations(t *testing.T) {
	locations := []domain.Location{
		{Code: "waste_land", Price: 0},
		{Code: "green_meadow", Price: 2000},
		{Code: "river_bank", Price: 8000},
	}

	got := FilterLocations(locations, 2000)
	assert.Len(t, got, 2)
	assert.Equal(t, "green_meadow", got[1].Code)
}

func TestIsNewDay(t *testing.T) {
	base := time.Date(2025, 6, 15, 23, 59, 0, 0, time.Local)

	cases := []struct {
		name      string
		last, now time.Time
		want      bool
	}{
		{"same day", base, base.Add(58 * time.Second), false},
		{"midnight crossing", base, base.Add(2 * time.Minute), true},
		{"same instant", base, base, false},
		{"month boundary", time.Date(2025, 6, 30, 12, 0, 0, 0, time.Local), time.Date(2025, 7, 1, 12, 0, 0, 0, time.Local), true},
		{"year boundary", time.Date(2024, 12, 31, 12, 0, 0, 0, time.Local), time.Date(2025, 1, 1, 12, 0, 0, 0, time.Local), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsNewDay(tc.last, tc.now))
		})
	}
}
