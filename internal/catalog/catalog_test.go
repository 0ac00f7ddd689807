package catalog

import (
	"testing"

	"idle_garden/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedCodesUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range Seeds {
		require.NotEmpty(t, s.Code)
		assert.False(t, seen[s.Code], "duplicate seed code %q", s.Code)
		seen[s.Code] = true
	}
}

func TestLocationCodesUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, l := range Locations {
		require.NotEmpty(t, l.Code)
		assert.False(t, seen[l.Code], "duplicate location code %q", l.Code)
		seen[l.Code] = true
	}
}

func TestDefaultsExistInCatalog(t *testing.T) {
	var foundSeed, foundLoc bool
	for _, s := range Seeds {
		if s.Code == DefaultSeedCode {
			foundSeed = true
			assert.Equal(t, domain.UnlockDefault, s.UnlockRequirement.Type)
			assert.Zero(t, s.BasePrice, "starter seed must be free")
		}
	}
	for _, l := range Locations {
		if l.Code == DefaultLocationCode {
			foundLoc = true
			assert.Zero(t, l.Price, "starter location must be free")
		}
	}
	require.True(t, foundSeed, "default seed %q missing", DefaultSeedCode)
	require.True(t, foundLoc, "default location %q missing", DefaultLocationCode)
}

func TestSeedEconomyIsProfitable(t *testing.T) {
	for _, s := range Seeds {
		assert.Greater(t, s.BaseSellPrice, s.BasePrice, "seed %q must sell above cost", s.Code)
		assert.Positive(t, s.BaseGrowTime, "seed %q needs a grow time", s.Code)
	}
}

func TestLocationsOrdered(t *testing.T) {
	for i := 1; i < len(Locations); i++ {
		assert.Greater(t, Locations[i].Price, Locations[i-1].Price,
			"location prices should increase with order")
	}
}
