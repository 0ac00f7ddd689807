// Package catalog holds the static reference data for seeds and locations.
// The database copies are synced from these tables by cmd/syncdata; the API
// itself never writes them.
package catalog

import "idle_garden/internal/domain"

// Seeds is the full seed catalog, cheapest first.
var Seeds = []domain.Seed{
	{
		Code:          "bean_sprout",
		Name:          "Bean Sprout",
		BasePrice:     0,
		BaseSellPrice: 100,
		BaseGrowTime:  300, // 5 minutes
		UnlockRequirement: domain.UnlockRequirement{
			Type:  domain.UnlockDefault,
			Value: 0,
		},
		Icon:        "/seeds/bean_sprout/bean_sprout_04.png",
		Description: "A simple starter plant. Free to plant!",
	},
	{
		Code:          "radish",
		Name:          "Radish",
		BasePrice:     300,
		BaseSellPrice: 550,
		BaseGrowTime:  480, // 8 minutes
		UnlockRequirement: domain.UnlockRequirement{
			Type:  domain.UnlockGold,
			Value: 300,
		},
		Icon:        "/seeds/radish/radish_04.png",
		Description: "Quick-growing root vegetable.",
	},
	{
		Code:          "lettuce",
		Name:          "Lettuce",
		BasePrice:     500,
		BaseSellPrice: 850,
		BaseGrowTime:  600, // 10 minutes
		UnlockRequirement: domain.UnlockRequirement{
			Type:  domain.UnlockGold,
			Value: 500,
		},
		Icon:        "/seeds/lettuce/lettuce_04.png",
		Description: "Fresh lettuce that grows quickly.",
	},
	{
		Code:          "spinach",
		Name:          "Spinach",
		BasePrice:     800,
		BaseSellPrice: 1400,
		BaseGrowTime:  900, // 15 minutes
		UnlockRequirement: domain.UnlockRequirement{
			Type:  domain.UnlockGold,
			Value: 800,
		},
		Icon:        "/seeds/spinach/spinach_04.png",
		Description: "Healthy leafy greens.",
	},
	{
		Code:          "carrot",
		Name:          "Carrot",
		BasePrice:     1500,
		BaseSellPrice: 2700,
		BaseGrowTime:  1200, // 20 minutes
		UnlockRequirement: domain.UnlockRequirement{
			Type:  domain.UnlockGold,
			Value: 1500,
		},
		Icon:        "/seeds/carrot/carrot_04.png",
		Description: "Crunchy orange root vegetable.",
	},
}
