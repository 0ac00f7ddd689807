package catalog

import "idle_garden/internal/domain"

// DefaultLocationCode is unlocked and selected for every new account.
const DefaultLocationCode = "waste_land"

// DefaultSeedCode is in every new account's collection.
const DefaultSeedCode = "bean_sprout"

// Locations is the full location catalog in unlock order.
var Locations = []domain.Location{
	{
		Code:             "waste_land",
		Name:             "Waste Land",
		Price:            0,
		Order:            1,
		BonusType:        domain.BonusClickSpeed,
		BonusValue:       0,
		BonusMultiplier:  1,
		Icon:             "/locations/waste_land/icon.png",
		Description:      "A dusty patch of dirt. Everyone starts somewhere.",
		LocationImageURL: "/locations/waste_land/map.png",
		PotImageURL:      "/locations/waste_land/pot.png",
	},
	{
		Code:             "green_meadow",
		Name:             "Green Meadow",
		Price:            2000,
		Order:            2,
		BonusType:        domain.BonusClickSpeed,
		BonusValue:       5,
		BonusMultiplier:  1.1,
		Icon:             "/locations/green_meadow/icon.png",
		Description:      "Soft grass and good light. Clicks land a little faster.",
		LocationImageURL: "/locations/green_meadow/map.png",
		PotImageURL:      "/locations/green_meadow/pot.png",
	},
	{
		Code:             "river_bank",
		Name:             "River Bank",
		Price:            8000,
		Order:            3,
		BonusType:        domain.BonusClickChance,
		BonusValue:       10,
		BonusMultiplier:  1.2,
		Icon:             "/locations/river_bank/icon.png",
		Description:      "Fertile soil by the water. Bonus clicks happen more often.",
		LocationImageURL: "/locations/river_bank/map.png",
		PotImageURL:      "/locations/river_bank/pot.png",
	},
	{
		Code:             "crystal_cave",
		Name:             "Crystal Cave",
		Price:            25000,
		Order:            4,
		BonusType:        domain.BonusRareSeedChance,
		BonusValue:       15,
		BonusMultiplier:  1.5,
		Icon:             "/locations/crystal_cave/icon.png",
		Description:      "Glittering walls, strange soil. Rare seeds sprout here.",
		LocationImageURL: "/locations/crystal_cave/map.png",
		PotImageURL:      "/locations/crystal_cave/pot.png",
	},
}
