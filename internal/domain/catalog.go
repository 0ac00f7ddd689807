package domain

import "time"

// UnlockRequirementType gates seed availability.
type UnlockRequirementType string

const (
	UnlockDefault   UnlockRequirementType = "default"
	UnlockGold      UnlockRequirementType = "gold"
	UnlockTreesSold UnlockRequirementType = "trees_sold"
	UnlockEvent     UnlockRequirementType = "event"
)

type UnlockRequirement struct {
	Type  UnlockRequirementType `json:"type"`
	Value int64                 `json:"value"`
}

// Seed is a catalog entry describing a plantable species. Catalog rows are
// immutable at runtime; cmd/syncdata is the only writer.
type Seed struct {
	ID            int64  `json:"id"`
	Code          string `json:"code"`
	Name          string `json:"name"`
	BasePrice     int64  `json:"base_price"`
	BaseSellPrice int64  `json:"base_sell_price"`

	// Base grow duration in seconds.
	BaseGrowTime int64 `json:"base_grow_time"`

	UnlockRequirement UnlockRequirement `json:"unlock_requirement"`

	Icon        string `json:"icon"`
	Description string `json:"description"`

	IsEvent    bool       `json:"is_event"`
	EventStart *time.Time `json:"event_start"`
	EventEnd   *time.Time `json:"event_end"`
}

// LocationBonusType is the passive bonus a location grants.
type LocationBonusType string

const (
	BonusClickSpeed     LocationBonusType = "click_speed"
	BonusClickChance    LocationBonusType = "click_chance"
	BonusRareSeedChance LocationBonusType = "rare_seed_chance"
)

type Location struct {
	ID    int64  `json:"id"`
	Code  string `json:"code"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Order int    `json:"order"`

	BonusType       LocationBonusType `json:"bonus_type"`
	BonusValue      float64           `json:"bonus_value"`
	BonusMultiplier float64           `json:"bonus_multiplier"`

	Icon             string `json:"icon"`
	Description      string `json:"description"`
	LocationImageURL string `json:"location_image_url"`
	PotImageURL      string `json:"pot_image_url"`
}
