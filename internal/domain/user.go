package domain

import "time"

// AdBoosts is the per-user ad reward state embedded in the users table.
// SellMultiplier is a one-shot boost: it is consumed by the next sale and
// falls back to 1.
type AdBoosts struct {
	TimeReductionAvailable int        `json:"time_reduction_available"`
	SellMultiplier         int        `json:"sell_multiplier"`
	LastAdWatchedAt        *time.Time `json:"last_ad_watched_at"`
	DailyAdsWatched        int        `json:"daily_ads_watched"`
	TotalAdWatchCount      int        `json:"total_ad_watch_count"`
}

type User struct {
	ID       int64  `json:"id"`
	GoogleID string `json:"google_id"`
	Email    string `json:"email"`
	Name     string `json:"name"`

	// Game progress
	Gold           int64 `json:"gold"`
	TotalEarnings  int64 `json:"total_earnings"`
	TotalTreesSold int64 `json:"total_trees_sold"`
	TotalClicks    int64 `json:"total_clicks"`

	// Location & slots
	CurrentLocationID *int64  `json:"current_location_id"`
	UnlockedLocations []int64 `json:"unlocked_locations"`
	PremiumSlots      int     `json:"premium_slots"`

	// Collection
	UnlockedSeeds      []int64 `json:"unlocked_seeds"`
	CollectionProgress int     `json:"collection_progress"`

	// Premium features
	HasFairy             bool `json:"has_fairy"`
	HasNoAds             bool `json:"has_no_ads"`
	ClickPowerUpgrade    bool `json:"click_power_upgrade"`
	TimeReductionUpgrade bool `json:"time_reduction_upgrade"`

	AdBoosts AdBoosts `json:"ad_boosts"`

	// Stats
	LongestCombo   int64   `json:"longest_combo"`
	RarestTreeSold *string `json:"rarest_tree_sold"`

	LastLogin time.Time `json:"last_login"`
	CreatedAt time.Time `json:"created_at"`
}

// TotalSlots is the user's planting capacity: one default slot plus premium.
func (u *User) TotalSlots() int {
	return 1 + u.PremiumSlots
}
