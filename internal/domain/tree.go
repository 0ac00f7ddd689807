package domain

import "time"

// TreeQuality is the rarity tier rolled when a tree is planted.
type TreeQuality string

const (
	QualityWithered TreeQuality = "withered"
	QualityNormal   TreeQuality = "normal"
	QualityGolden   TreeQuality = "golden"
	QualityRainbow  TreeQuality = "rainbow"
)

// Valid reports whether q is one of the known tiers.
func (q TreeQuality) Valid() bool {
	switch q {
	case QualityWithered, QualityNormal, QualityGolden, QualityRainbow:
		return true
	}
	return false
}

type PlantedTree struct {
	ID        int64       `json:"id"`
	UserID    int64       `json:"user_id"`
	SlotIndex int         `json:"slot_index"`
	SeedID    int64       `json:"seed_id"`
	Quality   TreeQuality `json:"quality"`
	StartTime time.Time   `json:"start_time"`
	EndTime   time.Time   `json:"end_time"`

	// Seconds already subtracted from the grow time by clicks.
	TimeReduced int64 `json:"time_reduced"`

	CreatedAt time.Time `json:"created_at"`
}

// TimeLeft returns the whole seconds remaining until the tree is ready.
// Growth is never ticked server-side; it is derived from the stored
// timestamps at read time.
func (t *PlantedTree) TimeLeft(now time.Time) int64 {
	left := int64(t.EndTime.Sub(now).Seconds())
	if left < 0 {
		return 0
	}
	return left
}

// Ready reports whether the tree can be sold: now has reached endTime.
// TimeLeft floors to whole seconds for display, so it reads 0 during the
// last fractional second while the tree is still growing.
func (t *PlantedTree) Ready(now time.Time) bool {
	return !now.Before(t.EndTime)
}
