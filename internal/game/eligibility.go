package game

import (
	"time"

	"idle_garden/internal/domain"
)

// SeedAvailable reports whether a user with the given gold and lifetime
// sales can plant the seed. Unknown requirement types are never satisfied.
func SeedAvailable(seed *domain.Seed, gold, totalTreesSold int64, now time.Time) bool {
	req := seed.UnlockRequirement
	switch req.Type {
	case domain.UnlockDefault:
		return true
	case domain.UnlockGold:
		return gold >= req.Value
	case domain.UnlockTreesSold:
		return totalTreesSold >= req.Value
	case domain.UnlockEvent:
		if !seed.IsEvent || seed.EventStart == nil || seed.EventEnd == nil {
			return false
		}
		return !now.Before(*seed.EventStart) && !now.After(*seed.EventEnd)
	default:
		return false
	}
}

// LocationAvailable reports whether the user can afford the location.
// Location purchases are gated on gold only.
func LocationAvailable(loc *domain.Location, gold int64) bool {
	return gold >= loc.Price
}

// FilterSeeds returns the seeds currently available to the user.
func FilterSeeds(seeds []domain.Seed, gold, totalTreesSold int64, now time.Time) []domain.Seed {
	out := make([]domain.Seed, 0, len(seeds))
	for i := range seeds {
		if SeedAvailable(&seeds[i], gold, totalTreesSold, now) {
			out = append(out, seeds[i])
		}
	}
	return out
}

// FilterLocations returns the locations the user can afford.
func FilterLocations(locations []domain.Location, gold int64) []domain.Location {
	out := make([]domain.Location, 0, len(locations))
	for i := range locations {
		if LocationAvailable(&locations[i], gold) {
			out = append(out, locations[i])
		}
	}
	return out
}

// IsNewDay reports whether two instants fall on different calendar days in
// server-local time. Used for the daily ad counter reset.
func IsNewDay(last, now time.Time) bool {
	y1, m1, d1 := last.Date()
	y2, m2, d2 := now.Date()
	return y1 != y2 || m1 != m2 || d1 != d2
}
