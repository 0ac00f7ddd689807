package game

import "time"

// Click batching limits, shared with request validation.
const (
	MinClicks        = 1
	MaxClicks        = 1000
	MinTimeReduction = 1
	MaxTimeReduction = 10000

	// Anti-abuse ceiling: a batch may claim at most this many seconds of
	// reduction per click. Violations are rejected, never truncated.
	MaxSecondsPerClick = 10
)

// GrowDuration computes the effective grow time for a seed. The time
// reduction upgrade shaves 10%, rounded down to whole seconds.
func GrowDuration(baseGrowSeconds int64, timeReductionUpgrade bool) time.Duration {
	seconds := baseGrowSeconds
	if timeReductionUpgrade {
		seconds = int64(float64(baseGrowSeconds) * 0.9)
	}
	return time.Duration(seconds) * time.Second
}

// ReductionAllowed reports whether the claimed reduction respects the
// per-click ceiling.
func ReductionAllowed(clicks int, timeReduction int64) bool {
	return timeReduction <= int64(clicks)*MaxSecondsPerClick
}

// ClampReduction limits the requested reduction to the time actually left,
// so a tree's remaining time can never go negative.
func ClampReduction(timeReduction, timeLeft int64) int64 {
	if timeReduction > timeLeft {
		return timeLeft
	}
	return timeReduction
}
