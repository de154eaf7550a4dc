// Package focus estimates how focused the user is right now from the
// wall clock and the cadence of their recent activity. The score feeds
// recommendation context: low focus favors lightweight tips over new
// lessons.
package focus

import (
	"sort"
	"time"
)

// Bucket is a coarse time-of-day classification.
type Bucket string

const (
	Morning   Bucket = "morning"
	Afternoon Bucket = "afternoon"
	Evening   Bucket = "evening"
)

// BucketFor classifies the local hour of t.
func BucketFor(t time.Time) Bucket {
	switch h := t.Hour(); {
	case h < 12:
		return Morning
	case h < 18:
		return Afternoon
	default:
		return Evening
	}
}

const (
	baseScore       = 50
	morningBoost    = 25
	afternoonBoost  = 15
	offHoursPenalty = 20
	densityWeight   = 15
	rushingPenalty  = 10

	densityWindow  = 5
	rushThreshold  = 30 * time.Second
	rushMinSamples = 3
)

// Estimate maps the current time and recent activity timestamps to a
// focus score in [0,100]. It is a pure function of its inputs.
//
// Base 50, adjusted by time of day (morning peak +25, afternoon +15,
// late night or early morning -20), by activity density over the last
// five events (up to +15), and by a rushing penalty (-10) when three
// or more activities arrive on average under thirty seconds apart.
func Estimate(now time.Time, activity []time.Time) int {
	score := baseScore

	switch h := now.Hour(); {
	case h >= 9 && h <= 11:
		score += morningBoost
	case h >= 14 && h <= 16:
		score += afternoonBoost
	case h >= 20 || h <= 7:
		score -= offHoursPenalty
	}

	recent := lastN(activity, densityWindow)
	score += len(recent) * densityWeight / densityWindow

	if mean, ok := meanInterval(recent); ok && mean < rushThreshold {
		score -= rushingPenalty
	}

	return clamp(score, 0, 100)
}

// lastN returns the n most recent timestamps in chronological order.
func lastN(ts []time.Time, n int) []time.Time {
	sorted := make([]time.Time, len(ts))
	copy(sorted, ts)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })
	if len(sorted) > n {
		sorted = sorted[len(sorted)-n:]
	}
	return sorted
}

// meanInterval reports the mean gap between consecutive timestamps.
// ok is false with fewer than rushMinSamples samples.
func meanInterval(ts []time.Time) (time.Duration, bool) {
	if len(ts) < rushMinSamples {
		return 0, false
	}
	var total time.Duration
	for i := 1; i < len(ts); i++ {
		total += ts[i].Sub(ts[i-1])
	}
	return total / time.Duration(len(ts)-1), true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
