// Package timing computes per-segment speech scheduling: English speaks
// first, Urdu follows after a fixed teaching gap, and the segment holds for
// the full mix plus any configured pause, floored by min_duration.
package timing

import "math"

// TeachingGap is the fixed silence between the English and Urdu speech
// within one segment, in seconds. A design constant, not configuration.
const TeachingGap = 0.2

// Schedule is one segment's resolved timing, all in seconds.
type Schedule struct {
	ENStart float64
	URStart float64
	Total   float64
}

// Compute derives a segment's schedule from its two speech durations and
// overrides. Invariants: URStart = enDur + TeachingGap;
// Total = max(URStart + urDur + pauseAfter, minDuration); minDuration only
// ever extends. Negative inputs clamp to zero. Deterministic.
func Compute(enDur, urDur, pauseAfter, minDuration float64) Schedule {
	enDur = math.Max(enDur, 0)
	urDur = math.Max(urDur, 0)
	pauseAfter = math.Max(pauseAfter, 0)
	minDuration = math.Max(minDuration, 0)

	if enDur == 0 && urDur == 0 {
		// Empty speech: hold for the requested pause/floor, never zero.
		total := math.Max(pauseAfter, minDuration)
		if total <= 0 {
			total = TeachingGap
		}
		return Schedule{ENStart: 0, URStart: TeachingGap, Total: total}
	}

	urStart := enDur + TeachingGap
	total := urStart + urDur + pauseAfter
	if total < minDuration {
		total = minDuration
	}
	return Schedule{ENStart: 0, URStart: urStart, Total: total}
}
