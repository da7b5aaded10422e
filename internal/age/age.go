// Package age computes elapsed times for display.
package age

import "time"

// Since returns how long before now then was, clamped at zero.
// The bool is false when then is unset.
func Since(then time.Time, now time.Time) (time.Duration, bool) {
	if then.IsZero() {
		return 0, false
	}
	elapsed := now.Sub(then)
	if elapsed < 0 {
		elapsed = 0
	}
	return elapsed, true
}

// DoneAge returns how long ago a completion timestamp was recorded.
func DoneAge(doneAt *time.Time, now time.Time) (time.Duration, bool) {
	if doneAt == nil {
		return 0, false
	}
	return Since(*doneAt, now)
}
