// Package streak computes the consecutive-day usage counter.
package streak

import "time"

// Next returns the streak after an activity at now, given the stored streak
// and the time of the previous activity. Days are compared as calendar dates
// in loc; the caller stores now (full precision) as the new last activity.
func Next(current int, last *time.Time, now time.Time, loc *time.Location) int {
	if last == nil {
		return 1
	}
	if loc == nil {
		loc = time.UTC
	}
	switch DaysBetween(*last, now, loc) {
	case 0:
		if current <= 0 {
			return 1
		}
		return current
	case 1:
		return current + 1
	default:
		return 1
	}
}

// DaysBetween is the number of calendar days from a to b in loc.
// It is negative when b falls on an earlier day than a.
func DaysBetween(a, b time.Time, loc *time.Location) int {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	// Midnight UTC of each date keeps DST transitions out of the subtraction.
	da := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	db := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da).Hours() / 24)
}

// Current is the streak as it stands at now without recording activity:
// a streak whose last day is older than yesterday has lapsed to 0.
func Current(stored int, last *time.Time, now time.Time, loc *time.Location) int {
	if last == nil {
		return 0
	}
	if loc == nil {
		loc = time.UTC
	}
	if d := DaysBetween(*last, now, loc); d < 0 || d > 1 {
		return 0
	}
	return stored
}
