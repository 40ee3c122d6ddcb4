package streak

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ptr(t time.Time) *time.Time { return &t }

func TestNext(t *testing.T) {
	base := time.Date(2024, 3, 10, 22, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		current int
		last    *time.Time
		now     time.Time
		want    int
	}{
		{name: "first activity", current: 0, last: nil, now: base, want: 1},
		{name: "same day keeps streak", current: 4, last: ptr(base), now: base.Add(time.Hour), want: 4},
		{name: "same day from zero", current: 0, last: ptr(base), now: base.Add(time.Minute), want: 1},
		{name: "next day increments", current: 4, last: ptr(base), now: base.Add(2 * time.Hour), want: 5},
		{name: "next day late evening", current: 1, last: ptr(base.Add(-22 * time.Hour)), now: base, want: 2},
		{name: "gap of three days resets", current: 9, last: ptr(base), now: base.AddDate(0, 0, 3), want: 1},
		{name: "gap of two days resets", current: 9, last: ptr(base), now: base.AddDate(0, 0, 2), want: 1},
		{name: "clock skew resets", current: 3, last: ptr(base), now: base.AddDate(0, 0, -2), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Next(tt.current, tt.last, tt.now, time.UTC))
		})
	}
}

func TestNext_UsesLocation(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Skip("tzdata not available")
	}
	// 14:00 UTC and 16:00 UTC share a UTC date but straddle midnight in Tokyo.
	last := time.Date(2024, 3, 10, 14, 0, 0, 0, time.UTC)
	now := time.Date(2024, 3, 10, 16, 0, 0, 0, time.UTC)

	assert.Equal(t, 2, Next(2, &last, now, time.UTC))
	assert.Equal(t, 3, Next(2, &last, now, tokyo))
}

func TestDaysBetween_AcrossDST(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata not available")
	}
	before := time.Date(2024, 3, 9, 23, 0, 0, 0, ny)
	after := time.Date(2024, 3, 10, 23, 30, 0, 0, ny)

	assert.Equal(t, 1, DaysBetween(before, after, ny))
}

func TestNext_NilLocationDefaultsToUTC(t *testing.T) {
	last := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 2, Next(1, &last, last.AddDate(0, 0, 1), nil))
}

func TestCurrent(t *testing.T) {
	last := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, Current(3, nil, last, time.UTC))
	assert.Equal(t, 3, Current(3, &last, last.Add(2*time.Hour), time.UTC))
	assert.Equal(t, 3, Current(3, &last, last.AddDate(0, 0, 1), time.UTC))
	assert.Equal(t, 0, Current(3, &last, last.AddDate(0, 0, 2), time.UTC))
}
