package shift

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:00", 540, false},
		{"23:59", 1439, false},
		{"17:30", 1050, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"-1:00", 0, true},
		{"0900", 0, true},
		{"", 0, true},
		{"ab:cd", 0, true},
	}
	for _, c := range cases {
		got, err := ParseClock(c.input)
		if c.wantErr {
			assert.Error(t, err, "ParseClock(%q)", c.input)
			continue
		}
		require.NoError(t, err, "ParseClock(%q)", c.input)
		assert.Equal(t, c.want, got, "ParseClock(%q)", c.input)
	}
}

func TestIntervalOverlaps(t *testing.T) {
	monday := date(2024, time.February, 5)
	tuesday := date(2024, time.February, 6)

	cases := []struct {
		name string
		a, b Interval
		want bool
	}{
		{
			name: "partial overlap",
			a:    Interval{Date: monday, Start: 540, End: 1020},  // 09:00-17:00
			b:    Interval{Date: monday, Start: 960, End: 1200},  // 16:00-20:00
			want: true,
		},
		{
			name: "containment",
			a:    Interval{Date: monday, Start: 540, End: 1020},
			b:    Interval{Date: monday, Start: 600, End: 720},
			want: true,
		},
		{
			name: "back to back does not overlap",
			a:    Interval{Date: monday, Start: 540, End: 1020},  // 09:00-17:00
			b:    Interval{Date: monday, Start: 1020, End: 1200}, // 17:00-20:00
			want: false,
		},
		{
			name: "disjoint",
			a:    Interval{Date: monday, Start: 540, End: 720},
			b:    Interval{Date: monday, Start: 780, End: 900},
			want: false,
		},
		{
			name: "different dates never overlap",
			a:    Interval{Date: monday, Start: 540, End: 1020},
			b:    Interval{Date: tuesday, Start: 540, End: 1020},
			want: false,
		},
		{
			name: "overnight span vs evening shift same date",
			a:    Interval{Date: monday, Start: 1320, End: 1800}, // 22:00-06:00(+1)
			b:    Interval{Date: monday, Start: 1380, End: 1439}, // 23:00-23:59
			want: true,
		},
		{
			name: "overnight span vs next morning is not compared",
			a:    Interval{Date: monday, Start: 1320, End: 1800},  // 22:00-06:00(+1)
			b:    Interval{Date: tuesday, Start: 240, End: 480},   // next day 04:00-08:00
			want: false,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.a.Overlaps(c.b))
			// Overlap must be symmetric.
			assert.Equal(t, c.want, c.b.Overlaps(c.a))
		})
	}
}

func TestIntervalOverlapsReflexive(t *testing.T) {
	iv := Interval{Date: date(2024, time.February, 5), Start: 540, End: 1020}
	assert.True(t, iv.Overlaps(iv))
}

func TestIsOvernight(t *testing.T) {
	cases := []struct {
		start, end string
		want       bool
	}{
		{"09:00", "17:00", false},
		{"22:00", "06:00", true},
		{"23:00", "23:00", true}, // equal clocks wrap a full day
		{"00:00", "23:59", false},
		{"bad", "17:00", false},
		{"09:00", "bad", false},
	}
	for _, c := range cases {
		s := Shift{StartTime: c.start, EndTime: c.end}
		assert.Equal(t, c.want, s.IsOvernight(), "%s-%s", c.start, c.end)
	}
}

func TestIsOvernightTracksEdits(t *testing.T) {
	s := Shift{StartTime: "22:00", EndTime: "06:00"}
	require.True(t, s.IsOvernight())

	// Editing the end past the start must flip the classification with no
	// stale flag left behind.
	s.EndTime = "23:30"
	assert.False(t, s.IsOvernight())
}

func TestDurationHours(t *testing.T) {
	cases := []struct {
		start, end string
		want       float64
	}{
		{"09:00", "17:00", 8},
		{"22:00", "06:00", 8},
		{"00:00", "12:00", 12},
		{"10:00", "10:30", 0.5},
		{"12:00", "12:00", 24},
	}
	for _, c := range cases {
		s := Shift{Date: date(2024, time.February, 5), StartTime: c.start, EndTime: c.end}
		got, err := s.DurationHours()
		require.NoError(t, err, "%s-%s", c.start, c.end)
		assert.InDelta(t, c.want, got, 1e-9, "%s-%s", c.start, c.end)
	}

	bad := Shift{StartTime: "nope", EndTime: "17:00"}
	_, err := bad.DurationHours()
	assert.Error(t, err)
}

func TestShiftInterval(t *testing.T) {
	s := Shift{Date: date(2024, time.February, 5), StartTime: "22:00", EndTime: "06:00"}
	iv, err := s.Interval()
	require.NoError(t, err)
	assert.Equal(t, 1320, iv.Start)
	assert.Equal(t, 1800, iv.End)
	assert.Greater(t, iv.End, iv.Start)
}

func TestSameDate(t *testing.T) {
	a := time.Date(2024, time.February, 5, 8, 0, 0, 0, time.UTC)
	b := time.Date(2024, time.February, 5, 23, 59, 0, 0, time.UTC)
	c := time.Date(2024, time.February, 6, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDate(a, b))
	assert.False(t, SameDate(a, c))
}

func TestIsWeekend(t *testing.T) {
	saturday := Shift{Date: date(2024, time.February, 10)}
	monday := Shift{Date: date(2024, time.February, 5)}

	assert.True(t, saturday.IsWeekend())
	assert.False(t, monday.IsWeekend())
}

func TestStatusTransitions(t *testing.T) {
	assert.True(t, StatusScheduled.CanTransitionTo(StatusInProgress))
	assert.True(t, StatusScheduled.CanTransitionTo(StatusCancelled))
	assert.False(t, StatusScheduled.CanTransitionTo(StatusCompleted))
	assert.True(t, StatusInProgress.CanTransitionTo(StatusCompleted))
	assert.False(t, StatusInProgress.CanTransitionTo(StatusCancelled))
	assert.False(t, StatusCompleted.CanTransitionTo(StatusScheduled))
	assert.False(t, StatusCancelled.CanTransitionTo(StatusInProgress))
}
