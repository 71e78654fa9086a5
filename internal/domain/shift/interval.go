package shift

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

// ParseClock parses an "HH:MM" clock string into a minute-of-day value
// (00:00 = 0, 23:59 = 1439).
func ParseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock string %q", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock string %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock string %q", s)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("clock value %q out of range", s)
	}
	return hour*60 + minute, nil
}

// Interval is a shift's active span as a half-open [Start, End) minute range
// anchored to a calendar date. For overnight shifts End exceeds minutesPerDay
// and the span runs into the following day.
type Interval struct {
	Date  time.Time
	Start int
	End   int
}

// Overlaps reports whether two intervals intersect. Intervals on different
// calendar dates never overlap: the comparison is by anchor date only, so an
// overnight span is not checked against the following day's shifts. Touching
// endpoints do not count as overlap, so back-to-back shifts are allowed.
func (i Interval) Overlaps(other Interval) bool {
	if !SameDate(i.Date, other.Date) {
		return false
	}
	return i.Start < other.End && other.Start < i.End
}

// Hours returns the interval length in hours.
func (i Interval) Hours() float64 {
	return float64(i.End-i.Start) / 60
}

// SameDate reports whether two timestamps fall on the same calendar date,
// ignoring any time-of-day component.
func SameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// IsOvernight reports whether the shift crosses midnight. It is derived from
// the two clock strings on every call; there is no stored flag to go stale
// when only one of the times is edited. Malformed times are treated as not
// overnight.
func (s *Shift) IsOvernight() bool {
	start, err := ParseClock(s.StartTime)
	if err != nil {
		return false
	}
	end, err := ParseClock(s.EndTime)
	if err != nil {
		return false
	}
	return end <= start
}

// Interval returns the shift's effective interval with the overnight
// adjustment applied, so End > Start always holds on success.
func (s *Shift) Interval() (Interval, error) {
	start, err := ParseClock(s.StartTime)
	if err != nil {
		return Interval{}, err
	}
	end, err := ParseClock(s.EndTime)
	if err != nil {
		return Interval{}, err
	}
	if end <= start {
		end += minutesPerDay
	}
	return Interval{Date: s.Date, Start: start, End: end}, nil
}

// DurationHours returns the shift length in hours, adding a day to the end
// clock when the shift runs overnight. A 22:00-06:00 shift is 8 hours.
func (s *Shift) DurationHours() (float64, error) {
	iv, err := s.Interval()
	if err != nil {
		return 0, err
	}
	return iv.Hours(), nil
}

// IsWeekend reports whether the shift date falls on Saturday or Sunday.
func (s *Shift) IsWeekend() bool {
	wd := s.Date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
