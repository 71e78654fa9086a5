package leave

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTotalDays(t *testing.T) {
	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"single day", date(2024, 2, 5), date(2024, 2, 5), 1},
		{"three days", date(2024, 2, 5), date(2024, 2, 7), 3},
		{"across month boundary", date(2024, 1, 30), date(2024, 2, 2), 4},
		{"inverted range", date(2024, 2, 7), date(2024, 2, 5), 0},
	}
	for _, c := range cases {
		l := LeaveRequest{StartDate: c.start, EndDate: c.end}
		if got := l.TotalDays(); got != c.want {
			t.Errorf("%s: TotalDays() = %d, want %d", c.name, got, c.want)
		}
	}
}

func TestContainsDate(t *testing.T) {
	l := LeaveRequest{StartDate: date(2024, 2, 5), EndDate: date(2024, 2, 7)}
	cases := []struct {
		name string
		d    time.Time
		want bool
	}{
		{"before", date(2024, 2, 4), false},
		{"start endpoint", date(2024, 2, 5), true},
		{"middle", date(2024, 2, 6), true},
		{"end endpoint", date(2024, 2, 7), true},
		{"after", date(2024, 2, 8), false},
		{"time of day ignored", time.Date(2024, 2, 6, 23, 30, 0, 0, time.UTC), true},
	}
	for _, c := range cases {
		if got := l.ContainsDate(c.d); got != c.want {
			t.Errorf("%s: ContainsDate(%v) = %v, want %v", c.name, c.d, got, c.want)
		}
	}
}

func TestOverlapsRange(t *testing.T) {
	l := LeaveRequest{StartDate: date(2024, 2, 5), EndDate: date(2024, 2, 7)}
	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"fully before", date(2024, 2, 1), date(2024, 2, 4), false},
		{"touching start", date(2024, 2, 1), date(2024, 2, 5), true},
		{"contained", date(2024, 2, 6), date(2024, 2, 6), true},
		{"containing", date(2024, 2, 1), date(2024, 2, 28), true},
		{"touching end", date(2024, 2, 7), date(2024, 2, 10), true},
		{"fully after", date(2024, 2, 8), date(2024, 2, 10), false},
	}
	for _, c := range cases {
		if got := l.OverlapsRange(c.start, c.end); got != c.want {
			t.Errorf("%s: OverlapsRange(%v, %v) = %v, want %v", c.name, c.start, c.end, got, c.want)
		}
	}
}

func TestCanTransitionTo(t *testing.T) {
	now := date(2024, 2, 5)
	cases := []struct {
		name    string
		status  Status
		start   time.Time
		next    Status
		want    bool
	}{
		{"pending to approved", StatusPending, date(2024, 2, 10), StatusApproved, true},
		{"pending to rejected", StatusPending, date(2024, 2, 10), StatusRejected, true},
		{"pending to cancelled", StatusPending, date(2024, 2, 10), StatusCancelled, true},
		{"approved to cancelled before start", StatusApproved, date(2024, 2, 10), StatusCancelled, true},
		{"approved to cancelled on start date", StatusApproved, date(2024, 2, 5), StatusCancelled, false},
		{"approved to cancelled after start", StatusApproved, date(2024, 2, 1), StatusCancelled, false},
		{"approved to rejected", StatusApproved, date(2024, 2, 10), StatusRejected, false},
		{"rejected is terminal", StatusRejected, date(2024, 2, 10), StatusApproved, false},
		{"cancelled is terminal", StatusCancelled, date(2024, 2, 10), StatusApproved, false},
	}
	for _, c := range cases {
		l := LeaveRequest{Status: c.status, StartDate: c.start, EndDate: c.start}
		if got := l.CanTransitionTo(c.next, now); got != c.want {
			t.Errorf("%s: CanTransitionTo(%s) = %v, want %v", c.name, c.next, got, c.want)
		}
	}
}
