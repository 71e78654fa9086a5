package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"\t\n", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2024-01-15", "2024-02-29", "1999-12-31"}
	invalid := []string{"2024-13-01", "2024-02-30", "15-01-2024", "2024/01/15", "2024-1-5", ""}
	for _, date := range valid {
		if _, ok := IsValidDate(date); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", date)
		}
	}
	for _, date := range invalid {
		if _, ok := IsValidDate(date); ok {
			t.Errorf("IsValidDate(%q) = true, want false", date)
		}
	}
}

func TestIsValidClock(t *testing.T) {
	valid := []string{"00:00", "09:30", "12:00", "23:59"}
	invalid := []string{"24:00", "12:60", "9:00", "0900", "12:5", "ab:cd", "12:00:00", ""}
	for _, clock := range valid {
		if !IsValidClock(clock) {
			t.Errorf("IsValidClock(%q) = false, want true", clock)
		}
	}
	for _, clock := range invalid {
		if IsValidClock(clock) {
			t.Errorf("IsValidClock(%q) = true, want false", clock)
		}
	}
}

func TestIsValidWeekday(t *testing.T) {
	valid := []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
	invalid := []string{"Monday", "MONDAY", "mon", "weekday", ""}
	for _, day := range valid {
		if !IsValidWeekday(day) {
			t.Errorf("IsValidWeekday(%q) = false, want true", day)
		}
	}
	for _, day := range invalid {
		if IsValidWeekday(day) {
			t.Errorf("IsValidWeekday(%q) = true, want false", day)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"scheduled", "in_progress", "completed"}
	cases := []struct {
		value string
		want  bool
	}{
		{"scheduled", true},
		{"completed", true},
		{"cancelled", false},
		{"", false},
		{"Scheduled", false},
	}
	for _, c := range cases {
		got := IsInSlice(c.value, slice)
		if got != c.want {
			t.Errorf("IsInSlice(%q) = %v, want %v", c.value, got, c.want)
		}
	}
}

func TestIsValidDateTime(t *testing.T) {
	valid := []string{
		"2024-01-15T10:30:00Z",
		"2024-01-15T10:30:00+07:00",
		"2024-01-15T10:30:00.123456789Z",
	}
	invalid := []string{
		"2024-01-15 10:30:00",
		"2024-01-15",
		"10:30:00",
		"",
	}
	for _, dt := range valid {
		if _, ok := IsValidDateTime(dt); !ok {
			t.Errorf("IsValidDateTime(%q) = false, want true", dt)
		}
	}
	for _, dt := range invalid {
		if _, ok := IsValidDateTime(dt); ok {
			t.Errorf("IsValidDateTime(%q) = true, want false", dt)
		}
	}
}
