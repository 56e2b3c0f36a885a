package exam

import (
	"testing"
	"time"
)

func at(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestUpcoming(t *testing.T) {
	now := at("2026-01-15T10:00:00Z")
	got := Upcoming(now)

	if len(got) != 3 {
		t.Fatalf("expected 3 upcoming sittings, got %d", len(got))
	}
	if got[0].Date != "2026-03-20" {
		t.Errorf("expected first upcoming 2026-03-20, got %s", got[0].Date)
	}
}

func TestUpcoming_SameDayStillListed(t *testing.T) {
	now := at("2026-03-20T23:00:00Z")
	got := Upcoming(now.UTC())

	if len(got) == 0 || got[0].Date != "2026-03-20" {
		t.Fatalf("exam day itself must still be listed, got %v", got)
	}
}

func TestUpcoming_AllPast(t *testing.T) {
	now := at("2027-01-01T00:00:00Z")
	if got := Upcoming(now); len(got) != 0 {
		t.Fatalf("expected no upcoming sittings, got %d", len(got))
	}
}

func TestDaysUntil(t *testing.T) {
	tests := []struct {
		name string
		date string
		now  string
		want int
	}{
		{"whole days", "2026-03-20", "2026-03-10T00:00:00Z", 10},
		{"partial day rounds up", "2026-03-20", "2026-03-19T18:00:00Z", 1},
		{"same instant", "2026-03-20", "2026-03-20T00:00:00Z", 0},
		{"past date negative", "2026-03-20", "2026-03-25T00:00:00Z", -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DaysUntil(tt.date, at(tt.now))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("DaysUntil(%s, %s) = %d, want %d", tt.date, tt.now, got, tt.want)
			}
		})
	}
}

func TestDaysUntil_BadDate(t *testing.T) {
	if _, err := DaysUntil("March 20th", at("2026-01-01T00:00:00Z")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestCountdownTo(t *testing.T) {
	now := at("2026-03-17T12:30:00Z")
	c, err := CountdownTo("2026-03-20", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.Days != 2 || c.Hours != 11 || c.Minutes != 30 {
		t.Errorf("unexpected countdown: %+v", c)
	}
	if c.Passed() {
		t.Error("countdown with time remaining must not report passed")
	}
}

func TestCountdownTo_PastDate(t *testing.T) {
	c, err := CountdownTo("2026-03-20", at("2026-04-01T00:00:00Z"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.Passed() {
		t.Errorf("expected passed countdown, got %+v", c)
	}
}

func TestScheduleDatesParse(t *testing.T) {
	for _, s := range Schedule {
		if _, err := time.Parse(DateLayout, s.Date); err != nil {
			t.Errorf("sitting %s has unparseable date %q", s.ID, s.Date)
		}
		if _, err := time.Parse(DateLayout, s.Deadline); err != nil {
			t.Errorf("sitting %s has unparseable deadline %q", s.ID, s.Deadline)
		}
		if s.Location == "" {
			t.Errorf("sitting %s has no location", s.ID)
		}
	}
}
