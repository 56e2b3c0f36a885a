// Package exam holds the Minnesota journeyman exam sitting schedule
// and countdown math for the target-date tracker. The target date
// itself lives in the progress record; this package only computes
// against it.
package exam

import "time"

// DateLayout is the wire format for exam dates (ISO date, no time).
const DateLayout = "2006-01-02"

// Sitting is one scheduled exam offering.
type Sitting struct {
	ID       string
	Date     string // ISO date
	Deadline string // registration deadline, ISO date
	Location string
}

// Schedule lists the published 2025-2026 exam sittings.
var Schedule = []Sitting{
	{ID: "1", Date: "2025-06-15", Deadline: "2025-05-30", Location: "St. Paul, MN"},
	{ID: "2", Date: "2025-09-18", Deadline: "2025-09-01", Location: "St. Paul, MN"},
	{ID: "3", Date: "2025-12-12", Deadline: "2025-11-25", Location: "Duluth, MN"},
	{ID: "4", Date: "2026-03-20", Deadline: "2026-03-05", Location: "St. Paul, MN"},
	{ID: "5", Date: "2026-06-18", Deadline: "2026-06-01", Location: "St. Paul, MN"},
	{ID: "6", Date: "2026-09-22", Deadline: "2026-09-05", Location: "Rochester, MN"},
}

// Upcoming returns the sittings on or after the given day, in
// schedule order.
func Upcoming(now time.Time) []Sitting {
	today := midnight(now)
	var out []Sitting
	for _, s := range Schedule {
		d, err := time.Parse(DateLayout, s.Date)
		if err != nil {
			continue
		}
		if !d.Before(today) {
			out = append(out, s)
		}
	}
	return out
}

// DaysUntil returns the whole days from now until the given ISO date,
// rounding partial days up. Past dates yield negative values.
func DaysUntil(date string, now time.Time) (int, error) {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return 0, err
	}
	diff := d.Sub(now)
	days := int(diff.Hours() / 24)
	if diff > 0 && diff.Hours() != float64(days)*24 {
		days++
	}
	return days, nil
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
