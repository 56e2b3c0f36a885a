package exam

import "time"

// Countdown is the time remaining until the target exam date.
type Countdown struct {
	Days    int
	Hours   int
	Minutes int
}

// Passed reports whether the target date is already behind us.
func (c Countdown) Passed() bool {
	return c.Days == 0 && c.Hours == 0 && c.Minutes == 0
}

// CountdownTo computes the time left until the given ISO date. A past
// date yields the zero Countdown.
func CountdownTo(date string, now time.Time) (Countdown, error) {
	target, err := time.Parse(DateLayout, date)
	if err != nil {
		return Countdown{}, err
	}

	diff := target.Sub(now)
	if diff <= 0 {
		return Countdown{}, nil
	}

	return Countdown{
		Days:    int(diff.Hours()) / 24,
		Hours:   int(diff.Hours()) % 24,
		Minutes: int(diff.Minutes()) % 60,
	}, nil
}
