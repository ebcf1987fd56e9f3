package domain

import (
	"fmt"
	"time"
)

// WorkingHours is the daily window in which staff accept appointments,
// stored as offsets from local midnight.
type WorkingHours struct {
	Open  time.Duration
	Close time.Duration
}

// DefaultWorkingHours is 09:00-18:00
func DefaultWorkingHours() WorkingHours {
	return WorkingHours{Open: 9 * time.Hour, Close: 18 * time.Hour}
}

// ParseWorkingHours parses "HH:MM" bounds. Open must precede close.
func ParseWorkingHours(openAt, closeAt string) (WorkingHours, error) {
	open, err := parseClock(openAt)
	if err != nil {
		return WorkingHours{}, fmt.Errorf("open: %w", err)
	}
	closing, err := parseClock(closeAt)
	if err != nil {
		return WorkingHours{}, fmt.Errorf("close: %w", err)
	}
	if closing <= open {
		return WorkingHours{}, fmt.Errorf("close %s is not after open %s", closeAt, openAt)
	}
	return WorkingHours{Open: open, Close: closing}, nil
}

func parseClock(s string) (time.Duration, error) {
	t, err := time.Parse(ClockFormat, s)
	if err != nil {
		return 0, err
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

// Bounds returns the absolute opening and closing instants of day in loc
func (w WorkingHours) Bounds(day time.Time, loc *time.Location) (time.Time, time.Time) {
	midnight := StartOfDay(day, loc)
	return midnight.Add(w.Open), midnight.Add(w.Close)
}

// Slot is a candidate interval [Start, End) in an employee's day
type Slot struct {
	Start     time.Time
	End       time.Time
	Available bool
}
