package domain

import (
	"strings"
	"time"
)

// SchedulingLimits are the configurable bounds applied to appointments
type SchedulingLimits struct {
	MinDurationMinutes int
	MaxDurationMinutes int
	MaxReasonLength    int
	UpcomingWindow     time.Duration
}

// DefaultSchedulingLimits returns the built-in bounds
func DefaultSchedulingLimits() SchedulingLimits {
	return SchedulingLimits{
		MinDurationMinutes: DefaultMinAppointmentMinutes,
		MaxDurationMinutes: DefaultMaxAppointmentMinutes,
		MaxReasonLength:    MaxReasonLength,
		UpcomingWindow:     DefaultUpcomingWindow,
	}
}

// DefaultTitle builds "<Service type> appointment" for untitled appointments
func DefaultTitle(st ServiceType) string {
	name := strings.ReplaceAll(string(st), "_", " ")
	if name == "" {
		return "Appointment"
	}
	return strings.ToUpper(name[:1]) + name[1:] + " appointment"
}

// ValidateAppointmentText checks the free-text fields of an appointment
func ValidateAppointmentText(a *Appointment, limits SchedulingLimits) error {
	title := a.Title
	if strings.TrimSpace(title) == "" {
		return NewValidationError("title", "must not be blank")
	}
	if err := ValidateLength("title", &title, MaxTitleLength); err != nil {
		return err
	}
	if err := ValidateLength("reason", a.Reason, limits.MaxReasonLength); err != nil {
		return err
	}
	if err := ValidateLength("notes", a.Notes, MaxNotesLength); err != nil {
		return err
	}
	return ValidateGuest(a.Guest)
}

// StartOfDay returns midnight of t's day in loc
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// CalendarDay returns midnight in loc of the calendar date carried by d.
// Only the year, month and day fields of d are used, so a date parsed as
// UTC midnight keeps its day in any zone.
func CalendarDay(d time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
}
