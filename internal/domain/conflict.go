package domain

import (
	"time"

	"github.com/google/uuid"
)

// FindConflict returns the earliest appointment of employeeID that overlaps
// [start,end) and still blocks the schedule, or nil if the slot is free.
// exclude skips the appointment being updated.
func FindConflict(existing []*Appointment, employeeID uuid.UUID, start, end time.Time, exclude *uuid.UUID) *Appointment {
	var conflict *Appointment

	for _, a := range existing {
		if a.EmployeeID == nil || *a.EmployeeID != employeeID {
			continue
		}
		if exclude != nil && a.ID == *exclude {
			continue
		}
		if !a.BlocksSchedule() || !a.Overlaps(start, end) {
			continue
		}
		if conflict == nil || a.StartTime.Before(conflict.StartTime) {
			conflict = a
		}
	}

	return conflict
}
