package calendar

import (
	"sort"

	"clinic-calendar-api/internal/model"
)

// SortAppointmentsByTime returns a copy of list ordered ascending by start
// time. The sort is stable: appointments sharing a start instant keep
// their relative input order, so repeated calls never shuffle ties.
func SortAppointmentsByTime(list []model.Appointment) []model.Appointment {
	out := make([]model.Appointment, len(list))
	copy(out, list)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out
}
