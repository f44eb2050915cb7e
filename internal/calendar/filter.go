package calendar

import (
	"strings"

	"clinic-calendar-api/internal/model"
)

// Filter returns the underlying appointments whose populated record
// matches query: a case-insensitive substring of the patient name, the
// type label, or the notes. A blank or whitespace-only query means no
// filter. The result is always a subsequence of the input order; the
// input is never reordered or mutated.
func Filter(populated []model.PopulatedAppointment, query string) []model.Appointment {
	out := make([]model.Appointment, 0, len(populated))
	for _, p := range filterPopulated(populated, query) {
		out = append(out, p.Appointment)
	}
	return out
}

func filterPopulated(populated []model.PopulatedAppointment, query string) []model.PopulatedAppointment {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return populated
	}
	out := make([]model.PopulatedAppointment, 0, len(populated))
	for _, p := range populated {
		if matches(p, q) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p model.PopulatedAppointment, q string) bool {
	return strings.Contains(strings.ToLower(p.Patient.Name), q) ||
		strings.Contains(strings.ToLower(p.Type.Label()), q) ||
		strings.Contains(strings.ToLower(p.Notes), q)
}
