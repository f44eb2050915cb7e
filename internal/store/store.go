package store

import (
	"context"
	"errors"
	"time"

	"clinic-calendar-api/internal/model"
)

// ErrNotFound is returned when a doctor id is absent or empty.
var ErrNotFound = errors.New("store: not found")

// Store is the clinic data source the calendar reads from. Postgres backs
// production; Memory backs tests and demo runs. The calendar only reads:
// reference data and appointments are created and owned elsewhere.
type Store interface {
	AllDoctors(ctx context.Context) ([]model.Doctor, error)
	DoctorByID(ctx context.Context, id string) (*model.Doctor, error)
	AllPatients(ctx context.Context) ([]model.Patient, error)

	// AppointmentsByDoctorAndDate returns every appointment for the doctor
	// whose interval intersects the calendar day containing date, unsorted.
	AppointmentsByDoctorAndDate(ctx context.Context, doctorID string, date time.Time) ([]model.Appointment, error)

	// AppointmentsByDoctorAndDateRange is the same over [start, end] with
	// end inclusive to end-of-day, unsorted.
	AppointmentsByDoctorAndDateRange(ctx context.Context, doctorID string, start, end time.Time) ([]model.Appointment, error)
}

// day windows are half-open [00:00, next 00:00) in the input's location
func dayWindow(date time.Time) (time.Time, time.Time) {
	from := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return from, from.AddDate(0, 0, 1)
}

func rangeWindow(start, end time.Time) (time.Time, time.Time) {
	from, _ := dayWindow(start)
	_, to := dayWindow(end)
	return from, to
}
