package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"clinic-calendar-api/internal/model"
	"clinic-calendar-api/internal/store"
)

// Service answers calendar queries: it fetches a doctor's appointments for
// a day or a week, resolves references, and computes the slot grid with
// positioned entries. Every call recomputes from freshly fetched data;
// nothing is cached between calls.
type Service struct {
	store store.Store
	cfg   Config
	log   *zap.Logger
}

func NewService(st store.Store, cfg Config, log *zap.Logger) *Service {
	return &Service{store: st, cfg: cfg, log: log}
}

// Day is one rendered calendar day: the slot grid with positioned entries
// plus the flat appointment list that survived the free-text filter,
// sorted ascending by start time.
type Day struct {
	Date         time.Time
	Slots        []SlotLayout
	Appointments []model.Appointment
}

// Schedule is the result of one query cycle. Days holds a single entry for
// day queries and Monday through Sunday for week queries.
type Schedule struct {
	Doctor model.Doctor
	Days   []Day
}

// Doctors lists the selectable doctors.
func (s *Service) Doctors(ctx context.Context) ([]model.Doctor, error) {
	docs, err := s.store.AllDoctors(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: doctors: %v", ErrFetchFailed, err)
	}
	return docs, nil
}

// Doctor resolves a single doctor. store.ErrNotFound passes through so
// callers can tell a missing doctor from a store failure.
func (s *Service) Doctor(ctx context.Context, id string) (*model.Doctor, error) {
	d, err := s.store.DoctorByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: doctor %s: %v", ErrFetchFailed, id, err)
	}
	return d, nil
}

// DaySchedule builds the calendar for one day.
func (s *Service) DaySchedule(ctx context.Context, doctorID string, day time.Time, search string) (*Schedule, error) {
	doctor, err := s.Doctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	appts, err := s.store.AppointmentsByDoctorAndDate(ctx, doctorID, day)
	if err != nil {
		return nil, fmt.Errorf("%w: appointments: %v", ErrFetchFailed, err)
	}

	days, err := s.assemble(ctx, appts, search, dayStart(day), 1)
	if err != nil {
		return nil, err
	}
	return &Schedule{Doctor: *doctor, Days: days}, nil
}

// WeekSchedule builds the calendar for the Monday-to-Sunday week
// containing day. Appointments are fetched once for the whole range and
// laid out per day.
func (s *Service) WeekSchedule(ctx context.Context, doctorID string, day time.Time, search string) (*Schedule, error) {
	doctor, err := s.Doctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	monday := weekStart(day)
	sunday := monday.AddDate(0, 0, 6)
	appts, err := s.store.AppointmentsByDoctorAndDateRange(ctx, doctorID, monday, sunday)
	if err != nil {
		return nil, fmt.Errorf("%w: appointments: %v", ErrFetchFailed, err)
	}

	days, err := s.assemble(ctx, appts, search, monday, 7)
	if err != nil {
		return nil, err
	}
	return &Schedule{Doctor: *doctor, Days: days}, nil
}

// assemble runs the shared tail of a query cycle: validate, sort,
// populate, filter, then lay out each of n days starting at first.
func (s *Service) assemble(ctx context.Context, appts []model.Appointment, search string, first time.Time, n int) ([]Day, error) {
	for _, a := range appts {
		if !a.EndTime.After(a.StartTime) {
			return nil, fmt.Errorf("%w: appointment %s", ErrInvalidAppointment, a.ID)
		}
	}
	sorted := SortAppointmentsByTime(appts)

	doctors, err := s.store.AllDoctors(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: doctors: %v", ErrFetchFailed, err)
	}
	patients, err := s.store.AllPatients(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: patients: %v", ErrFetchFailed, err)
	}

	populated := Populate(s.log, sorted, doctors, patients)
	visible := filterPopulated(populated, search)

	days := make([]Day, 0, n)
	for i := 0; i < n; i++ {
		date := first.AddDate(0, 0, i)
		var todays []model.PopulatedAppointment
		var raw []model.Appointment
		for _, p := range visible {
			if dayStart(p.StartTime).Equal(date) {
				todays = append(todays, p)
				raw = append(raw, p.Appointment)
			}
		}
		slots, err := Layout(date, s.cfg, todays)
		if err != nil {
			return nil, err
		}
		days = append(days, Day{Date: date, Slots: slots, Appointments: raw})
	}
	return days, nil
}
