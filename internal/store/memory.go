package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"clinic-calendar-api/internal/model"
)

// Memory is the in-process store used by tests and STORE=memory demo runs.
// Data is fixed at construction; reads hand out copies.
type Memory struct {
	doctors      []model.Doctor
	patients     []model.Patient
	appointments []model.Appointment
}

func NewMemory(doctors []model.Doctor, patients []model.Patient, appointments []model.Appointment) *Memory {
	return &Memory{doctors: doctors, patients: patients, appointments: appointments}
}

func (m *Memory) AllDoctors(ctx context.Context) ([]model.Doctor, error) {
	return append([]model.Doctor(nil), m.doctors...), nil
}

func (m *Memory) DoctorByID(ctx context.Context, id string) (*model.Doctor, error) {
	if id == "" {
		return nil, ErrNotFound
	}
	for _, d := range m.doctors {
		if d.ID == id {
			doc := d
			return &doc, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) AllPatients(ctx context.Context) ([]model.Patient, error) {
	return append([]model.Patient(nil), m.patients...), nil
}

func (m *Memory) AppointmentsByDoctorAndDate(ctx context.Context, doctorID string, date time.Time) ([]model.Appointment, error) {
	from, to := dayWindow(date)
	return m.appointmentsIn(doctorID, from, to), nil
}

func (m *Memory) AppointmentsByDoctorAndDateRange(ctx context.Context, doctorID string, start, end time.Time) ([]model.Appointment, error) {
	from, to := rangeWindow(start, end)
	return m.appointmentsIn(doctorID, from, to), nil
}

func (m *Memory) appointmentsIn(doctorID string, from, to time.Time) []model.Appointment {
	var out []model.Appointment
	for _, a := range m.appointments {
		if a.DoctorID == doctorID && a.StartTime.Before(to) && a.EndTime.After(from) {
			out = append(out, a)
		}
	}
	return out
}

// SeedDemo builds a Memory store with one doctor per specialty, a handful
// of patients, and a spread of appointments around the given day.
func SeedDemo(day time.Time) *Memory {
	doctors := []model.Doctor{
		{ID: uuid.New().String(), Name: "Dr. Sarah Chen", Specialty: model.Cardiology, Email: "s.chen@clinic.example", Phone: "555-0101"},
		{ID: uuid.New().String(), Name: "Dr. Miguel Alvarez", Specialty: model.Pediatrics, Email: "m.alvarez@clinic.example", Phone: "555-0102"},
		{ID: uuid.New().String(), Name: "Dr. Priya Nair", Specialty: model.GeneralPractice, Email: "p.nair@clinic.example", Phone: "555-0103"},
		{ID: uuid.New().String(), Name: "Dr. James Okafor", Specialty: model.Orthopedics, Email: "j.okafor@clinic.example", Phone: "555-0104"},
		{ID: uuid.New().String(), Name: "Dr. Lena Fischer", Specialty: model.Dermatology, Email: "l.fischer@clinic.example", Phone: "555-0105"},
	}
	patients := []model.Patient{
		{ID: uuid.New().String(), Name: "Alice Morgan", Email: "alice.m@mail.example", Phone: "555-0201"},
		{ID: uuid.New().String(), Name: "Ben Tanaka", Email: "ben.t@mail.example", Phone: "555-0202"},
		{ID: uuid.New().String(), Name: "Carla Mendes", Email: "carla.m@mail.example", Phone: "555-0203"},
		{ID: uuid.New().String(), Name: "Derek Osei", Email: "derek.o@mail.example", Phone: "555-0204"},
		{ID: uuid.New().String(), Name: "Elena Petrova", Email: "elena.p@mail.example", Phone: "555-0205"},
	}

	at := func(dayOffset, hour, min int) time.Time {
		d := day.AddDate(0, 0, dayOffset)
		return time.Date(d.Year(), d.Month(), d.Day(), hour, min, 0, 0, day.Location())
	}
	types := []model.AppointmentType{model.Checkup, model.FollowUp, model.Consultation, model.Procedure, model.Emergency}

	var appointments []model.Appointment
	for di, doc := range doctors {
		for i := 0; i < 4; i++ {
			start := at(i%3, 9+2*i, 15*((di+i)%2))
			appointments = append(appointments, model.Appointment{
				ID:        uuid.New().String(),
				DoctorID:  doc.ID,
				PatientID: patients[(di+i)%len(patients)].ID,
				StartTime: start,
				EndTime:   start.Add(time.Duration(30+15*(i%2)) * time.Minute),
				Type:      types[(di+i)%len(types)],
				Notes:     "seeded demo appointment",
			})
		}
	}
	return NewMemory(doctors, patients, appointments)
}
