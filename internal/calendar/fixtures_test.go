package calendar_test

import (
	"time"

	"clinic-calendar-api/internal/model"
)

var (
	drChen = model.Doctor{
		ID: "doc-1", Name: "Dr. Sarah Chen", Specialty: model.Cardiology,
		Email: "s.chen@clinic.example", Phone: "555-0101",
	}
	drNair = model.Doctor{
		ID: "doc-2", Name: "Dr. Priya Nair", Specialty: model.GeneralPractice,
		Email: "p.nair@clinic.example", Phone: "555-0103",
	}
	patAlice = model.Patient{ID: "pat-1", Name: "Alice Morgan"}
	patBen   = model.Patient{ID: "pat-2", Name: "Ben Tanaka"}
)

// at builds an instant on the test Monday.
func at(hour, min int) time.Time {
	return time.Date(2026, 3, 2, hour, min, 0, 0, time.UTC)
}

// appt builds a valid appointment for drChen/patAlice.
func appt(id string, start time.Time, minutes int, typ model.AppointmentType, notes string) model.Appointment {
	return model.Appointment{
		ID:        id,
		DoctorID:  drChen.ID,
		PatientID: patAlice.ID,
		StartTime: start,
		EndTime:   start.Add(time.Duration(minutes) * time.Minute),
		Type:      typ,
		Notes:     notes,
	}
}

func populated(a model.Appointment, d model.Doctor, p model.Patient) model.PopulatedAppointment {
	return model.PopulatedAppointment{Appointment: a, Doctor: d, Patient: p}
}
