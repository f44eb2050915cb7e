package calendar

import (
	"go.uber.org/zap"

	"clinic-calendar-api/internal/model"
)

// Populate joins each appointment with its doctor and patient records,
// looked up through id-indexed maps rather than scans. An appointment
// whose doctor or patient id has no matching record is skipped with a
// warning; the rest of the batch still resolves. Input order is preserved.
func Populate(log *zap.Logger, appts []model.Appointment, doctors []model.Doctor, patients []model.Patient) []model.PopulatedAppointment {
	docIdx := make(map[string]model.Doctor, len(doctors))
	for _, d := range doctors {
		docIdx[d.ID] = d
	}
	patIdx := make(map[string]model.Patient, len(patients))
	for _, p := range patients {
		patIdx[p.ID] = p
	}

	out := make([]model.PopulatedAppointment, 0, len(appts))
	for _, a := range appts {
		d, ok := docIdx[a.DoctorID]
		if !ok {
			log.Warn("dropping appointment with unknown doctor",
				zap.String("appointmentId", a.ID), zap.String("doctorId", a.DoctorID))
			continue
		}
		p, ok := patIdx[a.PatientID]
		if !ok {
			log.Warn("dropping appointment with unknown patient",
				zap.String("appointmentId", a.ID), zap.String("patientId", a.PatientID))
			continue
		}
		out = append(out, model.PopulatedAppointment{Appointment: a, Doctor: d, Patient: p})
	}
	return out
}
