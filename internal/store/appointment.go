package store

import (
	"context"
	"time"

	"clinic-calendar-api/internal/model"
)

// interval intersection: start_time < window end AND end_time > window start

func (s *Postgres) AppointmentsByDoctorAndDate(ctx context.Context, doctorID string, date time.Time) ([]model.Appointment, error) {
	from, to := dayWindow(date)
	return s.appointmentsIn(ctx, doctorID, from, to)
}

func (s *Postgres) AppointmentsByDoctorAndDateRange(ctx context.Context, doctorID string, start, end time.Time) ([]model.Appointment, error) {
	from, to := rangeWindow(start, end)
	return s.appointmentsIn(ctx, doctorID, from, to)
}

func (s *Postgres) appointmentsIn(ctx context.Context, doctorID string, from, to time.Time) ([]model.Appointment, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, doctor_id, patient_id, start_time, end_time, type, notes, created_at, updated_at
		 FROM appointments
		 WHERE doctor_id = $1
		   AND start_time < $3 AND end_time > $2`, doctorID, from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Appointment
	for rows.Next() {
		var a model.Appointment
		if err := rows.Scan(
			&a.ID, &a.DoctorID, &a.PatientID, &a.StartTime, &a.EndTime,
			&a.Type, &a.Notes, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
