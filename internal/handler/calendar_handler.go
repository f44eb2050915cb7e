package handler

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"clinic-calendar-api/internal/calendar"
	"clinic-calendar-api/internal/model"
	"clinic-calendar-api/internal/rpc"
	"clinic-calendar-api/internal/store"
)

func (h *Handler) ListDoctors(ctx context.Context, req *rpc.ListDoctorsRequest) (*rpc.ListDoctorsResponse, error) {
	docs, err := h.svc.Doctors(ctx)
	if err != nil {
		return nil, h.toStatus(err)
	}
	out := make([]*rpc.Doctor, len(docs))
	for i := range docs {
		out[i] = toWireDoctor(&docs[i])
	}
	return &rpc.ListDoctorsResponse{Doctors: out}, nil
}

func (h *Handler) GetDoctor(ctx context.Context, req *rpc.GetDoctorRequest) (*rpc.GetDoctorResponse, error) {
	if req.ID == "" {
		return nil, status.Error(codes.InvalidArgument, "doctor id required")
	}
	d, err := h.svc.Doctor(ctx, req.ID)
	if err != nil {
		return nil, h.toStatus(err)
	}
	return &rpc.GetDoctorResponse{Doctor: toWireDoctor(d)}, nil
}

func (h *Handler) GetDaySchedule(ctx context.Context, req *rpc.ScheduleRequest) (*rpc.ScheduleResponse, error) {
	doctorID, date, err := scheduleArgs(req)
	if err != nil {
		return nil, err
	}
	sched, err := h.svc.DaySchedule(ctx, doctorID, date, req.Search)
	if err != nil {
		return nil, h.toStatus(err)
	}
	return &rpc.ScheduleResponse{Schedule: toWireSchedule(sched)}, nil
}

func (h *Handler) GetWeekSchedule(ctx context.Context, req *rpc.ScheduleRequest) (*rpc.ScheduleResponse, error) {
	doctorID, date, err := scheduleArgs(req)
	if err != nil {
		return nil, err
	}
	sched, err := h.svc.WeekSchedule(ctx, doctorID, date, req.Search)
	if err != nil {
		return nil, h.toStatus(err)
	}
	return &rpc.ScheduleResponse{Schedule: toWireSchedule(sched)}, nil
}

func scheduleArgs(req *rpc.ScheduleRequest) (string, time.Time, error) {
	if req.DoctorID == "" {
		return "", time.Time{}, status.Error(codes.InvalidArgument, "doctor id required")
	}
	date := req.Date
	if date.IsZero() {
		date = time.Now()
	}
	return req.DoctorID, date, nil
}

// toStatus maps the calendar error taxonomy onto grpc codes. Fetch
// failures log server-side; the client only learns the category.
func (h *Handler) toStatus(err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return status.Error(codes.NotFound, "doctor not found")
	case errors.Is(err, calendar.ErrInvalidAppointment):
		h.log.Error("malformed appointment in store", zap.Error(err))
		return status.Error(codes.Internal, "invalid appointment data")
	case errors.Is(err, calendar.ErrFetchFailed):
		h.log.Error("calendar fetch failed", zap.Error(err))
		return status.Error(codes.Unavailable, "store unavailable")
	default:
		h.log.Error("calendar query failed", zap.Error(err))
		return status.Error(codes.Internal, "internal error")
	}
}

// ----- wire conversions -----

func toWireDoctor(d *model.Doctor) *rpc.Doctor {
	return &rpc.Doctor{
		ID:        d.ID,
		Name:      d.Name,
		Specialty: string(d.Specialty),
		Email:     d.Email,
		Phone:     d.Phone,
	}
}

func toWireAppointment(a *model.Appointment, patientName string) *rpc.Appointment {
	return &rpc.Appointment{
		ID:          a.ID,
		DoctorID:    a.DoctorID,
		PatientID:   a.PatientID,
		PatientName: patientName,
		StartTime:   a.StartTime,
		EndTime:     a.EndTime,
		Type:        string(a.Type),
		TypeLabel:   a.Type.Label(),
		Color:       a.Type.Color(),
		Notes:       a.Notes,
	}
}

func toWireSchedule(s *calendar.Schedule) *rpc.Schedule {
	out := &rpc.Schedule{Doctor: toWireDoctor(&s.Doctor)}
	for i := range s.Days {
		out.Days = append(out.Days, toWireDay(&s.Days[i]))
	}
	return out
}

func toWireDay(d *calendar.Day) *rpc.Day {
	day := &rpc.Day{Date: d.Date}
	for _, sl := range d.Slots {
		w := &rpc.SlotLayout{Slot: &rpc.TimeSlot{
			Start: sl.Slot.Start,
			End:   sl.Slot.End,
			Label: sl.Slot.Label,
		}}
		for _, e := range sl.Entries {
			w.Entries = append(w.Entries, &rpc.SlotEntry{
				Appointment: toWireAppointment(&e.Appointment.Appointment, e.Appointment.Patient.Name),
				Position: &rpc.Position{
					TopOffset: e.Position.TopOffset,
					Height:    e.Position.Height,
					Span:      int32(e.Position.Span),
				},
			})
		}
		day.Slots = append(day.Slots, w)
	}
	for i := range d.Appointments {
		// flat list keeps only the raw record; patient names live on entries
		day.Appointments = append(day.Appointments, toWireAppointment(&d.Appointments[i], ""))
	}
	return day
}
