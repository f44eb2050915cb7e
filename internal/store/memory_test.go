package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"clinic-calendar-api/internal/model"
	"clinic-calendar-api/internal/store"
)

var day = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func mkAppt(id string, start time.Time, minutes int) model.Appointment {
	return model.Appointment{
		ID:        id,
		DoctorID:  "doc-1",
		PatientID: "pat-1",
		StartTime: start,
		EndTime:   start.Add(time.Duration(minutes) * time.Minute),
		Type:      model.Checkup,
	}
}

func TestDoctorByID(t *testing.T) {
	m := store.NewMemory([]model.Doctor{{ID: "doc-1", Name: "Dr. Sarah Chen"}}, nil, nil)
	ctx := context.Background()

	d, err := m.DoctorByID(ctx, "doc-1")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if d.Name != "Dr. Sarah Chen" {
		t.Errorf("name %q", d.Name)
	}

	if _, err := m.DoctorByID(ctx, "nope"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("unknown id: got %v, want ErrNotFound", err)
	}
	if _, err := m.DoctorByID(ctx, ""); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("empty id: got %v, want ErrNotFound", err)
	}
}

func TestAppointmentsByDoctorAndDate(t *testing.T) {
	at := func(hour, min int) time.Time {
		return time.Date(2026, 3, 2, hour, min, 0, 0, time.UTC)
	}
	appts := []model.Appointment{
		mkAppt("in-day", at(9, 0), 30),
		mkAppt("ends-at-midnight", at(0, 0).Add(-time.Hour), 60),
		mkAppt("crosses-into-day", at(0, 0).Add(-time.Hour), 90),
		mkAppt("next-day", at(9, 0).AddDate(0, 0, 1), 30),
	}
	other := mkAppt("other-doctor", at(10, 0), 30)
	other.DoctorID = "doc-2"
	appts = append(appts, other)

	m := store.NewMemory(nil, nil, appts)

	got, err := m.AppointmentsByDoctorAndDate(context.Background(), "doc-1", day)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}

	want := map[string]bool{"in-day": true, "crosses-into-day": true}
	if len(got) != len(want) {
		t.Fatalf("got %d appointments, want %d: %v", len(got), len(want), got)
	}
	for _, a := range got {
		if !want[a.ID] {
			t.Errorf("unexpected appointment %s in day window", a.ID)
		}
	}
}

func TestAppointmentsByDoctorAndDateRange(t *testing.T) {
	appts := []model.Appointment{
		mkAppt("mon", day.Add(9*time.Hour), 30),
		mkAppt("sun-evening", day.AddDate(0, 0, 6).Add(20*time.Hour), 30),
		mkAppt("next-monday", day.AddDate(0, 0, 7).Add(9*time.Hour), 30),
	}
	m := store.NewMemory(nil, nil, appts)

	sunday := day.AddDate(0, 0, 6)
	got, err := m.AppointmentsByDoctorAndDateRange(context.Background(), "doc-1", day, sunday)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("got %d appointments, want 2 (end day inclusive)", len(got))
	}
	for _, a := range got {
		if a.ID == "next-monday" {
			t.Error("range leaked past end of Sunday")
		}
	}
}

func TestSeedDemo(t *testing.T) {
	m := store.SeedDemo(day)
	ctx := context.Background()

	docs, err := m.AllDoctors(ctx)
	if err != nil {
		t.Fatalf("doctors: %v", err)
	}
	if len(docs) != 5 {
		t.Fatalf("seeded %d doctors, want 5", len(docs))
	}

	pats, err := m.AllPatients(ctx)
	if err != nil {
		t.Fatalf("patients: %v", err)
	}
	if len(pats) != 5 {
		t.Fatalf("seeded %d patients, want 5", len(pats))
	}

	// every doctor has work somewhere in the seeded three-day spread
	for _, d := range docs {
		total := 0
		for i := 0; i < 3; i++ {
			appts, err := m.AppointmentsByDoctorAndDate(ctx, d.ID, day.AddDate(0, 0, i))
			if err != nil {
				t.Fatalf("appointments for %s: %v", d.Name, err)
			}
			total += len(appts)
		}
		if total != 4 {
			t.Errorf("doctor %s has %d seeded appointments, want 4", d.Name, total)
		}
	}
}
