package calendar_test

import (
	"testing"

	"go.uber.org/zap"

	"clinic-calendar-api/internal/calendar"
	"clinic-calendar-api/internal/model"
)

func TestPopulateJoinsReferences(t *testing.T) {
	a := appt("a1", at(9, 0), 30, model.Checkup, "")
	a.DoctorID = drNair.ID
	a.PatientID = patBen.ID

	got := calendar.Populate(zap.NewNop(), []model.Appointment{a},
		[]model.Doctor{drChen, drNair}, []model.Patient{patAlice, patBen})

	if len(got) != 1 {
		t.Fatalf("got %d populated appointments, want 1", len(got))
	}
	if got[0].Doctor.Name != drNair.Name {
		t.Errorf("doctor %q, want %q", got[0].Doctor.Name, drNair.Name)
	}
	if got[0].Patient.Name != patBen.Name {
		t.Errorf("patient %q, want %q", got[0].Patient.Name, patBen.Name)
	}
}

func TestPopulateSkipsDanglingReferences(t *testing.T) {
	orphanDoc := appt("orphan-doc", at(9, 0), 30, model.Checkup, "")
	orphanDoc.DoctorID = "no-such-doctor"
	orphanPat := appt("orphan-pat", at(10, 0), 30, model.Checkup, "")
	orphanPat.PatientID = "no-such-patient"
	ok := appt("ok", at(11, 0), 30, model.Checkup, "")

	got := calendar.Populate(zap.NewNop(),
		[]model.Appointment{orphanDoc, orphanPat, ok},
		[]model.Doctor{drChen}, []model.Patient{patAlice})

	if len(got) != 1 {
		t.Fatalf("got %d populated appointments, want only the resolvable one", len(got))
	}
	if got[0].ID != "ok" {
		t.Errorf("kept %s, want ok", got[0].ID)
	}
}

func TestPopulatePreservesOrder(t *testing.T) {
	appts := []model.Appointment{
		appt("a3", at(11, 0), 30, model.Checkup, ""),
		appt("a1", at(9, 0), 30, model.Checkup, ""),
		appt("a2", at(10, 0), 30, model.Checkup, ""),
	}

	got := calendar.Populate(zap.NewNop(), appts,
		[]model.Doctor{drChen}, []model.Patient{patAlice})

	want := []string{"a3", "a1", "a2"}
	for i, p := range got {
		if p.ID != want[i] {
			t.Errorf("result[%d] = %s, want %s", i, p.ID, want[i])
		}
	}
}

func TestSortAppointmentsByTime(t *testing.T) {
	appts := []model.Appointment{
		appt("late", at(14, 0), 30, model.Checkup, ""),
		appt("tie-b", at(9, 0), 30, model.Checkup, ""),
		appt("early", at(8, 0), 30, model.Checkup, ""),
		appt("tie-a", at(9, 0), 45, model.Checkup, ""),
	}

	got := calendar.SortAppointmentsByTime(appts)

	want := []string{"early", "tie-b", "tie-a", "late"}
	for i, a := range got {
		if a.ID != want[i] {
			t.Errorf("result[%d] = %s, want %s", i, a.ID, want[i])
		}
	}
	if appts[0].ID != "late" {
		t.Error("sort mutated its input")
	}
}
