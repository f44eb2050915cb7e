package model

import "time"

type Specialty string

const (
	Cardiology      Specialty = "cardiology"
	Pediatrics      Specialty = "pediatrics"
	GeneralPractice Specialty = "general-practice"
	Orthopedics     Specialty = "orthopedics"
	Dermatology     Specialty = "dermatology"
)

type AppointmentType string

const (
	Checkup      AppointmentType = "checkup"
	FollowUp     AppointmentType = "follow-up"
	Consultation AppointmentType = "consultation"
	Procedure    AppointmentType = "procedure"
	Emergency    AppointmentType = "emergency"
)

var typeLabels = map[AppointmentType]string{
	Checkup:      "Check-up",
	FollowUp:     "Follow-up",
	Consultation: "Consultation",
	Procedure:    "Procedure",
	Emergency:    "Emergency",
}

var typeColors = map[AppointmentType]string{
	Checkup:      "#4caf50",
	FollowUp:     "#2196f3",
	Consultation: "#9c27b0",
	Procedure:    "#ff9800",
	Emergency:    "#f44336",
}

// Label is the human-readable name shown on calendar entries.
func (t AppointmentType) Label() string {
	if l, ok := typeLabels[t]; ok {
		return l
	}
	return string(t)
}

// Color is the display color associated with the type.
func (t AppointmentType) Color() string {
	if c, ok := typeColors[t]; ok {
		return c
	}
	return "#9e9e9e"
}

type Doctor struct {
	ID        string
	Name      string
	Specialty Specialty
	Email     string
	Phone     string
}

type Patient struct {
	ID    string
	Name  string
	Email string
	Phone string
}

type Appointment struct {
	ID        string
	DoctorID  string
	PatientID string
	StartTime time.Time
	EndTime   time.Time
	Type      AppointmentType
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PopulatedAppointment is an appointment joined with its resolved doctor
// and patient records for display. It does not own the referenced entities.
type PopulatedAppointment struct {
	Appointment
	Doctor  Doctor
	Patient Patient
}

// TimeSlot is one half-open [Start, End) cell of a calendar day.
type TimeSlot struct {
	Start time.Time
	End   time.Time
	Label string
}
