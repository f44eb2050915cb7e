package rpc

import (
	"math"
	"time"

	"google.golang.org/protobuf/encoding/protowire"
)

type Doctor struct {
	ID        string
	Name      string
	Specialty string
	Email     string
	Phone     string
}

func (m *Doctor) marshal() []byte {
	var out []byte
	out = appendString(out, 1, m.ID)
	out = appendString(out, 2, m.Name)
	out = appendString(out, 3, m.Specialty)
	out = appendString(out, 4, m.Email)
	out = appendString(out, 5, m.Phone)
	return out
}

func (m *Doctor) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		if typ == protowire.BytesType && num >= 1 && num <= 5 {
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			switch num {
			case 1:
				m.ID = string(v)
			case 2:
				m.Name = string(v)
			case 3:
				m.Specialty = string(v)
			case 4:
				m.Email = string(v)
			case 5:
				m.Phone = string(v)
			}
			b = b[n:]
			continue
		}
		n = protowire.ConsumeFieldValue(num, typ, b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
	}
	return nil
}

// Appointment carries the populated view record: the raw appointment plus
// the resolved patient name and the type's display label and color.
type Appointment struct {
	ID          string
	DoctorID    string
	PatientID   string
	PatientName string
	StartTime   time.Time
	EndTime     time.Time
	Type        string
	TypeLabel   string
	Color       string
	Notes       string
}

func (m *Appointment) marshal() []byte {
	var out []byte
	out = appendString(out, 1, m.ID)
	out = appendString(out, 2, m.DoctorID)
	out = appendString(out, 3, m.PatientID)
	out = appendString(out, 4, m.PatientName)
	out = appendTime(out, 5, m.StartTime)
	out = appendTime(out, 6, m.EndTime)
	out = appendString(out, 7, m.Type)
	out = appendString(out, 8, m.TypeLabel)
	out = appendString(out, 9, m.Color)
	out = appendString(out, 10, m.Notes)
	return out
}

func (m *Appointment) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		if typ == protowire.BytesType {
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			var err error
			switch num {
			case 1:
				m.ID = string(v)
			case 2:
				m.DoctorID = string(v)
			case 3:
				m.PatientID = string(v)
			case 4:
				m.PatientName = string(v)
			case 5:
				m.StartTime, err = parseTime(v)
			case 6:
				m.EndTime, err = parseTime(v)
			case 7:
				m.Type = string(v)
			case 8:
				m.TypeLabel = string(v)
			case 9:
				m.Color = string(v)
			case 10:
				m.Notes = string(v)
			}
			if err != nil {
				return err
			}
			b = b[n:]
			continue
		}
		n = protowire.ConsumeFieldValue(num, typ, b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
	}
	return nil
}

type Position struct {
	TopOffset float64
	Height    float64
	Span      int32
}

func (m *Position) marshal() []byte {
	var out []byte
	out = appendDouble(out, 1, m.TopOffset)
	out = appendDouble(out, 2, m.Height)
	out = appendInt32(out, 3, m.Span)
	return out
}

func (m *Position) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		switch {
		case num == 1 && typ == protowire.Fixed64Type:
			v, n := protowire.ConsumeFixed64(b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.TopOffset = math.Float64frombits(v)
			b = b[n:]
		case num == 2 && typ == protowire.Fixed64Type:
			v, n := protowire.ConsumeFixed64(b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.Height = math.Float64frombits(v)
			b = b[n:]
		case num == 3 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.Span = int32(v)
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			b = b[n:]
		}
	}
	return nil
}

type TimeSlot struct {
	Start time.Time
	End   time.Time
	Label string
}

func (m *TimeSlot) marshal() []byte {
	var out []byte
	out = appendTime(out, 1, m.Start)
	out = appendTime(out, 2, m.End)
	out = appendString(out, 3, m.Label)
	return out
}

func (m *TimeSlot) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		if typ == protowire.BytesType {
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			var err error
			switch num {
			case 1:
				m.Start, err = parseTime(v)
			case 2:
				m.End, err = parseTime(v)
			case 3:
				m.Label = string(v)
			}
			if err != nil {
				return err
			}
			b = b[n:]
			continue
		}
		n = protowire.ConsumeFieldValue(num, typ, b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
	}
	return nil
}

type SlotEntry struct {
	Appointment *Appointment
	Position    *Position
}

func (m *SlotEntry) marshal() []byte {
	var out []byte
	if m.Appointment != nil {
		out = appendMessage(out, 1, m.Appointment)
	}
	if m.Position != nil {
		out = appendMessage(out, 2, m.Position)
	}
	return out
}

func (m *SlotEntry) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		if typ == protowire.BytesType {
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			switch num {
			case 1:
				m.Appointment = &Appointment{}
				if err := m.Appointment.unmarshal(v); err != nil {
					return err
				}
			case 2:
				m.Position = &Position{}
				if err := m.Position.unmarshal(v); err != nil {
					return err
				}
			}
			b = b[n:]
			continue
		}
		n = protowire.ConsumeFieldValue(num, typ, b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
	}
	return nil
}

type SlotLayout struct {
	Slot    *TimeSlot
	Entries []*SlotEntry
}

func (m *SlotLayout) marshal() []byte {
	var out []byte
	if m.Slot != nil {
		out = appendMessage(out, 1, m.Slot)
	}
	for _, e := range m.Entries {
		out = appendMessage(out, 2, e)
	}
	return out
}

func (m *SlotLayout) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		if typ == protowire.BytesType {
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			switch num {
			case 1:
				m.Slot = &TimeSlot{}
				if err := m.Slot.unmarshal(v); err != nil {
					return err
				}
			case 2:
				e := &SlotEntry{}
				if err := e.unmarshal(v); err != nil {
					return err
				}
				m.Entries = append(m.Entries, e)
			}
			b = b[n:]
			continue
		}
		n = protowire.ConsumeFieldValue(num, typ, b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
	}
	return nil
}

type Day struct {
	Date         time.Time
	Slots        []*SlotLayout
	Appointments []*Appointment
}

func (m *Day) marshal() []byte {
	var out []byte
	out = appendTime(out, 1, m.Date)
	for _, s := range m.Slots {
		out = appendMessage(out, 2, s)
	}
	for _, a := range m.Appointments {
		out = appendMessage(out, 3, a)
	}
	return out
}

func (m *Day) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		if typ == protowire.BytesType {
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			switch num {
			case 1:
				t, err := parseTime(v)
				if err != nil {
					return err
				}
				m.Date = t
			case 2:
				s := &SlotLayout{}
				if err := s.unmarshal(v); err != nil {
					return err
				}
				m.Slots = append(m.Slots, s)
			case 3:
				a := &Appointment{}
				if err := a.unmarshal(v); err != nil {
					return err
				}
				m.Appointments = append(m.Appointments, a)
			}
			b = b[n:]
			continue
		}
		n = protowire.ConsumeFieldValue(num, typ, b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
	}
	return nil
}

type Schedule struct {
	Doctor *Doctor
	Days   []*Day
}

func (m *Schedule) marshal() []byte {
	var out []byte
	if m.Doctor != nil {
		out = appendMessage(out, 1, m.Doctor)
	}
	for _, d := range m.Days {
		out = appendMessage(out, 2, d)
	}
	return out
}

func (m *Schedule) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		if typ == protowire.BytesType {
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			switch num {
			case 1:
				m.Doctor = &Doctor{}
				if err := m.Doctor.unmarshal(v); err != nil {
					return err
				}
			case 2:
				d := &Day{}
				if err := d.unmarshal(v); err != nil {
					return err
				}
				m.Days = append(m.Days, d)
			}
			b = b[n:]
			continue
		}
		n = protowire.ConsumeFieldValue(num, typ, b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
	}
	return nil
}

// ----- request / response envelopes -----

type ListDoctorsRequest struct{}

func (m *ListDoctorsRequest) marshal() []byte        { return nil }
func (m *ListDoctorsRequest) unmarshal([]byte) error { return nil }

type ListDoctorsResponse struct {
	Doctors []*Doctor
}

func (m *ListDoctorsResponse) marshal() []byte {
	var out []byte
	for _, d := range m.Doctors {
		out = appendMessage(out, 1, d)
	}
	return out
}

func (m *ListDoctorsResponse) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		if num == 1 && typ == protowire.BytesType {
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			d := &Doctor{}
			if err := d.unmarshal(v); err != nil {
				return err
			}
			m.Doctors = append(m.Doctors, d)
			b = b[n:]
			continue
		}
		n = protowire.ConsumeFieldValue(num, typ, b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
	}
	return nil
}

type GetDoctorRequest struct {
	ID string
}

func (m *GetDoctorRequest) marshal() []byte {
	return appendString(nil, 1, m.ID)
}

func (m *GetDoctorRequest) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		if num == 1 && typ == protowire.BytesType {
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.ID = string(v)
			b = b[n:]
			continue
		}
		n = protowire.ConsumeFieldValue(num, typ, b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
	}
	return nil
}

type GetDoctorResponse struct {
	Doctor *Doctor
}

func (m *GetDoctorResponse) marshal() []byte {
	var out []byte
	if m.Doctor != nil {
		out = appendMessage(out, 1, m.Doctor)
	}
	return out
}

func (m *GetDoctorResponse) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		if num == 1 && typ == protowire.BytesType {
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.Doctor = &Doctor{}
			if err := m.Doctor.unmarshal(v); err != nil {
				return err
			}
			b = b[n:]
			continue
		}
		n = protowire.ConsumeFieldValue(num, typ, b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
	}
	return nil
}

// ScheduleRequest is shared by the day and week queries: the two methods
// differ only in the window they derive from Date.
type ScheduleRequest struct {
	DoctorID string
	Date     time.Time
	Search   string
}

func (m *ScheduleRequest) marshal() []byte {
	var out []byte
	out = appendString(out, 1, m.DoctorID)
	out = appendTime(out, 2, m.Date)
	out = appendString(out, 3, m.Search)
	return out
}

func (m *ScheduleRequest) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		if typ == protowire.BytesType {
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			var err error
			switch num {
			case 1:
				m.DoctorID = string(v)
			case 2:
				m.Date, err = parseTime(v)
			case 3:
				m.Search = string(v)
			}
			if err != nil {
				return err
			}
			b = b[n:]
			continue
		}
		n = protowire.ConsumeFieldValue(num, typ, b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
	}
	return nil
}

type ScheduleResponse struct {
	Schedule *Schedule
}

func (m *ScheduleResponse) marshal() []byte {
	var out []byte
	if m.Schedule != nil {
		out = appendMessage(out, 1, m.Schedule)
	}
	return out
}

func (m *ScheduleResponse) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		if num == 1 && typ == protowire.BytesType {
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.Schedule = &Schedule{}
			if err := m.Schedule.unmarshal(v); err != nil {
				return err
			}
			b = b[n:]
			continue
		}
		n = protowire.ConsumeFieldValue(num, typ, b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
	}
	return nil
}
