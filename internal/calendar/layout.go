package calendar

import (
	"fmt"
	"time"

	"clinic-calendar-api/internal/model"
)

// Position is the visual geometry of one appointment inside its home slot.
// Offsets and heights are pixels against cfg.RowHeight rows.
type Position struct {
	TopOffset float64
	Height    float64
	Span      int
}

// SlotEntry pairs an appointment with its computed position.
type SlotEntry struct {
	Appointment model.PopulatedAppointment
	Position    Position
}

// SlotLayout is one slot row of the rendered grid with the appointments
// whose start instant falls inside it, in stacking order.
type SlotLayout struct {
	Slot    model.TimeSlot
	Entries []SlotEntry
}

// Layout buckets each appointment into the single slot containing its
// start instant (half-open: a start exactly on a boundary belongs to the
// slot beginning there) and computes its sub-slot position. Appointments
// are expected pre-sorted by start time; an appointment's geometry never
// depends on its slot neighbours, and stacking order within a slot is the
// input order. Appointments starting outside the working-hour window have
// no home slot and are omitted. A record whose duration rounds to zero or
// negative minutes is rejected.
func Layout(day time.Time, cfg Config, populated []model.PopulatedAppointment) ([]SlotLayout, error) {
	slots := Slots(day, cfg)
	out := make([]SlotLayout, len(slots))
	for i, s := range slots {
		out[i] = SlotLayout{Slot: s}
	}
	if len(slots) == 0 {
		return out, nil
	}

	gridStart := slots[0].Start
	width := time.Duration(cfg.SlotMinutes) * time.Minute

	for _, p := range populated {
		mins := p.EndTime.Sub(p.StartTime).Round(time.Minute)
		if mins <= 0 {
			return nil, fmt.Errorf("%w: appointment %s", ErrInvalidAppointment, p.ID)
		}

		offset := p.StartTime.Sub(gridStart)
		if offset < 0 {
			continue
		}
		idx := int(offset / width)
		if idx >= len(slots) {
			continue
		}

		out[idx].Entries = append(out[idx].Entries, SlotEntry{
			Appointment: p,
			Position:    position(p, slots[idx], cfg, mins),
		})
	}
	return out, nil
}

func position(p model.PopulatedAppointment, slot model.TimeSlot, cfg Config, duration time.Duration) Position {
	durMins := duration.Minutes()
	slotMins := float64(cfg.SlotMinutes)

	fromSlotStart := p.StartTime.Sub(slot.Start).Minutes()
	top := fromSlotStart / slotMins * cfg.RowHeight
	if top < 0 {
		top = 0
	}

	height := durMins / slotMins * cfg.RowHeight
	if max := cfg.RowHeight - top - slotMargin; height > max {
		height = max
	}
	if height < minEntryHeight {
		height = minEntryHeight
	}

	span := (int(durMins) + cfg.SlotMinutes - 1) / cfg.SlotMinutes

	return Position{TopOffset: top, Height: height, Span: span}
}
