package calendar

import (
	"time"

	"clinic-calendar-api/internal/model"
)

// Slots partitions the working hours of day into contiguous half-open
// [start, end) slots of cfg.SlotMinutes each. The partition is total:
// no gaps, no overlaps, and every slot has the same width. Pure and
// deterministic for a given day and config.
func Slots(day time.Time, cfg Config) []model.TimeSlot {
	start := time.Date(day.Year(), day.Month(), day.Day(), cfg.StartHour, 0, 0, 0, day.Location())
	width := time.Duration(cfg.SlotMinutes) * time.Minute

	out := make([]model.TimeSlot, 0, cfg.SlotCount())
	for i := 0; i < cfg.SlotCount(); i++ {
		s := start.Add(time.Duration(i) * width)
		out = append(out, model.TimeSlot{
			Start: s,
			End:   s.Add(width),
			Label: s.Format("3:04 PM"),
		})
	}
	return out
}

// dayStart truncates t to midnight in its own location.
func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// weekStart returns the Monday of the week containing t, at midnight.
func weekStart(t time.Time) time.Time {
	wd := int(t.Weekday())
	if wd == 0 { // Sunday closes the week
		wd = 7
	}
	return dayStart(t).AddDate(0, 0, -(wd - 1))
}
