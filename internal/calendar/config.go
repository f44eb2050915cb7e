package calendar

import "fmt"

// Layout constants. RowHeight is per-config; these two are fixed by the
// rendering grid.
const (
	slotMargin     = 4.0
	minEntryHeight = 20.0
)

// Config holds the working-hour window and slot granularity of the
// calendar grid.
type Config struct {
	StartHour   int
	EndHour     int
	SlotMinutes int
	RowHeight   float64
}

func DefaultConfig() Config {
	return Config{
		StartHour:   8,
		EndHour:     18,
		SlotMinutes: 30,
		RowHeight:   70,
	}
}

// Validate rejects configs that cannot tile a day cleanly. Slot durations
// that do not divide 60 would produce ragged slot boundaries, so they are
// refused at load time rather than rendered.
func (c Config) Validate() error {
	if c.StartHour < 0 || c.EndHour > 24 || c.StartHour >= c.EndHour {
		return fmt.Errorf("calendar: working hours %d-%d out of order", c.StartHour, c.EndHour)
	}
	if c.SlotMinutes <= 0 || 60%c.SlotMinutes != 0 {
		return fmt.Errorf("calendar: slot duration %dm must evenly divide 60", c.SlotMinutes)
	}
	if c.RowHeight <= 0 {
		return fmt.Errorf("calendar: row height %.0f must be positive", c.RowHeight)
	}
	return nil
}

// SlotCount is the number of slots a single day produces.
func (c Config) SlotCount() int {
	return (c.EndHour - c.StartHour) * 60 / c.SlotMinutes
}
