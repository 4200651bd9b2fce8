package domain

import (
	"strings"
	"time"
)

// AvailabilityWindow represents a raw open interval computed by SchedCore
// for a single query date. Ephemeral: never cached beyond the current view.
//
// Start/End несут wall-clock значения, проштампованные как UTC:
// часы и минуты, прочитанные UTC-аксессорами, и есть отображаемое время.
type AvailabilityWindow struct {
	Start        time.Time
	End          time.Time
	CalendarID   string
	EmployeeName string
}

// DisplaySlot is a deduplicated, human-readable rendering of one or more
// availability windows sharing a label ("HH:MM - HH:MM").
type DisplaySlot struct {
	Label        string
	CalendarID   string
	EmployeeName string
}

// StartLabel returns the "HH:MM" part before the separator
func (s *DisplaySlot) StartLabel() string {
	start, _, _ := strings.Cut(s.Label, LabelSeparator)
	return start
}

// EndLabel returns the "HH:MM" part after the separator
func (s *DisplaySlot) EndLabel() string {
	_, end, _ := strings.Cut(s.Label, LabelSeparator)
	return end
}
