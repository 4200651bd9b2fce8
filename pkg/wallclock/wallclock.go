// Package wallclock converts between SchedCore timestamps and the times a
// console user actually sees.
//
// SchedCore штампует границы слотов как UTC, но значения часов и минут в
// них — это wall-clock время для показа пользователю. Чтение поэтому идёт
// строго через UTC-аксессоры (SlotLabel), иначе отображаемое время тихо
// уезжает на смещение зрителя.
//
// Запись (ComposeInstant), наоборот, строит абсолютный момент: выбранная
// дата плюс метка слота, сдвинутые на минус смещение зрителя. Сдвиг для
// календарной сетки (GridShift) тоже вычитает смещение, но существует
// только ради стороннего рендерера и намеренно держится отдельной функцией.
//
// SlotLabel(ComposeInstant(d, "08:00", 120)) == "06:00" — это расхождение
// путей чтения и записи сохранено как есть; см. DESIGN.md.
package wallclock

import (
	"fmt"
	"time"
)

const (
	labelFormat   = "15:04"
	instantFormat = "2006-01-02T15:04:05.000Z"
)

// SlotLabel renders the wall-clock "HH:MM" carried in a SchedCore
// timestamp. Hour and minute are read via UTC accessors regardless of the
// process timezone.
func SlotLabel(t time.Time) string {
	return t.UTC().Format(labelFormat)
}

// RangeLabel renders "HH:MM - HH:MM" for a window
func RangeLabel(start, end time.Time) string {
	return SlotLabel(start) + " - " + SlotLabel(end)
}

// ComposeInstant builds the absolute instant to persist for a slot the
// user picked: the wall-clock label on the selected date, pre-shifted by
// the negative of the viewer offset.
//
// offsetMinutes — смещение зрителя к востоку от UTC (UTC+2 → 120).
func ComposeInstant(date time.Time, label string, offsetMinutes int) (time.Time, error) {
	hhmm, err := time.Parse(labelFormat, label)
	if err != nil {
		return time.Time{}, fmt.Errorf("wallclock: invalid slot label %q: %w", label, err)
	}

	wall := time.Date(date.Year(), date.Month(), date.Day(),
		hhmm.Hour(), hhmm.Minute(), 0, 0, time.UTC)

	return wall.Add(-time.Duration(offsetMinutes) * time.Minute), nil
}

// GridShift applies the display-only correction for the calendar grid
// renderer: the viewer offset is subtracted so the renderer's automatic
// local-time interpretation adds it back and lands on the stored wall
// clock. Not a domain conversion — keep it out of any read/write path.
func GridShift(t time.Time, offsetMinutes int) time.Time {
	return t.Add(-time.Duration(offsetMinutes) * time.Minute)
}

// FormatInstant renders a timestamp in the SchedCore wire form
// ("2006-01-02T15:04:05.000Z", always UTC)
func FormatInstant(t time.Time) string {
	return t.UTC().Format(instantFormat)
}

// ParseInstant parses a SchedCore wire timestamp
func ParseInstant(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("wallclock: invalid instant %q: %w", s, err)
	}
	return t.UTC(), nil
}
