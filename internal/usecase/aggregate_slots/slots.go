package aggregate_slots

import (
	"sort"

	"github.com/m04kA/SMC-BookingConsole/internal/domain"
	"github.com/m04kA/SMC-BookingConsole/pkg/wallclock"
)

// sortWindows сортирует окна по возрастанию начала. Сортировка стабильная:
// при равном начале первым остаётся ресурс, пришедший раньше, — он же
// "побеждает" при глобальной дедупликации.
func sortWindows(windows []domain.AvailabilityWindow) []domain.AvailabilityWindow {
	sorted := make([]domain.AvailabilityWindow, len(windows))
	copy(sorted, windows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})
	return sorted
}

// aggregateGlobal строит клиентский список слотов: метка уникальна
// глобально, идентичность ресурса у метки отбрасывается — первый ресурс,
// владеющий меткой, тихо используется при бронировании этой метки.
func aggregateGlobal(windows []domain.AvailabilityWindow) []domain.DisplaySlot {
	sorted := sortWindows(windows)

	seen := make(map[string]struct{}, len(sorted))
	slots := make([]domain.DisplaySlot, 0, len(sorted))

	for _, w := range sorted {
		label := wallclock.RangeLabel(w.Start, w.End)
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		slots = append(slots, domain.DisplaySlot{
			Label:      label,
			CalendarID: w.CalendarID,
		})
	}

	return slots
}

// aggregatePerResource строит админскую боковую панель: дедупликация в
// рамках одного ресурса, одинаково выглядящие окна разных сотрудников
// остаются каждое со своим employee_name.
func aggregatePerResource(windows []domain.AvailabilityWindow) []domain.DisplaySlot {
	sorted := sortWindows(windows)

	type key struct {
		label      string
		calendarID string
	}
	seen := make(map[key]struct{}, len(sorted))
	slots := make([]domain.DisplaySlot, 0, len(sorted))

	for _, w := range sorted {
		label := wallclock.RangeLabel(w.Start, w.End)
		k := key{label: label, calendarID: w.CalendarID}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		slots = append(slots, domain.DisplaySlot{
			Label:        label,
			CalendarID:   w.CalendarID,
			EmployeeName: w.EmployeeName,
		})
	}

	return slots
}

// filterByCalendar оставляет окна закреплённого ресурса
func filterByCalendar(windows []domain.AvailabilityWindow, calendarID string) []domain.AvailabilityWindow {
	filtered := make([]domain.AvailabilityWindow, 0, len(windows))
	for _, w := range windows {
		if w.CalendarID == calendarID {
			filtered = append(filtered, w)
		}
	}
	return filtered
}
