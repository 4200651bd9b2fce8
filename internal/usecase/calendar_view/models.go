package calendar_view

import (
	"time"

	"github.com/m04kA/SMC-BookingConsole/internal/domain"
)

// Request модель запроса календарного представления
type Request struct {
	Date time.Time // День сетки

	// OffsetMinutes смещение зрителя к востоку от UTC: display-only
	// коррекция под рендерер сетки, не доменная конвертация
	OffsetMinutes int
}

// Resource проекция ресурса под календарную библиотеку
type Resource struct {
	ResourceID    string
	ResourceTitle string
}

// Event проекция записи под календарную библиотеку. Start/End уже
// сдвинуты на минус смещение зрителя (GridShift).
type Event struct {
	ID         string
	Title      string
	Start      time.Time
	End        time.Time
	ResourceID string
	Status     domain.AppointmentStatus
}

// Response модель ответа: многоресурсная дневная сетка
type Response struct {
	Date      time.Time
	Resources []Resource
	Events    []Event
}

// BookCellRequest клик администратора по пустой ячейке сетки.
// Start передаётся в той же wall-clock-как-UTC конвенции, что и окна
// SchedCore; категория и услуга админскому потоку уже известны.
type BookCellRequest struct {
	CalendarID string
	CategoryID string
	Service    domain.Service
	Start      time.Time
}
