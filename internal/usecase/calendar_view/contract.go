package calendar_view

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BookingConsole/internal/domain"
	"github.com/m04kA/SMC-BookingConsole/internal/usecase/booking_wizard"
)

// AppointmentStore интерфейс кеша записей
type AppointmentStore interface {
	List(ctx context.Context, start, end time.Time) ([]*domain.Appointment, error)
}

// SchedCoreClient интерфейс клиента SchedCore
type SchedCoreClient interface {
	ListCalendars(ctx context.Context, page, limit int) (*domain.CalendarPage, error)
}

// WizardSeeder интерфейс посева админской сессии мастера
type WizardSeeder interface {
	StartSeededSession(req *booking_wizard.SeedRequest) (*booking_wizard.SessionView, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
