package booking_wizard

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BookingConsole/internal/domain"
	"github.com/m04kA/SMC-BookingConsole/internal/integrations/schedcore"
	"github.com/m04kA/SMC-BookingConsole/internal/usecase/aggregate_slots"
)

// SlotAggregator интерфейс use case агрегации слотов
type SlotAggregator interface {
	Execute(ctx context.Context, req *aggregate_slots.Request) (*aggregate_slots.Response, error)
}

// SchedCoreClient интерфейс клиента SchedCore
type SchedCoreClient interface {
	CreateAppointment(ctx context.Context, draft *schedcore.AppointmentDraft) (*domain.Appointment, error)
}

// ProfileStore интерфейс локального профиля контакта
type ProfileStore interface {
	Current() domain.Contact
	Merge(contact domain.Contact) error
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
