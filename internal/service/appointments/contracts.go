package appointments

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BookingConsole/internal/domain"
	"github.com/m04kA/SMC-BookingConsole/internal/integrations/schedcore"
)

// SchedCoreClient интерфейс клиента SchedCore
type SchedCoreClient interface {
	ListAppointments(ctx context.Context, start, end time.Time) ([]*domain.Appointment, error)
	ListAppointmentsByContact(ctx context.Context, contactID string) ([]*domain.Appointment, error)
	CreateAppointment(ctx context.Context, draft *schedcore.AppointmentDraft) (*domain.Appointment, error)
	UpdateAppointment(ctx context.Context, id string, patch *schedcore.AppointmentPatch) (*domain.Appointment, error)
	DeleteAppointment(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
