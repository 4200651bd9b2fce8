package list_appointments

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BookingConsole/internal/domain"
)

type AppointmentsService interface {
	List(ctx context.Context, start, end time.Time) ([]*domain.Appointment, error)
	ListByContact(ctx context.Context, contactID string) ([]*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
