package update_appointment

import (
	"context"

	"github.com/m04kA/SMC-BookingConsole/internal/domain"
	"github.com/m04kA/SMC-BookingConsole/internal/integrations/schedcore"
)

type AppointmentsService interface {
	Update(ctx context.Context, id string, patch *schedcore.AppointmentPatch) (*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
