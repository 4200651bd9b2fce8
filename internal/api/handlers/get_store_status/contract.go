package get_store_status

import (
	"github.com/m04kA/SMC-BookingConsole/internal/domain"
	appointmentsService "github.com/m04kA/SMC-BookingConsole/internal/service/appointments"
)

type AppointmentsService interface {
	Flags() appointmentsService.OpFlags
	Cached() []*domain.Appointment
	CachedByContact(contactID string) []*domain.Appointment
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
