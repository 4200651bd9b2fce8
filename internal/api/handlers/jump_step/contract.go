package jump_step

import (
	"github.com/m04kA/SMC-BookingConsole/internal/domain"
	bookingWizard "github.com/m04kA/SMC-BookingConsole/internal/usecase/booking_wizard"
)

type BookingWizardUseCase interface {
	JumpToStep(sessionID string, step domain.Step) (*bookingWizard.SessionView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
