package choose_slot

import (
	bookingWizard "github.com/m04kA/SMC-BookingConsole/internal/usecase/booking_wizard"
)

type BookingWizardUseCase interface {
	ChooseSlot(sessionID, label, calendarID string) (*bookingWizard.SessionView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
