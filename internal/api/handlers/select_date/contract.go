package select_date

import (
	"context"
	"time"

	bookingWizard "github.com/m04kA/SMC-BookingConsole/internal/usecase/booking_wizard"
)

type BookingWizardUseCase interface {
	SelectDate(ctx context.Context, sessionID string, date time.Time) (*bookingWizard.SessionView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
