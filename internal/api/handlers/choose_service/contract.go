package choose_service

import (
	"context"

	"github.com/m04kA/SMC-BookingConsole/internal/domain"
	bookingWizard "github.com/m04kA/SMC-BookingConsole/internal/usecase/booking_wizard"
)

type BookingWizardUseCase interface {
	ChooseService(ctx context.Context, sessionID, categoryID string, service domain.Service) (*bookingWizard.SessionView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
