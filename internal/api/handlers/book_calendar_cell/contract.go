package book_calendar_cell

import (
	"context"

	bookingWizard "github.com/m04kA/SMC-BookingConsole/internal/usecase/booking_wizard"
	calendarView "github.com/m04kA/SMC-BookingConsole/internal/usecase/calendar_view"
)

type CalendarViewUseCase interface {
	BookCell(ctx context.Context, req *calendarView.BookCellRequest) (*bookingWizard.SessionView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
