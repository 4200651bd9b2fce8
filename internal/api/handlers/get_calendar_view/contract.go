package get_calendar_view

import (
	"context"

	calendarView "github.com/m04kA/SMC-BookingConsole/internal/usecase/calendar_view"
)

type CalendarViewUseCase interface {
	Execute(ctx context.Context, req *calendarView.Request) (*calendarView.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
