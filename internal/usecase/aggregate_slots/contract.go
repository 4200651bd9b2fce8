package aggregate_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BookingConsole/internal/domain"
)

// SchedCoreClient интерфейс клиента SchedCore
type SchedCoreClient interface {
	GetTimeslots(ctx context.Context, date time.Time, categoryID, serviceID string) ([]domain.AvailabilityWindow, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
