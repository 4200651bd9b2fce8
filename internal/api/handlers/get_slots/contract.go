package get_slots

import (
	"context"

	aggregateSlots "github.com/m04kA/SMC-BookingConsole/internal/usecase/aggregate_slots"
)

type AggregateSlotsUseCase interface {
	Execute(ctx context.Context, req *aggregateSlots.Request) (*aggregateSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
