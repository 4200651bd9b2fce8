package aggregate_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-BookingConsole/internal/domain"
)

// UseCase use case агрегации окон доступности в отображаемые слоты
type UseCase struct {
	client SchedCoreClient
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client SchedCoreClient, logger Logger) *UseCase {
	return &UseCase{
		client: client,
		logger: logger,
	}
}

// Execute выполняет use case агрегации слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AggregateSlots: category=%s, service=%s, date=%s, perResource=%t",
		req.CategoryID, req.ServiceID, req.Date.Format(domain.DateFormat), req.PerResource)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AggregateSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем сырые окна доступности.
	// Сбой SchedCore деградирует до пустого результата: для списковых
	// операций ошибка логируется и не блокирует интерфейс.
	windows, err := uc.client.GetTimeslots(ctx, req.Date, req.CategoryID, req.ServiceID)
	if err != nil {
		uc.logger.Error("AggregateSlots: timeslot fetch failed for date=%s, degrading to empty result: %v",
			req.Date.Format(domain.DateFormat), err)
		return &Response{Date: req.Date, Slots: []domain.DisplaySlot{}}, nil
	}

	// 3. Фильтр по закреплённому ресурсу
	if req.CalendarID != nil {
		windows = filterByCalendar(windows, *req.CalendarID)
	}

	// 4. Агрегация в выбранной области дедупликации
	var slots []domain.DisplaySlot
	if req.PerResource {
		slots = aggregatePerResource(windows)
	} else {
		slots = aggregateGlobal(windows)
	}

	uc.logger.Info("AggregateSlots: %d windows aggregated into %d slots for date=%s",
		len(windows), len(slots), req.Date.Format(domain.DateFormat))

	return &Response{
		Date:  req.Date,
		Slots: slots,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CategoryID == "" {
		return fmt.Errorf("%w: categoryID is required", ErrInvalidInput)
	}
	if req.ServiceID == "" {
		return fmt.Errorf("%w: serviceID is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.CalendarID != nil && *req.CalendarID == "" {
		return fmt.Errorf("%w: calendarID must not be empty when set", ErrInvalidInput)
	}
	return nil
}
