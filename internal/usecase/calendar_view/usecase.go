package calendar_view

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BookingConsole/internal/domain"
	"github.com/m04kA/SMC-BookingConsole/internal/usecase/booking_wizard"
	"github.com/m04kA/SMC-BookingConsole/pkg/wallclock"
)

// maxRosterPages предохранитель от бесконечного листания ростера
const maxRosterPages = 50

// UseCase календарное представление: записи текущего дня, разложенные по
// ресурсам (календарям/сотрудникам), плюс посев админской сессии мастера
// кликом по пустой ячейке
type UseCase struct {
	store        AppointmentStore
	client       SchedCoreClient
	wizard       WizardSeeder
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	store AppointmentStore,
	client SchedCoreClient,
	wizard WizardSeeder,
	logger Logger,
) *UseCase {
	return &UseCase{
		store:        store,
		client:       client,
		wizard:       wizard,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute строит дневную сетку на дату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	uc.logger.Info("CalendarView: date=%s, offset=%d", req.Date.Format(domain.DateFormat), req.OffsetMinutes)

	// 1. Ростер ресурсов, страница за страницей до исчерпания
	roster, err := uc.loadRoster(ctx)
	if err != nil {
		uc.logger.Error("CalendarView: roster fetch failed: %v", err)
		return nil, fmt.Errorf("%w: failed to load roster: %v", ErrInternal, err)
	}

	// 2. Записи дня из кеша-хранилища (сбой уже деградирован до пустого
	// списка внутри store)
	appointments, err := uc.store.List(ctx, req.Date, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
	}

	// 3. Проекции под календарную библиотеку
	resources := buildResources(roster)
	events := buildEvents(appointments, req.OffsetMinutes)

	uc.logger.Info("CalendarView: %d resources, %d events for %s",
		len(resources), len(events), req.Date.Format(domain.DateFormat))

	return &Response{
		Date:      req.Date,
		Resources: resources,
		Events:    events,
	}, nil
}

// BookCell обрабатывает клик администратора по пустой ячейке: прошедшая
// ячейка отклоняется на месте, будущая открывает мастер сразу на шаге
// EnterDetails с закреплённым ресурсом
func (uc *UseCase) BookCell(ctx context.Context, req *BookCellRequest) (*booking_wizard.SessionView, error) {
	if req.CalendarID == "" {
		return nil, fmt.Errorf("%w: calendarID is required", ErrInvalidInput)
	}
	if req.Service.ID == "" || req.Service.DurationMinutes <= 0 {
		return nil, fmt.Errorf("%w: service with positive duration is required", ErrInvalidInput)
	}
	if req.Start.IsZero() {
		return nil, fmt.Errorf("%w: start is required", ErrInvalidInput)
	}

	// Сравнение в той же wall-clock конвенции, что и Start
	now := uc.timeProvider.Now()
	nowWall := time.Date(now.Year(), now.Month(), now.Day(),
		now.Hour(), now.Minute(), now.Second(), 0, time.UTC)
	if req.Start.Before(nowWall) {
		uc.logger.Warn("BookCell: past cell rejected, start=%s", wallclock.FormatInstant(req.Start))
		return nil, ErrPastCell
	}

	end := req.Start.Add(time.Duration(req.Service.DurationMinutes) * time.Minute)
	slot := domain.DisplaySlot{
		Label:      wallclock.RangeLabel(req.Start, end),
		CalendarID: req.CalendarID,
	}

	view, err := uc.wizard.StartSeededSession(&booking_wizard.SeedRequest{
		CalendarID: req.CalendarID,
		CategoryID: req.CategoryID,
		Service:    req.Service,
		Date:       req.Start,
		Slot:       slot,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to seed session: %v", ErrInternal, err)
	}

	uc.logger.Info("BookCell: seeded session=%s, calendar=%s, slot=%s", view.ID, req.CalendarID, slot.Label)
	return view, nil
}

// loadRoster листает /calendars до последней страницы
func (uc *UseCase) loadRoster(ctx context.Context) ([]domain.Calendar, error) {
	roster := make([]domain.Calendar, 0, domain.DefaultRosterPageLimit)

	for page := 1; page <= maxRosterPages; page++ {
		result, err := uc.client.ListCalendars(ctx, page, domain.DefaultRosterPageLimit)
		if err != nil {
			return nil, err
		}
		roster = append(roster, result.Items...)
		if !result.HasMore() {
			break
		}
	}

	return roster, nil
}

// buildResources проецирует активные календари в ресурсы сетки
func buildResources(roster []domain.Calendar) []Resource {
	resources := make([]Resource, 0, len(roster))
	for _, c := range roster {
		if !c.Active {
			continue
		}
		resources = append(resources, Resource{
			ResourceID:    c.ID,
			ResourceTitle: c.Name,
		})
	}
	return resources
}

// buildEvents проецирует записи в события сетки. Start/End сдвигаются на
// минус смещение зрителя (GridShift), чтобы погасить автоматическую
// локальную интерпретацию рендерера; отменённые записи в сетку не попадают.
func buildEvents(appointments []*domain.Appointment, offsetMinutes int) []Event {
	events := make([]Event, 0, len(appointments))
	for _, a := range appointments {
		if !a.IsActive() {
			continue
		}
		events = append(events, Event{
			ID:         a.ID,
			Title:      a.Contact.FullName(),
			Start:      wallclock.GridShift(a.StartDate, offsetMinutes),
			End:        wallclock.GridShift(a.EndDate, offsetMinutes),
			ResourceID: a.CalendarID,
			Status:     a.Status,
		})
	}
	return events
}
