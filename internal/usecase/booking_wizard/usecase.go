package booking_wizard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BookingConsole/internal/domain"
	"github.com/m04kA/SMC-BookingConsole/internal/integrations/schedcore"
	"github.com/m04kA/SMC-BookingConsole/internal/usecase/aggregate_slots"
	"github.com/m04kA/SMC-BookingConsole/pkg/wallclock"
)

// UseCase пошаговый мастер бронирования: SelectService → SelectSlot →
// EnterDetails, терминальное действие Submit. Сессии живут в памяти,
// ключ — UUID, брошенные сессии выметает janitor по TTL.
type UseCase struct {
	slotsUC SlotAggregator
	client  SchedCoreClient
	profile ProfileStore

	ttl          time.Duration
	timeProvider TimeProvider
	logger       Logger

	mu       sync.Mutex
	sessions map[string]*session
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotsUC SlotAggregator,
	client SchedCoreClient,
	profile ProfileStore,
	ttl time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotsUC:      slotsUC,
		client:       client,
		profile:      profile,
		ttl:          ttl,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		sessions:     make(map[string]*session),
	}
}

// StartSession создает пустую сессию на первом шаге
func (uc *UseCase) StartSession() *SessionView {
	now := uc.timeProvider.Now()
	s := &session{
		id:        uuid.NewString(),
		step:      domain.StepSelectService,
		createdAt: now,
		updatedAt: now,
	}

	uc.mu.Lock()
	uc.sessions[s.id] = s
	view := s.view()
	uc.mu.Unlock()

	uc.logger.Info("StartSession: session=%s created", s.id)
	return uc.withPrefill(view)
}

// StartSeededSession создает админскую сессию сразу на шаге EnterDetails:
// календарь закреплён кликом по сетке, категория и услуга уже известны
func (uc *UseCase) StartSeededSession(req *SeedRequest) (*SessionView, error) {
	if req.CalendarID == "" {
		return nil, fmt.Errorf("%w: calendarID is required", ErrInvalidInput)
	}
	if req.Service.ID == "" {
		return nil, fmt.Errorf("%w: service is required", ErrInvalidInput)
	}
	if req.Date.IsZero() || req.Slot.Label == "" {
		return nil, fmt.Errorf("%w: date and slot are required", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()
	svc := req.Service
	slot := req.Slot
	slot.CalendarID = req.CalendarID

	s := &session{
		id:           uuid.NewString(),
		step:         domain.StepEnterDetails,
		categoryID:   req.CategoryID,
		service:      &svc,
		calendarID:   req.CalendarID,
		selectedDate: dateOnly(req.Date),
		selectedSlot: &slot,
		slots:        []domain.DisplaySlot{slot},
		createdAt:    now,
		updatedAt:    now,
	}

	uc.mu.Lock()
	uc.sessions[s.id] = s
	view := s.view()
	uc.mu.Unlock()

	uc.logger.Info("StartSeededSession: session=%s, calendar=%s, slot=%s", s.id, req.CalendarID, slot.Label)
	return uc.withPrefill(view), nil
}

// Get возвращает снимок сессии
func (uc *UseCase) Get(sessionID string) (*SessionView, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, ok := uc.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return uc.withPrefill(s.view()), nil
}

// ChooseService выбирает категорию и услугу. Допустим с любого шага:
// повторный вход со слотом или деталями инвалидирует весь выбор ниже —
// дата сбрасывается на сегодня (или ближайший будний день), слот
// очищается, сессия переходит на шаг выбора слота.
func (uc *UseCase) ChooseService(ctx context.Context, sessionID, categoryID string, service domain.Service) (*SessionView, error) {
	if categoryID == "" || service.ID == "" {
		return nil, fmt.Errorf("%w: categoryID and service are required", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()

	uc.mu.Lock()
	s, ok := uc.sessions[sessionID]
	if !ok {
		uc.mu.Unlock()
		return nil, ErrSessionNotFound
	}

	svc := service
	s.categoryID = categoryID
	s.service = &svc
	s.selectedDate = defaultBookingDate(now)
	s.selectedSlot = nil
	s.slots = nil
	s.step = domain.StepSelectSlot
	s.updatedAt = now

	date := s.selectedDate
	fetchCtx, req := uc.prepareFetch(ctx, s, date)
	uc.mu.Unlock()

	uc.logger.Info("ChooseService: session=%s, category=%s, service=%s, date=%s",
		sessionID, categoryID, service.ID, date.Format(domain.DateFormat))

	return uc.fetchAndApply(fetchCtx, sessionID, s, date, req)
}

// SelectDate выбирает дату на шаге выбора слота. Выходные и прошедшие
// даты отклоняются. Незавершённый запрос слотов предыдущей даты
// отменяется, чужой слот не удерживается.
func (uc *UseCase) SelectDate(ctx context.Context, sessionID string, date time.Time) (*SessionView, error) {
	now := uc.timeProvider.Now()

	uc.mu.Lock()
	s, ok := uc.sessions[sessionID]
	if !ok {
		uc.mu.Unlock()
		return nil, ErrSessionNotFound
	}
	if s.service == nil {
		uc.mu.Unlock()
		return nil, ErrServiceRequired
	}
	if dateDisabled(date, now) {
		uc.mu.Unlock()
		return nil, ErrDateNotSelectable
	}

	s.selectedDate = dateOnly(date)
	s.selectedSlot = nil
	s.step = domain.StepSelectSlot
	s.updatedAt = now

	target := s.selectedDate
	fetchCtx, req := uc.prepareFetch(ctx, s, target)
	uc.mu.Unlock()

	uc.logger.Info("SelectDate: session=%s, date=%s", sessionID, target.Format(domain.DateFormat))

	return uc.fetchAndApply(fetchCtx, sessionID, s, target, req)
}

// ChooseSlot выбирает слот на шаге выбора слота. Слот обязан
// присутствовать в актуальном списке: выбор, переживший смену даты,
// отклоняется как устаревший.
func (uc *UseCase) ChooseSlot(sessionID, label, calendarID string) (*SessionView, error) {
	if label == "" {
		return nil, fmt.Errorf("%w: slot label is required", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()

	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, ok := uc.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if s.service == nil {
		return nil, ErrServiceRequired
	}
	if s.step != domain.StepSelectSlot {
		return nil, fmt.Errorf("%w: slot can only be chosen at the slot step", ErrInvalidStep)
	}

	var found *domain.DisplaySlot
	for i := range s.slots {
		if s.slots[i].Label != label {
			continue
		}
		if calendarID != "" && s.slots[i].CalendarID != calendarID {
			continue
		}
		found = &s.slots[i]
		break
	}
	if found == nil {
		return nil, ErrSlotStale
	}

	slot := *found
	s.selectedSlot = &slot
	s.step = domain.StepEnterDetails
	s.updatedAt = now

	uc.logger.Info("ChooseSlot: session=%s, slot=%s, calendar=%s", sessionID, slot.Label, slot.CalendarID)
	return s.view(), nil
}

// JumpToStep переходит на шаг назад либо на шаг, чьи предпосылки уже
// выполнены. Переход на первый шаг стирает выбор даты и слота.
func (uc *UseCase) JumpToStep(sessionID string, step domain.Step) (*SessionView, error) {
	if !step.Valid() {
		return nil, fmt.Errorf("%w: unknown step %d", ErrInvalidInput, step)
	}

	now := uc.timeProvider.Now()

	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, ok := uc.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	switch step {
	case domain.StepSelectService:
		s.cancelFetch()
		s.selectedDate = time.Time{}
		s.selectedSlot = nil
		s.slots = nil
	case domain.StepSelectSlot:
		if s.service == nil {
			return nil, ErrServiceRequired
		}
	case domain.StepEnterDetails:
		if s.selectedSlot == nil {
			return nil, ErrSlotRequired
		}
	}

	s.step = step
	s.updatedAt = now

	uc.logger.Info("JumpToStep: session=%s, step=%s", sessionID, step)
	return s.view(), nil
}

// Submit отправляет завершённую сессию: составляет абсолютные start/end,
// собирает payload записи и создаёт её в SchedCore. Успех сбрасывает
// сессию на первый шаг и сливает контакт в профиль; сбой оставляет
// сессию на шаге EnterDetails без изменений для повтора.
func (uc *UseCase) Submit(ctx context.Context, req *SubmitRequest) (*SubmitResponse, error) {
	uc.mu.Lock()
	s, ok := uc.sessions[req.SessionID]
	if !ok {
		uc.mu.Unlock()
		return nil, ErrSessionNotFound
	}
	if s.step != domain.StepEnterDetails {
		uc.mu.Unlock()
		return nil, fmt.Errorf("%w: submit is only allowed at the details step", ErrInvalidStep)
	}
	if s.selectedSlot == nil {
		uc.mu.Unlock()
		return nil, ErrSlotRequired
	}
	if s.service == nil {
		uc.mu.Unlock()
		return nil, ErrServiceRequired
	}

	// Локальная валидация полей: не двигает сессию и не уходит в сеть
	if ve := validateContactDraft(&req.Contact); ve != nil {
		uc.mu.Unlock()
		uc.logger.Warn("Submit: session=%s, contact draft incomplete: %v", req.SessionID, ve)
		return nil, ve
	}
	if ve := validateSubmitExtras(req); ve != nil {
		uc.mu.Unlock()
		uc.logger.Warn("Submit: session=%s, invalid extras: %v", req.SessionID, ve)
		return nil, ve
	}

	slot := *s.selectedSlot
	date := s.selectedDate
	service := *s.service
	categoryID := s.categoryID
	calendarID := slot.CalendarID
	if s.calendarID != "" {
		calendarID = s.calendarID
	}
	uc.mu.Unlock()

	start, err := wallclock.ComposeInstant(date, slot.StartLabel(), req.OffsetMinutes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	end, err := wallclock.ComposeInstant(date, slot.EndLabel(), req.OffsetMinutes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	contact := req.Contact.toDomain()
	if contact.ID == "" {
		// Анонимное бронирование: контакт создаётся со сгенерированным паролем
		password, err := generatePassword(domain.GeneratedPasswordLength)
		if err != nil {
			return nil, err
		}
		contact.Password = password
	}

	draft := &schedcore.AppointmentDraft{
		CategoryID:       categoryID,
		ServiceID:        service.ID,
		CalendarID:       calendarID,
		StartDate:        wallclock.FormatInstant(start),
		EndDate:          wallclock.FormatInstant(end),
		Contact:          contact,
		DeviceType:       req.DeviceType,
		DeviceBrand:      req.DeviceBrand,
		IssueDescription: req.IssueDescription,
		Remarks:          req.Remarks,
		AttachmentIDs:    req.AttachmentIDs,
		Status:           domain.StatusConfirmed,
	}

	created, err := uc.client.CreateAppointment(ctx, draft)
	if err != nil {
		// Сессия остаётся как была: пользователь правит поля и повторяет
		uc.logger.Error("Submit: session=%s, create rejected: %v", req.SessionID, err)
		return nil, err
	}

	// Слияние созданного профиля контакта в сохранённый: возвращающийся
	// клиент получает предзаполненные поля
	mergeContact := created.Contact
	if mergeContact.ID == "" {
		mergeContact = contact
		mergeContact.Password = ""
	}
	if err := uc.profile.Merge(mergeContact); err != nil {
		uc.logger.Warn("Submit: session=%s, profile merge failed: %v", req.SessionID, err)
	}

	now := uc.timeProvider.Now()
	uc.mu.Lock()
	var view *SessionView
	if cur, ok := uc.sessions[req.SessionID]; ok {
		cur.reset(now)
		view = cur.view()
	}
	uc.mu.Unlock()
	if view != nil {
		view = uc.withPrefill(view)
	}

	uc.logger.Info("Submit: session=%s, appointment id=%s created on calendar=%s",
		req.SessionID, created.ID, created.CalendarID)

	return &SubmitResponse{Appointment: created, Session: view}, nil
}

// CancelSession явно уничтожает сессию
func (uc *UseCase) CancelSession(sessionID string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, ok := uc.sessions[sessionID]
	if !ok {
		return ErrSessionNotFound
	}
	s.cancelFetch()
	delete(uc.sessions, sessionID)

	uc.logger.Info("CancelSession: session=%s destroyed", sessionID)
	return nil
}

// Sweep выметает сессии, не обновлявшиеся дольше TTL. Вызывается janitor'ом.
func (uc *UseCase) Sweep(now time.Time) int {
	deadline := now.Add(-uc.ttl)

	uc.mu.Lock()
	defer uc.mu.Unlock()

	removed := 0
	for id, s := range uc.sessions {
		if s.updatedAt.Before(deadline) {
			s.cancelFetch()
			delete(uc.sessions, id)
			removed++
		}
	}

	if removed > 0 {
		uc.logger.Info("Sweep: %d expired sessions removed, %d remain", removed, len(uc.sessions))
	}
	return removed
}

// withPrefill добавляет в снимок сохранённый профиль контакта:
// возвращающийся клиент получает предзаполненную форму деталей
func (uc *UseCase) withPrefill(v *SessionView) *SessionView {
	if c := uc.profile.Current(); c != (domain.Contact{}) {
		v.ContactPrefill = &c
	}
	return v
}

// prepareFetch готовит отменяемый запрос слотов для даты (вызывается под
// мьютексом): предыдущий запрос отменяется, новый контекст отвязан от
// HTTP-запроса вызывающего, чтобы ответ другой операции его не оборвал
func (uc *UseCase) prepareFetch(ctx context.Context, s *session, date time.Time) (context.Context, *aggregate_slots.Request) {
	s.cancelFetch()
	fetchCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s.fetchCancel = cancel

	req := &aggregate_slots.Request{
		Date:       date,
		CategoryID: s.categoryID,
		ServiceID:  s.service.ID,
	}
	if s.calendarID != "" {
		calendarID := s.calendarID
		req.CalendarID = &calendarID
		req.PerResource = true
	}
	return fetchCtx, req
}

// fetchAndApply выполняет запрос слотов и применяет результат, только
// если он всё ещё относится к текущей дате сессии. Отмена плюс проверка
// даты закрывают гонку: поздний ответ за старую дату не может затереть
// список слотов новой.
func (uc *UseCase) fetchAndApply(ctx context.Context, sessionID string, s *session, date time.Time, req *aggregate_slots.Request) (*SessionView, error) {
	resp, err := uc.slotsUC.Execute(ctx, req)

	uc.mu.Lock()
	defer uc.mu.Unlock()

	cur, ok := uc.sessions[sessionID]
	if !ok || cur != s {
		return nil, ErrSessionNotFound
	}

	// Отбрасываем ответ, если дата сессии уже сменилась
	if !cur.selectedDate.Equal(date) {
		uc.logger.Warn("fetchAndApply: session=%s, stale slot response for %s discarded (current %s)",
			sessionID, date.Format(domain.DateFormat), cur.selectedDate.Format(domain.DateFormat))
		return cur.view(), nil
	}

	if err != nil {
		if errors.Is(err, context.Canceled) {
			return cur.view(), nil
		}
		return nil, fmt.Errorf("%w: slot fetch failed: %v", ErrInternal, err)
	}

	cur.slots = resp.Slots
	cur.fetchCancel = nil
	return cur.view(), nil
}
