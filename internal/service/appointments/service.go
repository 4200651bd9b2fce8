package appointments

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-BookingConsole/internal/domain"
	"github.com/m04kA/SMC-BookingConsole/internal/integrations/schedcore"
)

// OpFlags независимые busy-флаги операций хранилища. Консоль показывает
// list-loading, create-pending, update-pending и delete-pending
// одновременно: операции не блокируют друг друга.
type OpFlags struct {
	ListBusy   bool
	CreateBusy bool
	UpdateBusy bool
	DeleteBusy bool
}

// Service кеш записей для текущих представлений консоли (общий список и
// списки по контактам). Единственное разделяемое изменяемое состояние:
// кеш мутируют только операции самого сервиса, напрямую из мастера или
// календаря в него не пишут.
type Service struct {
	client SchedCoreClient
	logger Logger

	mu           sync.RWMutex
	rangeView    []*domain.Appointment
	contactViews map[string][]*domain.Appointment

	flagsMu sync.Mutex
	flags   OpFlags
}

// NewService создает новый экземпляр сервиса записей
func NewService(client SchedCoreClient, logger Logger) *Service {
	return &Service{
		client:       client,
		logger:       logger,
		contactViews: make(map[string][]*domain.Appointment),
	}
}

// List получает записи в диапазоне дат и обновляет общий кеш.
// Транспортный сбой деградирует до пустого результата: ошибка логируется
// и не пробрасывается как блокирующая.
func (s *Service) List(ctx context.Context, start, end time.Time) ([]*domain.Appointment, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end before start", ErrInvalidInput)
	}

	s.setFlag(func(f *OpFlags) { f.ListBusy = true })
	defer s.setFlag(func(f *OpFlags) { f.ListBusy = false })

	items, err := s.client.ListAppointments(ctx, start, end)
	if err != nil {
		s.logger.Error("List: fetch failed for %s..%s, degrading to empty result: %v",
			start.Format(domain.DateFormat), end.Format(domain.DateFormat), err)
		items = []*domain.Appointment{}
	}

	s.mu.Lock()
	s.rangeView = items
	s.mu.Unlock()

	s.logger.Info("List: cached %d appointments for %s..%s",
		len(items), start.Format(domain.DateFormat), end.Format(domain.DateFormat))
	return copyList(items), nil
}

// ListByContact получает записи контакта и обновляет контактный кеш.
// Та же политика деградации, что и у List.
func (s *Service) ListByContact(ctx context.Context, contactID string) ([]*domain.Appointment, error) {
	if contactID == "" {
		return nil, fmt.Errorf("%w: contactID is required", ErrInvalidInput)
	}

	s.setFlag(func(f *OpFlags) { f.ListBusy = true })
	defer s.setFlag(func(f *OpFlags) { f.ListBusy = false })

	items, err := s.client.ListAppointmentsByContact(ctx, contactID)
	if err != nil {
		s.logger.Error("ListByContact: fetch failed for contact=%s, degrading to empty result: %v", contactID, err)
		items = []*domain.Appointment{}
	}

	s.mu.Lock()
	s.contactViews[contactID] = items
	s.mu.Unlock()

	s.logger.Info("ListByContact: cached %d appointments for contact=%s", len(items), contactID)
	return copyList(items), nil
}

// Create создает запись в SchedCore. Кеши намеренно не трогаются: форма
// результата create не обязана попадать под фильтр какого-либо открытого
// списка, вызывающий перезапрашивает нужный диапазон сам.
func (s *Service) Create(ctx context.Context, draft *schedcore.AppointmentDraft) (*domain.Appointment, error) {
	if draft == nil {
		return nil, fmt.Errorf("%w: draft is required", ErrInvalidInput)
	}

	s.setFlag(func(f *OpFlags) { f.CreateBusy = true })
	defer s.setFlag(func(f *OpFlags) { f.CreateBusy = false })

	created, err := s.client.CreateAppointment(ctx, draft)
	if err != nil {
		s.logger.Error("Create: failed to create appointment: %v", err)
		return nil, err
	}

	s.logger.Info("Create: appointment id=%s created", created.ID)
	return created, nil
}

// Update обновляет запись и сливает подтверждённый SchedCore объект в кеши
// по совпадению id. Несовпавший id (устаревший кеш) тихо отбрасывается,
// сетевой вызов при этом остаётся успешным для вызывающего.
func (s *Service) Update(ctx context.Context, id string, patch *schedcore.AppointmentPatch) (*domain.Appointment, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	if patch == nil {
		return nil, fmt.Errorf("%w: patch is required", ErrInvalidInput)
	}

	s.setFlag(func(f *OpFlags) { f.UpdateBusy = true })
	defer s.setFlag(func(f *OpFlags) { f.UpdateBusy = false })

	updated, err := s.client.UpdateAppointment(ctx, id, patch)
	if err != nil {
		if errors.Is(err, schedcore.ErrAppointmentNotFound) {
			s.logger.Warn("Update: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("Update: failed to update appointment id=%s: %v", id, err)
		return nil, err
	}

	s.mu.Lock()
	merged := mergeByID(s.rangeView, updated)
	for _, view := range s.contactViews {
		if mergeByID(view, updated) {
			merged = true
		}
	}
	s.mu.Unlock()

	if !merged {
		s.logger.Warn("Update: appointment id=%s absent from caches, merge dropped", id)
	}

	s.logger.Info("Update: appointment id=%s updated", id)
	return updated, nil
}

// Delete удаляет запись. Кеши меняются только после подтверждения
// SchedCore: успех убирает id из всех локальных представлений, сбой
// оставляет их нетронутыми.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}

	s.setFlag(func(f *OpFlags) { f.DeleteBusy = true })
	defer s.setFlag(func(f *OpFlags) { f.DeleteBusy = false })

	if err := s.client.DeleteAppointment(ctx, id); err != nil {
		if errors.Is(err, schedcore.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%s not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: failed to delete appointment id=%s: %v", id, err)
		return err
	}

	s.mu.Lock()
	s.rangeView = removeByID(s.rangeView, id)
	for contactID, view := range s.contactViews {
		s.contactViews[contactID] = removeByID(view, id)
	}
	s.mu.Unlock()

	s.logger.Info("Delete: appointment id=%s removed from all cached views", id)
	return nil
}

// Flags возвращает снимок busy-флагов
func (s *Service) Flags() OpFlags {
	s.flagsMu.Lock()
	defer s.flagsMu.Unlock()
	return s.flags
}

// Cached возвращает копию общего кешированного списка
func (s *Service) Cached() []*domain.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyList(s.rangeView)
}

// CachedByContact возвращает копию контактного кешированного списка
func (s *Service) CachedByContact(contactID string) []*domain.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyList(s.contactViews[contactID])
}

func (s *Service) setFlag(apply func(*OpFlags)) {
	s.flagsMu.Lock()
	apply(&s.flags)
	s.flagsMu.Unlock()
}

// mergeByID заменяет элемент с совпадающим id, возвращает true при замене
func mergeByID(view []*domain.Appointment, updated *domain.Appointment) bool {
	for i, item := range view {
		if item.ID == updated.ID {
			view[i] = updated
			return true
		}
	}
	return false
}

func removeByID(view []*domain.Appointment, id string) []*domain.Appointment {
	out := view[:0]
	for _, item := range view {
		if item.ID != id {
			out = append(out, item)
		}
	}
	return out
}

func copyList(view []*domain.Appointment) []*domain.Appointment {
	out := make([]*domain.Appointment, len(view))
	copy(out, view)
	return out
}
