package booking_wizard

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BookingConsole/internal/domain"
)

// session серверное состояние одной незавершённой попытки бронирования.
// Принадлежит исключительно мастеру: живёт до успешной отправки, явной
// отмены или истечения TTL.
type session struct {
	id           string
	step         domain.Step
	categoryID   string
	service      *domain.Service
	calendarID   string
	selectedDate time.Time
	selectedSlot *domain.DisplaySlot
	slots        []domain.DisplaySlot

	createdAt time.Time
	updatedAt time.Time

	// fetchCancel отменяет незавершённый запрос слотов предыдущей даты
	fetchCancel context.CancelFunc
}

// cancelFetch отменяет текущий запрос слотов, если он в полёте
func (s *session) cancelFetch() {
	if s.fetchCancel != nil {
		s.fetchCancel()
		s.fetchCancel = nil
	}
}

// reset возвращает сессию к первому шагу, стирая весь выбор
func (s *session) reset(now time.Time) {
	s.cancelFetch()
	s.step = domain.StepSelectService
	s.categoryID = ""
	s.service = nil
	s.calendarID = ""
	s.selectedDate = time.Time{}
	s.selectedSlot = nil
	s.slots = nil
	s.updatedAt = now
}

// view строит снимок для вызывающего
func (s *session) view() *SessionView {
	v := &SessionView{
		ID:           s.id,
		Step:         s.step,
		CategoryID:   s.categoryID,
		CalendarID:   s.calendarID,
		SelectedDate: s.selectedDate,
		UpdatedAt:    s.updatedAt,
	}
	if s.service != nil {
		svc := *s.service
		v.Service = &svc
	}
	if s.selectedSlot != nil {
		slot := *s.selectedSlot
		v.SelectedSlot = &slot
	}
	if len(s.slots) > 0 {
		v.Slots = make([]domain.DisplaySlot, len(s.slots))
		copy(v.Slots, s.slots)
	}
	return v
}
