package booking_wizard

import (
	"time"

	"github.com/m04kA/SMC-BookingConsole/internal/domain"
)

// ContactDraft поля контакта, заполняемые на шаге EnterDetails
type ContactDraft struct {
	ID        string // пусто при анонимном бронировании
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Street    string
	Zip       string
	City      string
}

func (d *ContactDraft) toDomain() domain.Contact {
	return domain.Contact{
		ID:        d.ID,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Email:     d.Email,
		Phone:     d.Phone,
		Street:    d.Street,
		Zip:       d.Zip,
		City:      d.City,
	}
}

// SubmitRequest модель запроса на отправку завершённой сессии
type SubmitRequest struct {
	SessionID string
	Contact   ContactDraft

	// Диагностические поля выездного сервиса (опционально)
	DeviceType       *string
	DeviceBrand      *string
	IssueDescription *string

	Remarks       *string
	AttachmentIDs []string

	// OffsetMinutes смещение зрителя к востоку от UTC (UTC+2 → 120);
	// участвует в составлении абсолютных start/end
	OffsetMinutes int
}

// SeedRequest модель запроса на посев админской сессии из календарной
// сетки: категория/услуга уже известны, календарь закреплён кликом
type SeedRequest struct {
	CalendarID string
	CategoryID string
	Service    domain.Service
	Date       time.Time
	Slot       domain.DisplaySlot
}

// SessionView снимок сессии для вызывающего
type SessionView struct {
	ID           string
	Step         domain.Step
	CategoryID   string
	Service      *domain.Service
	CalendarID   string
	SelectedDate time.Time
	SelectedSlot *domain.DisplaySlot
	Slots        []domain.DisplaySlot
	UpdatedAt    time.Time

	// ContactPrefill сохранённый профиль контакта для предзаполнения
	// формы на шаге деталей; nil, пока профиль пуст
	ContactPrefill *domain.Contact
}

// SubmitResponse результат успешной отправки
type SubmitResponse struct {
	Appointment *domain.Appointment
	Session     *SessionView // сессия, сброшенная на первый шаг
}
