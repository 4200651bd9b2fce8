package handlers

import (
	"github.com/m04kA/SMC-BookingConsole/internal/domain"
	"github.com/m04kA/SMC-BookingConsole/internal/usecase/booking_wizard"
	"github.com/m04kA/SMC-BookingConsole/pkg/wallclock"
)

// SlotResponse слот в ответе API
type SlotResponse struct {
	Label        string `json:"label"`
	CalendarID   string `json:"calendarId,omitempty"`
	EmployeeName string `json:"employeeName,omitempty"`
}

// ServiceResponse услуга в ответе API
type ServiceResponse struct {
	ID              string  `json:"id"`
	CategoryID      string  `json:"categoryId,omitempty"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price,omitempty"`
}

// SessionResponse состояние сессии мастера записи
type SessionResponse struct {
	ID           string           `json:"id"`
	Step         int              `json:"step"`
	StepName     string           `json:"stepName"`
	CategoryID   string           `json:"categoryId,omitempty"`
	Service      *ServiceResponse `json:"service,omitempty"`
	CalendarID   string           `json:"calendarId,omitempty"`
	SelectedDate string           `json:"selectedDate,omitempty"`
	SelectedSlot *SlotResponse    `json:"selectedSlot,omitempty"`
	Slots        []SlotResponse   `json:"slots"`

	// ContactPrefill сохранённый профиль для предзаполнения формы деталей
	ContactPrefill *ContactResponse `json:"contactPrefill,omitempty"`
}

// ContactResponse контакт клиента в ответе API
type ContactResponse struct {
	ID        string `json:"id,omitempty"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Street    string `json:"street,omitempty"`
	Zip       string `json:"zip,omitempty"`
	City      string `json:"city,omitempty"`
}

// AppointmentResponse запись в ответе API
type AppointmentResponse struct {
	ID               string          `json:"id"`
	CategoryID       string          `json:"categoryId,omitempty"`
	ServiceID        string          `json:"serviceId,omitempty"`
	CalendarID       string          `json:"calendarId"`
	Start            string          `json:"start"`
	End              string          `json:"end"`
	Status           string          `json:"status"`
	Contact          ContactResponse `json:"contact"`
	DeviceType       *string         `json:"deviceType,omitempty"`
	DeviceBrand      *string         `json:"deviceBrand,omitempty"`
	IssueDescription *string         `json:"issueDescription,omitempty"`
	Remarks          *string         `json:"remarks,omitempty"`
	AttachmentIDs    []string        `json:"attachments,omitempty"`
	EndedAt          string          `json:"endedAt,omitempty"`
}

// ToSlotResponses конвертирует доменные слоты в DTO
func ToSlotResponses(slots []domain.DisplaySlot) []SlotResponse {
	out := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		out = append(out, SlotResponse{
			Label:        s.Label,
			CalendarID:   s.CalendarID,
			EmployeeName: s.EmployeeName,
		})
	}
	return out
}

// ToSessionResponse конвертирует представление сессии в DTO
func ToSessionResponse(v booking_wizard.SessionView) SessionResponse {
	resp := SessionResponse{
		ID:         v.ID,
		Step:       int(v.Step),
		StepName:   v.Step.String(),
		CategoryID: v.CategoryID,
		CalendarID: v.CalendarID,
		Slots:      ToSlotResponses(v.Slots),
	}
	if v.Service != nil {
		svc := ServiceResponse{
			ID:              v.Service.ID,
			CategoryID:      v.Service.CategoryID,
			Name:            v.Service.Name,
			DurationMinutes: v.Service.DurationMinutes,
		}
		if v.Service.Price != nil {
			svc.Price = *v.Service.Price
		}
		resp.Service = &svc
	}
	if !v.SelectedDate.IsZero() {
		resp.SelectedDate = v.SelectedDate.Format(domain.DateFormat)
	}
	if v.SelectedSlot != nil {
		slot := SlotResponse{
			Label:        v.SelectedSlot.Label,
			CalendarID:   v.SelectedSlot.CalendarID,
			EmployeeName: v.SelectedSlot.EmployeeName,
		}
		resp.SelectedSlot = &slot
	}
	if v.ContactPrefill != nil {
		prefill := ContactResponse{
			ID:        v.ContactPrefill.ID,
			FirstName: v.ContactPrefill.FirstName,
			LastName:  v.ContactPrefill.LastName,
			Email:     v.ContactPrefill.Email,
			Phone:     v.ContactPrefill.Phone,
			Street:    v.ContactPrefill.Street,
			Zip:       v.ContactPrefill.Zip,
			City:      v.ContactPrefill.City,
		}
		resp.ContactPrefill = &prefill
	}
	return resp
}

// ToAppointmentResponse конвертирует доменную запись в DTO
func ToAppointmentResponse(a *domain.Appointment) AppointmentResponse {
	resp := AppointmentResponse{
		ID:         a.ID,
		CategoryID: a.CategoryID,
		ServiceID:  a.ServiceID,
		CalendarID: a.CalendarID,
		Start:      wallclock.FormatInstant(a.StartDate),
		End:        wallclock.FormatInstant(a.EndDate),
		Status:     string(a.Status),
		Contact: ContactResponse{
			ID:        a.Contact.ID,
			FirstName: a.Contact.FirstName,
			LastName:  a.Contact.LastName,
			Email:     a.Contact.Email,
			Phone:     a.Contact.Phone,
			Street:    a.Contact.Street,
			Zip:       a.Contact.Zip,
			City:      a.Contact.City,
		},
		DeviceType:       a.DeviceType,
		DeviceBrand:      a.DeviceBrand,
		IssueDescription: a.IssueDescription,
		Remarks:          a.Remarks,
		AttachmentIDs:    a.AttachmentIDs,
	}
	if a.EndedAt != nil {
		resp.EndedAt = wallclock.FormatInstant(*a.EndedAt)
	}
	return resp
}

// ToAppointmentResponses конвертирует список записей
func ToAppointmentResponses(list []*domain.Appointment) []AppointmentResponse {
	out := make([]AppointmentResponse, 0, len(list))
	for _, a := range list {
		out = append(out, ToAppointmentResponse(a))
	}
	return out
}
