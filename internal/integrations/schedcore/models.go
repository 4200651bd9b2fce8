package schedcore

import (
	"github.com/m04kA/SMC-BookingConsole/internal/domain"
	"github.com/m04kA/SMC-BookingConsole/pkg/wallclock"
)

// rawWindow сырое окно доступности из SchedCore
type rawWindow struct {
	Start        string `json:"start"`
	End          string `json:"end"`
	CalendarID   string `json:"calendar_id"`
	EmployeeName string `json:"employee_name"`
}

func (w *rawWindow) toDomain() (domain.AvailabilityWindow, error) {
	start, err := wallclock.ParseInstant(w.Start)
	if err != nil {
		return domain.AvailabilityWindow{}, err
	}
	end, err := wallclock.ParseInstant(w.End)
	if err != nil {
		return domain.AvailabilityWindow{}, err
	}
	return domain.AvailabilityWindow{
		Start:        start,
		End:          end,
		CalendarID:   w.CalendarID,
		EmployeeName: w.EmployeeName,
	}, nil
}

// wireContact контакт в формате SchedCore
type wireContact struct {
	ID        string `json:"id,omitempty"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Street    string `json:"street"`
	Zip       string `json:"zip"`
	City      string `json:"city"`
	Password  string `json:"password,omitempty"`
}

func (c *wireContact) toDomain() domain.Contact {
	return domain.Contact{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
		Street:    c.Street,
		Zip:       c.Zip,
		City:      c.City,
	}
}

func contactToWire(c domain.Contact) wireContact {
	return wireContact{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
		Street:    c.Street,
		Zip:       c.Zip,
		City:      c.City,
		Password:  c.Password,
	}
}

// wireAppointment запись в формате SchedCore
type wireAppointment struct {
	ID               string      `json:"id"`
	CategoryID       string      `json:"category_id"`
	ServiceID        string      `json:"service_id"`
	CalendarID       string      `json:"calendar_id"`
	StartDate        string      `json:"start_date"`
	EndDate          string      `json:"end_date"`
	Contact          wireContact `json:"contact"`
	DeviceType       *string     `json:"device_type,omitempty"`
	DeviceBrand      *string     `json:"device_brand,omitempty"`
	IssueDescription *string     `json:"issue_description,omitempty"`
	Remarks          *string     `json:"remarks,omitempty"`
	Attachments      []string    `json:"attachments,omitempty"`
	EndedAt          *string     `json:"ended_at,omitempty"`
	Status           string      `json:"status"`
	Created          string      `json:"created,omitempty"`
	Updated          string      `json:"updated,omitempty"`
}

func (a *wireAppointment) toDomain() (*domain.Appointment, error) {
	start, err := wallclock.ParseInstant(a.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := wallclock.ParseInstant(a.EndDate)
	if err != nil {
		return nil, err
	}

	out := &domain.Appointment{
		ID:               a.ID,
		CategoryID:       a.CategoryID,
		ServiceID:        a.ServiceID,
		CalendarID:       a.CalendarID,
		StartDate:        start,
		EndDate:          end,
		Contact:          a.Contact.toDomain(),
		DeviceType:       a.DeviceType,
		DeviceBrand:      a.DeviceBrand,
		IssueDescription: a.IssueDescription,
		Remarks:          a.Remarks,
		AttachmentIDs:    a.Attachments,
		Status:           domain.AppointmentStatus(a.Status),
	}

	if a.EndedAt != nil && *a.EndedAt != "" {
		endedAt, err := wallclock.ParseInstant(*a.EndedAt)
		if err != nil {
			return nil, err
		}
		out.EndedAt = &endedAt
	}
	if a.Created != "" {
		if created, err := wallclock.ParseInstant(a.Created); err == nil {
			out.CreatedAt = created
		}
	}
	if a.Updated != "" {
		if updated, err := wallclock.ParseInstant(a.Updated); err == nil {
			out.UpdatedAt = updated
		}
	}

	return out, nil
}

// AppointmentDraft payload создания записи
type AppointmentDraft struct {
	CategoryID       string
	ServiceID        string
	CalendarID       string
	StartDate        string // "2006-01-02T15:04:05.000Z"
	EndDate          string
	Contact          domain.Contact
	DeviceType       *string
	DeviceBrand      *string
	IssueDescription *string
	Remarks          *string
	AttachmentIDs    []string
	Status           domain.AppointmentStatus
}

func (d *AppointmentDraft) toWire() *wireAppointmentDraft {
	return &wireAppointmentDraft{
		CategoryID:       d.CategoryID,
		ServiceID:        d.ServiceID,
		CalendarID:       d.CalendarID,
		StartDate:        d.StartDate,
		EndDate:          d.EndDate,
		Contact:          contactToWire(d.Contact),
		DeviceType:       d.DeviceType,
		DeviceBrand:      d.DeviceBrand,
		IssueDescription: d.IssueDescription,
		Remarks:          d.Remarks,
		Attachments:      d.AttachmentIDs,
		Status:           string(d.Status),
	}
}

type wireAppointmentDraft struct {
	CategoryID       string      `json:"category_id"`
	ServiceID        string      `json:"service_id"`
	CalendarID       string      `json:"calendar_id"`
	StartDate        string      `json:"start_date"`
	EndDate          string      `json:"end_date"`
	Contact          wireContact `json:"contact"`
	DeviceType       *string     `json:"device_type,omitempty"`
	DeviceBrand      *string     `json:"device_brand,omitempty"`
	IssueDescription *string     `json:"issue_description,omitempty"`
	Remarks          *string     `json:"remarks,omitempty"`
	Attachments      []string    `json:"attachments,omitempty"`
	Status           string      `json:"status"`
}

// AppointmentPatch частичное обновление записи: только аннотируемые поля,
// start_date/end_date после создания не меняются
type AppointmentPatch struct {
	Remarks       *string  `json:"remarks,omitempty"`
	EndedAt       *string  `json:"ended_at,omitempty"`
	Attachments   []string `json:"attachments,omitempty"`
	Status        *string  `json:"status,omitempty"`
	DeviceType    *string  `json:"device_type,omitempty"`
	DeviceBrand   *string  `json:"device_brand,omitempty"`
	IssueDetails  *string  `json:"issue_description,omitempty"`
}

// wireCalendar ресурс (сотрудник/календарь) из SchedCore
type wireCalendar struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// wireCalendarPage страница ростера календарей
type wireCalendarPage struct {
	Items      []wireCalendar `json:"items"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalItems int            `json:"total_items"`
}

func (p *wireCalendarPage) toDomain() *domain.CalendarPage {
	items := make([]domain.Calendar, 0, len(p.Items))
	for _, c := range p.Items {
		items = append(items, domain.Calendar{ID: c.ID, Name: c.Name, Active: c.Active})
	}
	return &domain.CalendarPage{
		Items:      items,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalItems: p.TotalItems,
	}
}

// deleteResponse ответ SchedCore на удаление записи
type deleteResponse struct {
	Status string `json:"status"`
}

// errorResponse ответ SchedCore с ошибкой
type errorResponse struct {
	Message         string `json:"message"`
	ErrorValidation *struct {
		Fields map[string]string `json:"fields"`
	} `json:"errorValidation,omitempty"`
}
