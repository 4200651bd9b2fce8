package submit_booking

import (
	"github.com/m04kA/SMC-BookingConsole/internal/api/handlers"
	bookingWizard "github.com/m04kA/SMC-BookingConsole/internal/usecase/booking_wizard"
)

// SubmitBookingRequest HTTP-запрос отправки завершённой сессии
type SubmitBookingRequest struct {
	Contact ContactRequest `json:"contact"`

	DeviceType       *string  `json:"deviceType,omitempty"`
	DeviceBrand      *string  `json:"deviceBrand,omitempty"`
	IssueDescription *string  `json:"issueDescription,omitempty"`
	Remarks          *string  `json:"remarks,omitempty"`
	Attachments      []string `json:"attachments,omitempty"`

	// OffsetMinutes смещение зрителя к востоку от UTC (UTC+2 → 120)
	OffsetMinutes int `json:"offsetMinutes"`
}

// ContactRequest поля контакта формы записи
type ContactRequest struct {
	ID        string `json:"id,omitempty"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Street    string `json:"street"`
	Zip       string `json:"zip"`
	City      string `json:"city"`
}

// SubmitBookingResponse HTTP-ответ: созданная запись и сброшенная сессия
type SubmitBookingResponse struct {
	Appointment handlers.AppointmentResponse `json:"appointment"`
	Session     *handlers.SessionResponse    `json:"session,omitempty"`
}

func (r *SubmitBookingRequest) toUseCaseRequest(sessionID string) *bookingWizard.SubmitRequest {
	return &bookingWizard.SubmitRequest{
		SessionID: sessionID,
		Contact: bookingWizard.ContactDraft{
			ID:        r.Contact.ID,
			FirstName: r.Contact.FirstName,
			LastName:  r.Contact.LastName,
			Email:     r.Contact.Email,
			Phone:     r.Contact.Phone,
			Street:    r.Contact.Street,
			Zip:       r.Contact.Zip,
			City:      r.Contact.City,
		},
		DeviceType:       r.DeviceType,
		DeviceBrand:      r.DeviceBrand,
		IssueDescription: r.IssueDescription,
		Remarks:          r.Remarks,
		AttachmentIDs:    r.Attachments,
		OffsetMinutes:    r.OffsetMinutes,
	}
}

func fromUseCaseResponse(resp *bookingWizard.SubmitResponse) *SubmitBookingResponse {
	out := &SubmitBookingResponse{
		Appointment: handlers.ToAppointmentResponse(resp.Appointment),
	}
	if resp.Session != nil {
		session := handlers.ToSessionResponse(*resp.Session)
		out.Session = &session
	}
	return out
}
