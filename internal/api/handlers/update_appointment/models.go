package update_appointment

import (
	"fmt"

	"github.com/m04kA/SMC-BookingConsole/internal/integrations/schedcore"
	"github.com/m04kA/SMC-BookingConsole/pkg/wallclock"
)

// UpdateAppointmentRequest HTTP-запрос обновления аннотаций записи.
// Даты начала и конца после создания неизменяемы и здесь отсутствуют.
type UpdateAppointmentRequest struct {
	Remarks          *string  `json:"remarks,omitempty"`
	EndedAt          *string  `json:"endedAt,omitempty"`
	Attachments      []string `json:"attachments,omitempty"`
	Status           *string  `json:"status,omitempty"`
	DeviceType       *string  `json:"deviceType,omitempty"`
	DeviceBrand      *string  `json:"deviceBrand,omitempty"`
	IssueDescription *string  `json:"issueDescription,omitempty"`
}

func (r *UpdateAppointmentRequest) toPatch() (*schedcore.AppointmentPatch, error) {
	patch := &schedcore.AppointmentPatch{
		Remarks:      r.Remarks,
		Attachments:  r.Attachments,
		Status:       r.Status,
		DeviceType:   r.DeviceType,
		DeviceBrand:  r.DeviceBrand,
		IssueDetails: r.IssueDescription,
	}
	if r.EndedAt != nil {
		t, err := wallclock.ParseInstant(*r.EndedAt)
		if err != nil {
			return nil, fmt.Errorf("invalid endedAt %q: %w", *r.EndedAt, err)
		}
		formatted := wallclock.FormatInstant(t)
		patch.EndedAt = &formatted
	}
	return patch, nil
}
