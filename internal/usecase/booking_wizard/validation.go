package booking_wizard

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-BookingConsole/internal/domain"
)

// validateContactDraft проверяет обязательные поля контакта.
// Возвращает nil при полном драфте, иначе карту сообщений по полям.
func validateContactDraft(d *ContactDraft) *ValidationError {
	fields := make(map[string]string)

	requireField(fields, "first_name", d.FirstName)
	requireField(fields, "last_name", d.LastName)
	requireField(fields, "phone", d.Phone)
	requireField(fields, "street", d.Street)
	requireField(fields, "zip", d.Zip)
	requireField(fields, "city", d.City)

	if strings.TrimSpace(d.Email) == "" {
		fields["email"] = "field is required"
	} else if !strings.Contains(d.Email, "@") {
		fields["email"] = "invalid email address"
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

// validateSubmitExtras проверяет опциональные поля отправки
func validateSubmitExtras(req *SubmitRequest) *ValidationError {
	fields := make(map[string]string)

	if req.Remarks != nil && len(*req.Remarks) > domain.MaxRemarksLength {
		fields["remarks"] = "too long"
	}
	if req.IssueDescription != nil && len(*req.IssueDescription) > domain.MaxIssueDescriptionLength {
		fields["issue_description"] = "too long"
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

func requireField(fields map[string]string, name, value string) {
	if strings.TrimSpace(value) == "" {
		fields[name] = "field is required"
	}
}

// dateDisabled политика disabledDate: выходные и любые даты строго
// раньше сегодняшней не выбираются
func dateDisabled(date, now time.Time) bool {
	if date.Weekday() == time.Saturday || date.Weekday() == time.Sunday {
		return true
	}
	return dateOnly(date).Before(dateOnly(now))
}

// defaultBookingDate дата по умолчанию после выбора услуги: сегодня,
// либо ближайший будний день, если сегодня суббота или воскресенье
func defaultBookingDate(now time.Time) time.Time {
	d := dateOnly(now)
	switch d.Weekday() {
	case time.Saturday:
		return d.AddDate(0, 0, 2)
	case time.Sunday:
		return d.AddDate(0, 0, 1)
	default:
		return d
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
