package domain

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusConfirmed  AppointmentStatus = "confirmed"
	StatusInProgress AppointmentStatus = "in_progress"
	StatusCompleted  AppointmentStatus = "completed"
	StatusCancelled  AppointmentStatus = "cancelled"
)

// Contact identity, address and channel fields of the person an
// appointment belongs to. Created fresh during anonymous booking
// (with a generated password) or reused from the stored profile.
type Contact struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Street    string
	Zip       string
	City      string

	// Password заполняется только при регистрации нового контакта
	// в процессе анонимного бронирования; SchedCore его не возвращает
	Password string
}

// FullName returns "FirstName LastName" for display titles
func (c *Contact) FullName() string {
	if c.FirstName == "" {
		return c.LastName
	}
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

// Appointment represents a persisted booking record owned by SchedCore.
// The console holds a read-through cache per view; StartDate/EndDate are
// immutable after creation, only annotation fields are updatable.
type Appointment struct {
	ID         string
	CategoryID string
	ServiceID  string
	CalendarID string

	StartDate time.Time
	EndDate   time.Time

	Contact Contact

	// Диагностические поля выездного сервиса
	DeviceType       *string
	DeviceBrand      *string
	IssueDescription *string

	Remarks       *string
	AttachmentIDs []string
	EndedAt       *time.Time

	Status AppointmentStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment is in an active state
func (a *Appointment) IsActive() bool {
	for _, s := range InactiveStatuses {
		if a.Status == s {
			return false
		}
	}
	return true
}

// CanBeAnnotated returns true if annotation fields (remarks, ended_at,
// attachments) may still be updated
func (a *Appointment) CanBeAnnotated() bool {
	for _, s := range AnnotatableStatuses {
		if a.Status == s {
			return true
		}
	}
	return false
}

// Service represents a bookable offering belonging to a category
type Service struct {
	ID              string
	CategoryID      string
	Name            string
	DurationMinutes int
	Price           *float64
}

// Category represents a grouping of bookable services
type Category struct {
	ID   string
	Name string
}
