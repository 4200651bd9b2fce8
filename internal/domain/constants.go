package domain

// Default configuration values
const (
	DefaultSessionTTLMinutes = 30
	DefaultRosterPageLimit   = 50
)

// Business validation constants
const (
	MaxRemarksLength          = 500
	MaxIssueDescriptionLength = 1000
	GeneratedPasswordLength   = 12
)

// Time format constants
const (
	TimeFormat    = "15:04"                    // HH:MM
	DateFormat    = "2006-01-02"               // YYYY-MM-DD
	InstantFormat = "2006-01-02T15:04:05.000Z" // формат таймстампов SchedCore (UTC-штамп)
)

// LabelSeparator разделитель между началом и концом слота в человекочитаемой метке
const LabelSeparator = " - "

// InactiveStatuses список статусов неактивных записей
// Используется для фильтрации при построении календарной сетки
var InactiveStatuses = []AppointmentStatus{
	StatusCancelled,
}

// AnnotatableStatuses статусы, в которых аннотации записи (remarks,
// ended_at, вложения) ещё можно править
var AnnotatableStatuses = []AppointmentStatus{
	StatusConfirmed,
	StatusInProgress,
}
