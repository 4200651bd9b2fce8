package booking_wizard

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("booking_wizard: session not found")

	// ErrServiceRequired возвращается, когда шаг требует выбранную услугу
	ErrServiceRequired = errors.New("booking_wizard: service must be selected first")

	// ErrSlotRequired возвращается, когда шаг требует выбранный слот
	ErrSlotRequired = errors.New("booking_wizard: slot must be selected first")

	// ErrInvalidStep возвращается при переходе на недопустимый шаг
	ErrInvalidStep = errors.New("booking_wizard: invalid step transition")

	// ErrDateNotSelectable возвращается для выходных и прошедших дат
	ErrDateNotSelectable = errors.New("booking_wizard: date is not selectable")

	// ErrSlotStale возвращается, когда выбираемый слот отсутствует в
	// актуальном списке (устаревший выбор после смены даты)
	ErrSlotStale = errors.New("booking_wizard: slot is not in the current slot list")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("booking_wizard: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("booking_wizard: internal error")
)

// ValidationError локальная, синхронная ошибка валидации полей формы.
// Никогда не уходит в сеть и не двигает сессию: вызывающий показывает
// сообщения по полям и даёт пользователю повторить отправку.
type ValidationError struct {
	Fields map[string]string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	return fmt.Sprintf("booking_wizard: validation failed: %s", strings.Join(names, ", "))
}

// AsValidationError возвращает *ValidationError, если err им является
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
