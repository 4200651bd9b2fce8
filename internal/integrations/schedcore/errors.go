package schedcore

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена в SchedCore
	ErrAppointmentNotFound = errors.New("schedcore client: appointment not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("schedcore client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("schedcore client: invalid response")

	// ErrUnavailable возвращается, когда SchedCore недоступен (транспортная
	// ошибка, timeout). Списковые операции выше по стеку деградируют до
	// пустого результата, мутации пробрасывают ошибку вызывающему.
	ErrUnavailable = errors.New("schedcore client: service unavailable")
)

// ValidationError доменный отказ SchedCore со структурированной картой
// полей (payload вида errorValidation.fields.<field>). Вызывающий обязан
// проверить эту форму прежде чем откатываться к общему сообщению.
type ValidationError struct {
	Fields map[string]string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "schedcore client: validation rejected"
	}

	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)

	return fmt.Sprintf("schedcore client: validation rejected: %s", strings.Join(names, ", "))
}

// AsValidationError возвращает *ValidationError, если err им является
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
