package calendar_view

import "errors"

var (
	// ErrPastCell возвращается при клике по пустой ячейке в прошлом:
	// чисто клиентский отказ, в SchedCore он не уходит
	ErrPastCell = errors.New("calendar_view: cannot book a slot in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("calendar_view: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("calendar_view: internal error")
)
