package profile

import "errors"

var (
	// ErrInternal возвращается при ошибках чтения/записи файла профиля
	ErrInternal = errors.New("profile: internal error")
)
