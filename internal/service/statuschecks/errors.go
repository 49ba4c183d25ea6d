package statuschecks

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("service: internal error")
)
