package bookings

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidPage возвращается при отрицательном номере страницы
	ErrInvalidPage = errors.New("page must be >= 0")

	// ErrInvalidPageSize возвращается, когда размер страницы вне [1, 100]
	ErrInvalidPageSize = errors.New("size must be between 1 and 100")

	// ErrEmptyBookingID возвращается, когда не передан ID бронирования
	ErrEmptyBookingID = errors.New("booking id is required")
)
