package qwikyservice

// Названия операций (используются в логах и метриках)
const (
	OpListBookings  = "list_bookings"
	OpCountBookings = "count_bookings"
	OpGetUser       = "get_user"
	OpCancelBooking = "cancel_booking"
	OpSettleBooking = "settle_booking"
)

// ErrorResponse модель ошибки от Qwiky API
type ErrorResponse struct {
	Message string `json:"message"`
}

// bookingsPage страница бронирований, из которой нужен только счётчик
type bookingsPage struct {
	Page *struct {
		TotalElements *int64 `json:"totalElements"`
	} `json:"page"`
}
