package bookings

import (
	"context"
	"encoding/json"
)

// QwikyClient интерфейс клиента Qwiky admin API
type QwikyClient interface {
	ListBookings(ctx context.Context, token string, page, size int) (json.RawMessage, error)
	CountBookings(ctx context.Context, token string) (int64, error)
	CancelBooking(ctx context.Context, token, bookingID string) (json.RawMessage, error)
	SettleBooking(ctx context.Context, token, bookingID string) (json.RawMessage, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
