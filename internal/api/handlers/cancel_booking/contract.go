package cancel_booking

import (
	"context"
	"encoding/json"
)

type BookingService interface {
	Cancel(ctx context.Context, token, bookingID string) (json.RawMessage, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
