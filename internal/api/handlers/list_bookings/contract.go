package list_bookings

import (
	"context"
	"encoding/json"

	"github.com/m04kA/qwiky-admin-proxy/internal/service/bookings/models"
)

type BookingService interface {
	List(ctx context.Context, req *models.ListBookingsRequest) (json.RawMessage, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
