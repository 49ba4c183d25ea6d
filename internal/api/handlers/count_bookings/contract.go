package count_bookings

import (
	"context"

	"github.com/m04kA/qwiky-admin-proxy/internal/service/bookings/models"
)

type BookingService interface {
	Count(ctx context.Context, token string) (*models.CountResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
