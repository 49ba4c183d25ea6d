package statuschecks

import (
	"context"
	"time"

	"github.com/m04kA/qwiky-admin-proxy/internal/domain"
)

// Repository интерфейс хранилища status check записей
type Repository interface {
	Create(ctx context.Context, check *domain.StatusCheck) error
	List(ctx context.Context, limit int) ([]*domain.StatusCheck, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время в UTC
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
