package get_status_checks

import (
	"context"

	"github.com/m04kA/qwiky-admin-proxy/internal/service/statuschecks/models"
)

type StatusCheckService interface {
	List(ctx context.Context) ([]*models.StatusCheckResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
