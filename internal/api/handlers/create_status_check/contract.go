package create_status_check

import (
	"context"

	"github.com/m04kA/qwiky-admin-proxy/internal/service/statuschecks/models"
)

type StatusCheckService interface {
	Create(ctx context.Context, req *models.CreateStatusCheckRequest) (*models.StatusCheckResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
