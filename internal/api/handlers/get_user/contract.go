package get_user

import (
	"context"
	"encoding/json"
)

type UserService interface {
	GetByID(ctx context.Context, token, userID string) (json.RawMessage, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
