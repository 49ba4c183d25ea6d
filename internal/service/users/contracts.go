package users

import (
	"context"
	"encoding/json"
)

// QwikyClient интерфейс клиента Qwiky admin API
type QwikyClient interface {
	GetUser(ctx context.Context, token, userID string) (json.RawMessage, error)
}

type Logger interface {
	Info(format string, v ...interface{})
}
