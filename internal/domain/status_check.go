package domain

import "time"

// StatusCheck запись heartbeat/audit от клиента
// Создается один раз и больше не изменяется
type StatusCheck struct {
	ID         string
	ClientName string
	Timestamp  time.Time
}
