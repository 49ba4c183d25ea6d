package qwikyservice

import (
	"errors"
	"fmt"
)

var (
	// ErrUpstreamStatus возвращается, когда внешнее API ответило не-2xx статусом
	ErrUpstreamStatus = errors.New("qwikyservice client: upstream error status")

	// ErrTimeout возвращается, когда внешнее API не ответило за отведённое время
	ErrTimeout = errors.New("qwikyservice client: upstream timeout")

	// ErrInternal возвращается при сетевых ошибках и ошибках разбора ответа
	ErrInternal = errors.New("qwikyservice client: internal error")
)

// TimeoutDetail сообщение для клиента при таймауте внешнего API
const TimeoutDetail = "сервис бронирований не ответил вовремя, повторите запрос позже"

// UpstreamError нормализованная ошибка вызова внешнего API
// StatusCode - HTTP статус, который нужно вернуть вызывающему
type UpstreamError struct {
	Operation  string
	StatusCode int
	Detail     string
	Err        error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("qwikyservice: %s: status %d: %s", e.Operation, e.StatusCode, e.Detail)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
