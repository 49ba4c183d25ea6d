package qwikyservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"unicode/utf8"
)

const maxRawDetailLength = 512

// translateError единая точка нормализации ошибок внешнего API
//
//	err != nil и таймаут     -> 504 с подсказкой повторить запрос
//	err != nil               -> 500 с текстом ошибки
//	err == nil (не-2xx ответ) -> тот же статус, message из тела ответа
func translateError(statusCode int, body []byte, err error) *UpstreamError {
	switch {
	case err != nil && isTimeout(err):
		return &UpstreamError{
			StatusCode: http.StatusGatewayTimeout,
			Detail:     TimeoutDetail,
			Err:        fmt.Errorf("%w: %v", ErrTimeout, err),
		}
	case err != nil:
		return &UpstreamError{
			StatusCode: http.StatusInternalServerError,
			Detail:     err.Error(),
			Err:        fmt.Errorf("%w: %v", ErrInternal, err),
		}
	default:
		return &UpstreamError{
			StatusCode: statusCode,
			Detail:     extractMessage(statusCode, body),
			Err:        ErrUpstreamStatus,
		}
	}
}

func (e *UpstreamError) withOperation(name string) *UpstreamError {
	e.Operation = name
	return e
}

// extractMessage достаёт поле message из тела ошибки
// Если его нет или тело не JSON, возвращает сырой текст ошибки
func extractMessage(statusCode int, body []byte) string {
	var resp ErrorResponse
	if err := json.Unmarshal(body, &resp); err == nil && resp.Message != "" {
		return resp.Message
	}

	raw := strings.TrimSpace(string(body))
	if raw == "" {
		return fmt.Sprintf("upstream returned status %d %s", statusCode, http.StatusText(statusCode))
	}
	if len(raw) > maxRawDetailLength {
		// обрезаем по границе символа, чтобы detail оставался валидным UTF-8
		n := maxRawDetailLength
		for n > 0 && !utf8.RuneStart(raw[n]) {
			n--
		}
		raw = raw[:n]
	}
	return fmt.Sprintf("upstream returned status %d: %s", statusCode, raw)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
