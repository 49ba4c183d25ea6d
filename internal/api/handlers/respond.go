package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m04kA/qwiky-admin-proxy/internal/integrations/qwikyservice"
)

const msgInternalError = "внутренняя ошибка сервера"

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// RespondJSON сериализует data в JSON и отправляет с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

// RespondRaw отправляет уже готовый JSON без повторной сериализации
func RespondRaw(w http.ResponseWriter, status int, body json.RawMessage) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func RespondError(w http.ResponseWriter, status int, detail string) {
	RespondJSON(w, status, ErrorResponse{Detail: detail})
}

func RespondBadRequest(w http.ResponseWriter, detail string) {
	RespondError(w, http.StatusBadRequest, detail)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// RespondUpstreamError отдаёт клиенту нормализованную ошибку внешнего API
// Статус и текст берутся из *qwikyservice.UpstreamError, остальные ошибки - 500 с текстом ошибки
func RespondUpstreamError(w http.ResponseWriter, err error) {
	var upErr *qwikyservice.UpstreamError
	if errors.As(err, &upErr) {
		RespondError(w, upErr.StatusCode, upErr.Detail)
		return
	}
	RespondError(w, http.StatusInternalServerError, err.Error())
}

// DecodeJSON декодирует тело запроса
func DecodeJSON(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
