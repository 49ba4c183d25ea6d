package create_status_check

import (
	"errors"
	"net/http"

	"github.com/m04kA/qwiky-admin-proxy/internal/api/handlers"
	"github.com/m04kA/qwiky-admin-proxy/internal/service/statuschecks"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgClientNameRequired = "поле client_name обязательно"
)

type Handler struct {
	service StatusCheckService
	logger  Logger
}

func NewHandler(service StatusCheckService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateStatusCheckRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, statuschecks.ErrInvalidInput):
			h.logger.Warn("POST /status - Missing client_name")
			handlers.RespondBadRequest(w, msgClientNameRequired)

		default:
			h.logger.Error("POST /status - Failed to create status check: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /status - Status check created successfully: id=%s, client=%s", result.ID, result.ClientName)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
