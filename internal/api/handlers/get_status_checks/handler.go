package get_status_checks

import (
	"net/http"

	"github.com/m04kA/qwiky-admin-proxy/internal/api/handlers"
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

// Handle GET /api/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /status - Failed to list status checks: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /status - Status checks retrieved successfully: count=%d", len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
