package count_bookings

import (
	"net/http"

	"github.com/m04kA/qwiky-admin-proxy/internal/api/handlers"
	"github.com/m04kA/qwiky-admin-proxy/internal/api/middleware"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/qwiky/bookings/count
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token, _ := middleware.GetToken(r.Context())

	result, err := h.service.Count(r.Context(), token)
	if err != nil {
		h.logger.Error("GET /qwiky/bookings/count - Failed to count bookings: error=%v", err)
		handlers.RespondUpstreamError(w, err)
		return
	}

	h.logger.Info("GET /qwiky/bookings/count - Bookings counted: total=%d", result.TotalCount)
	handlers.RespondJSON(w, http.StatusOK, result)
}
