package list_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/qwiky-admin-proxy/internal/api/handlers"
	"github.com/m04kA/qwiky-admin-proxy/internal/api/middleware"
	"github.com/m04kA/qwiky-admin-proxy/internal/service/bookings"
)

const (
	msgInvalidParams   = "некорректные параметры запроса: page и size должны быть целыми числами"
	msgInvalidPage     = "page должен быть >= 0"
	msgInvalidPageSize = "size должен быть в диапазоне от 1 до 100"
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

// Handle GET /api/qwiky/bookings
// Query params: page (>= 0, по умолчанию 0), size (1-100, по умолчанию 20)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token, _ := middleware.GetToken(r.Context())

	serviceReq, err := ToServiceRequest(token, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /qwiky/bookings - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	body, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidPage):
			h.logger.Warn("GET /qwiky/bookings - Invalid page: page=%d", serviceReq.Page)
			handlers.RespondBadRequest(w, msgInvalidPage)

		case errors.Is(err, bookings.ErrInvalidPageSize):
			h.logger.Warn("GET /qwiky/bookings - Invalid size: size=%d", serviceReq.Size)
			handlers.RespondBadRequest(w, msgInvalidPageSize)

		default:
			h.logger.Error("GET /qwiky/bookings - Failed to fetch bookings: error=%v", err)
			handlers.RespondUpstreamError(w, err)
		}
		return
	}

	h.logger.Info("GET /qwiky/bookings - Bookings retrieved successfully: page=%d, size=%d",
		serviceReq.Page, serviceReq.Size)
	handlers.RespondRaw(w, http.StatusOK, body)
}
