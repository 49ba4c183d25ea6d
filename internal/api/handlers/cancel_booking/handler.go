package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/qwiky-admin-proxy/internal/api/handlers"
	"github.com/m04kA/qwiky-admin-proxy/internal/api/middleware"
	"github.com/m04kA/qwiky-admin-proxy/internal/service/bookings"
)

const msgInvalidBookingID = "некорректный ID бронирования"

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

// Handle POST /api/qwiky/booking/{booking_id}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["booking_id"]
	token, _ := middleware.GetToken(r.Context())

	body, err := h.service.Cancel(r.Context(), token, bookingID)
	if err != nil {
		if errors.Is(err, bookings.ErrEmptyBookingID) {
			h.logger.Warn("POST /qwiky/booking/{id}/cancel - Empty booking ID")
			handlers.RespondBadRequest(w, msgInvalidBookingID)
			return
		}
		h.logger.Error("POST /qwiky/booking/{id}/cancel - Failed to cancel booking: booking_id=%s, error=%v", bookingID, err)
		handlers.RespondUpstreamError(w, err)
		return
	}

	h.logger.Info("POST /qwiky/booking/{id}/cancel - Booking cancelled successfully: booking_id=%s", bookingID)
	handlers.RespondRaw(w, http.StatusOK, body)
}
