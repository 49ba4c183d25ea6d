package get_user

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/qwiky-admin-proxy/internal/api/handlers"
	"github.com/m04kA/qwiky-admin-proxy/internal/api/middleware"
	"github.com/m04kA/qwiky-admin-proxy/internal/service/users"
)

const msgInvalidUserID = "некорректный ID пользователя"

type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/qwiky/user/{user_id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]
	token, _ := middleware.GetToken(r.Context())

	body, err := h.service.GetByID(r.Context(), token, userID)
	if err != nil {
		if errors.Is(err, users.ErrEmptyUserID) {
			h.logger.Warn("GET /qwiky/user/{id} - Empty user ID")
			handlers.RespondBadRequest(w, msgInvalidUserID)
			return
		}
		h.logger.Error("GET /qwiky/user/{id} - Failed to fetch user: user_id=%s, error=%v", userID, err)
		handlers.RespondUpstreamError(w, err)
		return
	}

	h.logger.Info("GET /qwiky/user/{id} - User retrieved successfully: user_id=%s", userID)
	handlers.RespondRaw(w, http.StatusOK, body)
}
