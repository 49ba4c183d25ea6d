package root

import (
	"net/http"

	"github.com/m04kA/qwiky-admin-proxy/internal/api/handlers"
)

const message = "Qwiky Admin API Proxy"

type Response struct {
	Message string `json:"message"`
}

// Handle GET /api/
func Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Response{Message: message})
}
