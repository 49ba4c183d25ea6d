package health

import (
	"net/http"

	"github.com/m04kA/qwiky-admin-proxy/internal/api/handlers"
)

const serviceName = "qwiky-admin-proxy"

type Status struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// Handle GET /health
func Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Status{Status: "healthy", Service: serviceName})
}
