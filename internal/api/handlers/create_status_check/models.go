package create_status_check

import (
	"github.com/m04kA/qwiky-admin-proxy/internal/service/statuschecks/models"
)

// CreateStatusCheckRequest HTTP request model
type CreateStatusCheckRequest struct {
	ClientName *string `json:"client_name"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CreateStatusCheckRequest) ToServiceRequest() *models.CreateStatusCheckRequest {
	name := ""
	if r.ClientName != nil {
		name = *r.ClientName
	}
	return &models.CreateStatusCheckRequest{ClientName: name}
}
