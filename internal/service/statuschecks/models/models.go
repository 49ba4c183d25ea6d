package models

import (
	"time"

	"github.com/m04kA/qwiky-admin-proxy/internal/domain"
)

// CreateStatusCheckRequest запрос на создание status check
type CreateStatusCheckRequest struct {
	ClientName string
}

// StatusCheckResponse status check в ответе API
type StatusCheckResponse struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}

// FromDomainStatusCheck конвертирует доменную модель в ответ
func FromDomainStatusCheck(check *domain.StatusCheck) *StatusCheckResponse {
	return &StatusCheckResponse{
		ID:         check.ID,
		ClientName: check.ClientName,
		Timestamp:  check.Timestamp,
	}
}

// FromDomainStatusCheckList конвертирует список, пустой список остаётся [] а не null
func FromDomainStatusCheckList(checks []*domain.StatusCheck) []*StatusCheckResponse {
	result := make([]*StatusCheckResponse, 0, len(checks))
	for _, check := range checks {
		result = append(result, FromDomainStatusCheck(check))
	}
	return result
}
