package list_bookings

import (
	"net/url"
	"strconv"

	"github.com/m04kA/qwiky-admin-proxy/internal/domain"
	"github.com/m04kA/qwiky-admin-proxy/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
// Отсутствующие page и size заменяются значениями по умолчанию
func ToServiceRequest(token string, query url.Values) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{
		Token: token,
		Page:  domain.DefaultPage,
		Size:  domain.DefaultPageSize,
	}

	if pageStr := query.Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil {
			return nil, err
		}
		req.Page = page
	}

	if sizeStr := query.Get("size"); sizeStr != "" {
		size, err := strconv.Atoi(sizeStr)
		if err != nil {
			return nil, err
		}
		req.Size = size
	}

	return req, nil
}
