package models

// ListBookingsRequest запрос страницы бронирований
type ListBookingsRequest struct {
	Token string
	Page  int
	Size  int
}

// CountResponse количество бронирований
type CountResponse struct {
	TotalCount int64 `json:"totalCount"`
}
