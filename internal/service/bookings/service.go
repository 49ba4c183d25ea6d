package bookings

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/m04kA/qwiky-admin-proxy/internal/domain"
	"github.com/m04kA/qwiky-admin-proxy/internal/service/bookings/models"
)

// Service сервис бронирований поверх Qwiky admin API
// Ошибки клиента (*qwikyservice.UpstreamError) возвращаются без изменений
type Service struct {
	client QwikyClient
	logger Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(client QwikyClient, logger Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// List получает страницу бронирований района
// page и size проверяются до обращения к внешнему API
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (json.RawMessage, error) {
	if req.Page < 0 {
		s.logger.Warn("List: invalid page=%d", req.Page)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, ErrInvalidPage)
	}
	if req.Size < domain.MinPageSize || req.Size > domain.MaxPageSize {
		s.logger.Warn("List: invalid size=%d", req.Size)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, ErrInvalidPageSize)
	}

	body, err := s.client.ListBookings(ctx, req.Token, req.Page, req.Size)
	if err != nil {
		return nil, err
	}

	s.logger.Info("List: fetched bookings page=%d, size=%d", req.Page, req.Size)
	return body, nil
}

// Count возвращает общее количество бронирований района
func (s *Service) Count(ctx context.Context, token string) (*models.CountResponse, error) {
	total, err := s.client.CountBookings(ctx, token)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Count: total bookings=%d", total)
	return &models.CountResponse{TotalCount: total}, nil
}

// Cancel отменяет бронирование во внешнем API
func (s *Service) Cancel(ctx context.Context, token, bookingID string) (json.RawMessage, error) {
	if bookingID == "" {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, ErrEmptyBookingID)
	}

	body, err := s.client.CancelBooking(ctx, token, bookingID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Cancel: booking id=%s cancelled", bookingID)
	return body, nil
}

// Settle отмечает бронирование как рассчитанное
func (s *Service) Settle(ctx context.Context, token, bookingID string) (json.RawMessage, error) {
	if bookingID == "" {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, ErrEmptyBookingID)
	}

	body, err := s.client.SettleBooking(ctx, token, bookingID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Settle: booking id=%s settled", bookingID)
	return body, nil
}
