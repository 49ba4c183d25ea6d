package users

import (
	"context"
	"encoding/json"
)

// Service сервис пользователей Qwiky
type Service struct {
	client QwikyClient
	logger Logger
}

func NewService(client QwikyClient, logger Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// GetByID получает пользователя из внешнего API как есть
func (s *Service) GetByID(ctx context.Context, token, userID string) (json.RawMessage, error) {
	if userID == "" {
		return nil, ErrEmptyUserID
	}

	body, err := s.client.GetUser(ctx, token, userID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetByID: fetched user id=%s", userID)
	return body, nil
}
