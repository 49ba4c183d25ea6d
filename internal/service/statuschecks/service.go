package statuschecks

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/qwiky-admin-proxy/internal/domain"
	"github.com/m04kA/qwiky-admin-proxy/internal/service/statuschecks/models"
)

// Service сервис status check записей
type Service struct {
	repo   Repository
	clock  TimeProvider
	logger Logger
}

// NewService создает новый экземпляр сервиса
func NewService(repo Repository, clock TimeProvider, logger Logger) *Service {
	return &Service{
		repo:   repo,
		clock:  clock,
		logger: logger,
	}
}

// Create создает запись с новым ID и текущим временем
func (s *Service) Create(ctx context.Context, req *models.CreateStatusCheckRequest) (*models.StatusCheckResponse, error) {
	if strings.TrimSpace(req.ClientName) == "" {
		s.logger.Warn("Create: empty client_name")
		return nil, fmt.Errorf("%w: client_name is required", ErrInvalidInput)
	}

	check := &domain.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: req.ClientName,
		Timestamp:  s.clock.Now(),
	}

	if err := s.repo.Create(ctx, check); err != nil {
		s.logger.Error("Create: repository error for client=%s: %v", req.ClientName, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: status check id=%s created for client=%s", check.ID, check.ClientName)
	return models.FromDomainStatusCheck(check), nil
}

// List возвращает до domain.MaxStatusChecksPerQuery записей в порядке хранилища
func (s *Service) List(ctx context.Context) ([]*models.StatusCheckResponse, error) {
	checks, err := s.repo.List(ctx, domain.MaxStatusChecksPerQuery)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d status checks", len(checks))
	return models.FromDomainStatusCheckList(checks), nil
}
