package healthlog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"health-assistant-api/internal/model"
	"health-assistant-api/internal/repository"
	apperrors "health-assistant-api/pkg/errors"
	"health-assistant-api/pkg/validator"
)

type Service struct {
	repo repository.HealthLogRepository
}

func NewService(repo repository.HealthLogRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, req *model.CreateHealthLogRequest) (*model.HealthLog, error) {
	if err := validator.Validate(req); err != nil {
		return nil, apperrors.BadRequest(err.Error(), err)
	}

	log := &model.HealthLog{
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		LogType:     req.LogType,
		Severity:    req.Severity,
	}
	if log.LogType == "" {
		log.LogType = model.LogTypeOther
	}
	if log.Severity == "" {
		log.Severity = model.SeverityMedium
	}

	if err := s.repo.Create(ctx, log); err != nil {
		return nil, fmt.Errorf("failed to create health log: %w", err)
	}
	return log, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.HealthLog, error) {
	log, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get health log: %w", err)
	}
	return log, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req *model.UpdateHealthLogRequest) (*model.HealthLog, error) {
	log, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get health log: %w", err)
	}

	if req.Title != nil {
		log.Title = *req.Title
	}
	if req.Description != nil {
		log.Description = *req.Description
	}
	if req.LogType != nil {
		log.LogType = *req.LogType
	}
	if req.Severity != nil {
		log.Severity = *req.Severity
	}

	if err := s.repo.Update(ctx, log); err != nil {
		return nil, fmt.Errorf("failed to update health log: %w", err)
	}
	return log, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete health log: %w", err)
	}
	return nil
}

func (s *Service) List(ctx context.Context, p model.Pagination) ([]*model.HealthLog, error) {
	p.Normalize()
	logs, err := s.repo.List(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to list health logs: %w", err)
	}
	return logs, nil
}
