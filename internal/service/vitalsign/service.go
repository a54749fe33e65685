package vitalsign

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
	repo repository.VitalSignRepository
}

func NewService(repo repository.VitalSignRepository) *Service {
	return &Service{repo: repo}
}

// Create stores a measurement. Value stays a string end to end; "120/80"
// is written and read back unchanged.
func (s *Service) Create(ctx context.Context, req *model.CreateVitalSignRequest) (*model.VitalSign, error) {
	if err := validator.Validate(req); err != nil {
		return nil, apperrors.BadRequest(err.Error(), err)
	}

	vital := &model.VitalSign{
		UserID:    req.UserID,
		VitalType: req.VitalType,
		Value:     req.Value,
		Unit:      req.Unit,
		Notes:     req.Notes,
	}
	if req.RecordedAt != nil {
		vital.RecordedAt = *req.RecordedAt
	}

	if err := s.repo.Create(ctx, vital); err != nil {
		return nil, fmt.Errorf("failed to create vital sign: %w", err)
	}
	return vital, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.VitalSign, error) {
	vital, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get vital sign: %w", err)
	}
	return vital, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete vital sign: %w", err)
	}
	return nil
}

func (s *Service) List(ctx context.Context, p model.Pagination) ([]*model.VitalSign, error) {
	p.Normalize()
	vitals, err := s.repo.List(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to list vital signs: %w", err)
	}
	return vitals, nil
}
