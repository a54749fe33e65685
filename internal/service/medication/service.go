package medication

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
	repo repository.MedicationReminderRepository
}

func NewService(repo repository.MedicationReminderRepository) *Service {
	return &Service{repo: repo}
}

// Create stores a new reminder, active by default. An end date earlier than
// the start date is accepted as-is; such a reminder simply never matches a
// today window.
func (s *Service) Create(ctx context.Context, req *model.CreateMedicationReminderRequest) (*model.MedicationReminder, error) {
	if err := validator.Validate(req); err != nil {
		return nil, apperrors.BadRequest(err.Error(), err)
	}

	reminder := &model.MedicationReminder{
		UserID:         req.UserID,
		MedicationName: req.MedicationName,
		Dosage:         req.Dosage,
		Frequency:      req.Frequency,
		TimeOfDay:      req.TimeOfDay,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		IsActive:       true,
		Notes:          req.Notes,
	}
	if reminder.Frequency == "" {
		reminder.Frequency = model.FrequencyDaily
	}

	if err := s.repo.Create(ctx, reminder); err != nil {
		return nil, fmt.Errorf("failed to create medication reminder: %w", err)
	}
	return reminder, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.MedicationReminder, error) {
	reminder, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get medication reminder: %w", err)
	}
	return reminder, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req *model.UpdateMedicationReminderRequest) (*model.MedicationReminder, error) {
	reminder, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get medication reminder: %w", err)
	}

	if req.MedicationName != nil {
		reminder.MedicationName = *req.MedicationName
	}
	if req.Dosage != nil {
		reminder.Dosage = *req.Dosage
	}
	if req.Frequency != nil {
		reminder.Frequency = *req.Frequency
	}
	if req.TimeOfDay != nil {
		reminder.TimeOfDay = req.TimeOfDay
	}
	if req.StartDate != nil {
		reminder.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		reminder.EndDate = req.EndDate
	}
	if req.IsActive != nil {
		reminder.IsActive = *req.IsActive
	}
	if req.Notes != nil {
		reminder.Notes = *req.Notes
	}

	if err := s.repo.Update(ctx, reminder); err != nil {
		return nil, fmt.Errorf("failed to update medication reminder: %w", err)
	}
	return reminder, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete medication reminder: %w", err)
	}
	return nil
}

func (s *Service) List(ctx context.Context, p model.Pagination) ([]*model.MedicationReminder, error) {
	p.Normalize()
	reminders, err := s.repo.List(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to list medication reminders: %w", err)
	}
	return reminders, nil
}
