package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"health-assistant-api/internal/model"
)

// All repository interfaces in one file
type (
	// HealthLogRepository handles health log persistence
	HealthLogRepository interface {
		Create(ctx context.Context, log *model.HealthLog) error
		Get(ctx context.Context, id uuid.UUID) (*model.HealthLog, error)
		Update(ctx context.Context, log *model.HealthLog) error
		Delete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context, p model.Pagination) ([]*model.HealthLog, error)
		ListSince(ctx context.Context, since time.Time, limit int) ([]*model.HealthLog, error)
		Count(ctx context.Context) (int, error)
		CountBySeverity(ctx context.Context, severity model.Severity) (int, error)
	}

	// MedicationReminderRepository handles medication reminder persistence
	MedicationReminderRepository interface {
		Create(ctx context.Context, reminder *model.MedicationReminder) error
		Get(ctx context.Context, id uuid.UUID) (*model.MedicationReminder, error)
		Update(ctx context.Context, reminder *model.MedicationReminder) error
		Delete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context, p model.Pagination) ([]*model.MedicationReminder, error)
		ListActive(ctx context.Context) ([]*model.MedicationReminder, error)
	}

	// VitalSignRepository handles vital sign persistence
	VitalSignRepository interface {
		Create(ctx context.Context, vital *model.VitalSign) error
		Get(ctx context.Context, id uuid.UUID) (*model.VitalSign, error)
		Delete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context, p model.Pagination) ([]*model.VitalSign, error)
		ListSince(ctx context.Context, since time.Time, limit int) ([]*model.VitalSign, error)
	}
)
