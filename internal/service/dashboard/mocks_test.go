package dashboard

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"health-assistant-api/internal/model"
	"health-assistant-api/internal/repository"
)

var _ repository.HealthLogRepository = (*mockHealthLogRepo)(nil)

type mockHealthLogRepo struct {
	ListSinceFunc       func(ctx context.Context, since time.Time, limit int) ([]*model.HealthLog, error)
	CountFunc           func(ctx context.Context) (int, error)
	CountBySeverityFunc func(ctx context.Context, severity model.Severity) (int, error)
}

func (m *mockHealthLogRepo) Create(ctx context.Context, log *model.HealthLog) error {
	return errors.New("Create not implemented in mock")
}

func (m *mockHealthLogRepo) Get(ctx context.Context, id uuid.UUID) (*model.HealthLog, error) {
	return nil, errors.New("Get not implemented in mock")
}

func (m *mockHealthLogRepo) Update(ctx context.Context, log *model.HealthLog) error {
	return errors.New("Update not implemented in mock")
}

func (m *mockHealthLogRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return errors.New("Delete not implemented in mock")
}

func (m *mockHealthLogRepo) List(ctx context.Context, p model.Pagination) ([]*model.HealthLog, error) {
	return nil, errors.New("List not implemented in mock")
}

func (m *mockHealthLogRepo) ListSince(ctx context.Context, since time.Time, limit int) ([]*model.HealthLog, error) {
	if m.ListSinceFunc != nil {
		return m.ListSinceFunc(ctx, since, limit)
	}
	return nil, nil
}

func (m *mockHealthLogRepo) Count(ctx context.Context) (int, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *mockHealthLogRepo) CountBySeverity(ctx context.Context, severity model.Severity) (int, error) {
	if m.CountBySeverityFunc != nil {
		return m.CountBySeverityFunc(ctx, severity)
	}
	return 0, nil
}

var _ repository.MedicationReminderRepository = (*mockMedicationRepo)(nil)

type mockMedicationRepo struct {
	ListActiveFunc func(ctx context.Context) ([]*model.MedicationReminder, error)
}

func (m *mockMedicationRepo) Create(ctx context.Context, reminder *model.MedicationReminder) error {
	return errors.New("Create not implemented in mock")
}

func (m *mockMedicationRepo) Get(ctx context.Context, id uuid.UUID) (*model.MedicationReminder, error) {
	return nil, errors.New("Get not implemented in mock")
}

func (m *mockMedicationRepo) Update(ctx context.Context, reminder *model.MedicationReminder) error {
	return errors.New("Update not implemented in mock")
}

func (m *mockMedicationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return errors.New("Delete not implemented in mock")
}

func (m *mockMedicationRepo) List(ctx context.Context, p model.Pagination) ([]*model.MedicationReminder, error) {
	return nil, errors.New("List not implemented in mock")
}

func (m *mockMedicationRepo) ListActive(ctx context.Context) ([]*model.MedicationReminder, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, nil
}

var _ repository.VitalSignRepository = (*mockVitalSignRepo)(nil)

type mockVitalSignRepo struct {
	ListSinceFunc func(ctx context.Context, since time.Time, limit int) ([]*model.VitalSign, error)
}

func (m *mockVitalSignRepo) Create(ctx context.Context, vital *model.VitalSign) error {
	return errors.New("Create not implemented in mock")
}

func (m *mockVitalSignRepo) Get(ctx context.Context, id uuid.UUID) (*model.VitalSign, error) {
	return nil, errors.New("Get not implemented in mock")
}

func (m *mockVitalSignRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return errors.New("Delete not implemented in mock")
}

func (m *mockVitalSignRepo) List(ctx context.Context, p model.Pagination) ([]*model.VitalSign, error) {
	return nil, errors.New("List not implemented in mock")
}

func (m *mockVitalSignRepo) ListSince(ctx context.Context, since time.Time, limit int) ([]*model.VitalSign, error) {
	if m.ListSinceFunc != nil {
		return m.ListSinceFunc(ctx, since, limit)
	}
	return nil, nil
}
