package medication

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"health-assistant-api/internal/model"
	"health-assistant-api/internal/repository"
)

var _ repository.MedicationReminderRepository = (*mockRepo)(nil)

type mockRepo struct {
	CreateFunc func(ctx context.Context, reminder *model.MedicationReminder) error
	GetFunc    func(ctx context.Context, id uuid.UUID) (*model.MedicationReminder, error)
	UpdateFunc func(ctx context.Context, reminder *model.MedicationReminder) error
}

func (m *mockRepo) Create(ctx context.Context, reminder *model.MedicationReminder) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, reminder)
	}
	return nil
}

func (m *mockRepo) Get(ctx context.Context, id uuid.UUID) (*model.MedicationReminder, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, errors.New("Get not implemented in mock")
}

func (m *mockRepo) Update(ctx context.Context, reminder *model.MedicationReminder) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, reminder)
	}
	return errors.New("Update not implemented in mock")
}

func (m *mockRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return errors.New("Delete not implemented in mock")
}

func (m *mockRepo) List(ctx context.Context, p model.Pagination) ([]*model.MedicationReminder, error) {
	return nil, errors.New("List not implemented in mock")
}

func (m *mockRepo) ListActive(ctx context.Context) ([]*model.MedicationReminder, error) {
	return nil, errors.New("ListActive not implemented in mock")
}

func TestCreate_Defaults(t *testing.T) {
	var created *model.MedicationReminder
	repo := &mockRepo{
		CreateFunc: func(ctx context.Context, reminder *model.MedicationReminder) error {
			created = reminder
			return nil
		},
	}
	svc := NewService(repo)

	reminder, err := svc.Create(context.Background(), &model.CreateMedicationReminderRequest{
		MedicationName: "Lisinopril",
		Dosage:         "10mg",
		StartDate:      time.Now(),
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, model.FrequencyDaily, reminder.Frequency)
	assert.True(t, reminder.IsActive)
	assert.Nil(t, reminder.EndDate)
}

func TestCreate_ValidationFailure(t *testing.T) {
	svc := NewService(&mockRepo{})

	_, err := svc.Create(context.Background(), &model.CreateMedicationReminderRequest{
		Dosage:    "10mg",
		StartDate: time.Now(),
	})
	assert.Error(t, err, "missing medication name must be rejected")
}

func TestCreate_EndBeforeStartAccepted(t *testing.T) {
	repo := &mockRepo{
		CreateFunc: func(ctx context.Context, reminder *model.MedicationReminder) error {
			return nil
		},
	}
	svc := NewService(repo)

	start := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, -5)

	// An inverted date range is stored as-is; it produces a reminder that
	// never matches a today window rather than an error.
	reminder, err := svc.Create(context.Background(), &model.CreateMedicationReminderRequest{
		MedicationName: "Ibuprofen",
		Dosage:         "400mg",
		StartDate:      start,
		EndDate:        &end,
	})
	require.NoError(t, err)
	assert.Equal(t, end, *reminder.EndDate)
}

func TestUpdate_PatchesOnlyGivenFields(t *testing.T) {
	id := uuid.New()
	existing := &model.MedicationReminder{
		ID:             id,
		MedicationName: "Metformin",
		Dosage:         "500mg",
		Frequency:      model.FrequencyTwiceDaily,
		IsActive:       true,
	}

	var updated *model.MedicationReminder
	repo := &mockRepo{
		GetFunc: func(ctx context.Context, gotID uuid.UUID) (*model.MedicationReminder, error) {
			assert.Equal(t, id, gotID)
			return existing, nil
		},
		UpdateFunc: func(ctx context.Context, reminder *model.MedicationReminder) error {
			updated = reminder
			return nil
		},
	}
	svc := NewService(repo)

	inactive := false
	_, err := svc.Update(context.Background(), id, &model.UpdateMedicationReminderRequest{
		IsActive: &inactive,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.False(t, updated.IsActive)
	assert.Equal(t, "Metformin", updated.MedicationName)
	assert.Equal(t, model.FrequencyTwiceDaily, updated.Frequency)
}
