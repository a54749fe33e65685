package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"health-assistant-api/internal/model"
)

func med(name string, start time.Time, end *time.Time) *model.MedicationReminder {
	return &model.MedicationReminder{
		MedicationName: name,
		StartDate:      start,
		EndDate:        end,
		IsActive:       true,
	}
}

func TestBuild_QueryWindows(t *testing.T) {
	now := time.Date(2026, 8, 31, 14, 30, 0, 0, time.UTC)

	var logsSince time.Time
	var logsLimit int
	logs := &mockHealthLogRepo{
		ListSinceFunc: func(ctx context.Context, since time.Time, limit int) ([]*model.HealthLog, error) {
			logsSince, logsLimit = since, limit
			return nil, nil
		},
	}

	var vitalsSince time.Time
	var vitalsLimit int
	vitals := &mockVitalSignRepo{
		ListSinceFunc: func(ctx context.Context, since time.Time, limit int) ([]*model.VitalSign, error) {
			vitalsSince, vitalsLimit = since, limit
			return nil, nil
		},
	}

	svc := NewService(logs, &mockMedicationRepo{}, vitals)
	_, err := svc.Build(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, now.Add(-7*24*time.Hour), logsSince)
	assert.Equal(t, 10, logsLimit)
	assert.Equal(t, now.Add(-30*24*time.Hour), vitalsSince)
	assert.Equal(t, 5, vitalsLimit)
}

func TestBuild_TodaysMedications(t *testing.T) {
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	today := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	endedYesterday := today.AddDate(0, 0, -1)
	endsToday := today
	endsNextWeek := today.AddDate(0, 0, 7)

	active := []*model.MedicationReminder{
		med("Aspirin", today.AddDate(0, 0, -30), nil),
		med("Ibuprofen", today.AddDate(0, 0, -10), &endsNextWeek),
		med("Lisinopril", today, &endsToday),
		med("Metformin", today.AddDate(0, 0, -60), &endedYesterday),
		med("Vitamin D", today.AddDate(0, 0, 1), nil),
	}

	meds := &mockMedicationRepo{
		ListActiveFunc: func(ctx context.Context) ([]*model.MedicationReminder, error) {
			return active, nil
		},
	}

	svc := NewService(&mockHealthLogRepo{}, meds, &mockVitalSignRepo{})
	snapshot, err := svc.Build(context.Background(), now)
	require.NoError(t, err)

	// Expired and not-yet-started reminders are excluded; each kept reminder
	// appears exactly once.
	names := make([]string, 0, len(snapshot.TodaysMedications))
	for _, m := range snapshot.TodaysMedications {
		names = append(names, m.MedicationName)
	}
	assert.Equal(t, []string{"Aspirin", "Ibuprofen", "Lisinopril"}, names)

	assert.Equal(t, 5, snapshot.ActiveMedsCount)
	assert.Equal(t, today, snapshot.Today)
}

func TestBuild_Counts(t *testing.T) {
	logs := &mockHealthLogRepo{
		CountFunc: func(ctx context.Context) (int, error) {
			return 42, nil
		},
		CountBySeverityFunc: func(ctx context.Context, severity model.Severity) (int, error) {
			assert.Equal(t, model.SeverityCritical, severity)
			return 3, nil
		},
	}

	svc := NewService(logs, &mockMedicationRepo{}, &mockVitalSignRepo{})
	snapshot, err := svc.Build(context.Background(), time.Now())
	require.NoError(t, err)

	assert.Equal(t, 42, snapshot.TotalLogs)
	assert.Equal(t, 3, snapshot.CriticalLogs)
}

func TestBuild_EmptyState(t *testing.T) {
	svc := NewService(&mockHealthLogRepo{}, &mockMedicationRepo{}, &mockVitalSignRepo{})
	snapshot, err := svc.Build(context.Background(), time.Now())
	require.NoError(t, err)

	assert.Empty(t, snapshot.RecentLogs)
	assert.Empty(t, snapshot.ActiveMedications)
	assert.Empty(t, snapshot.TodaysMedications)
	assert.Empty(t, snapshot.RecentVitals)
	assert.Zero(t, snapshot.TotalLogs)
	assert.Zero(t, snapshot.ActiveMedsCount)
	assert.Zero(t, snapshot.CriticalLogs)
}

func TestBuild_RepositoryError(t *testing.T) {
	logs := &mockHealthLogRepo{
		ListSinceFunc: func(ctx context.Context, since time.Time, limit int) ([]*model.HealthLog, error) {
			return nil, errors.New("connection refused")
		},
	}

	svc := NewService(logs, &mockMedicationRepo{}, &mockVitalSignRepo{})
	snapshot, err := svc.Build(context.Background(), time.Now())
	assert.Error(t, err)
	assert.Nil(t, snapshot)
}
