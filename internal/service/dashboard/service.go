package dashboard

import (
	"context"
	"fmt"
	"time"

	"health-assistant-api/internal/model"
	"health-assistant-api/internal/repository"
)

const (
	recentLogsWindow   = 7 * 24 * time.Hour
	recentLogsLimit    = 10
	recentVitalsWindow = 30 * 24 * time.Hour
	recentVitalsLimit  = 5
)

type Service struct {
	logs   repository.HealthLogRepository
	meds   repository.MedicationReminderRepository
	vitals repository.VitalSignRepository
}

func NewService(
	logs repository.HealthLogRepository,
	meds repository.MedicationReminderRepository,
	vitals repository.VitalSignRepository,
) *Service {
	return &Service{
		logs:   logs,
		meds:   meds,
		vitals: vitals,
	}
}

// Build assembles the dashboard snapshot as of now. Pure read: no mutation,
// no side effects.
func (s *Service) Build(ctx context.Context, now time.Time) (*model.DashboardSnapshot, error) {
	recentLogs, err := s.logs.ListSince(ctx, now.Add(-recentLogsWindow), recentLogsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent logs: %w", err)
	}

	activeMeds, err := s.meds.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load active medications: %w", err)
	}

	recentVitals, err := s.vitals.ListSince(ctx, now.Add(-recentVitalsWindow), recentVitalsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent vitals: %w", err)
	}

	totalLogs, err := s.logs.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count logs: %w", err)
	}

	criticalLogs, err := s.logs.CountBySeverity(ctx, model.SeverityCritical)
	if err != nil {
		return nil, fmt.Errorf("failed to count critical logs: %w", err)
	}

	today := dateOf(now)

	return &model.DashboardSnapshot{
		RecentLogs:        recentLogs,
		ActiveMedications: activeMeds,
		TodaysMedications: todaysMedications(activeMeds, today),
		RecentVitals:      recentVitals,
		TotalLogs:         totalLogs,
		ActiveMedsCount:   len(activeMeds),
		CriticalLogs:      criticalLogs,
		Today:             today,
	}, nil
}

// todaysMedications selects active reminders whose date window covers today:
// started on or before today, and either open-ended or ending on or after
// today. The single pass keeps each reminder at most once, the union of the
// two end-date conditions without duplicates.
func todaysMedications(active []*model.MedicationReminder, today time.Time) []*model.MedicationReminder {
	out := make([]*model.MedicationReminder, 0, len(active))
	for _, med := range active {
		if dateOf(med.StartDate).After(today) {
			continue
		}
		if med.EndDate != nil && dateOf(*med.EndDate).Before(today) {
			continue
		}
		out = append(out, med)
	}
	return out
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
