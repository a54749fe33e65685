package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"health-assistant-api/internal/config"
	"health-assistant-api/internal/email"
	"health-assistant-api/internal/model"
	"health-assistant-api/internal/repository"
	"health-assistant-api/pkg/logger"
	"health-assistant-api/pkg/metrics"
)

// ReminderWorker periodically scans active medication reminders and emails
// the ones due at the current time of day. At most one notification per
// reminder per day.
type ReminderWorker struct {
	meds     repository.MedicationReminderRepository
	emailSvc email.Service
	logger   *logger.Logger
	metrics  *metrics.Metrics
	cfg      config.ReminderConfig

	lastSent map[uuid.UUID]time.Time
}

func NewReminderWorker(
	meds repository.MedicationReminderRepository,
	emailSvc email.Service,
	logger *logger.Logger,
	metrics *metrics.Metrics,
	cfg config.ReminderConfig,
) *ReminderWorker {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = time.Minute
	}
	return &ReminderWorker{
		meds:     meds,
		emailSvc: emailSvc,
		logger:   logger,
		metrics:  metrics,
		cfg:      cfg,
		lastSent: make(map[uuid.UUID]time.Time),
	}
}

func (w *ReminderWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.cfg.PollInterval)
	defer ticker.Stop()

	w.logger.Info("starting reminder worker")

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("shutting down reminder worker")
			return
		case <-ticker.C:
			if err := w.processReminders(ctx, time.Now()); err != nil {
				w.logger.Error(err, "failed to process reminders")
			}
		}
	}
}

func (w *ReminderWorker) processReminders(ctx context.Context, now time.Time) error {
	reminders, err := w.meds.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to list active reminders: %w", err)
	}

	for _, reminder := range reminders {
		if !w.due(reminder, now) {
			continue
		}
		if err := w.notify(reminder); err != nil {
			w.metrics.RemindersFailed.Inc()
			w.logger.Error(err, "failed to send reminder",
				"medication", reminder.MedicationName)
			continue
		}
		w.metrics.RemindersSent.Inc()
		w.lastSent[reminder.ID] = now
	}
	return nil
}

// due reports whether a reminder should fire now: inside its date window,
// scheduled for the current clock minute, and not already sent today.
// As-needed medications never fire on a schedule.
func (w *ReminderWorker) due(reminder *model.MedicationReminder, now time.Time) bool {
	if reminder.Frequency == model.FrequencyAsNeeded {
		return false
	}
	if reminder.TimeOfDay == nil {
		return false
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if reminder.StartDate.After(today) {
		return false
	}
	if reminder.EndDate != nil && reminder.EndDate.Before(today) {
		return false
	}

	if *reminder.TimeOfDay != now.Format("15:04") {
		return false
	}

	if sent, ok := w.lastSent[reminder.ID]; ok && sameDay(sent, now) {
		return false
	}
	return true
}

func (w *ReminderWorker) notify(reminder *model.MedicationReminder) error {
	subject := fmt.Sprintf("Medication reminder: %s", reminder.MedicationName)
	body := fmt.Sprintf("Time to take %s (%s).", reminder.MedicationName, reminder.Dosage)
	if reminder.Notes != "" {
		body += "\n\n" + reminder.Notes
	}
	return w.emailSvc.Send(w.cfg.Recipient, subject, body)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
