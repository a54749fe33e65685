package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"health-assistant-api/internal/model"
	apperrors "health-assistant-api/pkg/errors"
)

func (r *medicationReminderRepository) Create(ctx context.Context, reminder *model.MedicationReminder) error {
	query := `
		INSERT INTO medication_reminders (
			id, user_id, medication_name, dosage, frequency, time_of_day,
			start_date, end_date, is_active, notes, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	reminder.ID = uuid.New()
	reminder.CreatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		reminder.ID,
		reminder.UserID,
		reminder.MedicationName,
		reminder.Dosage,
		reminder.Frequency,
		reminder.TimeOfDay,
		reminder.StartDate,
		reminder.EndDate,
		reminder.IsActive,
		reminder.Notes,
		reminder.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create medication reminder: %w", err)
	}
	return nil
}

func (r *medicationReminderRepository) Get(ctx context.Context, id uuid.UUID) (*model.MedicationReminder, error) {
	query := `SELECT * FROM medication_reminders WHERE id = $1`
	var reminder model.MedicationReminder
	err := r.db.GetContext(ctx, &reminder, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("medication reminder", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get medication reminder: %w", err)
	}
	return &reminder, nil
}

func (r *medicationReminderRepository) Update(ctx context.Context, reminder *model.MedicationReminder) error {
	query := `
		UPDATE medication_reminders
		SET medication_name = $1, dosage = $2, frequency = $3, time_of_day = $4,
			start_date = $5, end_date = $6, is_active = $7, notes = $8
		WHERE id = $9
	`
	result, err := r.db.ExecContext(ctx, query,
		reminder.MedicationName,
		reminder.Dosage,
		reminder.Frequency,
		reminder.TimeOfDay,
		reminder.StartDate,
		reminder.EndDate,
		reminder.IsActive,
		reminder.Notes,
		reminder.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update medication reminder: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("medication reminder", nil)
	}
	return nil
}

func (r *medicationReminderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM medication_reminders WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete medication reminder: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("medication reminder", nil)
	}
	return nil
}

func (r *medicationReminderRepository) List(ctx context.Context, p model.Pagination) ([]*model.MedicationReminder, error) {
	query := `
		SELECT * FROM medication_reminders
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	var reminders []*model.MedicationReminder
	err := r.db.SelectContext(ctx, &reminders, query, p.PageSize, p.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list medication reminders: %w", err)
	}
	return reminders, nil
}

// ListActive returns active reminders alphabetically; id breaks name ties so
// the ordering is stable.
func (r *medicationReminderRepository) ListActive(ctx context.Context) ([]*model.MedicationReminder, error) {
	query := `
		SELECT * FROM medication_reminders
		WHERE is_active = true
		ORDER BY medication_name ASC, id ASC
	`
	var reminders []*model.MedicationReminder
	err := r.db.SelectContext(ctx, &reminders, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active medication reminders: %w", err)
	}
	return reminders, nil
}
