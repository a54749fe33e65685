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

func (r *healthLogRepository) Create(ctx context.Context, log *model.HealthLog) error {
	query := `
		INSERT INTO health_logs (
			id, user_id, title, description, log_type, severity,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	log.ID = uuid.New()
	log.CreatedAt = time.Now()
	log.UpdatedAt = log.CreatedAt

	_, err := r.db.ExecContext(ctx, query,
		log.ID,
		log.UserID,
		log.Title,
		log.Description,
		log.LogType,
		log.Severity,
		log.CreatedAt,
		log.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create health log: %w", err)
	}
	return nil
}

func (r *healthLogRepository) Get(ctx context.Context, id uuid.UUID) (*model.HealthLog, error) {
	query := `SELECT * FROM health_logs WHERE id = $1`
	var log model.HealthLog
	err := r.db.GetContext(ctx, &log, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("health log", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get health log: %w", err)
	}
	return &log, nil
}

// Update never touches created_at.
func (r *healthLogRepository) Update(ctx context.Context, log *model.HealthLog) error {
	query := `
		UPDATE health_logs
		SET title = $1, description = $2, log_type = $3, severity = $4, updated_at = $5
		WHERE id = $6
	`
	log.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		log.Title,
		log.Description,
		log.LogType,
		log.Severity,
		log.UpdatedAt,
		log.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update health log: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("health log", nil)
	}
	return nil
}

func (r *healthLogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM health_logs WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete health log: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("health log", nil)
	}
	return nil
}

func (r *healthLogRepository) List(ctx context.Context, p model.Pagination) ([]*model.HealthLog, error) {
	query := `
		SELECT * FROM health_logs
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	var logs []*model.HealthLog
	err := r.db.SelectContext(ctx, &logs, query, p.PageSize, p.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list health logs: %w", err)
	}
	return logs, nil
}

func (r *healthLogRepository) ListSince(ctx context.Context, since time.Time, limit int) ([]*model.HealthLog, error) {
	query := `
		SELECT * FROM health_logs
		WHERE created_at >= $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	var logs []*model.HealthLog
	err := r.db.SelectContext(ctx, &logs, query, since, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent health logs: %w", err)
	}
	return logs, nil
}

func (r *healthLogRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM health_logs`)
	if err != nil {
		return 0, fmt.Errorf("failed to count health logs: %w", err)
	}
	return count, nil
}

func (r *healthLogRepository) CountBySeverity(ctx context.Context, severity model.Severity) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM health_logs WHERE severity = $1`, severity)
	if err != nil {
		return 0, fmt.Errorf("failed to count health logs by severity: %w", err)
	}
	return count, nil
}
