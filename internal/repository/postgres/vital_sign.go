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

func (r *vitalSignRepository) Create(ctx context.Context, vital *model.VitalSign) error {
	query := `
		INSERT INTO vital_signs (
			id, user_id, vital_type, value, unit, recorded_at, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	vital.ID = uuid.New()
	if vital.RecordedAt.IsZero() {
		vital.RecordedAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx, query,
		vital.ID,
		vital.UserID,
		vital.VitalType,
		vital.Value,
		vital.Unit,
		vital.RecordedAt,
		vital.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to create vital sign: %w", err)
	}
	return nil
}

func (r *vitalSignRepository) Get(ctx context.Context, id uuid.UUID) (*model.VitalSign, error) {
	query := `SELECT * FROM vital_signs WHERE id = $1`
	var vital model.VitalSign
	err := r.db.GetContext(ctx, &vital, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("vital sign", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vital sign: %w", err)
	}
	return &vital, nil
}

func (r *vitalSignRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM vital_signs WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete vital sign: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("vital sign", nil)
	}
	return nil
}

func (r *vitalSignRepository) List(ctx context.Context, p model.Pagination) ([]*model.VitalSign, error) {
	query := `
		SELECT * FROM vital_signs
		ORDER BY recorded_at DESC
		LIMIT $1 OFFSET $2
	`
	var vitals []*model.VitalSign
	err := r.db.SelectContext(ctx, &vitals, query, p.PageSize, p.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list vital signs: %w", err)
	}
	return vitals, nil
}

func (r *vitalSignRepository) ListSince(ctx context.Context, since time.Time, limit int) ([]*model.VitalSign, error) {
	query := `
		SELECT * FROM vital_signs
		WHERE recorded_at >= $1
		ORDER BY recorded_at DESC
		LIMIT $2
	`
	var vitals []*model.VitalSign
	err := r.db.SelectContext(ctx, &vitals, query, since, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent vital signs: %w", err)
	}
	return vitals, nil
}
