package model

import (
	"time"

	"github.com/google/uuid"
)

type LogType string

const (
	LogTypeSymptom     LogType = "symptom"
	LogTypeMedication  LogType = "medication"
	LogTypeAppointment LogType = "appointment"
	LogTypeVital       LogType = "vital"
	LogTypeExercise    LogType = "exercise"
	LogTypeDiet        LogType = "diet"
	LogTypeOther       LogType = "other"
)

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// HealthLog is a single user-entered health event: a symptom, an exercise
// session, an appointment note and so on. CreatedAt is set once at insert
// and never changes; listings default to most-recent-first.
type HealthLog struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	UserID      *uuid.UUID `db:"user_id" json:"user_id,omitempty"`
	Title       string     `db:"title" json:"title"`
	Description string     `db:"description" json:"description"`
	LogType     LogType    `db:"log_type" json:"log_type"`
	Severity    Severity   `db:"severity" json:"severity"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

type CreateHealthLogRequest struct {
	UserID      *uuid.UUID `json:"user_id"`
	Title       string     `json:"title" binding:"required,max=200"`
	Description string     `json:"description" binding:"required"`
	LogType     LogType    `json:"log_type" binding:"omitempty,oneof=symptom medication appointment vital exercise diet other"`
	Severity    Severity   `json:"severity" binding:"omitempty,oneof=low medium high critical"`
}

type UpdateHealthLogRequest struct {
	Title       *string   `json:"title" binding:"omitempty,max=200"`
	Description *string   `json:"description"`
	LogType     *LogType  `json:"log_type" binding:"omitempty,oneof=symptom medication appointment vital exercise diet other"`
	Severity    *Severity `json:"severity" binding:"omitempty,oneof=low medium high critical"`
}
