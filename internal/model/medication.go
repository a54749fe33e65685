package model

import (
	"time"

	"github.com/google/uuid"
)

type Frequency string

const (
	FrequencyDaily           Frequency = "daily"
	FrequencyTwiceDaily      Frequency = "twice_daily"
	FrequencyThreeTimesDaily Frequency = "three_times_daily"
	FrequencyWeekly          Frequency = "weekly"
	FrequencyAsNeeded        Frequency = "as_needed"
	FrequencyCustom          Frequency = "custom"
)

// MedicationReminder is a recurring medication schedule entry. IsActive is a
// plain flag independent of the date range: a reminder can be active yet
// outside its start/end window. EndDate before StartDate is not validated.
type MedicationReminder struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	UserID         *uuid.UUID `db:"user_id" json:"user_id,omitempty"`
	MedicationName string     `db:"medication_name" json:"medication_name"`
	Dosage         string     `db:"dosage" json:"dosage"`
	Frequency      Frequency  `db:"frequency" json:"frequency"`
	TimeOfDay      *string    `db:"time_of_day" json:"time_of_day,omitempty"`
	StartDate      time.Time  `db:"start_date" json:"start_date"`
	EndDate        *time.Time `db:"end_date" json:"end_date,omitempty"`
	IsActive       bool       `db:"is_active" json:"is_active"`
	Notes          string     `db:"notes" json:"notes"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
}

type CreateMedicationReminderRequest struct {
	UserID         *uuid.UUID `json:"user_id"`
	MedicationName string     `json:"medication_name" binding:"required,max=200"`
	Dosage         string     `json:"dosage" binding:"required,max=100"`
	Frequency      Frequency  `json:"frequency" binding:"omitempty,oneof=daily twice_daily three_times_daily weekly as_needed custom"`
	TimeOfDay      *string    `json:"time_of_day" binding:"omitempty,datetime=15:04"`
	StartDate      time.Time  `json:"start_date" binding:"required" time_format:"2006-01-02"`
	EndDate        *time.Time `json:"end_date" time_format:"2006-01-02"`
	Notes          string     `json:"notes"`
}

type UpdateMedicationReminderRequest struct {
	MedicationName *string    `json:"medication_name" binding:"omitempty,max=200"`
	Dosage         *string    `json:"dosage" binding:"omitempty,max=100"`
	Frequency      *Frequency `json:"frequency" binding:"omitempty,oneof=daily twice_daily three_times_daily weekly as_needed custom"`
	TimeOfDay      *string    `json:"time_of_day" binding:"omitempty,datetime=15:04"`
	StartDate      *time.Time `json:"start_date" time_format:"2006-01-02"`
	EndDate        *time.Time `json:"end_date" time_format:"2006-01-02"`
	IsActive       *bool      `json:"is_active"`
	Notes          *string    `json:"notes"`
}
