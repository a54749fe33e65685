package model

import (
	"time"

	"github.com/google/uuid"
)

type VitalType string

const (
	VitalBloodPressure    VitalType = "blood_pressure"
	VitalHeartRate        VitalType = "heart_rate"
	VitalTemperature      VitalType = "temperature"
	VitalWeight           VitalType = "weight"
	VitalBloodSugar       VitalType = "blood_sugar"
	VitalOxygenSaturation VitalType = "oxygen_saturation"
	VitalRespiratoryRate  VitalType = "respiratory_rate"
)

// VitalSign is a point-in-time measurement. Value is deliberately free text
// so composite readings like "120/80" survive storage unchanged.
type VitalSign struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	UserID     *uuid.UUID `db:"user_id" json:"user_id,omitempty"`
	VitalType  VitalType  `db:"vital_type" json:"vital_type"`
	Value      string     `db:"value" json:"value"`
	Unit       string     `db:"unit" json:"unit"`
	RecordedAt time.Time  `db:"recorded_at" json:"recorded_at"`
	Notes      string     `db:"notes" json:"notes"`
}

type CreateVitalSignRequest struct {
	UserID     *uuid.UUID `json:"user_id"`
	VitalType  VitalType  `json:"vital_type" binding:"required,oneof=blood_pressure heart_rate temperature weight blood_sugar oxygen_saturation respiratory_rate"`
	Value      string     `json:"value" binding:"required,max=100"`
	Unit       string     `json:"unit" binding:"required,max=20"`
	RecordedAt *time.Time `json:"recorded_at"`
	Notes      string     `json:"notes"`
}
