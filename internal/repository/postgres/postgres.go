package postgres

import (
	"github.com/jmoiron/sqlx"

	"health-assistant-api/internal/repository"
)

type healthLogRepository struct {
	db *sqlx.DB
}

type medicationReminderRepository struct {
	db *sqlx.DB
}

type vitalSignRepository struct {
	db *sqlx.DB
}

func NewHealthLogRepository(db *sqlx.DB) repository.HealthLogRepository {
	return &healthLogRepository{db: db}
}

func NewMedicationReminderRepository(db *sqlx.DB) repository.MedicationReminderRepository {
	return &medicationReminderRepository{db: db}
}

func NewVitalSignRepository(db *sqlx.DB) repository.VitalSignRepository {
	return &vitalSignRepository{db: db}
}
