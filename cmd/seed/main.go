// Seeds the database with demonstration health data.
package main

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"health-assistant-api/internal/config"
	"health-assistant-api/internal/model"
	"health-assistant-api/internal/repository/postgres"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	ctx := context.Background()
	today := time.Now().Truncate(24 * time.Hour)
	morning := "08:00"

	healthLogs := []*model.HealthLog{
		{
			Title:       "Morning Headache",
			Description: "Experienced mild headache upon waking up. Took ibuprofen and felt better after 30 minutes.",
			LogType:     model.LogTypeSymptom,
			Severity:    model.SeverityLow,
		},
		{
			Title:       "Blood Pressure Check",
			Description: "Routine blood pressure measurement. Results within normal range.",
			LogType:     model.LogTypeVital,
			Severity:    model.SeverityLow,
		},
		{
			Title:       "Exercise Session",
			Description: "Completed 30-minute cardio workout. Felt energized and maintained good form throughout.",
			LogType:     model.LogTypeExercise,
			Severity:    model.SeverityLow,
		},
		{
			Title:       "Medication Side Effect",
			Description: "Noticed slight dizziness after taking new medication. Will monitor and report to doctor.",
			LogType:     model.LogTypeMedication,
			Severity:    model.SeverityMedium,
		},
		{
			Title:       "Doctor Appointment",
			Description: "Annual checkup scheduled for next week. Need to prepare questions about new symptoms.",
			LogType:     model.LogTypeAppointment,
			Severity:    model.SeverityLow,
		},
	}

	medications := []*model.MedicationReminder{
		{
			MedicationName: "Lisinopril",
			Dosage:         "10mg",
			Frequency:      model.FrequencyDaily,
			TimeOfDay:      &morning,
			StartDate:      today.AddDate(0, 0, -30),
			IsActive:       true,
			Notes:          "Take with breakfast. Monitor blood pressure.",
		},
		{
			MedicationName: "Metformin",
			Dosage:         "500mg",
			Frequency:      model.FrequencyTwiceDaily,
			TimeOfDay:      &morning,
			StartDate:      today.AddDate(0, 0, -60),
			IsActive:       true,
			Notes:          "Take with meals. Helps control blood sugar.",
		},
		{
			MedicationName: "Ibuprofen",
			Dosage:         "400mg",
			Frequency:      model.FrequencyAsNeeded,
			StartDate:      today.AddDate(0, 0, -10),
			IsActive:       true,
			Notes:          "For pain relief. Take as needed, not more than 4 times daily.",
		},
	}

	vitals := []*model.VitalSign{
		{
			VitalType: model.VitalBloodPressure,
			Value:     "120/80",
			Unit:      "mmHg",
			Notes:     "Normal range. Measured in the morning.",
		},
		{
			VitalType: model.VitalHeartRate,
			Value:     "72",
			Unit:      "bpm",
			Notes:     "Resting heart rate. Within normal range.",
		},
		{
			VitalType: model.VitalTemperature,
			Value:     "98.6",
			Unit:      "°F",
			Notes:     "Normal body temperature.",
		},
		{
			VitalType: model.VitalWeight,
			Value:     "165",
			Unit:      "lbs",
			Notes:     "Stable weight. Measured weekly.",
		},
		{
			VitalType: model.VitalBloodSugar,
			Value:     "95",
			Unit:      "mg/dL",
			Notes:     "Fasting blood sugar. Normal range.",
		},
	}

	healthLogRepo := postgres.NewHealthLogRepository(db)
	for _, hl := range healthLogs {
		if err := healthLogRepo.Create(ctx, hl); err != nil {
			log.Fatal().Err(err).Str("title", hl.Title).Msg("failed to create health log")
		}
	}

	medicationRepo := postgres.NewMedicationReminderRepository(db)
	for _, med := range medications {
		if err := medicationRepo.Create(ctx, med); err != nil {
			log.Fatal().Err(err).Str("medication", med.MedicationName).Msg("failed to create medication reminder")
		}
	}

	vitalSignRepo := postgres.NewVitalSignRepository(db)
	for _, v := range vitals {
		if err := vitalSignRepo.Create(ctx, v); err != nil {
			log.Fatal().Err(err).Str("vital_type", string(v.VitalType)).Msg("failed to create vital sign")
		}
	}

	log.Info().
		Int("health_logs", len(healthLogs)).
		Int("medication_reminders", len(medications)).
		Int("vital_signs", len(vitals)).
		Msg("sample data created")
}
