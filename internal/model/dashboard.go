package model

import "time"

// DashboardSnapshot is the read-only aggregation rendered on the dashboard.
type DashboardSnapshot struct {
	RecentLogs        []*HealthLog          `json:"recent_logs"`
	ActiveMedications []*MedicationReminder `json:"active_medications"`
	TodaysMedications []*MedicationReminder `json:"todays_medications"`
	RecentVitals      []*VitalSign          `json:"recent_vitals"`
	TotalLogs         int                   `json:"total_logs"`
	ActiveMedsCount   int                   `json:"active_meds_count"`
	CriticalLogs      int                   `json:"critical_logs"`
	Today             time.Time             `json:"today"`
}
