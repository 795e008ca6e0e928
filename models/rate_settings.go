package models

import "time"

// RateSettings is a single-row table of process-wide tariff defaults.
// UpdatedAt doubles as the last-updated timestamp shown in the UI.
type RateSettings struct {
	ID                 uint      `gorm:"primaryKey"         json:"id"`
	StaffDailyRate     float64   `gorm:"not null;default:0" json:"staff_daily_rate"`
	MonthlyFixedAmount float64   `gorm:"not null;default:0" json:"monthly_fixed_amount"`
	UpdatedBy          string    `gorm:"size:50"            json:"updated_by"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
