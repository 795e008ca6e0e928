package models

import "time"

// RenewalRecord is the audit trail of monthly renewals: one row per
// expired-to-active transition, keeping the prior period's numbers intact.
type RenewalRecord struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OccupantID uint `gorm:"not null" json:"occupant_id"` // id of the occupants row

	FromMonth string `gorm:"size:7;not null" json:"from_month"` // "YYYY-MM"
	ToMonth   string `gorm:"size:7;not null" json:"to_month"`

	FromRoom string `gorm:"size:10" json:"from_room"`
	ToRoom   string `gorm:"size:10" json:"to_room"`
	FromBed  string `gorm:"size:5"  json:"from_bed"`
	ToBed    string `gorm:"size:5"  json:"to_bed"`

	Amount    float64   `gorm:"not null" json:"amount"` // charge computed for the new month
	RenewedAt time.Time `json:"renewed_at"`
	Note      string    `gorm:"size:255" json:"note"` // optional

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
