package models

import "time"

// Occupant types. Students committed through bulk upload live in the
// students table; an Occupant row of type student is only created for
// short check-in stays tracked by date.
const (
	OccupantStaff   = "staff"
	OccupantGuest   = "guest"
	OccupantStudent = "student"
	OccupantWarden  = "warden"
)

// Stay basis and charge type (meaningful for staff only).
const (
	StayDaily   = "daily"
	StayMonthly = "monthly"

	ChargePerDay       = "per_day"
	ChargeMonthlyFixed = "monthly_fixed"
)

type Occupant struct {
	ID         uint   `gorm:"primaryKey"        json:"id"`
	Type       string `gorm:"size:10;not null"  json:"type"` // staff|guest|student|warden
	Name       string `gorm:"size:100;not null" json:"name"`
	Gender     string `gorm:"size:10;not null"  json:"gender"`
	Phone      string `gorm:"size:15"           json:"phone,omitempty"`
	StayType   string `gorm:"size:10"           json:"stay_type,omitempty"` // daily|monthly (staff only)
	ChargeType string `gorm:"size:15"         json:"charge_type,omitempty"` // per_day|monthly_fixed (staff/monthly only)

	// Per-occupant tariff overrides; nil = use global rate settings.
	DailyRate          *float64 `json:"daily_rate,omitempty"`
	MonthlyFixedAmount *float64 `json:"monthly_fixed_amount,omitempty"`

	SelectedMonth string     `gorm:"size:7" json:"selected_month,omitempty"` // "YYYY-MM" (monthly basis)
	CheckinDate   *time.Time `json:"checkin_date,omitempty"`
	CheckoutDate  *time.Time `json:"checkout_date,omitempty"`

	RoomNumber   string `gorm:"size:10" json:"room_number,omitempty"`
	BedNumber    string `gorm:"size:5"  json:"bed_number,omitempty"`
	LockerNumber string `gorm:"size:5"  json:"locker_number,omitempty"`

	// Explicit validity flag for staff; date math alone expires everyone else.
	IsActive bool `gorm:"default:true" json:"is_active"`

	// Last formulaic amount stored at commit/renewal time, plus the optional
	// admin override. Kept side by side, never merged.
	CalculatedCharges float64  `json:"calculated_charges"`
	ChargeOverride    *float64 `json:"charge_override,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CheckedIn reports whether the occupant is currently on premises.
// Derived from timestamps only; there is no stored status flag for this.
func (o *Occupant) CheckedIn() bool {
	return o.CheckinDate != nil && o.CheckoutDate == nil
}
