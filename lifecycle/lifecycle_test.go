package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DurgaPydahSoft/client-sub008/billing"
	"github.com/DurgaPydahSoft/client-sub008/models"
)

var testRates = billing.RateSettings{StaffDailyRate: 100, MonthlyFixedAmount: 3500}

func monthlyStaff(month string) models.Occupant {
	return models.Occupant{
		Type:          models.OccupantStaff,
		StayType:      models.StayMonthly,
		ChargeType:    models.ChargePerDay,
		SelectedMonth: month,
		IsActive:      true,
	}
}

func TestStatusWithinMonthIsActive(t *testing.T) {
	occ := monthlyStaff("2024-04")
	now := time.Date(2024, time.April, 15, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, Active, StatusOf(occ, now))

	// Still active on the month's very last day.
	now = time.Date(2024, time.April, 30, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, Active, StatusOf(occ, now))
}

func TestStatusExpiresPastMonthEnd(t *testing.T) {
	occ := monthlyStaff("2024-04")
	// Expired the instant today moves past the last day, nothing else changed.
	now := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, Expired, StatusOf(occ, now))
}

func TestStatusInactiveFlagForcesExpired(t *testing.T) {
	occ := monthlyStaff("2024-04")
	occ.IsActive = false
	now := time.Date(2024, time.April, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, Expired, StatusOf(occ, now))

	// The flag also expires daily-basis staff, where date math doesn't apply.
	daily := models.Occupant{Type: models.OccupantStaff, StayType: models.StayDaily, IsActive: false}
	assert.Equal(t, Expired, StatusOf(daily, now))
}

func TestStatusNonStaffIgnoresFlag(t *testing.T) {
	guest := models.Occupant{Type: models.OccupantGuest, IsActive: false}
	assert.Equal(t, Active, StatusOf(guest, time.Now()))
}

func TestRenewMovesToNewMonth(t *testing.T) {
	occ := monthlyStaff("2024-04")
	occ.IsActive = false
	occ.RoomNumber = "201"
	occ.BedNumber = "2"

	now := time.Date(2024, time.May, 3, 10, 0, 0, 0, time.UTC)
	charge, err := Renew(&occ, Renewal{Month: "2024-05"}, testRates, now)
	require.NoError(t, err)

	assert.Equal(t, "2024-05", occ.SelectedMonth)
	assert.True(t, occ.IsActive)
	assert.Equal(t, Active, StatusOf(occ, now))
	assert.Equal(t, 31, charge.Days)
	assert.Equal(t, 3100.0, charge.Amount)
	assert.Equal(t, 3100.0, occ.CalculatedCharges)
	// No reassignment requested: room and bed stay.
	assert.Equal(t, "201", occ.RoomNumber)
	assert.Equal(t, "2", occ.BedNumber)
}

func TestRenewCurrentMonthAllowed(t *testing.T) {
	occ := monthlyStaff("2024-04")
	now := time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC)
	_, err := Renew(&occ, Renewal{Month: "2024-05"}, testRates, now)
	assert.NoError(t, err)
}

func TestRenewPastMonthRejected(t *testing.T) {
	occ := monthlyStaff("2024-04")
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	_, err := Renew(&occ, Renewal{Month: "2024-05"}, testRates, now)
	assert.ErrorIs(t, err, ErrMonthInPast)
	assert.Equal(t, "2024-04", occ.SelectedMonth, "failed renewal must not mutate")
}

func TestRenewRoomChangeDropsOldBed(t *testing.T) {
	occ := monthlyStaff("2024-04")
	occ.RoomNumber = "201"
	occ.BedNumber = "2"
	now := time.Date(2024, time.April, 20, 0, 0, 0, 0, time.UTC)

	_, err := Renew(&occ, Renewal{Month: "2024-05", RoomNumber: "205"}, testRates, now)
	require.NoError(t, err)
	assert.Equal(t, "205", occ.RoomNumber)
	assert.Empty(t, occ.BedNumber, "bed numbers are room-scoped")

	_, err = Renew(&occ, Renewal{Month: "2024-06", RoomNumber: "206", BedNumber: "1"}, testRates, now)
	require.NoError(t, err)
	assert.Equal(t, "1", occ.BedNumber)
}

func TestRenewRejectsNonMonthlyAndNonStaff(t *testing.T) {
	now := time.Now()
	daily := models.Occupant{Type: models.OccupantStaff, StayType: models.StayDaily, IsActive: true}
	_, err := Renew(&daily, Renewal{Month: "2030-01"}, testRates, now)
	assert.ErrorIs(t, err, ErrNotRenewable)

	guest := models.Occupant{Type: models.OccupantGuest, StayType: models.StayMonthly}
	_, err = Renew(&guest, Renewal{Month: "2030-01"}, testRates, now)
	assert.ErrorIs(t, err, ErrNotRenewable)
}

func TestRenewBadMonthString(t *testing.T) {
	occ := monthlyStaff("2024-04")
	_, err := Renew(&occ, Renewal{Month: "April"}, testRates, time.Now())
	assert.Error(t, err)
}
