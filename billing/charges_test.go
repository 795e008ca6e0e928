package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DurgaPydahSoft/client-sub008/models"
)

var testRates = RateSettings{StaffDailyRate: 100, MonthlyFixedAmount: 3500}

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func f64(v float64) *float64 { return &v }

func TestGuestAlwaysFree(t *testing.T) {
	// Whatever else is set, a guest pays nothing.
	occ := models.Occupant{
		Type:          models.OccupantGuest,
		StayType:      models.StayMonthly,
		ChargeType:    models.ChargeMonthlyFixed,
		DailyRate:     f64(999),
		SelectedMonth: "2024-04",
		CheckinDate:   day(2024, time.April, 1),
	}
	charge, err := Compute(occ, testRates, time.Now())
	require.NoError(t, err)
	assert.Zero(t, charge.Amount)
}

func TestMonthlyPerDay(t *testing.T) {
	occ := models.Occupant{
		Type:          models.OccupantStaff,
		StayType:      models.StayMonthly,
		ChargeType:    models.ChargePerDay,
		SelectedMonth: "2024-04", // 30 days
	}
	charge, err := Compute(occ, testRates, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 30, charge.Days)
	assert.Equal(t, 3000.0, charge.Amount)

	// Per-occupant rate override.
	occ.DailyRate = f64(150)
	charge, err = Compute(occ, testRates, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 4500.0, charge.Amount)

	// February of a leap year.
	occ.DailyRate = nil
	occ.SelectedMonth = "2024-02"
	charge, err = Compute(occ, testRates, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 29, charge.Days)
}

func TestMonthlyFixed(t *testing.T) {
	occ := models.Occupant{
		Type:          models.OccupantStaff,
		StayType:      models.StayMonthly,
		ChargeType:    models.ChargeMonthlyFixed,
		SelectedMonth: "2024-04",
	}
	charge, err := Compute(occ, testRates, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 3500.0, charge.Amount)
	assert.Zero(t, charge.Days, "fixed billing does not count days")

	// Same occupant, same month length independence: February too.
	occ.SelectedMonth = "2024-02"
	occ.MonthlyFixedAmount = f64(4000)
	charge, err = Compute(occ, testRates, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 4000.0, charge.Amount)
}

func TestDailyStay(t *testing.T) {
	occ := models.Occupant{
		Type:        models.OccupantStaff,
		StayType:    models.StayDaily,
		CheckinDate: day(2024, time.April, 10),
	}

	// Same-day stay: zero days, zero amount.
	occ.CheckoutDate = day(2024, time.April, 10)
	charge, err := Compute(occ, testRates, time.Now())
	require.NoError(t, err)
	assert.Zero(t, charge.Days)
	assert.Zero(t, charge.Amount)

	// One night.
	occ.CheckoutDate = day(2024, time.April, 11)
	charge, err = Compute(occ, testRates, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 1, charge.Days)
	assert.Equal(t, 100.0, charge.Amount)
}

func TestDailyStayOpenEndedUsesNow(t *testing.T) {
	occ := models.Occupant{
		Type:        models.OccupantStaff,
		StayType:    models.StayDaily,
		CheckinDate: day(2024, time.April, 10),
	}
	now := time.Date(2024, time.April, 15, 18, 30, 0, 0, time.UTC)
	charge, err := Compute(occ, testRates, now)
	require.NoError(t, err)
	// Partial-day drift is truncated before subtraction.
	assert.Equal(t, 5, charge.Days)
	assert.Equal(t, 500.0, charge.Amount)
}

func TestStayDaysMixedZones(t *testing.T) {
	// Check-in dates are parsed as UTC midnights while checkout stamps
	// carry the server zone. The calendar date decides, not the offset.
	est := time.FixedZone("EST", -5*60*60)
	checkin := time.Date(2024, time.April, 10, 0, 0, 0, 0, time.UTC)

	// Same calendar day in a zone west of UTC is still zero days.
	assert.Zero(t, StayDays(checkin, time.Date(2024, time.April, 10, 14, 0, 0, 0, est)))

	// Next calendar day is one day whatever the clock reads.
	assert.Equal(t, 1, StayDays(checkin, time.Date(2024, time.April, 11, 1, 0, 0, 0, est)))

	// And east of UTC the same holds.
	ist := time.FixedZone("IST", 5*60*60+30*60)
	assert.Zero(t, StayDays(checkin, time.Date(2024, time.April, 10, 23, 30, 0, 0, ist)))
}

func TestCheckoutBeforeCheckinClampsToZero(t *testing.T) {
	occ := models.Occupant{
		Type:         models.OccupantStaff,
		StayType:     models.StayDaily,
		CheckinDate:  day(2024, time.April, 10),
		CheckoutDate: day(2024, time.April, 8),
	}
	charge, err := Compute(occ, testRates, time.Now())
	require.NoError(t, err)
	assert.Zero(t, charge.Days)
}

func TestNonStaffCheckinTracking(t *testing.T) {
	occ := models.Occupant{
		Type:         models.OccupantWarden,
		CheckinDate:  day(2024, time.April, 1),
		CheckoutDate: day(2024, time.April, 4),
	}
	charge, err := Compute(occ, testRates, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 3, charge.Days)
	assert.Equal(t, 300.0, charge.Amount)
}

func TestMissingTimeBasis(t *testing.T) {
	occ := models.Occupant{Type: models.OccupantStaff, StayType: models.StayDaily}
	_, err := Compute(occ, testRates, time.Now())
	assert.ErrorIs(t, err, ErrNoTimeBasis)
}

func TestOverrideSurfacedNotMerged(t *testing.T) {
	occ := models.Occupant{
		Type:           models.OccupantStaff,
		StayType:       models.StayMonthly,
		ChargeType:     models.ChargeMonthlyFixed,
		SelectedMonth:  "2024-04",
		ChargeOverride: f64(1234),
	}
	charge, err := Compute(occ, testRates, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 3500.0, charge.Amount, "formulaic amount survives the override")
	require.NotNil(t, charge.Override)
	assert.Equal(t, 1234.0, *charge.Override)
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(2024, time.January))
	assert.Equal(t, 29, DaysInMonth(2024, time.February))
	assert.Equal(t, 28, DaysInMonth(2023, time.February))
	assert.Equal(t, 30, DaysInMonth(2024, time.April))
}

func TestParseMonthAndLastDay(t *testing.T) {
	y, m, err := ParseMonth("2024-02")
	require.NoError(t, err)
	assert.Equal(t, 2024, y)
	assert.Equal(t, time.February, m)

	for _, bad := range []string{"", "2024", "2024-13", "2024-00", "x-y"} {
		_, _, err := ParseMonth(bad)
		assert.Error(t, err, "input %q", bad)
	}

	last, err := LastDayOf("2024-02")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), last)
}
