// Package billing computes occupant charges. Rate defaults are always an
// explicit argument - nothing here reads global state, so recomputing a
// historical charge with the settings of its day gives the same answer.
package billing

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/DurgaPydahSoft/client-sub008/models"
)

var ErrNoTimeBasis = errors.New("occupant has no check-in date or selected month")

// RateSettings are the process-wide tariff defaults, passed in per call.
type RateSettings struct {
	StaffDailyRate     float64 `json:"staff_daily_rate"`
	MonthlyFixedAmount float64 `json:"monthly_fixed_amount"`
}

// Charge is the outcome of one computation. Amount is always the
// formulaic total; Override carries an admin's post-hoc correction when
// one exists. The two are reported side by side, never merged.
type Charge struct {
	Amount    float64  `json:"amount"`
	Days      int      `json:"days"`
	Breakdown string   `json:"breakdown"`
	Override  *float64 `json:"override,omitempty"`
}

// Compute applies the tariff rules in priority order:
//  1. guests are exempt, full stop;
//  2. staff on a monthly basis pay the fixed amount or day-count × rate
//     over the selected calendar month;
//  3. everyone else pays day-count × rate over their check-in window.
func Compute(occ models.Occupant, rates RateSettings, now time.Time) (Charge, error) {
	if occ.Type == models.OccupantGuest {
		return Charge{Amount: 0, Breakdown: "Guest stay - no charges", Override: occ.ChargeOverride}, nil
	}

	if occ.Type == models.OccupantStaff && occ.StayType == models.StayMonthly {
		if occ.ChargeType == models.ChargeMonthlyFixed {
			amount := rates.MonthlyFixedAmount
			if occ.MonthlyFixedAmount != nil {
				amount = *occ.MonthlyFixedAmount
			}
			return Charge{
				Amount:    amount,
				Breakdown: fmt.Sprintf("Fixed monthly amount for %s", occ.SelectedMonth),
				Override:  occ.ChargeOverride,
			}, nil
		}
		year, month, err := ParseMonth(occ.SelectedMonth)
		if err != nil {
			return Charge{}, err
		}
		days := DaysInMonth(year, month)
		rate := dailyRate(occ, rates)
		return Charge{
			Amount:    float64(days) * rate,
			Days:      days,
			Breakdown: fmt.Sprintf("%d days × %.2f/day for %s", days, rate, occ.SelectedMonth),
			Override:  occ.ChargeOverride,
		}, nil
	}

	// Daily-basis staff and every other checked-in occupant type.
	if occ.CheckinDate == nil {
		return Charge{}, ErrNoTimeBasis
	}
	end := now
	if occ.CheckoutDate != nil {
		end = *occ.CheckoutDate
	}
	days := StayDays(*occ.CheckinDate, end)
	rate := dailyRate(occ, rates)
	return Charge{
		Amount:    float64(days) * rate,
		Days:      days,
		Breakdown: fmt.Sprintf("%d days × %.2f/day", days, rate),
		Override:  occ.ChargeOverride,
	}, nil
}

func dailyRate(occ models.Occupant, rates RateSettings) float64 {
	if occ.DailyRate != nil {
		return *occ.DailyRate
	}
	return rates.StaffDailyRate
}

// StayDays counts billable days between two instants. Each end is
// reduced to its calendar date in its own zone and rebuilt as a UTC
// midnight before subtracting, so mixed-zone timestamps never leave a
// fractional-day residue; a same-day stay is zero days, never negative.
func StayDays(checkin, end time.Time) int {
	days := int(dateOnly(end).Sub(dateOnly(checkin)) / (24 * time.Hour))
	if days < 0 {
		return 0
	}
	return days
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseMonth parses "YYYY-MM".
func ParseMonth(s string) (int, time.Month, error) {
	parts := strings.SplitN(strings.TrimSpace(s), "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid month %q", s)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil || year < 1 {
		return 0, 0, fmt.Errorf("invalid month %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 1 || m > 12 {
		return 0, 0, fmt.Errorf("invalid month %q", s)
	}
	return year, time.Month(m), nil
}

// DaysInMonth returns the calendar length of a month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// LastDayOf returns midnight on the last day of "YYYY-MM".
func LastDayOf(selectedMonth string) (time.Time, error) {
	year, month, err := ParseMonth(selectedMonth)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC), nil
}
