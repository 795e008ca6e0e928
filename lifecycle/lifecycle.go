// Package lifecycle is the one genuine state machine in the engine: a
// staff/guest occupant's validity (Active/Expired) and the renewal
// transition back to Active. Checked-in/checked-out is not handled here;
// that is a timestamp predicate on the model, not a state.
package lifecycle

import (
	"errors"
	"fmt"
	"time"

	"github.com/DurgaPydahSoft/client-sub008/billing"
	"github.com/DurgaPydahSoft/client-sub008/models"
)

type Status string

const (
	Active  Status = "active"
	Expired Status = "expired"
)

var (
	ErrNotRenewable = errors.New("only monthly staff occupants can be renewed")
	ErrMonthInPast  = errors.New("renewal month has already ended")
)

// StatusOf derives the occupant's validity at a point in time. The
// explicit IsActive flag on staff wins over date math in the Expired
// direction only: a flagged-off occupant is expired regardless of dates.
func StatusOf(occ models.Occupant, now time.Time) Status {
	if occ.Type == models.OccupantStaff && !occ.IsActive {
		return Expired
	}
	if occ.Type == models.OccupantStaff && occ.StayType == models.StayMonthly && occ.SelectedMonth != "" {
		last, err := billing.LastDayOf(occ.SelectedMonth)
		if err != nil {
			return Expired
		}
		// Expiry trips the instant today moves past the month's last day.
		if dateOnly(now).After(last) {
			return Expired
		}
	}
	return Active
}

// Renewal carries the optional reassignment accompanying a renewal.
type Renewal struct {
	Month      string // "YYYY-MM", required
	RoomNumber string // optional new room
	BedNumber  string // optional new bed
}

// Renew transitions a monthly staff occupant back to Active for a new
// month and computes that month's charge. The prior period's stored
// amounts are left untouched. Mutates occ in place on success.
func Renew(occ *models.Occupant, r Renewal, rates billing.RateSettings, now time.Time) (billing.Charge, error) {
	if occ.Type != models.OccupantStaff || occ.StayType != models.StayMonthly {
		return billing.Charge{}, ErrNotRenewable
	}
	last, err := billing.LastDayOf(r.Month)
	if err != nil {
		return billing.Charge{}, fmt.Errorf("renewal month: %w", err)
	}
	if last.Before(dateOnly(now)) {
		return billing.Charge{}, ErrMonthInPast
	}

	occ.SelectedMonth = r.Month
	occ.IsActive = true
	if r.RoomNumber != "" && r.RoomNumber != occ.RoomNumber {
		occ.RoomNumber = r.RoomNumber
		// Bed numbers are room-scoped; a room change drops the old bed
		// unless the renewal names a new one.
		occ.BedNumber = ""
	}
	if r.BedNumber != "" {
		occ.BedNumber = r.BedNumber
	}

	charge, err := billing.Compute(*occ, rates, now)
	if err != nil {
		return billing.Charge{}, err
	}
	occ.CalculatedCharges = charge.Amount
	return charge, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
