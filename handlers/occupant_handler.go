package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/DurgaPydahSoft/client-sub008/allocation"
	"github.com/DurgaPydahSoft/client-sub008/billing"
	"github.com/DurgaPydahSoft/client-sub008/database"
	"github.com/DurgaPydahSoft/client-sub008/lifecycle"
	"github.com/DurgaPydahSoft/client-sub008/models"
	"github.com/DurgaPydahSoft/client-sub008/normalize"
)

type OccupantHandler struct {
	validate *validator.Validate
}

func NewOccupantHandler() *OccupantHandler {
	return &OccupantHandler{validate: validator.New()}
}

/* -------------------- Payloads -------------------- */

type occupantPayload struct {
	Type       string `json:"type"        validate:"required,oneof=staff guest student warden"`
	Name       string `json:"name"        validate:"required,max=100"`
	Gender     string `json:"gender"      validate:"required"`
	Phone      string `json:"phone"       validate:"omitempty,max=15"`
	StayType   string `json:"stay_type"   validate:"omitempty,oneof=daily monthly"`
	ChargeType string `json:"charge_type" validate:"omitempty,oneof=per_day monthly_fixed"`

	DailyRate          *float64 `json:"daily_rate"           validate:"omitempty,gte=0"`
	MonthlyFixedAmount *float64 `json:"monthly_fixed_amount" validate:"omitempty,gte=0"`

	SelectedMonth string `json:"selected_month" validate:"omitempty,len=7"`  // YYYY-MM
	CheckinDate   string `json:"checkin_date"   validate:"omitempty,len=10"` // YYYY-MM-DD
	CheckoutDate  string `json:"checkout_date"  validate:"omitempty,len=10"`

	RoomNumber   string `json:"room_number"   validate:"omitempty,max=10"`
	BedNumber    string `json:"bed_number"    validate:"omitempty,max=5"`
	LockerNumber string `json:"locker_number" validate:"omitempty,max=5"`
}

// timeBasisErrors enforces what struct tags can't: exactly one time basis,
// picked by stay type.
func timeBasisErrors(p *occupantPayload) map[string]string {
	errs := map[string]string{}
	monthly := p.Type == models.OccupantStaff && p.StayType == models.StayMonthly
	if monthly {
		if p.SelectedMonth == "" {
			errs["selected_month"] = "Selected month is required for monthly staff"
		}
		if p.ChargeType == "" {
			errs["charge_type"] = "Charge type is required for monthly staff"
		}
	} else {
		if p.CheckinDate == "" {
			errs["checkin_date"] = "Check-in date is required"
		}
		if p.SelectedMonth != "" {
			errs["selected_month"] = "Selected month applies to monthly staff only"
		}
	}
	if p.SelectedMonth != "" {
		if _, _, err := billing.ParseMonth(p.SelectedMonth); err != nil {
			errs["selected_month"] = "Selected month must be YYYY-MM"
		}
	}
	if normalize.Gender(p.Gender) == "" {
		errs["gender"] = "Gender must be Male or Female"
	}
	return errs
}

func parseDay(s string) (*time.Time, bool) {
	if strings.TrimSpace(s) == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, false
	}
	return &t, true
}

/* -------------------- Handlers -------------------- */

// POST /occupants - check a staff/guest occupant in.
func (h *OccupantHandler) Create(c echo.Context) error {
	var p occupantPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if err := h.validate.Struct(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "detail": err.Error()})
	}
	if errs := timeBasisErrors(&p); len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": errs})
	}

	checkin, ok := parseDay(p.CheckinDate)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": map[string]string{"checkin_date": "Check-in date must be YYYY-MM-DD"}})
	}
	checkout, ok := parseDay(p.CheckoutDate)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": map[string]string{"checkout_date": "Check-out date must be YYYY-MM-DD"}})
	}

	occ := models.Occupant{
		Type:               p.Type,
		Name:               strings.TrimSpace(p.Name),
		Gender:             normalize.Gender(p.Gender),
		Phone:              normalize.Phone(p.Phone),
		StayType:           p.StayType,
		ChargeType:         p.ChargeType,
		DailyRate:          p.DailyRate,
		MonthlyFixedAmount: p.MonthlyFixedAmount,
		SelectedMonth:      p.SelectedMonth,
		CheckinDate:        checkin,
		CheckoutDate:       checkout,
		IsActive:           true,
	}

	// Bed/locker picks go through the resolver so a stale UI can't grab
	// a slot that was taken since the form loaded.
	if p.RoomNumber != "" {
		resolver := allocation.NewResolver(gormStore{db: database.DB})
		sel := allocation.Selection{}
		sel.ChooseRoom(p.RoomNumber)
		if p.BedNumber != "" {
			if err := sel.ChooseBed(resolver, p.BedNumber); err != nil {
				return c.JSON(http.StatusConflict, map[string]any{"error": "BED_UNAVAILABLE", "detail": err.Error()})
			}
		}
		if p.LockerNumber != "" {
			if err := sel.ChooseLocker(resolver, p.LockerNumber); err != nil {
				return c.JSON(http.StatusConflict, map[string]any{"error": "LOCKER_UNAVAILABLE", "detail": err.Error()})
			}
		}
		occ.RoomNumber = sel.RoomNumber
		occ.BedNumber = sel.BedNumber
		occ.LockerNumber = sel.LockerNumber
	}

	charge, err := billing.Compute(occ, currentRates(), time.Now())
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "CHARGE_FAILED", "detail": err.Error()})
	}
	occ.CalculatedCharges = charge.Amount

	if err := database.DB.Create(&occ).Error; err != nil {
		return c.JSON(http.StatusConflict, map[string]any{"error": "ALLOCATION_CONFLICT", "detail": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{"occupant": occ, "charge": charge})
}

// GET /occupants?type=staff&status=active
func (h *OccupantHandler) List(c echo.Context) error {
	tx := database.DB.Model(&models.Occupant{})
	if t := strings.TrimSpace(c.QueryParam("type")); t != "" {
		tx = tx.Where("type = ?", t)
	}
	var items []models.Occupant
	if err := tx.Order("id DESC").Find(&items).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}

	now := time.Now()
	status := strings.TrimSpace(c.QueryParam("status"))
	type withStatus struct {
		models.Occupant
		Status    lifecycle.Status `json:"status"`
		CheckedIn bool             `json:"checked_in"`
	}
	out := make([]withStatus, 0, len(items))
	for i := range items {
		st := lifecycle.StatusOf(items[i], now)
		if status != "" && string(st) != status {
			continue
		}
		out = append(out, withStatus{Occupant: items[i], Status: st, CheckedIn: items[i].CheckedIn()})
	}
	return c.JSON(http.StatusOK, map[string]any{"data": out, "total": len(out)})
}

func (h *OccupantHandler) load(c echo.Context) (*models.Occupant, error) {
	var occ models.Occupant
	if err := database.DB.First(&occ, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
		}
		return nil, echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}
	return &occ, nil
}

// POST /occupants/:id/checkout
func (h *OccupantHandler) Checkout(c echo.Context) error {
	occ, err := h.load(c)
	if err != nil {
		return err
	}
	if occ.CheckoutDate != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "ALREADY_CHECKED_OUT"})
	}
	now := time.Now()
	occ.CheckoutDate = &now

	charge, cerr := billing.Compute(*occ, currentRates(), now)
	if cerr == nil {
		occ.CalculatedCharges = charge.Amount
	}
	if err := database.DB.Save(occ).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_SAVE_FAILED"})
	}
	return c.JSON(http.StatusOK, checkoutResponse(occ, charge, cerr))
}

// checkoutResponse keeps a failed charge computation out of the success
// body; the checkout itself still stands.
func checkoutResponse(occ *models.Occupant, charge billing.Charge, cerr error) map[string]any {
	resp := map[string]any{"occupant": occ}
	if cerr != nil {
		resp["charge_error"] = cerr.Error()
		return resp
	}
	resp["charge"] = charge
	return resp
}

// GET /occupants/:id/charges - formulaic amount, any admin override, and
// the derived validity status, side by side.
func (h *OccupantHandler) Charges(c echo.Context) error {
	occ, err := h.load(c)
	if err != nil {
		return err
	}
	now := time.Now()
	charge, cerr := billing.Compute(*occ, currentRates(), now)
	if cerr != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "CHARGE_FAILED", "detail": cerr.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"charge":     charge,
		"stored":     occ.CalculatedCharges,
		"override":   occ.ChargeOverride,
		"status":     lifecycle.StatusOf(*occ, now),
		"checked_in": occ.CheckedIn(),
	})
}

type renewPayload struct {
	Month      string `json:"month"       validate:"required,len=7"`
	RoomNumber string `json:"room_number" validate:"omitempty,max=10"`
	BedNumber  string `json:"bed_number"  validate:"omitempty,max=5"`
	Note       string `json:"note"        validate:"omitempty,max=255"`
}

// POST /occupants/:id/renew - bring a monthly staff occupant back to active.
func (h *OccupantHandler) Renew(c echo.Context) error {
	occ, err := h.load(c)
	if err != nil {
		return err
	}
	var p renewPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if err := h.validate.Struct(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "detail": err.Error()})
	}

	if p.RoomNumber != "" && p.BedNumber != "" {
		resolver := allocation.NewResolver(gormStore{db: database.DB})
		sel := allocation.Selection{}
		sel.ChooseRoom(p.RoomNumber)
		if err := sel.ChooseBed(resolver, p.BedNumber); err != nil {
			return c.JSON(http.StatusConflict, map[string]any{"error": "BED_UNAVAILABLE", "detail": err.Error()})
		}
	}

	fromMonth := occ.SelectedMonth
	fromRoom, fromBed := occ.RoomNumber, occ.BedNumber

	charge, err := lifecycle.Renew(occ, lifecycle.Renewal{
		Month:      p.Month,
		RoomNumber: p.RoomNumber,
		BedNumber:  p.BedNumber,
	}, currentRates(), time.Now())
	if err == lifecycle.ErrNotRenewable {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "NOT_RENEWABLE"})
	}
	if err == lifecycle.ErrMonthInPast {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "MONTH_IN_PAST"})
	}
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "RENEW_FAILED", "detail": err.Error()})
	}

	rec := models.RenewalRecord{
		OccupantID: occ.ID,
		FromMonth:  fromMonth,
		ToMonth:    occ.SelectedMonth,
		FromRoom:   fromRoom,
		ToRoom:     occ.RoomNumber,
		FromBed:    fromBed,
		ToBed:      occ.BedNumber,
		Amount:     charge.Amount,
		RenewedAt:  time.Now(),
		Note:       strings.TrimSpace(p.Note),
	}

	tx := database.DB.Begin()
	if err := tx.Save(occ).Error; err != nil {
		tx.Rollback()
		return c.JSON(http.StatusConflict, map[string]any{"error": "ALLOCATION_CONFLICT", "detail": err.Error()})
	}
	if err := tx.Create(&rec).Error; err != nil {
		tx.Rollback()
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_SAVE_FAILED"})
	}
	if err := tx.Commit().Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]any{"occupant": occ, "charge": charge, "record": rec})
}

// GET /occupants/:id/renewals - renewal audit trail.
func (h *OccupantHandler) Renewals(c echo.Context) error {
	occ, err := h.load(c)
	if err != nil {
		return err
	}
	var recs []models.RenewalRecord
	if err := database.DB.Where("occupant_id = ?", occ.ID).Order("id DESC").Find(&recs).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, map[string]any{"data": recs, "total": len(recs)})
}

type overridePayload struct {
	Amount *float64 `json:"amount" validate:"omitempty,gte=0"` // null clears the override
}

// PATCH /occupants/:id/charges/override - admin post-hoc correction; the
// formulaic amount stays untouched alongside it.
func (h *OccupantHandler) OverrideCharge(c echo.Context) error {
	occ, err := h.load(c)
	if err != nil {
		return err
	}
	var p overridePayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if err := h.validate.Struct(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "detail": err.Error()})
	}
	occ.ChargeOverride = p.Amount
	if err := database.DB.Save(occ).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_SAVE_FAILED"})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"calculated": occ.CalculatedCharges,
		"override":   occ.ChargeOverride,
	})
}
