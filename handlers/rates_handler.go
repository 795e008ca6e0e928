package handlers

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/DurgaPydahSoft/client-sub008/database"
	"github.com/DurgaPydahSoft/client-sub008/models"
)

type RatesHandler struct {
	validate *validator.Validate
}

func NewRatesHandler() *RatesHandler {
	return &RatesHandler{validate: validator.New()}
}

// GET /settings/rates
func (h *RatesHandler) Get(c echo.Context) error {
	var row models.RateSettings
	if err := database.DB.First(&row).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusOK, models.RateSettings{})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, row)
}

type ratesPayload struct {
	StaffDailyRate     float64 `json:"staff_daily_rate"     validate:"gte=0"`
	MonthlyFixedAmount float64 `json:"monthly_fixed_amount" validate:"gte=0"`
}

// PUT /settings/rates - new defaults apply to charges computed from now
// on; amounts already stored on occupants are never rewritten.
func (h *RatesHandler) Update(c echo.Context) error {
	var p ratesPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if err := h.validate.Struct(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "detail": err.Error()})
	}

	updatedBy, _ := c.Get("name").(string)
	updatedBy = strings.TrimSpace(updatedBy)

	var row models.RateSettings
	err := database.DB.First(&row).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	row.StaffDailyRate = p.StaffDailyRate
	row.MonthlyFixedAmount = p.MonthlyFixedAmount
	row.UpdatedBy = updatedBy
	if err := database.DB.Save(&row).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_SAVE_FAILED"})
	}
	return c.JSON(http.StatusOK, row)
}
