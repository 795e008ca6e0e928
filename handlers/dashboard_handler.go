package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/DurgaPydahSoft/client-sub008/database"
	"github.com/DurgaPydahSoft/client-sub008/lifecycle"
	"github.com/DurgaPydahSoft/client-sub008/models"
)

type DashboardHandler struct{}

func NewDashboardHandler() *DashboardHandler { return &DashboardHandler{} }

// GET /admin/dashboard - headline numbers for the landing page:
// bed utilisation plus how many monthly occupants have run out of paid
// period and are waiting on renewal.
func (h *DashboardHandler) Summary(c echo.Context) error {
	var totalStudents, totalRooms int64
	if err := database.DB.Model(&models.Student{}).Count(&totalStudents).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_COUNT_FAILED"})
	}
	if err := database.DB.Model(&models.Room{}).Count(&totalRooms).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_COUNT_FAILED"})
	}

	var totalBeds int64
	type bedSum struct{ Total int64 }
	var bs bedSum
	if err := database.DB.Model(&models.Room{}).Select("COALESCE(SUM(bed_count),0) AS total").Scan(&bs).Error; err == nil {
		totalBeds = bs.Total
	}

	var occupants []models.Occupant
	if err := database.DB.Where("checkout_date IS NULL").Find(&occupants).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}

	now := time.Now()
	checkedIn, expired := 0, 0
	for i := range occupants {
		if occupants[i].CheckedIn() {
			checkedIn++
		}
		if lifecycle.StatusOf(occupants[i], now) == lifecycle.Expired {
			expired++
		}
	}

	occupiedBeds := totalStudents + int64(checkedIn)
	freeBeds := totalBeds - occupiedBeds
	if freeBeds < 0 {
		freeBeds = 0
	}

	return c.JSON(http.StatusOK, map[string]any{
		"students":         totalStudents,
		"rooms":            totalRooms,
		"beds":             totalBeds,
		"occupied_beds":    occupiedBeds,
		"available_beds":   freeBeds,
		"staff_checked_in": checkedIn,
		"expired_monthly":  expired,
	})
}
