package handlers

import (
	"strconv"

	"github.com/DurgaPydahSoft/client-sub008/billing"
	"github.com/DurgaPydahSoft/client-sub008/database"
	"github.com/DurgaPydahSoft/client-sub008/models"
)

// atoiOr converts a string, falling back to def when it doesn't parse.
func atoiOr(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

// currentRates loads the single rate-settings row, zero values when the
// row hasn't been created yet.
func currentRates() billing.RateSettings {
	var row models.RateSettings
	if err := database.DB.First(&row).Error; err != nil {
		return billing.RateSettings{}
	}
	return billing.RateSettings{
		StaffDailyRate:     row.StaffDailyRate,
		MonthlyFixedAmount: row.MonthlyFixedAmount,
	}
}
