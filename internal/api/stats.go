package api

import (
	"net/http"

	"gym-manager/internal/models"
	"gym-manager/internal/response"
	"gym-manager/internal/stats"
	"gym-manager/pkg/logging"

	"github.com/gin-gonic/gin"
)

// GetStats returns the dashboard metric row: total count plus per-status
// counts
func GetStats(c *gin.Context) {
	warnDays, ok := warnDaysParam(c)
	if !ok {
		response.ErrorJSON(c, http.StatusBadRequest, "warn_days must be an integer between 1 and 30")
		return
	}

	annotated, err := subscriptionService.ListAnnotated(warnDays, today())
	if err != nil {
		logging.Errorf("Failed to compute stats: %v", err)
		response.ErrorJSON(c, http.StatusInternalServerError, "Failed to compute stats")
		return
	}

	counts := stats.CountByStatus(annotated)
	response.SuccessJSON(c, gin.H{
		"total":         len(annotated),
		"active":        counts[models.StatusActive],
		"expiring_soon": counts[models.StatusExpiringSoon],
		"expired":       counts[models.StatusExpired],
	})
}

// GetRevenueByMonth returns monthly revenue totals in chronological order
func GetRevenueByMonth(c *gin.Context) {
	// Revenue only depends on start dates and amounts, so the warning
	// window does not matter here.
	annotated, err := subscriptionService.ListAnnotated(models.MinWarnDays, today())
	if err != nil {
		logging.Errorf("Failed to compute revenue: %v", err)
		response.ErrorJSON(c, http.StatusInternalServerError, "Failed to compute revenue")
		return
	}

	response.SuccessJSON(c, stats.RevenueByMonth(annotated))
}

// GetStatusBreakdown returns per-status counts for the proportion chart
func GetStatusBreakdown(c *gin.Context) {
	warnDays, ok := warnDaysParam(c)
	if !ok {
		response.ErrorJSON(c, http.StatusBadRequest, "warn_days must be an integer between 1 and 30")
		return
	}

	annotated, err := subscriptionService.ListAnnotated(warnDays, today())
	if err != nil {
		logging.Errorf("Failed to compute status breakdown: %v", err)
		response.ErrorJSON(c, http.StatusInternalServerError, "Failed to compute status breakdown")
		return
	}

	response.SuccessJSON(c, stats.StatusBreakdownForChart(annotated))
}
