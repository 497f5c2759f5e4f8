package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"gym-manager/internal/config"
	"gym-manager/internal/models"
	"gym-manager/internal/response"
	"gym-manager/internal/services"
	"gym-manager/pkg/logging"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// today returns the current UTC calendar date. Status is always derived
// against this, never stored.
func today() time.Time {
	return models.DateOf(time.Now().UTC())
}

// warnDaysParam reads the warn_days query parameter, bounded to the [1,30]
// slider range. ok is false for a value that is not an integer in range.
func warnDaysParam(c *gin.Context) (int, bool) {
	raw := c.Query("warn_days")
	if raw == "" {
		return config.AppConfig.DefaultWarnDays, true
	}
	warnDays, err := strconv.Atoi(raw)
	if err != nil || warnDays < models.MinWarnDays || warnDays > models.MaxWarnDays {
		return 0, false
	}
	return warnDays, true
}

// ListSubscriptions returns every record annotated with its derived status,
// sorted by expiration date
func ListSubscriptions(c *gin.Context) {
	warnDays, ok := warnDaysParam(c)
	if !ok {
		response.ErrorJSON(c, http.StatusBadRequest, "warn_days must be an integer between 1 and 30")
		return
	}

	annotated, err := subscriptionService.ListAnnotated(warnDays, today())
	if err != nil {
		logging.Errorf("Failed to load subscriptions: %v", err)
		response.ErrorJSON(c, http.StatusInternalServerError, "Failed to load subscriptions")
		return
	}

	response.SuccessJSON(c, annotated)
}

// CreateSubscriptionRequest represents the create form payload
type CreateSubscriptionRequest struct {
	Name         string          `json:"name"`
	Phone        string          `json:"phone"`
	PlanName     string          `json:"plan_name" binding:"required"`
	DurationDays int             `json:"duration_days"`
	AmountPaid   decimal.Decimal `json:"amount_paid"`
	StartDate    string          `json:"start_date"`
	Notes        string          `json:"notes"`
}

// CreateSubscription creates a new subscription record
func CreateSubscription(c *gin.Context) {
	var req CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorJSON(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	// Start date defaults to today, like the dashboard date picker.
	startDate := today()
	if req.StartDate != "" {
		parsed, err := time.Parse(models.DateFormat, req.StartDate)
		if err != nil {
			response.ErrorJSON(c, http.StatusBadRequest, "start_date must be formatted as YYYY-MM-DD")
			return
		}
		startDate = parsed
	}

	rec, err := subscriptionService.CreateSubscription(services.CreateSubscriptionRequest{
		Name:         req.Name,
		Phone:        req.Phone,
		PlanName:     req.PlanName,
		DurationDays: req.DurationDays,
		AmountPaid:   req.AmountPaid,
		StartDate:    startDate,
		Notes:        req.Notes,
	})
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			response.ErrorJSON(c, http.StatusBadRequest, verr.Error())
			return
		}
		logging.Errorf("Failed to save subscription: %v", err)
		response.ErrorJSON(c, http.StatusInternalServerError, "Failed to save subscription")
		return
	}

	response.JSON(c, http.StatusCreated, response.Success(rec))
}

// GetAlerts returns the renewal notifications for expiring and expired
// records
func GetAlerts(c *gin.Context) {
	warnDays, ok := warnDaysParam(c)
	if !ok {
		response.ErrorJSON(c, http.StatusBadRequest, "warn_days must be an integer between 1 and 30")
		return
	}

	alerts, err := subscriptionService.Alerts(warnDays, today())
	if err != nil {
		logging.Errorf("Failed to compute alerts: %v", err)
		response.ErrorJSON(c, http.StatusInternalServerError, "Failed to compute alerts")
		return
	}

	response.SuccessJSON(c, alerts)
}

// ExportCSV downloads the collection in the storage schema
func ExportCSV(c *gin.Context) {
	data, err := subscriptionService.Export()
	if err != nil {
		logging.Errorf("Failed to export subscriptions: %v", err)
		response.ErrorJSON(c, http.StatusInternalServerError, "Failed to export subscriptions")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="abonnements.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}

// PlanView is the JSON projection of a catalog plan
type PlanView struct {
	Label        string `json:"label"`
	Custom       bool   `json:"custom"`
	DurationDays int    `json:"duration_days,omitempty"`
}

// GetPlans returns the plan catalog
func GetPlans(c *gin.Context) {
	plans := subscriptionService.Plans()
	views := make([]PlanView, 0, len(plans))
	for _, plan := range plans {
		view := PlanView{Label: plan.Label, Custom: plan.Duration.IsCustom()}
		if days, ok := plan.Duration.Days(); ok {
			view.DurationDays = days
		}
		views = append(views, view)
	}

	response.SuccessJSON(c, views)
}
