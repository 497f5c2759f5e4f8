package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateFormat is the calendar-date layout used wherever a date crosses a
// boundary: CSV columns, request payloads, alert messages.
const DateFormat = "2006-01-02"

// Warning window bounds, matching the dashboard slider.
const (
	MinWarnDays = 1
	MaxWarnDays = 30
)

// SubscriptionRecord is one row of the backing file. ExpirationDate is
// computed once at creation (StartDate + DurationDays) and stored; it is
// never recomputed on later loads.
type SubscriptionRecord struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Phone          string          `json:"phone,omitempty"`
	PlanName       string          `json:"plan_name"`
	DurationDays   int             `json:"duration_days"`
	AmountPaid     decimal.Decimal `json:"amount_paid"`
	StartDate      time.Time       `json:"start_date"`
	ExpirationDate time.Time       `json:"expiration_date"`
	Notes          string          `json:"notes,omitempty"`
}

// Status is the derived lifecycle state of a record. It is recomputed on
// every read and never persisted.
type Status string

const (
	StatusActive       Status = "active"
	StatusExpiringSoon Status = "expiring_soon"
	StatusExpired      Status = "expired"
)

// AllStatuses lists every status in display order.
var AllStatuses = []Status{StatusActive, StatusExpiringSoon, StatusExpired}

// AnnotatedRecord is a record together with its derived status fields.
type AnnotatedRecord struct {
	SubscriptionRecord
	Status        Status `json:"status"`
	DaysRemaining int    `json:"days_remaining"`
}

// DateOf truncates t to a UTC calendar date (midnight). All stored dates go
// through this, so day arithmetic on them is exact.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
