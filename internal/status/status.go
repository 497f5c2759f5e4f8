// Package status derives the ephemeral lifecycle state of subscription
// records from an explicit reference date. Nothing here touches the clock;
// callers pass today in.
package status

import (
	"time"

	"gym-manager/internal/models"
)

// For classifies an expiration date against today. A record expiring today
// is still ExpiringSoon; Expired only starts the day after.
func For(expiration time.Time, warnDays int, today time.Time) models.Status {
	switch {
	case expiration.Before(today):
		return models.StatusExpired
	case !expiration.After(today.AddDate(0, 0, warnDays)):
		return models.StatusExpiringSoon
	default:
		return models.StatusActive
	}
}

// DaysUntil returns the signed number of days from today until d. Both are
// UTC midnights, so the division is exact and goes negative past expiry.
func DaysUntil(d, today time.Time) int {
	return int(d.Sub(today) / (24 * time.Hour))
}

// Annotate computes status and remaining days for every record. The result
// is never nil, even for empty input.
func Annotate(records []models.SubscriptionRecord, warnDays int, today time.Time) []models.AnnotatedRecord {
	annotated := make([]models.AnnotatedRecord, 0, len(records))
	for _, rec := range records {
		annotated = append(annotated, models.AnnotatedRecord{
			SubscriptionRecord: rec,
			Status:             For(rec.ExpirationDate, warnDays, today),
			DaysRemaining:      DaysUntil(rec.ExpirationDate, today),
		})
	}
	return annotated
}
