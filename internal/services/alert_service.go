package services

import (
	"fmt"
	"time"

	"gym-manager/internal/models"
)

// Alert is one entry of the renewal notifications panel. Messages keep the
// operator-facing French wording of the dashboard.
type Alert struct {
	Name           string        `json:"name"`
	Status         models.Status `json:"status"`
	ExpirationDate time.Time     `json:"expiration_date"`
	DaysRemaining  int           `json:"days_remaining"`
	Message        string        `json:"message"`
}

// Alerts returns one entry per expired or expiring record. Active records
// produce no alert.
func (s *SubscriptionService) Alerts(warnDays int, today time.Time) ([]Alert, error) {
	annotated, err := s.ListAnnotated(warnDays, today)
	if err != nil {
		return nil, err
	}

	alerts := make([]Alert, 0)
	for _, rec := range annotated {
		var message string
		switch rec.Status {
		case models.StatusExpired:
			message = fmt.Sprintf("Expiré le %s", rec.ExpirationDate.Format(models.DateFormat))
		case models.StatusExpiringSoon:
			message = fmt.Sprintf("Expire dans %d jours (%s)", rec.DaysRemaining, rec.ExpirationDate.Format(models.DateFormat))
		default:
			continue
		}
		alerts = append(alerts, Alert{
			Name:           rec.Name,
			Status:         rec.Status,
			ExpirationDate: rec.ExpirationDate,
			DaysRemaining:  rec.DaysRemaining,
			Message:        message,
		})
	}
	return alerts, nil
}
