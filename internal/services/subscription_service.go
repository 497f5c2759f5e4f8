package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"gym-manager/internal/models"
	"gym-manager/internal/status"
	"gym-manager/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ValidationError reports user input rejected before anything is persisted.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// CreateSubscriptionRequest carries the form fields for a new subscription.
// DurationDays is only consulted for the custom plan; named plans keep their
// fixed duration.
type CreateSubscriptionRequest struct {
	Name         string
	Phone        string
	PlanName     string
	DurationDays int
	AmountPaid   decimal.Decimal
	StartDate    time.Time
	Notes        string
}

// SubscriptionService creates and reads subscription records.
type SubscriptionService struct {
	store *store.Store
	plans []models.Plan
}

// NewSubscriptionService creates a new subscription service on top of the
// shared record store.
func NewSubscriptionService(st *store.Store) *SubscriptionService {
	return &SubscriptionService{store: st, plans: models.DefaultPlans}
}

// Plans returns the plan catalog in display order.
func (s *SubscriptionService) Plans() []models.Plan {
	return s.plans
}

// CreateSubscription validates the request, derives the expiration date and
// appends the record to the store. On any validation error nothing is
// persisted.
func (s *SubscriptionService) CreateSubscription(req CreateSubscriptionRequest) (models.SubscriptionRecord, error) {
	var rec models.SubscriptionRecord

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return rec, &ValidationError{Field: "name", Message: "name is required"}
	}

	duration, err := s.resolveDuration(req)
	if err != nil {
		return rec, err
	}

	if req.AmountPaid.IsNegative() {
		return rec, &ValidationError{Field: "amount_paid", Message: "amount must not be negative"}
	}

	startDate := models.DateOf(req.StartDate)
	rec = models.SubscriptionRecord{
		ID:             uuid.NewString(),
		Name:           name,
		Phone:          strings.TrimSpace(req.Phone),
		PlanName:       req.PlanName,
		DurationDays:   duration,
		AmountPaid:     req.AmountPaid,
		StartDate:      startDate,
		ExpirationDate: startDate.AddDate(0, 0, duration),
		Notes:          strings.TrimSpace(req.Notes),
	}

	if err := s.store.Append(rec); err != nil {
		return models.SubscriptionRecord{}, fmt.Errorf("failed to save subscription: %w", err)
	}
	return rec, nil
}

func (s *SubscriptionService) resolveDuration(req CreateSubscriptionRequest) (int, error) {
	for _, plan := range s.plans {
		if plan.Label != req.PlanName {
			continue
		}
		if days, ok := plan.Duration.Days(); ok {
			return days, nil
		}
		if req.DurationDays <= 0 {
			return 0, &ValidationError{Field: "duration_days", Message: "a positive duration is required for the custom plan"}
		}
		return req.DurationDays, nil
	}
	return 0, &ValidationError{Field: "plan_name", Message: "unknown plan: " + req.PlanName}
}

// ListAnnotated returns every record with its derived status, sorted by
// expiration date ascending.
func (s *SubscriptionService) ListAnnotated(warnDays int, today time.Time) ([]models.AnnotatedRecord, error) {
	records, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	annotated := status.Annotate(records, warnDays, today)
	sort.Slice(annotated, func(i, j int) bool {
		return annotated[i].ExpirationDate.Before(annotated[j].ExpirationDate)
	})
	return annotated, nil
}

// Export returns the collection as CSV bytes in the storage schema.
func (s *SubscriptionService) Export() ([]byte, error) {
	return s.store.Export()
}
