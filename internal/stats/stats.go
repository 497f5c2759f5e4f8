// Package stats aggregates annotated subscription records for the dashboard
// metrics and charts.
package stats

import (
	"sort"
	"time"

	"gym-manager/internal/models"

	"github.com/shopspring/decimal"
)

// MonthRevenue is the total amount paid for subscriptions started in one
// calendar month. Month is the first day of that month at UTC midnight.
type MonthRevenue struct {
	Month time.Time       `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// CountByStatus counts records per status. Every status is present in the
// result, zero-valued when absent, so an empty input yields all-zero counts.
func CountByStatus(annotated []models.AnnotatedRecord) map[models.Status]int {
	counts := make(map[models.Status]int, len(models.AllStatuses))
	for _, st := range models.AllStatuses {
		counts[st] = 0
	}
	for _, rec := range annotated {
		counts[rec.Status]++
	}
	return counts
}

// RevenueByMonth sums AmountPaid grouped by the calendar month of each
// record's StartDate, in chronological order.
func RevenueByMonth(annotated []models.AnnotatedRecord) []MonthRevenue {
	totals := make(map[time.Time]decimal.Decimal)
	for _, rec := range annotated {
		month := time.Date(rec.StartDate.Year(), rec.StartDate.Month(), 1, 0, 0, 0, 0, time.UTC)
		totals[month] = totals[month].Add(rec.AmountPaid)
	}

	months := make([]time.Time, 0, len(totals))
	for month := range totals {
		months = append(months, month)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	out := make([]MonthRevenue, 0, len(months))
	for _, month := range months {
		out = append(out, MonthRevenue{Month: month, Total: totals[month]})
	}
	return out
}

// StatusBreakdownForChart returns per-status counts for proportion display.
func StatusBreakdownForChart(annotated []models.AnnotatedRecord) map[models.Status]int {
	return CountByStatus(annotated)
}
