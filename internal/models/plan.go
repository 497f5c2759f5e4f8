package models

// PlanDuration is the duration variant of a plan: either a fixed number of
// days or a caller-supplied ("custom") duration.
type PlanDuration struct {
	days   int
	custom bool
}

// FixedDuration returns a duration of a fixed number of days.
func FixedDuration(days int) PlanDuration { return PlanDuration{days: days} }

// CustomDuration returns the variant whose duration the caller must supply.
func CustomDuration() PlanDuration { return PlanDuration{custom: true} }

// IsCustom reports whether the caller must supply the duration.
func (d PlanDuration) IsCustom() bool { return d.custom }

// Days returns the fixed duration in days; ok is false for custom plans.
func (d PlanDuration) Days() (days int, ok bool) { return d.days, !d.custom }

// Plan is a named subscription tier.
type Plan struct {
	Label    string
	Duration PlanDuration
}

// DefaultPlans is the built-in plan catalog, in display order.
var DefaultPlans = []Plan{
	{Label: "Mensuel (30j)", Duration: FixedDuration(30)},
	{Label: "Trimestriel (90j)", Duration: FixedDuration(90)},
	{Label: "Semestriel (180j)", Duration: FixedDuration(180)},
	{Label: "Annuel (365j)", Duration: FixedDuration(365)},
	{Label: "Personnalisé…", Duration: CustomDuration()},
}
