package service

import "anoa.com/fitlife/internal/model"

// Category is an inactivity dimension: one per trackable ledger plus
// the cross-cutting "general" dimension driven by UserStats.
type Category string

const (
	CategoryHydration Category = "hydration"
	CategoryMeals     Category = "meals"
	CategoryExercise  Category = "exercise"
	CategoryGeneral   Category = "general"
)

// tierThresholds holds the inclusive lower bound of each severity tier
// in days. A zero bound means the category has no such tier (general
// inactivity has no info tier).
type tierThresholds struct {
	Info     int
	Warning  int
	Critical int
}

var thresholds = map[Category]tierThresholds{
	CategoryHydration: {Info: 1, Warning: 2, Critical: 3},
	CategoryMeals:     {Info: 1, Warning: 3, Critical: 5},
	CategoryExercise:  {Info: 2, Warning: 5, Critical: 7},
	CategoryGeneral:   {Warning: 7, Critical: 14},
}

var categoryAlertTypes = map[Category]model.AlertType{
	CategoryHydration: model.AlertHydrationInactivity,
	CategoryMeals:     model.AlertMealInactivity,
	CategoryExercise:  model.AlertExerciseInactivity,
	CategoryGeneral:   model.AlertGeneralInactivity,
}

// classify maps a staleness delta to a severity tier. Bounds are
// inclusive at the low end, so a single daysInactive value falls into
// exactly one tier. ok=false means the delta is below every tier.
func classify(category Category, daysInactive int) (model.AlertSeverity, bool) {
	t, found := thresholds[category]
	if !found {
		return "", false
	}
	switch {
	case t.Critical > 0 && daysInactive >= t.Critical:
		return model.SeverityCritical, true
	case t.Warning > 0 && daysInactive >= t.Warning:
		return model.SeverityWarning, true
	case t.Info > 0 && daysInactive >= t.Info:
		return model.SeverityInfo, true
	default:
		return "", false
	}
}
