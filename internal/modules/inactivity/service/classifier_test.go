package service

import (
	"testing"

	"anoa.com/fitlife/internal/model"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name     string
		category Category
		days     int
		want     model.AlertSeverity
		wantOK   bool
	}{
		{"hydration fresh", CategoryHydration, 0, "", false},
		{"hydration one day", CategoryHydration, 1, model.SeverityInfo, true},
		{"hydration two days", CategoryHydration, 2, model.SeverityWarning, true},
		{"hydration three days", CategoryHydration, 3, model.SeverityCritical, true},
		{"hydration long gap stays critical", CategoryHydration, 30, model.SeverityCritical, true},

		{"meals two days", CategoryMeals, 2, model.SeverityInfo, true},
		{"meals three days", CategoryMeals, 3, model.SeverityWarning, true},
		{"meals five days", CategoryMeals, 5, model.SeverityCritical, true},

		{"exercise one day", CategoryExercise, 1, "", false},
		{"exercise two days", CategoryExercise, 2, model.SeverityInfo, true},
		{"exercise four days", CategoryExercise, 4, model.SeverityInfo, true},
		{"exercise five days", CategoryExercise, 5, model.SeverityWarning, true},
		{"exercise seven days", CategoryExercise, 7, model.SeverityCritical, true},

		// General has no info tier at all.
		{"general six days", CategoryGeneral, 6, "", false},
		{"general seven days", CategoryGeneral, 7, model.SeverityWarning, true},
		{"general thirteen days", CategoryGeneral, 13, model.SeverityWarning, true},
		{"general fourteen days", CategoryGeneral, 14, model.SeverityCritical, true},

		{"unknown category", Category("sleep"), 10, "", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := classify(c.category, c.days)
			if ok != c.wantOK || got != c.want {
				t.Fatalf("classify(%s, %d) = (%q, %v), want (%q, %v)", c.category, c.days, got, ok, c.want, c.wantOK)
			}
		})
	}
}

func TestMessageForHasCopyForEveryTier(t *testing.T) {
	for category, tiers := range thresholds {
		alertType := categoryAlertTypes[category]
		for _, severity := range []model.AlertSeverity{model.SeverityInfo, model.SeverityWarning, model.SeverityCritical} {
			switch severity {
			case model.SeverityInfo:
				if tiers.Info == 0 {
					continue
				}
			case model.SeverityWarning:
				if tiers.Warning == 0 {
					continue
				}
			case model.SeverityCritical:
				if tiers.Critical == 0 {
					continue
				}
			}
			msg := messageFor(alertType, severity)
			if msg.Message == "" || msg.ActionSuggested == "" {
				t.Fatalf("missing copy for %s/%s", alertType, severity)
			}
		}
	}
}
