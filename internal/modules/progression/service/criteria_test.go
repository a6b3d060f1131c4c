package service

import (
	"testing"

	"anoa.com/fitlife/internal/model"
)

func TestEvaluateCriteria(t *testing.T) {
	snap := criteriaSnapshot{
		stats: &model.UserStats{
			TotalMealsLogged:     12,
			TotalExercisesLogged: 3,
			TotalWaterLogged:     40,
			Level:                4,
		},
		streaks: []model.UserStreak{
			{Type: model.StreakMeal, CurrentCount: 6},
			{Type: model.StreakHydration, CurrentCount: 9},
		},
	}

	cases := []struct {
		name         string
		criteriaType model.CriteriaType
		threshold    int
		want         bool
	}{
		{"meals met", model.CriteriaMealsCount, 10, true},
		{"meals exact threshold", model.CriteriaMealsCount, 12, true},
		{"meals not met", model.CriteriaMealsCount, 13, false},
		{"exercises met", model.CriteriaExercisesCount, 3, true},
		{"exercises not met", model.CriteriaExercisesCount, 4, false},
		{"water met", model.CriteriaWaterLogged, 25, true},
		{"level met", model.CriteriaLevelReached, 4, true},
		{"level not met", model.CriteriaLevelReached, 5, false},
		{"streak uses best current run", model.CriteriaStreakDays, 9, true},
		{"streak not met", model.CriteriaStreakDays, 10, false},
		{"unknown type fails closed", model.CriteriaType("days_since_signup"), 1, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := evaluateCriteria(c.criteriaType, c.threshold, snap); got != c.want {
				t.Fatalf("evaluateCriteria(%q, %d) = %v, want %v", c.criteriaType, c.threshold, got, c.want)
			}
		})
	}
}

func TestEvaluateCriteriaNoStreaks(t *testing.T) {
	snap := criteriaSnapshot{stats: &model.UserStats{Level: 1}}
	if evaluateCriteria(model.CriteriaStreakDays, 1, snap) {
		t.Fatalf("expected streak criteria to fail with no streak rows")
	}
}
