package service

import "anoa.com/fitlife/internal/model"

// criteriaSnapshot is the user state a criteria predicate evaluates
// against: stats counters plus the current streaks.
type criteriaSnapshot struct {
	stats   *model.UserStats
	streaks []model.UserStreak
}

func (s criteriaSnapshot) bestCurrentStreak() int {
	best := 0
	for _, streak := range s.streaks {
		if streak.CurrentCount > best {
			best = streak.CurrentCount
		}
	}
	return best
}

// One pure predicate per criteria type. An unknown or malformed type
// has no entry here and evaluates false (fail-closed, never panics).
var criteriaPredicates = map[model.CriteriaType]func(snap criteriaSnapshot, threshold int) bool{
	model.CriteriaMealsCount: func(snap criteriaSnapshot, threshold int) bool {
		return snap.stats.TotalMealsLogged >= threshold
	},
	model.CriteriaExercisesCount: func(snap criteriaSnapshot, threshold int) bool {
		return snap.stats.TotalExercisesLogged >= threshold
	},
	model.CriteriaWaterLogged: func(snap criteriaSnapshot, threshold int) bool {
		return snap.stats.TotalWaterLogged >= threshold
	},
	model.CriteriaLevelReached: func(snap criteriaSnapshot, threshold int) bool {
		return snap.stats.Level >= threshold
	},
	model.CriteriaStreakDays: func(snap criteriaSnapshot, threshold int) bool {
		return snap.bestCurrentStreak() >= threshold
	},
}

func evaluateCriteria(criteriaType model.CriteriaType, threshold int, snap criteriaSnapshot) bool {
	predicate, ok := criteriaPredicates[criteriaType]
	if !ok {
		return false
	}
	return predicate(snap, threshold)
}
