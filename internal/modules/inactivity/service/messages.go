package service

import (
	"fmt"

	"anoa.com/fitlife/internal/model"
)

// Alert wording is data, not logic: one entry per (type, severity).
type alertCopy struct {
	Message         string
	ActionSuggested string
}

type copyKey struct {
	Type     model.AlertType
	Severity model.AlertSeverity
}

var alertMessages = map[copyKey]alertCopy{
	{model.AlertHydrationInactivity, model.SeverityInfo}: {
		Message:         "You haven't logged any water today.",
		ActionSuggested: "Log a glass of water to keep your hydration streak alive.",
	},
	{model.AlertHydrationInactivity, model.SeverityWarning}: {
		Message:         "No water logged for a couple of days.",
		ActionSuggested: "Staying hydrated helps everything else. Log your next glass.",
	},
	{model.AlertHydrationInactivity, model.SeverityCritical}: {
		Message:         "It's been several days since your last water log.",
		ActionSuggested: "Start small: log one glass of water right now.",
	},
	{model.AlertMealInactivity, model.SeverityInfo}: {
		Message:         "You haven't logged a meal today.",
		ActionSuggested: "Log your next meal to keep your nutrition picture complete.",
	},
	{model.AlertMealInactivity, model.SeverityWarning}: {
		Message:         "No meals logged for a few days.",
		ActionSuggested: "Jump back in by logging whatever you eat next.",
	},
	{model.AlertMealInactivity, model.SeverityCritical}: {
		Message:         "Your meal log has been quiet for almost a week.",
		ActionSuggested: "One logged meal is all it takes to restart.",
	},
	{model.AlertExerciseInactivity, model.SeverityInfo}: {
		Message:         "No workouts logged in the last couple of days.",
		ActionSuggested: "A short walk counts. Log your next session.",
	},
	{model.AlertExerciseInactivity, model.SeverityWarning}: {
		Message:         "Your exercise log has been quiet this week.",
		ActionSuggested: "Pick something light to get moving again.",
	},
	{model.AlertExerciseInactivity, model.SeverityCritical}: {
		Message:         "No exercise logged for over a week.",
		ActionSuggested: "Restart with a 10 minute session today.",
	},
	{model.AlertGeneralInactivity, model.SeverityWarning}: {
		Message:         "We haven't seen any activity from you in a while.",
		ActionSuggested: "Log a meal, a workout or a glass of water to get back on track.",
	},
	{model.AlertGeneralInactivity, model.SeverityCritical}: {
		Message:         "You've been away for two weeks or more.",
		ActionSuggested: "Come back and log anything. Your stats are waiting.",
	},
}

func messageFor(alertType model.AlertType, severity model.AlertSeverity) alertCopy {
	if msg, ok := alertMessages[copyKey{alertType, severity}]; ok {
		return msg
	}
	return alertCopy{
		Message:         "You've been inactive for a while.",
		ActionSuggested: "Log an activity to get back on track.",
	}
}

func streakBrokenCopy(streakType model.StreakType, longest int) alertCopy {
	return alertCopy{
		Message:         fmt.Sprintf("Your %d-day %s streak has ended.", longest, streakType),
		ActionSuggested: fmt.Sprintf("Start a new %s streak today. Your record of %d days is still yours to beat.", streakType, longest),
	}
}
