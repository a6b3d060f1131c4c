package dto

import "time"

type StreakInfo struct {
	Type             string     `json:"type"`
	CurrentCount     int        `json:"current_count"`
	LongestCount     int        `json:"longest_count"`
	IsActive         bool       `json:"is_active"`
	LastActivityDate *time.Time `json:"last_activity_date,omitempty"`
}

type AchievementInfo struct {
	Key         string    `json:"key"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	XPReward    int       `json:"xp_reward"`
	UnlockedAt  time.Time `json:"unlocked_at"`
}

type StatsSummary struct {
	TotalMealsLogged     int `json:"total_meals_logged"`
	TotalExercisesLogged int `json:"total_exercises_logged"`
	TotalWaterLogged     int `json:"total_water_logged"`
}

// UserProgress is the read model consumed by the display layer.
type UserProgress struct {
	Level              int               `json:"level"`
	TotalXP            int               `json:"total_xp"`
	XPToNextLevel      int               `json:"xp_to_next_level"`
	ProgressPercent    float64           `json:"progress_percent"`
	TotalAchievements  int               `json:"total_achievements"`
	Streaks            []StreakInfo      `json:"streaks"`
	RecentAchievements []AchievementInfo `json:"recent_achievements"`
	Stats              StatsSummary      `json:"stats"`
}
