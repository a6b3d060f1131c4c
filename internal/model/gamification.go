package model

import (
	"time"

	"github.com/google/uuid"
)

type XpSource string

const (
	XpSourceMealLogged      XpSource = "meal_logged"
	XpSourceExerciseLogged  XpSource = "exercise_logged"
	XpSourceHydrationLogged XpSource = "hydration_logged"
	XpSourceStreakBonus     XpSource = "streak_bonus"
	XpSourceAchievement     XpSource = "achievement"
)

type StreakType string

const (
	StreakMeal      StreakType = "meal"
	StreakExercise  StreakType = "exercise"
	StreakHydration StreakType = "hydration"
)

// UserStats is the per-user aggregate. All totals are monotonically
// non-decreasing and only the progression service mutates them.
type UserStats struct {
	UserID               uuid.UUID  `gorm:"type:uuid;primaryKey" json:"user_id"`
	User                 User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	TotalXP              int        `gorm:"default:0" json:"total_xp"`
	Level                int        `gorm:"default:1" json:"level"`
	XPToNextLevel        int        `gorm:"default:150" json:"xp_to_next_level"`
	TotalMealsLogged     int        `gorm:"default:0" json:"total_meals_logged"`
	TotalExercisesLogged int        `gorm:"default:0" json:"total_exercises_logged"`
	TotalWaterLogged     int        `gorm:"default:0" json:"total_water_logged"`
	TotalAchievements    int        `gorm:"default:0" json:"total_achievements"`
	LastActivityDate     *time.Time `json:"last_activity_date"`
	LastUpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"last_updated_at"`
}

// XpTransaction is an append-only audit trail. Totals live denormalized
// in UserStats and are never recomputed from this table.
type XpTransaction struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;index:idx_xp_user_date,priority:1;not null" json:"user_id"`
	User           User      `gorm:"foreignKey:UserID" json:"-"`
	Amount         int       `gorm:"not null" json:"amount"`
	Source         XpSource  `gorm:"size:50;not null" json:"source"`
	Description    string    `gorm:"type:text" json:"description"`
	ReferenceID    string    `gorm:"size:36" json:"reference_id"`    // ID of the earning entity
	ReferenceTable string    `gorm:"size:50" json:"reference_table"` // 'achievements', 'user_streaks', ...
	CreatedAt      time.Time `gorm:"index:idx_xp_user_date,priority:2" json:"created_at"`
}

// UserStreak tracks consecutive-day activity per category.
// LongestCount is a high-water mark and never decreases.
type UserStreak struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	UserID           uuid.UUID  `gorm:"type:uuid;uniqueIndex:idx_user_streak_type,priority:1;not null" json:"user_id"`
	User             User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Type             StreakType `gorm:"size:20;uniqueIndex:idx_user_streak_type,priority:2;not null" json:"type"`
	CurrentCount     int        `gorm:"default:0" json:"current_count"`
	LongestCount     int        `gorm:"default:0" json:"longest_count"`
	LastActivityDate *time.Time `json:"last_activity_date"`
	StreakStartDate  *time.Time `json:"streak_start_date"`
	IsActive         bool       `gorm:"default:true" json:"is_active"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

type CriteriaType string

const (
	CriteriaMealsCount     CriteriaType = "meals_count"
	CriteriaExercisesCount CriteriaType = "exercises_count"
	CriteriaLevelReached   CriteriaType = "level_reached"
	CriteriaStreakDays     CriteriaType = "streak_days"
	CriteriaWaterLogged    CriteriaType = "water_logged"
)

// Achievement is the static catalog, seeded at bootstrap.
type Achievement struct {
	ID            uint         `gorm:"primaryKey" json:"id"`
	Key           string       `gorm:"size:50;uniqueIndex;not null" json:"key"`
	Name          string       `gorm:"size:100;not null" json:"name"`
	Description   string       `gorm:"type:text" json:"description"`
	Icon          string       `gorm:"size:20" json:"icon"`
	CriteriaType  CriteriaType `gorm:"size:30;not null" json:"criteria_type"`
	CriteriaValue int          `gorm:"not null" json:"criteria_value"`
	XPReward      int          `gorm:"default:0" json:"xp_reward"`
	IsActive      bool         `gorm:"default:true" json:"is_active"`
	CreatedAt     time.Time    `gorm:"autoCreateTime" json:"created_at"`
}

// UserAchievement exists at most once per (user, achievement); the row
// itself is the source of truth for "already unlocked".
type UserAchievement struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	UserID        uuid.UUID   `gorm:"type:uuid;uniqueIndex:idx_user_achievement,priority:1;not null" json:"user_id"`
	User          User        `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	AchievementID uint        `gorm:"uniqueIndex:idx_user_achievement,priority:2;not null" json:"achievement_id"`
	Achievement   Achievement `gorm:"foreignKey:AchievementID" json:"achievement"`
	UnlockedAt    time.Time   `gorm:"not null" json:"unlocked_at"`
	Progress      int         `gorm:"default:100" json:"progress"`
}
