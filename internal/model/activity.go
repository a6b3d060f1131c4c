package model

import (
	"time"

	"github.com/google/uuid"
)

// Ledger rows for the three trackable categories. The engines only ever
// read the most recent row per user; history stays for reporting.

type MealLog struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;index:idx_meal_user_time,priority:1;not null" json:"user_id"`
	User     User      `gorm:"foreignKey:UserID" json:"-"`
	MealType string    `gorm:"size:20" json:"meal_type"` // 'breakfast', 'lunch', 'dinner', 'snack'
	Calories float64   `json:"calories"`
	LoggedAt time.Time `gorm:"index:idx_meal_user_time,priority:2;not null" json:"logged_at"`
}

type ExerciseLog struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uuid.UUID `gorm:"type:uuid;index:idx_exercise_user_time,priority:1;not null" json:"user_id"`
	User            User      `gorm:"foreignKey:UserID" json:"-"`
	ExerciseType    string    `gorm:"size:50" json:"exercise_type"`
	DurationMinutes int       `json:"duration_minutes"`
	LoggedAt        time.Time `gorm:"index:idx_exercise_user_time,priority:2;not null" json:"logged_at"`
}

type WaterLog struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;index:idx_water_user_time,priority:1;not null" json:"user_id"`
	User     User      `gorm:"foreignKey:UserID" json:"-"`
	AmountML int       `gorm:"not null" json:"amount_ml"`
	LoggedAt time.Time `gorm:"index:idx_water_user_time,priority:2;not null" json:"logged_at"`
}
