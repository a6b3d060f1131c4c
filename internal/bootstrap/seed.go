package bootstrap

import (
	"fmt"
	"log"

	"anoa.com/fitlife/internal/model"
	appValidator "anoa.com/fitlife/pkg/validator"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.MealLog{},
		&model.ExerciseLog{},
		&model.WaterLog{},
		&model.UserStats{},
		&model.UserStreak{},
		&model.XpTransaction{},
		&model.Achievement{},
		&model.UserAchievement{},
		&model.InactivityAlert{},
		&model.Notification{},
	)
}

type achievementSeed struct {
	Key           string             `validate:"required,max=50"`
	Name          string             `validate:"required,max=100"`
	Description   string             `validate:"required"`
	Icon          string             `validate:"max=20"`
	CriteriaType  model.CriteriaType `validate:"required,oneof=meals_count exercises_count level_reached streak_days water_logged"`
	CriteriaValue int                `validate:"required,gt=0"`
	XPReward      int                `validate:"gt=0"`
}

var defaultAchievements = []achievementSeed{
	{Key: "first_meal", Name: "First Bite", Description: "Log your first meal", Icon: "🍽️", CriteriaType: model.CriteriaMealsCount, CriteriaValue: 1, XPReward: 10},
	{Key: "meals_50", Name: "Meal Tracker", Description: "Log 50 meals", Icon: "🥗", CriteriaType: model.CriteriaMealsCount, CriteriaValue: 50, XPReward: 100},
	{Key: "meals_250", Name: "Nutrition Expert", Description: "Log 250 meals", Icon: "👨‍🍳", CriteriaType: model.CriteriaMealsCount, CriteriaValue: 250, XPReward: 500},
	{Key: "first_workout", Name: "First Rep", Description: "Log your first workout", Icon: "💪", CriteriaType: model.CriteriaExercisesCount, CriteriaValue: 1, XPReward: 15},
	{Key: "workouts_25", Name: "Regular", Description: "Log 25 workouts", Icon: "🏃", CriteriaType: model.CriteriaExercisesCount, CriteriaValue: 25, XPReward: 150},
	{Key: "workouts_100", Name: "Athlete", Description: "Log 100 workouts", Icon: "🏆", CriteriaType: model.CriteriaExercisesCount, CriteriaValue: 100, XPReward: 400},
	{Key: "water_100", Name: "Well Watered", Description: "Log water 100 times", Icon: "💧", CriteriaType: model.CriteriaWaterLogged, CriteriaValue: 100, XPReward: 100},
	{Key: "streak_7", Name: "One Week Strong", Description: "Keep any streak for 7 days", Icon: "🔥", CriteriaType: model.CriteriaStreakDays, CriteriaValue: 7, XPReward: 75},
	{Key: "streak_30", Name: "Habit Formed", Description: "Keep any streak for 30 days", Icon: "⚡", CriteriaType: model.CriteriaStreakDays, CriteriaValue: 30, XPReward: 300},
	{Key: "level_5", Name: "Getting Serious", Description: "Reach level 5", Icon: "⭐", CriteriaType: model.CriteriaLevelReached, CriteriaValue: 5, XPReward: 50},
	{Key: "level_10", Name: "Dedicated", Description: "Reach level 10", Icon: "🌟", CriteriaType: model.CriteriaLevelReached, CriteriaValue: 10, XPReward: 200},
}

// SeedAchievements inserts the default catalog, skipping keys that
// already exist so re-running bootstrap is safe.
func SeedAchievements(db *gorm.DB) error {
	validate := validator.New()

	for _, seed := range defaultAchievements {
		if err := validate.Struct(seed); err != nil {
			return fmt.Errorf("invalid achievement seed %q: %s", seed.Key, appValidator.FormatValidationError(err))
		}

		var count int64
		if err := db.Model(&model.Achievement{}).
			Where("key = ?", seed.Key).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		achievement := model.Achievement{
			Key:           seed.Key,
			Name:          seed.Name,
			Description:   seed.Description,
			Icon:          seed.Icon,
			CriteriaType:  seed.CriteriaType,
			CriteriaValue: seed.CriteriaValue,
			XPReward:      seed.XPReward,
			IsActive:      true,
		}
		if err := db.Create(&achievement).Error; err != nil {
			return err
		}
	}

	log.Println("✅ Achievement catalog seeded")
	return nil
}
