package repository

import (
	"context"
	"errors"
	"time"

	"anoa.com/fitlife/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityRepository is the activity ledger. The engines only write new
// rows and read the most recent row per user per category; a missing
// row ("never recorded") is reported via found=false, not an error.
type ActivityRepository interface {
	CreateMealLog(ctx context.Context, log *model.MealLog) error
	CreateExerciseLog(ctx context.Context, log *model.ExerciseLog) error
	CreateWaterLog(ctx context.Context, log *model.WaterLog) error

	LatestMealAt(ctx context.Context, userID uuid.UUID) (time.Time, bool, error)
	LatestExerciseAt(ctx context.Context, userID uuid.UUID) (time.Time, bool, error)
	LatestWaterAt(ctx context.Context, userID uuid.UUID) (time.Time, bool, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) CreateMealLog(ctx context.Context, log *model.MealLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *activityRepository) CreateExerciseLog(ctx context.Context, log *model.ExerciseLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *activityRepository) CreateWaterLog(ctx context.Context, log *model.WaterLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *activityRepository) LatestMealAt(ctx context.Context, userID uuid.UUID) (time.Time, bool, error) {
	var log model.MealLog
	return latestAt(r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("logged_at desc").
		First(&log).Error, log.LoggedAt)
}

func (r *activityRepository) LatestExerciseAt(ctx context.Context, userID uuid.UUID) (time.Time, bool, error) {
	var log model.ExerciseLog
	return latestAt(r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("logged_at desc").
		First(&log).Error, log.LoggedAt)
}

func (r *activityRepository) LatestWaterAt(ctx context.Context, userID uuid.UUID) (time.Time, bool, error) {
	var log model.WaterLog
	return latestAt(r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("logged_at desc").
		First(&log).Error, log.LoggedAt)
}

func latestAt(err error, at time.Time) (time.Time, bool, error) {
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, err
	}
	return at, true, nil
}
