package service

import (
	"context"

	"anoa.com/fitlife/internal/model"
	"anoa.com/fitlife/internal/modules/activity/repository"
	inactivityService "anoa.com/fitlife/internal/modules/inactivity/service"
	progressionService "anoa.com/fitlife/internal/modules/progression/service"
	"anoa.com/fitlife/pkg/apperror"
	"anoa.com/fitlife/pkg/clock"
	"github.com/google/uuid"
)

// ActivityService is the trigger-on-activity surface: persist the
// ledger record, run the progression engine, then resolve the
// category's open inactivity alerts.
type ActivityService interface {
	LogMeal(ctx context.Context, userID uuid.UUID, mealType string, calories float64) (*progressionService.ActivityResult, error)
	LogExercise(ctx context.Context, userID uuid.UUID, exerciseType string, durationMinutes int) (*progressionService.ActivityResult, error)
	LogWater(ctx context.Context, userID uuid.UUID, amountML int) (*progressionService.ActivityResult, error)
}

type activityService struct {
	repo        repository.ActivityRepository
	progression progressionService.ProgressionService
	inactivity  inactivityService.InactivityService
	clock       clock.Clock
}

func NewActivityService(
	repo repository.ActivityRepository,
	progression progressionService.ProgressionService,
	inactivity inactivityService.InactivityService,
	clk clock.Clock,
) ActivityService {
	return &activityService{
		repo:        repo,
		progression: progression,
		inactivity:  inactivity,
		clock:       clk,
	}
}

func (s *activityService) LogMeal(ctx context.Context, userID uuid.UUID, mealType string, calories float64) (*progressionService.ActivityResult, error) {
	// 1. Persist the ledger record
	record := &model.MealLog{
		UserID:   userID,
		MealType: mealType,
		Calories: calories,
		LoggedAt: s.clock.Now(),
	}
	if err := s.repo.CreateMealLog(ctx, record); err != nil {
		return nil, err
	}

	// 2. Progression: counters, streak, XP, achievements
	result, err := s.progression.LogMealActivity(ctx, userID)
	if err != nil {
		return nil, err
	}

	// 3. Fresh activity closes this category's open alerts
	if err := s.inactivity.ResolveForActivity(ctx, userID, model.StreakMeal); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *activityService) LogExercise(ctx context.Context, userID uuid.UUID, exerciseType string, durationMinutes int) (*progressionService.ActivityResult, error) {
	record := &model.ExerciseLog{
		UserID:          userID,
		ExerciseType:    exerciseType,
		DurationMinutes: durationMinutes,
		LoggedAt:        s.clock.Now(),
	}
	if err := s.repo.CreateExerciseLog(ctx, record); err != nil {
		return nil, err
	}

	result, err := s.progression.LogExerciseActivity(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.inactivity.ResolveForActivity(ctx, userID, model.StreakExercise); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *activityService) LogWater(ctx context.Context, userID uuid.UUID, amountML int) (*progressionService.ActivityResult, error) {
	if amountML <= 0 {
		return nil, apperror.New("water amount must be positive", apperror.ErrInvalidInput)
	}

	record := &model.WaterLog{
		UserID:   userID,
		AmountML: amountML,
		LoggedAt: s.clock.Now(),
	}
	if err := s.repo.CreateWaterLog(ctx, record); err != nil {
		return nil, err
	}

	result, err := s.progression.LogHydrationActivity(ctx, userID, amountML)
	if err != nil {
		return nil, err
	}

	if err := s.inactivity.ResolveForActivity(ctx, userID, model.StreakHydration); err != nil {
		return nil, err
	}
	return result, nil
}
