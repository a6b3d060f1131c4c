package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"anoa.com/fitlife/internal/app"
	"anoa.com/fitlife/internal/config"
	"anoa.com/fitlife/internal/model"
	"anoa.com/fitlife/internal/modules/testutil"
	"anoa.com/fitlife/pkg/apperror"
	"anoa.com/fitlife/pkg/clock"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type activityEnv struct {
	db   *gorm.DB
	clk  *clock.Fake
	app  *app.App
	user uuid.UUID
}

func newActivityEnv(t *testing.T) *activityEnv {
	t.Helper()
	db := testutil.DB(t)
	clk := clock.NewFake(time.Date(2025, 7, 1, 7, 30, 0, 0, time.UTC))
	user := testutil.SeedUser(t, db)
	return &activityEnv{
		db:   db,
		clk:  clk,
		app:  app.New(db, nil, &config.Config{}, clk),
		user: user.ID,
	}
}

func TestLogMealPersistsAndProgresses(t *testing.T) {
	env := newActivityEnv(t)
	ctx := context.Background()

	res, err := env.app.Activity.LogMeal(ctx, env.user, "breakfast", 420)
	if err != nil {
		t.Fatalf("LogMeal: %v", err)
	}
	if res.Stats.TotalMealsLogged != 1 || res.Streak.CurrentCount != 1 {
		t.Fatalf("result = meals %d, streak %d", res.Stats.TotalMealsLogged, res.Streak.CurrentCount)
	}

	var record model.MealLog
	if err := env.db.Where("user_id = ?", env.user).First(&record).Error; err != nil {
		t.Fatalf("reload meal log: %v", err)
	}
	if record.MealType != "breakfast" || record.Calories != 420 {
		t.Fatalf("meal log = %+v", record)
	}
	if !record.LoggedAt.Equal(env.clk.Now()) {
		t.Fatalf("LoggedAt = %v, want clock time %v", record.LoggedAt, env.clk.Now())
	}
}

func TestLogWaterRejectsNonPositiveAmount(t *testing.T) {
	env := newActivityEnv(t)
	ctx := context.Background()

	for _, amount := range []int{0, -100} {
		if _, err := env.app.Activity.LogWater(ctx, env.user, amount); !errors.Is(err, apperror.ErrInvalidInput) {
			t.Fatalf("LogWater(%d): expected ErrInvalidInput, got %v", amount, err)
		}
	}

	var count int64
	if err := env.db.Model(&model.WaterLog{}).Where("user_id = ?", env.user).Count(&count).Error; err != nil {
		t.Fatalf("count water logs: %v", err)
	}
	if count != 0 {
		t.Fatalf("rejected log still persisted %d rows", count)
	}
}

// The full loop: activity goes quiet, the sweep opens an alert, fresh
// activity closes it again, and the next sweep stays quiet.
func TestFreshActivityResolvesOpenAlerts(t *testing.T) {
	env := newActivityEnv(t)
	ctx := context.Background()

	if _, err := env.app.Activity.LogWater(ctx, env.user, 250); err != nil {
		t.Fatalf("initial LogWater: %v", err)
	}

	env.clk.Advance(4 * 24 * time.Hour)
	created, err := env.app.Inactivity.DetectForUser(ctx, env.user)
	if err != nil {
		t.Fatalf("DetectForUser: %v", err)
	}
	if len(created) != 1 || created[0].Type != model.AlertHydrationInactivity {
		t.Fatalf("created = %+v, want one hydration alert", created)
	}

	if _, err := env.app.Activity.LogWater(ctx, env.user, 300); err != nil {
		t.Fatalf("second LogWater: %v", err)
	}

	open, err := env.app.Inactivity.ListOpenAlerts(ctx, env.user)
	if err != nil {
		t.Fatalf("ListOpenAlerts: %v", err)
	}
	if len(open) != 0 {
		t.Fatalf("open alerts after fresh activity = %+v, want none", open)
	}

	created, err = env.app.Inactivity.DetectForUser(ctx, env.user)
	if err != nil {
		t.Fatalf("post-activity DetectForUser: %v", err)
	}
	if len(created) != 0 {
		t.Fatalf("sweep right after activity created %+v", created)
	}
}

func TestLogExerciseResetsStreakAfterGap(t *testing.T) {
	env := newActivityEnv(t)
	ctx := context.Background()

	for day := 0; day < 2; day++ {
		if day > 0 {
			env.clk.Advance(24 * time.Hour)
		}
		if _, err := env.app.Activity.LogExercise(ctx, env.user, "run", 30); err != nil {
			t.Fatalf("LogExercise: %v", err)
		}
	}

	env.clk.Advance(3 * 24 * time.Hour)
	res, err := env.app.Activity.LogExercise(ctx, env.user, "swim", 45)
	if err != nil {
		t.Fatalf("post-gap LogExercise: %v", err)
	}
	if res.Streak.CurrentCount != 1 || res.Streak.LongestCount != 2 {
		t.Fatalf("streak after gap = current %d longest %d", res.Streak.CurrentCount, res.Streak.LongestCount)
	}
	if res.Stats.TotalExercisesLogged != 3 {
		t.Fatalf("TotalExercisesLogged = %d, want 3", res.Stats.TotalExercisesLogged)
	}
}
