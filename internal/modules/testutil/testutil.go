package testutil

import (
	"fmt"
	"strings"
	"testing"

	"anoa.com/fitlife/internal/bootstrap"
	"anoa.com/fitlife/internal/model"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// DB opens a fresh in-memory sqlite database with the full schema.
// Each test gets its own named database so parallel tests can't see
// each other's rows.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(tb.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		tb.Fatalf("failed to open test db: %v", err)
	}
	if err := bootstrap.Migrate(db); err != nil {
		tb.Fatalf("failed to migrate test db: %v", err)
	}
	return db
}

func SeedUser(tb testing.TB, db *gorm.DB) *model.User {
	tb.Helper()
	suffix := uuid.NewString()[:8]
	u := &model.User{
		Username: "user_" + suffix,
		Email:    fmt.Sprintf("user_%s@example.com", suffix),
	}
	if err := db.Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedAchievement(tb testing.TB, db *gorm.DB, key string, criteriaType model.CriteriaType, threshold, xpReward int) *model.Achievement {
	tb.Helper()
	a := &model.Achievement{
		Key:           key,
		Name:          key,
		Description:   "test achievement " + key,
		CriteriaType:  criteriaType,
		CriteriaValue: threshold,
		XPReward:      xpReward,
		IsActive:      true,
	}
	if err := db.Create(a).Error; err != nil {
		tb.Fatalf("seed achievement: %v", err)
	}
	return a
}
