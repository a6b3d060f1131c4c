package bootstrap

import (
	"testing"

	"anoa.com/fitlife/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestSeedAchievementsIsIdempotent(t *testing.T) {
	db := openTestDB(t)

	if err := SeedAchievements(db); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	var first int64
	if err := db.Model(&model.Achievement{}).Count(&first).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if first != int64(len(defaultAchievements)) {
		t.Fatalf("seeded %d achievements, want %d", first, len(defaultAchievements))
	}

	if err := SeedAchievements(db); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	var second int64
	if err := db.Model(&model.Achievement{}).Count(&second).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if second != first {
		t.Fatalf("second seed changed the catalog: %d -> %d", first, second)
	}
}

func TestDefaultAchievementSeedsAreValid(t *testing.T) {
	db := openTestDB(t)
	if err := SeedAchievements(db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var rows []model.Achievement
	if err := db.Find(&rows).Error; err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	seen := make(map[string]bool, len(rows))
	for _, a := range rows {
		if seen[a.Key] {
			t.Fatalf("duplicate achievement key %q", a.Key)
		}
		seen[a.Key] = true
		if !a.IsActive {
			t.Fatalf("seeded achievement %q is inactive", a.Key)
		}
		if a.CriteriaValue <= 0 {
			t.Fatalf("achievement %q has non-positive criteria value", a.Key)
		}
	}
}
