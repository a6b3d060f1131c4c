package repository

import (
	"context"
	"errors"
	"time"

	"anoa.com/fitlife/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProgressionRepository owns UserStats, UserStreak, XpTransaction and
// UserAchievement rows. The inactivity detector reads through it too
// (stats baseline, broken streaks) but never writes.
type ProgressionRepository interface {
	GetOrCreateStats(ctx context.Context, userID uuid.UUID) (*model.UserStats, error)
	FindStats(ctx context.Context, userID uuid.UUID) (*model.UserStats, bool, error)
	SaveStats(ctx context.Context, stats *model.UserStats) error
	UserIDsWithStats(ctx context.Context) ([]uuid.UUID, error)

	GetOrCreateStreak(ctx context.Context, userID uuid.UUID, streakType model.StreakType) (*model.UserStreak, error)
	SaveStreak(ctx context.Context, streak *model.UserStreak) error
	GetStreaks(ctx context.Context, userID uuid.UUID) ([]model.UserStreak, error)
	RecentlyBrokenStreaks(ctx context.Context, userID uuid.UUID, since time.Time) ([]model.UserStreak, error)
	DeactivateLapsedStreaks(ctx context.Context, activeBefore time.Time) (int64, error)

	CreateXpTransaction(ctx context.Context, tx *model.XpTransaction) error

	ActiveAchievements(ctx context.Context) ([]model.Achievement, error)
	HasUserAchievement(ctx context.Context, userID uuid.UUID, achievementID uint) (bool, error)
	CreateUserAchievement(ctx context.Context, ua *model.UserAchievement) error
	RecentUserAchievements(ctx context.Context, userID uuid.UUID, limit int) ([]model.UserAchievement, error)
}

type progressionRepository struct {
	db *gorm.DB
}

func NewProgressionRepository(db *gorm.DB) ProgressionRepository {
	return &progressionRepository{db: db}
}

func (r *progressionRepository) GetOrCreateStats(ctx context.Context, userID uuid.UUID) (*model.UserStats, error) {
	stats := model.UserStats{
		UserID:        userID,
		Level:         1,
		XPToNextLevel: 150,
	}
	err := r.db.WithContext(ctx).
		Where(model.UserStats{UserID: userID}).
		Attrs(stats).
		FirstOrCreate(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *progressionRepository) FindStats(ctx context.Context, userID uuid.UUID) (*model.UserStats, bool, error) {
	var stats model.UserStats
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&stats).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return &stats, true, nil
}

func (r *progressionRepository) SaveStats(ctx context.Context, stats *model.UserStats) error {
	return r.db.WithContext(ctx).Save(stats).Error
}

func (r *progressionRepository) UserIDsWithStats(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&model.UserStats{}).
		Pluck("user_id", &ids).Error
	return ids, err
}

func (r *progressionRepository) GetOrCreateStreak(ctx context.Context, userID uuid.UUID, streakType model.StreakType) (*model.UserStreak, error) {
	streak := model.UserStreak{
		UserID:   userID,
		Type:     streakType,
		IsActive: true,
	}
	err := r.db.WithContext(ctx).
		Where(model.UserStreak{UserID: userID, Type: streakType}).
		Attrs(streak).
		FirstOrCreate(&streak).Error
	if err != nil {
		return nil, err
	}
	return &streak, nil
}

func (r *progressionRepository) SaveStreak(ctx context.Context, streak *model.UserStreak) error {
	return r.db.WithContext(ctx).Save(streak).Error
}

func (r *progressionRepository) GetStreaks(ctx context.Context, userID uuid.UUID) ([]model.UserStreak, error) {
	var streaks []model.UserStreak
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("type asc").
		Find(&streaks).Error
	return streaks, err
}

func (r *progressionRepository) RecentlyBrokenStreaks(ctx context.Context, userID uuid.UUID, since time.Time) ([]model.UserStreak, error) {
	var streaks []model.UserStreak
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ? AND current_count = 0 AND longest_count > 0", userID, false).
		Where("last_activity_date >= ?", since).
		Find(&streaks).Error
	return streaks, err
}

// DeactivateLapsedStreaks marks every streak whose last activity is
// before activeBefore as broken (inactive, count zero). LongestCount is
// untouched so the high-water mark survives the break.
func (r *progressionRepository) DeactivateLapsedStreaks(ctx context.Context, activeBefore time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.UserStreak{}).
		Where("is_active = ? AND current_count > 0 AND last_activity_date < ?", true, activeBefore).
		Updates(map[string]interface{}{
			"is_active":     false,
			"current_count": 0,
		})
	return res.RowsAffected, res.Error
}

func (r *progressionRepository) CreateXpTransaction(ctx context.Context, tx *model.XpTransaction) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

func (r *progressionRepository) ActiveAchievements(ctx context.Context) ([]model.Achievement, error) {
	var achievements []model.Achievement
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id asc").
		Find(&achievements).Error
	return achievements, err
}

func (r *progressionRepository) HasUserAchievement(ctx context.Context, userID uuid.UUID, achievementID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.UserAchievement{}).
		Where("user_id = ? AND achievement_id = ?", userID, achievementID).
		Count(&count).Error
	return count > 0, err
}

func (r *progressionRepository) CreateUserAchievement(ctx context.Context, ua *model.UserAchievement) error {
	return r.db.WithContext(ctx).Create(ua).Error
}

func (r *progressionRepository) RecentUserAchievements(ctx context.Context, userID uuid.UUID, limit int) ([]model.UserAchievement, error) {
	var rows []model.UserAchievement
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("unlocked_at desc").
		Limit(limit).
		Preload("Achievement").
		Find(&rows).Error
	return rows, err
}
