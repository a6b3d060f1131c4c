package repository

import (
	"context"
	"time"

	"anoa.com/fitlife/internal/model"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AlertRepository owns InactivityAlert rows. The dedup contract (at
// most one unresolved row per user/type/severity) is enforced by the
// detector via HasUnresolved before Create.
type AlertRepository interface {
	Create(ctx context.Context, alert *model.InactivityAlert) error
	HasUnresolved(ctx context.Context, userID uuid.UUID, alertType model.AlertType, severity model.AlertSeverity) (bool, error)
	HasUnresolvedStreakBroken(ctx context.Context, userID uuid.UUID, streakType model.StreakType) (bool, error)
	ListUnresolved(ctx context.Context, userID uuid.UUID) ([]model.InactivityAlert, error)
	ResolveByTypes(ctx context.Context, userID uuid.UUID, types []model.AlertType, at time.Time) error
	ResolveStreakBroken(ctx context.Context, userID uuid.UUID, streakType model.StreakType, at time.Time) error
	ResolveAll(ctx context.Context, userID uuid.UUID, at time.Time) error
	DeleteResolvedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type alertRepository struct {
	db *gorm.DB
}

func NewAlertRepository(db *gorm.DB) AlertRepository {
	return &alertRepository{db: db}
}

func (r *alertRepository) Create(ctx context.Context, alert *model.InactivityAlert) error {
	return r.db.WithContext(ctx).Create(alert).Error
}

func (r *alertRepository) HasUnresolved(ctx context.Context, userID uuid.UUID, alertType model.AlertType, severity model.AlertSeverity) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.InactivityAlert{}).
		Where("user_id = ? AND type = ? AND severity = ? AND is_resolved = ?", userID, alertType, severity, false).
		Count(&count).Error
	return count > 0, err
}

func (r *alertRepository) HasUnresolvedStreakBroken(ctx context.Context, userID uuid.UUID, streakType model.StreakType) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.InactivityAlert{}).
		Where("user_id = ? AND type = ? AND is_resolved = ?", userID, model.AlertStreakBroken, false).
		Where(datatypes.JSONQuery("metadata").Equals(string(streakType), "streak_type")).
		Count(&count).Error
	return count > 0, err
}

func (r *alertRepository) ListUnresolved(ctx context.Context, userID uuid.UUID) ([]model.InactivityAlert, error) {
	var alerts []model.InactivityAlert
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_resolved = ?", userID, false).
		Order("created_at desc").
		Find(&alerts).Error
	return alerts, err
}

func (r *alertRepository) ResolveByTypes(ctx context.Context, userID uuid.UUID, types []model.AlertType, at time.Time) error {
	if len(types) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&model.InactivityAlert{}).
		Where("user_id = ? AND type IN ? AND is_resolved = ?", userID, types, false).
		Updates(map[string]interface{}{
			"is_resolved": true,
			"resolved_at": at,
		}).Error
}

func (r *alertRepository) ResolveStreakBroken(ctx context.Context, userID uuid.UUID, streakType model.StreakType, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&model.InactivityAlert{}).
		Where("user_id = ? AND type = ? AND is_resolved = ?", userID, model.AlertStreakBroken, false).
		Where(datatypes.JSONQuery("metadata").Equals(string(streakType), "streak_type")).
		Updates(map[string]interface{}{
			"is_resolved": true,
			"resolved_at": at,
		}).Error
}

func (r *alertRepository) ResolveAll(ctx context.Context, userID uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&model.InactivityAlert{}).
		Where("user_id = ? AND is_resolved = ?", userID, false).
		Updates(map[string]interface{}{
			"is_resolved": true,
			"resolved_at": at,
		}).Error
}

func (r *alertRepository) DeleteResolvedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("is_resolved = ? AND resolved_at < ?", true, cutoff).
		Delete(&model.InactivityAlert{})
	return res.RowsAffected, res.Error
}
