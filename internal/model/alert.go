package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AlertType string

const (
	AlertHydrationInactivity AlertType = "hydration_inactivity"
	AlertMealInactivity      AlertType = "meal_inactivity"
	AlertExerciseInactivity  AlertType = "exercise_inactivity"
	AlertGeneralInactivity   AlertType = "general_inactivity"
	AlertStreakBroken        AlertType = "streak_broken"
)

type AlertSeverity string

const (
	SeverityInfo     AlertSeverity = "info"
	SeverityWarning  AlertSeverity = "warning"
	SeverityCritical AlertSeverity = "critical"
)

// Rank gives the total ordering info < warning < critical. Used for
// client-side sorting only, never to suppress lower tiers.
func (s AlertSeverity) Rank() int {
	switch s {
	case SeverityCritical:
		return 3
	case SeverityWarning:
		return 2
	case SeverityInfo:
		return 1
	default:
		return 0
	}
}

// InactivityAlert records one staleness finding. At most one unresolved
// row may exist per (user_id, type, severity); the detector enforces
// this with an existence check before insert.
type InactivityAlert struct {
	ID               uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	UserID           uuid.UUID         `gorm:"type:uuid;index;not null" json:"user_id"`
	User             User              `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Type             AlertType         `gorm:"size:50;index;not null" json:"type"`
	Severity         AlertSeverity     `gorm:"size:20;not null" json:"severity"`
	DaysInactive     int               `json:"days_inactive"`
	LastActivityDate *time.Time        `json:"last_activity_date"`
	Message          string            `gorm:"type:text" json:"message"`
	ActionSuggested  string            `gorm:"type:text" json:"action_suggested"`
	IsResolved       bool              `gorm:"default:false;index" json:"is_resolved"`
	ResolvedAt       *time.Time        `json:"resolved_at"`
	Metadata         datatypes.JSONMap `json:"metadata"`
	CreatedAt        time.Time         `gorm:"autoCreateTime" json:"created_at"`
}

func (a *InactivityAlert) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// Notification is the persisted side of the notification sink; the
// delivery channel (redis pub/sub) is fire-and-forget on top of it.
type Notification struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Type      string    `gorm:"size:50;not null" json:"type"`
	Message   string    `gorm:"type:text" json:"message"`
	IsRead    bool      `gorm:"default:false" json:"is_read"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}
