package app

import (
	"anoa.com/fitlife/internal/config"
	activityRepo "anoa.com/fitlife/internal/modules/activity/repository"
	activityService "anoa.com/fitlife/internal/modules/activity/service"
	inactivityRepo "anoa.com/fitlife/internal/modules/inactivity/repository"
	inactivityService "anoa.com/fitlife/internal/modules/inactivity/service"
	notifRepo "anoa.com/fitlife/internal/modules/notification/repository"
	notifService "anoa.com/fitlife/internal/modules/notification/service"
	progressionRepo "anoa.com/fitlife/internal/modules/progression/repository"
	progressionService "anoa.com/fitlife/internal/modules/progression/service"
	"anoa.com/fitlife/pkg/clock"
	"anoa.com/fitlife/pkg/userlock"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// App wires the engagement engine together. The embedding application
// calls Activity when users log something, Progression for the
// progress read model, and Inactivity for alert queries; the scheduled
// jobs drive the rest.
type App struct {
	Activity     activityService.ActivityService
	Progression  progressionService.ProgressionService
	Inactivity   inactivityService.InactivityService
	Notification notifService.NotificationService
}

func New(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, clk clock.Clock) *App {
	locker := userlock.New()

	progRepo := progressionRepo.NewProgressionRepository(db)
	progSvc := progressionService.NewProgressionService(progRepo, clk, locker)

	notificationRepo := notifRepo.NewNotificationRepository(db)
	notificationSvc := notifService.NewNotificationService(notificationRepo, redisClient)

	ledger := activityRepo.NewActivityRepository(db)
	alertRepo := inactivityRepo.NewAlertRepository(db)
	inactivitySvc := inactivityService.NewInactivityService(
		alertRepo, progRepo, ledger, notificationSvc, clk, locker, cfg.AlertRetention)

	activitySvc := activityService.NewActivityService(ledger, progSvc, inactivitySvc, clk)

	return &App{
		Activity:     activitySvc,
		Progression:  progSvc,
		Inactivity:   inactivitySvc,
		Notification: notificationSvc,
	}
}
