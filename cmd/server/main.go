package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"anoa.com/fitlife/internal/app"
	"anoa.com/fitlife/internal/bootstrap"
	"anoa.com/fitlife/internal/config"
	"anoa.com/fitlife/internal/jobs"
	"anoa.com/fitlife/pkg/clock"
	"anoa.com/fitlife/pkg/database"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db := database.Connect()
	if err := bootstrap.Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	if err := bootstrap.SeedAchievements(db); err != nil {
		log.Fatalf("failed to seed achievements: %v", err)
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		redisClient = redis.NewClient(opts)
	} else {
		log.Println("⚠️ REDIS_URL not set, notification publishing disabled")
	}

	application := app.New(db, redisClient, cfg, clock.System())

	scheduler := jobs.NewScheduler()
	scheduler.Register(jobs.NewInactivitySweepJob(application.Progression, application.Inactivity, cfg.SweepSchedule))
	scheduler.Register(jobs.NewAlertCleanupJob(application.Inactivity, cfg.CleanupSchedule))
	scheduler.Start()
	defer scheduler.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down...")
}
