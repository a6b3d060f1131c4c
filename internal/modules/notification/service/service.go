package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"anoa.com/fitlife/internal/model"
	"anoa.com/fitlife/internal/modules/notification/repository"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Sink receives high-severity alerts for delivery. The inactivity
// engine calls it fire-and-forget; delivery mechanics live here, not in
// the engine.
type Sink interface {
	Notify(ctx context.Context, alert *model.InactivityAlert) error
}

type NotificationService interface {
	Sink
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
}

type notificationService struct {
	repo        repository.NotificationRepository
	redisClient *redis.Client
}

func NewNotificationService(repo repository.NotificationRepository, redisClient *redis.Client) NotificationService {
	return &notificationService{
		repo:        repo,
		redisClient: redisClient,
	}
}

func (s *notificationService) Notify(ctx context.Context, alert *model.InactivityAlert) error {
	notification := &model.Notification{
		UserID:  alert.UserID,
		Type:    string(alert.Type),
		Message: alert.Message,
	}

	// 1. Save to DB
	if err := s.repo.Create(ctx, notification); err != nil {
		return err
	}

	// 2. Publish to Redis if Redis is available
	if s.redisClient != nil {
		channel := fmt.Sprintf("user_notifications:%s", alert.UserID.String())

		payload, err := json.Marshal(notification)
		if err == nil {
			if err := s.redisClient.Publish(ctx, channel, payload).Err(); err != nil {
				// DB row already written, delivery is best effort
				log.Printf("Failed to publish notification for user %s: %v", alert.UserID, err)
			}
		}
	}

	return nil
}

func (s *notificationService) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.repo.CountUnread(ctx, userID)
}
