package service

import (
	"context"
	"testing"

	"anoa.com/fitlife/internal/model"
	"anoa.com/fitlife/internal/modules/notification/repository"
	"anoa.com/fitlife/internal/modules/testutil"
)

func TestNotifyPersistsWithoutRedis(t *testing.T) {
	db := testutil.DB(t)
	user := testutil.SeedUser(t, db)
	svc := NewNotificationService(repository.NewNotificationRepository(db), nil)
	ctx := context.Background()

	alert := &model.InactivityAlert{
		UserID:   user.ID,
		Type:     model.AlertHydrationInactivity,
		Severity: model.SeverityCritical,
		Message:  "It's been several days since your last water log.",
	}
	if err := svc.Notify(ctx, alert); err != nil {
		t.Fatalf("Notify: %v", err)
	}

	var notification model.Notification
	if err := db.Where("user_id = ?", user.ID).First(&notification).Error; err != nil {
		t.Fatalf("reload notification: %v", err)
	}
	if notification.Type != string(model.AlertHydrationInactivity) || notification.Message != alert.Message {
		t.Fatalf("notification = %+v", notification)
	}
	if notification.IsRead {
		t.Fatalf("new notification must start unread")
	}

	count, err := svc.UnreadCount(ctx, user.ID)
	if err != nil {
		t.Fatalf("UnreadCount: %v", err)
	}
	if count != 1 {
		t.Fatalf("UnreadCount = %d, want 1", count)
	}
}
