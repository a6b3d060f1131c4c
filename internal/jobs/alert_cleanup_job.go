package jobs

import (
	"context"
	"log"

	inactivityService "anoa.com/fitlife/internal/modules/inactivity/service"
)

// AlertCleanupJob purges resolved alerts past the retention window.
// Pure garbage collection, no business meaning.
type AlertCleanupJob struct {
	inactivity inactivityService.InactivityService
	schedule   string
}

func NewAlertCleanupJob(inactivity inactivityService.InactivityService, schedule string) *AlertCleanupJob {
	return &AlertCleanupJob{
		inactivity: inactivity,
		schedule:   schedule,
	}
}

func (j *AlertCleanupJob) Name() string {
	return "alert-cleanup"
}

func (j *AlertCleanupJob) Schedule() string {
	return j.schedule
}

func (j *AlertCleanupJob) Run(ctx context.Context) error {
	deleted, err := j.inactivity.CleanupOldAlerts(ctx)
	if err != nil {
		return err
	}
	log.Printf("🧹 Deleted %d resolved alerts past retention", deleted)
	return nil
}
