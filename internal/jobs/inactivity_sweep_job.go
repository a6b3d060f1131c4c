package jobs

import (
	"context"
	"log"

	inactivityService "anoa.com/fitlife/internal/modules/inactivity/service"
	progressionService "anoa.com/fitlife/internal/modules/progression/service"
)

// InactivitySweepJob runs the daily inactivity detection pass. Lapsed
// streaks are marked broken first so broken-streak detection sees them
// in the same sweep.
type InactivitySweepJob struct {
	progression progressionService.ProgressionService
	inactivity  inactivityService.InactivityService
	schedule    string
}

func NewInactivitySweepJob(progression progressionService.ProgressionService, inactivity inactivityService.InactivityService, schedule string) *InactivitySweepJob {
	return &InactivitySweepJob{
		progression: progression,
		inactivity:  inactivity,
		schedule:    schedule,
	}
}

func (j *InactivitySweepJob) Name() string {
	return "inactivity-sweep"
}

func (j *InactivitySweepJob) Schedule() string {
	return j.schedule
}

func (j *InactivitySweepJob) Run(ctx context.Context) error {
	lapsed, err := j.progression.SweepLapsedStreaks(ctx)
	if err != nil {
		return err
	}
	if lapsed > 0 {
		log.Printf("Marked %d lapsed streaks as broken", lapsed)
	}

	result, err := j.inactivity.DetectForAllUsers(ctx)
	if err != nil {
		return err
	}

	log.Printf("Inactivity sweep: %d users checked, %d failed, %d alerts created",
		result.UsersChecked, result.UsersFailed, result.AlertsCreated)
	for alertType, count := range result.AlertsByType {
		log.Printf("  %s: %d", alertType, count)
	}
	return nil
}
