package service

import (
	"context"
	"log"
	"sort"
	"time"

	"anoa.com/fitlife/internal/model"
	"anoa.com/fitlife/internal/modules/inactivity/repository"
	notifService "anoa.com/fitlife/internal/modules/notification/service"
	progressionRepo "anoa.com/fitlife/internal/modules/progression/repository"
	"anoa.com/fitlife/pkg/clock"
	"anoa.com/fitlife/pkg/userlock"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	// DefaultAlertRetention is how long resolved alerts are kept before
	// the cleanup pass deletes them.
	DefaultAlertRetention = 30 * 24 * time.Hour

	// brokenStreakWindowDays bounds broken-streak detection: a streak
	// that ended longer ago than this is history, not news.
	brokenStreakWindowDays = 7
)

// SweepResult summarizes one full detection pass.
type SweepResult struct {
	UsersChecked  int                     `json:"users_checked"`
	UsersFailed   int                     `json:"users_failed"`
	AlertsCreated int                     `json:"alerts_created"`
	AlertsByType  map[model.AlertType]int `json:"alerts_by_type"`
}

type InactivityService interface {
	DetectForUser(ctx context.Context, userID uuid.UUID) ([]model.InactivityAlert, error)
	DetectForAllUsers(ctx context.Context) (*SweepResult, error)

	// ResolveForActivity is the collaborator-triggered transition: a
	// fresh activity in a category closes that category's open alerts,
	// the general alert, and any broken-streak alert for the category.
	// Resolution takes the same per-user lock as detection, so it never
	// interleaves with an in-flight evaluation.
	ResolveForActivity(ctx context.Context, userID uuid.UUID, streakType model.StreakType) error
	ResolveAlertsForUser(ctx context.Context, userID uuid.UUID, types ...model.AlertType) error
	ResolveAllAlertsForUser(ctx context.Context, userID uuid.UUID) error

	ListOpenAlerts(ctx context.Context, userID uuid.UUID) ([]model.InactivityAlert, error)
	CleanupOldAlerts(ctx context.Context) (int64, error)
}

// ActivityLedger is the read side of the activity log the detector
// classifies against.
type ActivityLedger interface {
	LatestMealAt(ctx context.Context, userID uuid.UUID) (time.Time, bool, error)
	LatestExerciseAt(ctx context.Context, userID uuid.UUID) (time.Time, bool, error)
	LatestWaterAt(ctx context.Context, userID uuid.UUID) (time.Time, bool, error)
}

type inactivityService struct {
	alerts      repository.AlertRepository
	progression progressionRepo.ProgressionRepository
	ledger      ActivityLedger
	sink        notifService.Sink
	clock       clock.Clock
	locker      *userlock.Locker
	retention   time.Duration
}

func NewInactivityService(
	alerts repository.AlertRepository,
	progression progressionRepo.ProgressionRepository,
	ledger ActivityLedger,
	sink notifService.Sink,
	clk clock.Clock,
	locker *userlock.Locker,
	retention time.Duration,
) InactivityService {
	if retention <= 0 {
		retention = DefaultAlertRetention
	}
	return &inactivityService{
		alerts:      alerts,
		progression: progression,
		ledger:      ledger,
		sink:        sink,
		clock:       clk,
		locker:      locker,
		retention:   retention,
	}
}

func (s *inactivityService) DetectForUser(ctx context.Context, userID uuid.UUID) ([]model.InactivityAlert, error) {
	defer s.locker.Lock(userID)()

	// 1. No recorded activity ever means no baseline to measure
	// staleness against. Silently skip, this is not an error.
	stats, found, err := s.progression.FindStats(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !found || stats.LastActivityDate == nil {
		return nil, nil
	}

	today := clock.DateOf(s.clock.Now())
	var created []model.InactivityAlert

	// 2. General inactivity from the cross-category last activity
	generalDays := clock.DaysBetween(*stats.LastActivityDate, today)
	alert, err := s.maybeCreate(ctx, userID, CategoryGeneral, generalDays, stats.LastActivityDate)
	if err != nil {
		return created, err
	}
	if alert != nil {
		created = append(created, *alert)
	}

	// 3. Per-category staleness from the ledger. A category never
	// recorded is skipped; that is distinct from "recorded but old".
	for _, probe := range []struct {
		category Category
		latest   func(context.Context, uuid.UUID) (time.Time, bool, error)
	}{
		{CategoryHydration, s.ledger.LatestWaterAt},
		{CategoryMeals, s.ledger.LatestMealAt},
		{CategoryExercise, s.ledger.LatestExerciseAt},
	} {
		at, recorded, err := probe.latest(ctx, userID)
		if err != nil {
			return created, err
		}
		if !recorded {
			continue
		}
		days := clock.DaysBetween(at, today)
		lastAt := at
		alert, err := s.maybeCreate(ctx, userID, probe.category, days, &lastAt)
		if err != nil {
			return created, err
		}
		if alert != nil {
			created = append(created, *alert)
		}
	}

	// 4. Recently broken streaks
	since := today.AddDate(0, 0, -brokenStreakWindowDays)
	broken, err := s.progression.RecentlyBrokenStreaks(ctx, userID, since)
	if err != nil {
		return created, err
	}
	for _, streak := range broken {
		alert, err := s.maybeCreateStreakBroken(ctx, userID, streak, today)
		if err != nil {
			return created, err
		}
		if alert != nil {
			created = append(created, *alert)
		}
	}

	s.dispatchCritical(created)
	return created, nil
}

// maybeCreate classifies one category and inserts an alert unless an
// unresolved one of the same (type, severity) is already open. The
// existence check gates everything so re-running the sweep is a no-op.
func (s *inactivityService) maybeCreate(ctx context.Context, userID uuid.UUID, category Category, daysInactive int, lastActivity *time.Time) (*model.InactivityAlert, error) {
	severity, ok := classify(category, daysInactive)
	if !ok {
		return nil, nil
	}
	alertType := categoryAlertTypes[category]

	open, err := s.alerts.HasUnresolved(ctx, userID, alertType, severity)
	if err != nil {
		return nil, err
	}
	if open {
		return nil, nil
	}

	msg := messageFor(alertType, severity)
	alert := &model.InactivityAlert{
		UserID:           userID,
		Type:             alertType,
		Severity:         severity,
		DaysInactive:     daysInactive,
		LastActivityDate: lastActivity,
		Message:          msg.Message,
		ActionSuggested:  msg.ActionSuggested,
	}
	if err := s.alerts.Create(ctx, alert); err != nil {
		return nil, err
	}
	return alert, nil
}

func (s *inactivityService) maybeCreateStreakBroken(ctx context.Context, userID uuid.UUID, streak model.UserStreak, today time.Time) (*model.InactivityAlert, error) {
	open, err := s.alerts.HasUnresolvedStreakBroken(ctx, userID, streak.Type)
	if err != nil {
		return nil, err
	}
	if open {
		return nil, nil
	}

	days := 0
	if streak.LastActivityDate != nil {
		days = clock.DaysBetween(*streak.LastActivityDate, today)
	}
	msg := streakBrokenCopy(streak.Type, streak.LongestCount)
	alert := &model.InactivityAlert{
		UserID:           userID,
		Type:             model.AlertStreakBroken,
		Severity:         model.SeverityWarning,
		DaysInactive:     days,
		LastActivityDate: streak.LastActivityDate,
		Message:          msg.Message,
		ActionSuggested:  msg.ActionSuggested,
		Metadata: datatypes.JSONMap{
			"streak_type":   string(streak.Type),
			"longest_count": streak.LongestCount,
		},
	}
	if err := s.alerts.Create(ctx, alert); err != nil {
		return nil, err
	}
	return alert, nil
}

// dispatchCritical forwards critical alerts to the notification sink.
// Fire-and-forget: classification never waits on delivery.
func (s *inactivityService) dispatchCritical(alerts []model.InactivityAlert) {
	if s.sink == nil {
		return
	}
	for _, alert := range alerts {
		if alert.Severity != model.SeverityCritical {
			continue
		}
		a := alert
		go func() {
			if err := s.sink.Notify(context.Background(), &a); err != nil {
				log.Printf("Failed to forward %s alert for user %s: %v", a.Type, a.UserID, err)
			}
		}()
	}
}

func (s *inactivityService) DetectForAllUsers(ctx context.Context) (*SweepResult, error) {
	userIDs, err := s.progression.UserIDsWithStats(ctx)
	if err != nil {
		return nil, err
	}

	result := &SweepResult{AlertsByType: make(map[model.AlertType]int)}
	for _, userID := range userIDs {
		// One user failing must not abort the sweep for the rest.
		created, err := s.DetectForUser(ctx, userID)
		if err != nil {
			log.Printf("Inactivity check failed for user %s: %v", userID, err)
			result.UsersFailed++
			continue
		}
		result.UsersChecked++
		result.AlertsCreated += len(created)
		for _, alert := range created {
			result.AlertsByType[alert.Type]++
		}
	}
	return result, nil
}

var streakAlertTypes = map[model.StreakType]model.AlertType{
	model.StreakHydration: model.AlertHydrationInactivity,
	model.StreakMeal:      model.AlertMealInactivity,
	model.StreakExercise:  model.AlertExerciseInactivity,
}

func (s *inactivityService) ResolveForActivity(ctx context.Context, userID uuid.UUID, streakType model.StreakType) error {
	defer s.locker.Lock(userID)()

	now := s.clock.Now()
	types := []model.AlertType{model.AlertGeneralInactivity}
	if t, ok := streakAlertTypes[streakType]; ok {
		types = append(types, t)
	}
	if err := s.alerts.ResolveByTypes(ctx, userID, types, now); err != nil {
		return err
	}
	return s.alerts.ResolveStreakBroken(ctx, userID, streakType, now)
}

func (s *inactivityService) ResolveAlertsForUser(ctx context.Context, userID uuid.UUID, types ...model.AlertType) error {
	defer s.locker.Lock(userID)()
	if len(types) == 0 {
		return s.alerts.ResolveAll(ctx, userID, s.clock.Now())
	}
	return s.alerts.ResolveByTypes(ctx, userID, types, s.clock.Now())
}

func (s *inactivityService) ResolveAllAlertsForUser(ctx context.Context, userID uuid.UUID) error {
	defer s.locker.Lock(userID)()
	return s.alerts.ResolveAll(ctx, userID, s.clock.Now())
}

// ListOpenAlerts returns unresolved alerts, most severe first. The
// ordering is display sugar only; it never suppresses lower tiers.
func (s *inactivityService) ListOpenAlerts(ctx context.Context, userID uuid.UUID) ([]model.InactivityAlert, error) {
	alerts, err := s.alerts.ListUnresolved(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Severity.Rank() > alerts[j].Severity.Rank()
	})
	return alerts, nil
}

func (s *inactivityService) CleanupOldAlerts(ctx context.Context) (int64, error) {
	cutoff := s.clock.Now().Add(-s.retention)
	return s.alerts.DeleteResolvedBefore(ctx, cutoff)
}
