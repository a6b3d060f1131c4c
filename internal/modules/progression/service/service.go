package service

import (
	"context"
	"fmt"
	"strconv"

	"anoa.com/fitlife/internal/model"
	"anoa.com/fitlife/internal/modules/progression/dto"
	"anoa.com/fitlife/internal/modules/progression/repository"
	"anoa.com/fitlife/pkg/apperror"
	"anoa.com/fitlife/pkg/clock"
	"anoa.com/fitlife/pkg/userlock"
	"github.com/google/uuid"
)

const (
	XPPerMealLog     = 5
	XPPerExerciseLog = 10
	XPPerWaterLog    = 2

	StreakBonusXP    = 50
	StreakBonusEvery = 7
)

// XPReference points an XpTransaction at the entity that earned it.
type XPReference struct {
	ID    string
	Table string
}

// ActivityResult is what a single trackable action produced.
type ActivityResult struct {
	Stats    *model.UserStats
	Streak   *model.UserStreak
	Unlocked []model.Achievement
}

type ProgressionService interface {
	AwardXP(ctx context.Context, userID uuid.UUID, amount int, source model.XpSource, description string, ref *XPReference) (*model.UserStats, error)
	UpdateStreak(ctx context.Context, userID uuid.UUID, streakType model.StreakType) (*model.UserStreak, error)
	CheckAndAwardAchievements(ctx context.Context, userID uuid.UUID) ([]model.Achievement, error)

	LogMealActivity(ctx context.Context, userID uuid.UUID) (*ActivityResult, error)
	LogExerciseActivity(ctx context.Context, userID uuid.UUID) (*ActivityResult, error)
	LogHydrationActivity(ctx context.Context, userID uuid.UUID, amountML int) (*ActivityResult, error)

	GetUserProgress(ctx context.Context, userID uuid.UUID) (*dto.UserProgress, error)
	SweepLapsedStreaks(ctx context.Context) (int64, error)
}

type progressionService struct {
	repo   repository.ProgressionRepository
	clock  clock.Clock
	locker *userlock.Locker
}

func NewProgressionService(repo repository.ProgressionRepository, clk clock.Clock, locker *userlock.Locker) ProgressionService {
	return &progressionService{
		repo:   repo,
		clock:  clk,
		locker: locker,
	}
}

func (s *progressionService) AwardXP(ctx context.Context, userID uuid.UUID, amount int, source model.XpSource, description string, ref *XPReference) (*model.UserStats, error) {
	defer s.locker.Lock(userID)()
	return s.awardXP(ctx, userID, amount, source, description, ref)
}

// awardXP appends the transaction, adds to the total and walks the
// level-up loop. A large award can cross several boundaries in one
// call, so this loops instead of incrementing once. Caller holds the
// user lock.
func (s *progressionService) awardXP(ctx context.Context, userID uuid.UUID, amount int, source model.XpSource, description string, ref *XPReference) (*model.UserStats, error) {
	if amount < 0 {
		return nil, apperror.New("xp amount must not be negative", apperror.ErrInvalidInput)
	}

	stats, err := s.repo.GetOrCreateStats(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats.TotalXP += amount
	for stats.TotalXP >= stats.XPToNextLevel {
		stats.Level++
		stats.XPToNextLevel = XPForNextLevel(stats.Level)
	}

	// Stats before the audit row: a failed save must not leave a
	// transaction recording XP the total never received.
	if err := s.repo.SaveStats(ctx, stats); err != nil {
		return nil, err
	}

	tx := &model.XpTransaction{
		UserID:      userID,
		Amount:      amount,
		Source:      source,
		Description: description,
		CreatedAt:   s.clock.Now(),
	}
	if ref != nil {
		tx.ReferenceID = ref.ID
		tx.ReferenceTable = ref.Table
	}
	if err := s.repo.CreateXpTransaction(ctx, tx); err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *progressionService) UpdateStreak(ctx context.Context, userID uuid.UUID, streakType model.StreakType) (*model.UserStreak, error) {
	defer s.locker.Lock(userID)()
	return s.updateStreak(ctx, userID, streakType)
}

// updateStreak applies the per-calendar-day streak rules. This is the
// single place streak continuation and breakage are decided; the
// inactivity detector only reads streak state. Caller holds the user
// lock.
func (s *progressionService) updateStreak(ctx context.Context, userID uuid.UUID, streakType model.StreakType) (*model.UserStreak, error) {
	streak, err := s.repo.GetOrCreateStreak(ctx, userID, streakType)
	if err != nil {
		return nil, err
	}

	today := clock.DateOf(s.clock.Now())

	// Already counted today: idempotent no-op so rapid same-day logs
	// cannot double count.
	if streak.LastActivityDate != nil && clock.SameDay(*streak.LastActivityDate, today) {
		return streak, nil
	}

	if streak.LastActivityDate != nil && clock.DaysBetween(*streak.LastActivityDate, today) == 1 {
		// Consecutive day: continue the run.
		streak.CurrentCount++
		if streak.CurrentCount%StreakBonusEvery == 0 {
			desc := fmt.Sprintf("%d-day %s streak bonus", streak.CurrentCount, streakType)
			ref := &XPReference{ID: strconv.FormatUint(uint64(streak.ID), 10), Table: "user_streaks"}
			if _, err := s.awardXP(ctx, userID, StreakBonusXP, model.XpSourceStreakBonus, desc, ref); err != nil {
				return nil, err
			}
		}
	} else {
		// Gap of 2+ days, a marked break, or first ever activity:
		// today starts a fresh run of 1.
		streak.CurrentCount = 1
		streak.StreakStartDate = &today
	}

	if streak.CurrentCount > streak.LongestCount {
		streak.LongestCount = streak.CurrentCount
	}
	streak.IsActive = true
	streak.LastActivityDate = &today

	if err := s.repo.SaveStreak(ctx, streak); err != nil {
		return nil, err
	}
	return streak, nil
}

func (s *progressionService) CheckAndAwardAchievements(ctx context.Context, userID uuid.UUID) ([]model.Achievement, error) {
	defer s.locker.Lock(userID)()
	return s.checkAndAwardAchievements(ctx, userID)
}

// checkAndAwardAchievements walks the active catalog and unlocks every
// achievement whose criteria newly pass. The UserAchievement row is the
// at-most-once guard: already-unlocked entries are skipped before any
// evaluation. Caller holds the user lock.
func (s *progressionService) checkAndAwardAchievements(ctx context.Context, userID uuid.UUID) ([]model.Achievement, error) {
	catalog, err := s.repo.ActiveAchievements(ctx)
	if err != nil {
		return nil, err
	}

	var unlocked []model.Achievement
	for _, achievement := range catalog {
		already, err := s.repo.HasUserAchievement(ctx, userID, achievement.ID)
		if err != nil {
			return unlocked, err
		}
		if already {
			continue
		}

		// Snapshot after the skip check so criteria read the state the
		// current action just produced.
		snap, err := s.snapshot(ctx, userID)
		if err != nil {
			return unlocked, err
		}
		if !evaluateCriteria(achievement.CriteriaType, achievement.CriteriaValue, snap) {
			continue
		}

		ua := &model.UserAchievement{
			UserID:        userID,
			AchievementID: achievement.ID,
			UnlockedAt:    s.clock.Now(),
			Progress:      100,
		}
		if err := s.repo.CreateUserAchievement(ctx, ua); err != nil {
			return unlocked, err
		}

		if achievement.XPReward > 0 {
			ref := &XPReference{ID: strconv.FormatUint(uint64(achievement.ID), 10), Table: "achievements"}
			desc := fmt.Sprintf("Achievement unlocked: %s", achievement.Name)
			if _, err := s.awardXP(ctx, userID, achievement.XPReward, model.XpSourceAchievement, desc, ref); err != nil {
				return unlocked, err
			}
		}

		stats, err := s.repo.GetOrCreateStats(ctx, userID)
		if err != nil {
			return unlocked, err
		}
		stats.TotalAchievements++
		if err := s.repo.SaveStats(ctx, stats); err != nil {
			return unlocked, err
		}

		unlocked = append(unlocked, achievement)
	}
	return unlocked, nil
}

func (s *progressionService) snapshot(ctx context.Context, userID uuid.UUID) (criteriaSnapshot, error) {
	stats, err := s.repo.GetOrCreateStats(ctx, userID)
	if err != nil {
		return criteriaSnapshot{}, err
	}
	streaks, err := s.repo.GetStreaks(ctx, userID)
	if err != nil {
		return criteriaSnapshot{}, err
	}
	return criteriaSnapshot{stats: stats, streaks: streaks}, nil
}

func (s *progressionService) LogMealActivity(ctx context.Context, userID uuid.UUID) (*ActivityResult, error) {
	defer s.locker.Lock(userID)()
	return s.logActivity(ctx, userID, model.StreakMeal, XPPerMealLog, model.XpSourceMealLogged, "Meal logged",
		func(stats *model.UserStats) { stats.TotalMealsLogged++ })
}

func (s *progressionService) LogExerciseActivity(ctx context.Context, userID uuid.UUID) (*ActivityResult, error) {
	defer s.locker.Lock(userID)()
	return s.logActivity(ctx, userID, model.StreakExercise, XPPerExerciseLog, model.XpSourceExerciseLogged, "Exercise logged",
		func(stats *model.UserStats) { stats.TotalExercisesLogged++ })
}

func (s *progressionService) LogHydrationActivity(ctx context.Context, userID uuid.UUID, amountML int) (*ActivityResult, error) {
	defer s.locker.Lock(userID)()
	desc := fmt.Sprintf("Water logged (%d ml)", amountML)
	return s.logActivity(ctx, userID, model.StreakHydration, XPPerWaterLog, model.XpSourceHydrationLogged, desc,
		func(stats *model.UserStats) { stats.TotalWaterLogged++ })
}

// logActivity is the shared entry-point body. Order matters: counters
// and streaks must be updated before the achievement pass so criteria
// read the just-updated state.
func (s *progressionService) logActivity(ctx context.Context, userID uuid.UUID, streakType model.StreakType, baseXP int, source model.XpSource, description string, bump func(*model.UserStats)) (*ActivityResult, error) {
	// 1. Bump the counter and stamp last activity
	stats, err := s.repo.GetOrCreateStats(ctx, userID)
	if err != nil {
		return nil, err
	}
	bump(stats)
	now := s.clock.Now()
	stats.LastActivityDate = &now
	if err := s.repo.SaveStats(ctx, stats); err != nil {
		return nil, err
	}

	// 2. Streak for this category
	streak, err := s.updateStreak(ctx, userID, streakType)
	if err != nil {
		return nil, err
	}

	// 3. Base XP for the action
	stats, err = s.awardXP(ctx, userID, baseXP, source, description, nil)
	if err != nil {
		return nil, err
	}

	// 4. Achievements read the state steps 1-3 produced
	unlocked, err := s.checkAndAwardAchievements(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(unlocked) > 0 {
		// Achievement rewards may have moved XP/level since step 3.
		stats, err = s.repo.GetOrCreateStats(ctx, userID)
		if err != nil {
			return nil, err
		}
	}

	return &ActivityResult{
		Stats:    stats,
		Streak:   streak,
		Unlocked: unlocked,
	}, nil
}

func (s *progressionService) GetUserProgress(ctx context.Context, userID uuid.UUID) (*dto.UserProgress, error) {
	stats, err := s.repo.GetOrCreateStats(ctx, userID)
	if err != nil {
		return nil, err
	}
	streaks, err := s.repo.GetStreaks(ctx, userID)
	if err != nil {
		return nil, err
	}
	recent, err := s.repo.RecentUserAchievements(ctx, userID, 5)
	if err != nil {
		return nil, err
	}

	progress := &dto.UserProgress{
		Level:             stats.Level,
		TotalXP:           stats.TotalXP,
		XPToNextLevel:     stats.XPToNextLevel,
		ProgressPercent:   ProgressPercent(stats.TotalXP, stats.Level),
		TotalAchievements: stats.TotalAchievements,
		Streaks:           make([]dto.StreakInfo, 0, len(streaks)),
		RecentAchievements: make([]dto.AchievementInfo, 0, len(recent)),
		Stats: dto.StatsSummary{
			TotalMealsLogged:     stats.TotalMealsLogged,
			TotalExercisesLogged: stats.TotalExercisesLogged,
			TotalWaterLogged:     stats.TotalWaterLogged,
		},
	}

	for _, streak := range streaks {
		progress.Streaks = append(progress.Streaks, dto.StreakInfo{
			Type:             string(streak.Type),
			CurrentCount:     streak.CurrentCount,
			LongestCount:     streak.LongestCount,
			IsActive:         streak.IsActive,
			LastActivityDate: streak.LastActivityDate,
		})
	}
	for _, ua := range recent {
		progress.RecentAchievements = append(progress.RecentAchievements, dto.AchievementInfo{
			Key:         ua.Achievement.Key,
			Name:        ua.Achievement.Name,
			Description: ua.Achievement.Description,
			Icon:        ua.Achievement.Icon,
			XPReward:    ua.Achievement.XPReward,
			UnlockedAt:  ua.UnlockedAt,
		})
	}

	return progress, nil
}

// SweepLapsedStreaks marks streaks whose run can no longer continue
// (last activity before yesterday) as broken. Run before the
// inactivity sweep so broken-streak detection has rows to find.
func (s *progressionService) SweepLapsedStreaks(ctx context.Context) (int64, error) {
	yesterday := clock.DateOf(s.clock.Now()).AddDate(0, 0, -1)
	return s.repo.DeactivateLapsedStreaks(ctx, yesterday)
}
