package services

import (
	"time"

	"github.com/Tinoriffic/game-of-life/internal/database"
	"github.com/Tinoriffic/game-of-life/internal/models"
	"github.com/Tinoriffic/game-of-life/pkg/errors"
	"github.com/Tinoriffic/game-of-life/pkg/logger"
	"github.com/Tinoriffic/game-of-life/pkg/utils"
	"gorm.io/gorm"
)

const (
	availableChallengesCacheKey = "challenges:available"
	availableChallengesCacheTTL = 5 * time.Minute
)

// ActiveChallengeView is the active enrollment enriched with the derived
// fields the dashboard renders. The client treats this as a cache of server
// truth; eligibility is always re-checked at write time.
type ActiveChallengeView struct {
	Enrollment       *models.UserChallenge `json:"enrollment"`
	CurrentDay       int                   `json:"currentDay"`
	CompletedDays    int                   `json:"completedDays"`
	TodayCompleted   bool                  `json:"todayCompleted"`
	CanCompleteToday bool                  `json:"canCompleteToday"`
	CurrentStreak    int                   `json:"currentStreak"`
}

// CompletionResult is what one successful "complete today" returns.
type CompletionResult struct {
	Progress           *models.ChallengeProgress `json:"progress"`
	TotalXPAwarded     int                       `json:"totalXpAwarded"`
	ChallengeCompleted bool                      `json:"challengeCompleted"`
}

// ChallengeHistoryEntry decorates a terminal enrollment with its completion
// rate for history views.
type ChallengeHistoryEntry struct {
	models.UserChallenge
	CompletedDays  int     `json:"completedDays"`
	CompletionRate float64 `json:"completionRate"`
}

// ListAvailableChallenges returns the visible challenge catalog, served from
// the Redis cache when warm.
func ListAvailableChallenges() ([]models.Challenge, error) {
	var challenges []models.Challenge
	if err := database.CacheGet(availableChallengesCacheKey, &challenges); err == nil {
		return challenges, nil
	}

	err := database.DB.Preload("Badge").
		Where("is_active = ?", true).
		Order("title asc").
		Find(&challenges).Error
	if err != nil {
		return nil, err
	}

	if err := database.CacheSet(availableChallengesCacheKey, challenges, availableChallengesCacheTTL); err != nil {
		logger.Warn().Err(err).Msg("failed to cache challenge catalog")
	}
	return challenges, nil
}

// GetChallenge resolves one catalog entry.
func GetChallenge(challengeID string) (*models.Challenge, error) {
	var challenge models.Challenge
	err := database.DB.Preload("Badge").First(&challenge, "id = ?", challengeID).Error
	if err == gorm.ErrRecordNotFound {
		return nil, errors.NotFound("Challenge not found")
	}
	if err != nil {
		return nil, err
	}
	return &challenge, nil
}

// InvalidateChallengeCache drops the cached catalog after admin writes.
func InvalidateChallengeCache() {
	if err := database.CacheInvalidate(availableChallengesCacheKey); err != nil {
		logger.Warn().Err(err).Msg("failed to invalidate challenge cache")
	}
}

// findActiveEnrollment loads the user's active enrollment with its challenge
// and ordered progress, or nil when there is none.
func findActiveEnrollment(tx *gorm.DB, userID string) (*models.UserChallenge, error) {
	var enrollment models.UserChallenge
	err := tx.Preload("Challenge").Preload("Challenge.Badge").
		Preload("Progress", func(db *gorm.DB) *gorm.DB {
			return db.Order("day_number asc")
		}).
		Where("user_id = ? AND completion_date IS NULL AND quit_date IS NULL AND is_failed = ?", userID, false).
		First(&enrollment).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// failExpiredEnrollment applies the expiry policy before any read or write of
// the active enrollment: once the challenge window has elapsed, or a day
// before the current one was left uncompleted, the enrollment transitions to
// failed. The sweep runs lazily on access; there is no background scheduler.
func failExpiredEnrollment(tx *gorm.DB, user *models.User) error {
	enrollment, err := findActiveEnrollment(tx, user.ID)
	if err != nil || enrollment == nil {
		return err
	}

	today := userToday(user)
	failed := false

	if today > enrollment.EndDate {
		failed = true
	} else {
		currentDay := utils.DaysBetween(enrollment.StartDate, today) + 1
		// The current day may still be open; any earlier miss is fatal.
		if currentDay > 1 && len(enrollment.Progress) < currentDay-1 {
			failed = true
		}
	}

	if !failed {
		return nil
	}

	logger.Info().
		Str("user_id", user.ID).
		Str("enrollment_id", enrollment.ID).
		Msg("challenge failed: day window elapsed without completion")

	return tx.Model(&models.UserChallenge{}).
		Where("id = ?", enrollment.ID).
		Update("is_failed", true).Error
}

// JoinChallenge enrolls the user in a challenge. One active enrollment per
// user: the check and the insert are serialized behind the user's lock and
// share one transaction.
func JoinChallenge(user *models.User, challengeID string) (*models.UserChallenge, error) {
	unlock := lockUser(user.ID)
	defer unlock()

	var enrollment *models.UserChallenge
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := failExpiredEnrollment(tx, user); err != nil {
			return err
		}

		existing, err := findActiveEnrollment(tx, user.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			return errors.Conflict("You already have an active challenge")
		}

		var challenge models.Challenge
		if err := tx.First(&challenge, "id = ?", challengeID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.NotFound("Challenge not found")
			}
			return err
		}
		if !challenge.IsActive {
			return errors.Conflict("Challenge is not open for enrollment")
		}

		today := userToday(user)
		enrollment = &models.UserChallenge{
			UserID:      user.ID,
			ChallengeID: challenge.ID,
			StartDate:   today,
			// The start day counts as day 1.
			EndDate: utils.AddDays(today, challenge.DurationDays-1),
		}
		if err := tx.Create(enrollment).Error; err != nil {
			return err
		}
		enrollment.Challenge = challenge
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("user_id", user.ID).
		Str("challenge_id", challengeID).
		Str("enrollment_id", enrollment.ID).
		Msg("user joined challenge")
	return enrollment, nil
}

// QuitChallenge terminates the active enrollment. XP and badges already
// awarded are irrevocable; quitting only closes the timeline.
func QuitChallenge(user *models.User) (*models.UserChallenge, error) {
	unlock := lockUser(user.ID)
	defer unlock()

	var enrollment *models.UserChallenge
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := failExpiredEnrollment(tx, user); err != nil {
			return err
		}

		var err error
		enrollment, err = findActiveEnrollment(tx, user.ID)
		if err != nil {
			return err
		}
		if enrollment == nil {
			return errors.NotFound("No active challenge found")
		}

		today := userToday(user)
		enrollment.QuitDate = &today
		return tx.Model(&models.UserChallenge{}).
			Where("id = ?", enrollment.ID).
			Update("quit_date", today).Error
	})
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("user_id", user.ID).
		Str("enrollment_id", enrollment.ID).
		Msg("user quit challenge")
	return enrollment, nil
}

// MarkDayComplete records today's completion for the active enrollment,
// applies the daily stat rewards, and on the final day finalizes the
// enrollment, grants the completion bonus and the badge. The existence check
// and the append are one atomic unit: a concurrent duplicate submit observes
// NotEligible, never a second entry.
func MarkDayComplete(user *models.User, activityData map[string]interface{}) (*CompletionResult, error) {
	unlock := lockUser(user.ID)
	defer unlock()

	var result *CompletionResult
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := failExpiredEnrollment(tx, user); err != nil {
			return err
		}

		enrollment, err := findActiveEnrollment(tx, user.ID)
		if err != nil {
			return err
		}
		if enrollment == nil {
			// Covers both "never joined" and terminal enrollments; from the
			// caller's side there is nothing left to complete.
			return errors.NotEligible("No active challenge to complete")
		}

		today := userToday(user)
		challenge := enrollment.Challenge
		currentDay := utils.DaysBetween(enrollment.StartDate, today) + 1

		if currentDay < 1 {
			return errors.NotEligible("Challenge has not started yet")
		}
		if today > enrollment.EndDate || currentDay > challenge.DurationDays {
			return errors.NotEligible("Challenge period is over")
		}
		for _, entry := range enrollment.Progress {
			if entry.CompletionDate == today {
				return errors.NotEligible("Today is already marked as complete")
			}
		}

		if activityData == nil {
			activityData = map[string]interface{}{}
		}
		if err := ValidateActivityData(challenge.ActivityType, activityData); err != nil {
			return err
		}
		activityData = sanitizeActivityData(activityData)

		dailyXP := challenge.DailyXP()
		dayNumber := len(enrollment.Progress) + 1

		progress := models.ChallengeProgress{
			UserChallengeID: enrollment.ID,
			DayNumber:       dayNumber,
			CompletionDate:  today,
			ActivityData:    activityData,
			XPAwarded:       dailyXP,
		}
		if err := tx.Create(&progress).Error; err != nil {
			return err
		}

		for _, reward := range challenge.TargetStats {
			if reward.Stat == "" || reward.XP <= 0 {
				continue
			}
			if _, err := ApplySkillXP(tx, user, reward.Stat, reward.XP); err != nil {
				return err
			}
		}

		total := dailyXP
		completed := dayNumber >= challenge.DurationDays
		if completed {
			if err := tx.Model(&models.UserChallenge{}).
				Where("id = ?", enrollment.ID).
				Update("completion_date", today).Error; err != nil {
				return err
			}
			if err := awardChallengeBadge(tx, enrollment); err != nil {
				return err
			}
			// The completion bonus is reported as unattributed XP; it is not
			// routed into any particular stat.
			total += challenge.CompletionXPBonus
		}

		result = &CompletionResult{
			Progress:           &progress,
			TotalXPAwarded:     total,
			ChallengeCompleted: completed,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("user_id", user.ID).
		Int("day", result.Progress.DayNumber).
		Int("xp", result.TotalXPAwarded).
		Bool("completed", result.ChallengeCompleted).
		Msg("challenge day completed")
	return result, nil
}

// GetActiveChallenge returns the enriched active enrollment, or nil (not an
// error) when the user has none. The expiry sweep runs first, so a stale
// enrollment can transition to failed on read.
func GetActiveChallenge(user *models.User) (*ActiveChallengeView, error) {
	unlock := lockUser(user.ID)
	defer unlock()

	var view *ActiveChallengeView
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := failExpiredEnrollment(tx, user); err != nil {
			return err
		}

		enrollment, err := findActiveEnrollment(tx, user.ID)
		if err != nil || enrollment == nil {
			return err
		}

		today := userToday(user)
		duration := enrollment.Challenge.DurationDays

		currentDay := 0
		if today >= enrollment.StartDate {
			currentDay = utils.DaysBetween(enrollment.StartDate, today) + 1
			if currentDay > duration {
				currentDay = duration
			}
		}

		todayCompleted := false
		for _, entry := range enrollment.Progress {
			if entry.CompletionDate == today {
				todayCompleted = true
				break
			}
		}

		view = &ActiveChallengeView{
			Enrollment:       enrollment,
			CurrentDay:       currentDay,
			CompletedDays:    len(enrollment.Progress),
			TodayCompleted:   todayCompleted,
			CanCompleteToday: currentDay > 0 && currentDay <= duration && !todayCompleted,
			CurrentStreak:    currentStreak(enrollment.Progress, today),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// currentStreak counts consecutive completed days ending today or yesterday.
func currentStreak(entries []models.ChallengeProgress, today string) int {
	if len(entries) == 0 {
		return 0
	}

	// Entries arrive ordered by day number ascending; walk them newest first.
	streak := 0
	expected := today
	for i := len(entries) - 1; i >= 0; i-- {
		date := entries[i].CompletionDate
		if date == expected || date == utils.AddDays(expected, -1) {
			streak++
			expected = utils.AddDays(date, -1)
		} else {
			break
		}
	}
	return streak
}

// GetChallengeHistory pages through the user's terminal enrollments, newest
// first, each with its completion rate.
func GetChallengeHistory(userID string, skip, limit int) ([]ChallengeHistoryEntry, int64, error) {
	terminal := database.DB.Model(&models.UserChallenge{}).
		Where("user_id = ? AND (completion_date IS NOT NULL OR quit_date IS NOT NULL OR is_failed = ?)", userID, true)

	var total int64
	if err := terminal.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var enrollments []models.UserChallenge
	err := database.DB.Preload("Challenge").Preload("Challenge.Badge").
		Preload("Progress", func(db *gorm.DB) *gorm.DB {
			return db.Order("day_number asc")
		}).
		Where("user_id = ? AND (completion_date IS NOT NULL OR quit_date IS NOT NULL OR is_failed = ?)", userID, true).
		Order("start_date desc").
		Offset(skip).Limit(limit).
		Find(&enrollments).Error
	if err != nil {
		return nil, 0, err
	}

	entries := make([]ChallengeHistoryEntry, 0, len(enrollments))
	for _, enrollment := range enrollments {
		rate := 0.0
		if enrollment.Challenge.DurationDays > 0 {
			rate = float64(len(enrollment.Progress)) / float64(enrollment.Challenge.DurationDays)
		}
		entries = append(entries, ChallengeHistoryEntry{
			UserChallenge:  enrollment,
			CompletedDays:  len(enrollment.Progress),
			CompletionRate: rate,
		})
	}
	return entries, total, nil
}
