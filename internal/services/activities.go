package services

import (
	"fmt"

	"github.com/Tinoriffic/game-of-life/internal/database"
	"github.com/Tinoriffic/game-of-life/internal/models"
	"github.com/Tinoriffic/game-of-life/pkg/errors"
	"github.com/Tinoriffic/game-of-life/pkg/logger"
	"gorm.io/gorm"
)

// logStatFor maps each activity log type to the stat its XP feeds.
var logStatFor = map[models.ActivityLogType]string{
	models.LogMeditation: "Awareness",
	models.LogWorkout:    "Strength",
	models.LogRunning:    "Stamina",
	models.LogSocial:     "Charisma",
	models.LogLearning:   "Intelligence",
	models.LogReflection: "Resilience",
}

// LogActivity records a free-form activity, computes its XP per the type's
// formula and applies it to the mapped stat. Serialized per user alongside
// challenge writes, since both mutate the user's XP state.
func LogActivity(user *models.User, logType models.ActivityLogType, data map[string]interface{}) (*models.ActivityLog, error) {
	stat, ok := logStatFor[logType]
	if !ok {
		return nil, errors.Validation(fmt.Sprintf("Unknown activity log type: %s", logType))
	}
	if data == nil {
		data = map[string]interface{}{}
	}

	unlock := lockUser(user.ID)
	defer unlock()

	var entry *models.ActivityLog
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		dailyXP := GetSkillDailyXP(tx, user, stat)

		xp, err := activityXP(logType, data, dailyXP)
		if err != nil {
			return err
		}
		data = sanitizeActivityData(data)

		entry = &models.ActivityLog{
			UserID:    user.ID,
			Type:      logType,
			Data:      data,
			XPAwarded: xp,
			Stat:      stat,
			LogDate:   userToday(user),
		}
		if err := tx.Create(entry).Error; err != nil {
			return err
		}

		if xp > 0 {
			if _, err := ApplySkillXP(tx, user, stat, xp); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("user_id", user.ID).
		Str("type", string(logType)).
		Int("xp", entry.XPAwarded).
		Msg("activity logged")
	return entry, nil
}

func activityXP(logType models.ActivityLogType, data map[string]interface{}, dailyXP int) (int, error) {
	switch logType {
	case models.LogMeditation:
		duration, ok := asNumber(data["duration"])
		if !ok || duration <= 0 {
			return 0, errors.Validation("Duration (minutes) is required")
		}
		return MeditationXP(int(duration), dailyXP), nil

	case models.LogWorkout:
		return WorkoutXP(dailyXP), nil

	case models.LogRunning:
		duration, ok := asNumber(data["duration"])
		if !ok || duration <= 0 {
			return 0, errors.Validation("Duration (minutes) is required")
		}
		distance, _ := asNumber(data["distance"])
		return RunningXP(int(duration), distance, dailyXP), nil

	case models.LogSocial:
		kind, _ := data["interaction_type"].(string)
		if kind == "" {
			return 0, errors.Validation("Interaction type is required")
		}
		xp := SocialXP(kind)
		if xp == 0 {
			return 0, errors.Validation(fmt.Sprintf("Unknown interaction type: %s", kind))
		}
		return xp, nil

	case models.LogLearning:
		duration, ok := asNumber(data["duration"])
		if !ok || duration <= 0 {
			return 0, errors.Validation("Duration (minutes) is required")
		}
		activity, _ := data["activity"].(string)
		return LearningXP(activity, int(duration), dailyXP), nil

	case models.LogReflection:
		return ReflectionXP(dailyXP), nil
	}
	return 0, errors.Validation(fmt.Sprintf("Unknown activity log type: %s", logType))
}

// GetActivityFeed returns the user's recent activity logs, newest first.
func GetActivityFeed(userID string, limit int) ([]models.ActivityLog, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	var logs []models.ActivityLog
	err := database.DB.Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}
