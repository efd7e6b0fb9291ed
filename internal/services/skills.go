package services

import (
	"github.com/Tinoriffic/game-of-life/internal/database"
	"github.com/Tinoriffic/game-of-life/internal/models"
	"github.com/Tinoriffic/game-of-life/pkg/utils"
	"gorm.io/gorm"
)

// requiredXP is the XP needed to leave the given level: 100 * level * 1.5.
func requiredXP(level int) int {
	return 150 * level
}

// ApplySkillXP adds XP to one of the user's skills inside tx, creating the
// skill at level 1 on first award. Leveling is a loop so a single large grant
// can cross several thresholds, carrying the remainder forward each time.
//
// Callers must already hold the user's lock; skill writes share the same
// serialization boundary as challenge writes.
func ApplySkillXP(tx *gorm.DB, user *models.User, statName string, xp int) (*models.Skill, error) {
	if xp <= 0 {
		return nil, nil
	}

	var skill models.Skill
	err := tx.Where("user_id = ? AND name = ?", user.ID, statName).First(&skill).Error
	if err == gorm.ErrRecordNotFound {
		skill = models.Skill{UserID: user.ID, Name: statName, Level: 1}
		if err := tx.Create(&skill).Error; err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	today := userToday(user)
	if utils.DateIn(skill.LastUpdated, user.Timezone) != today {
		skill.DailyXPEarned = 0
	}

	skill.XP += xp
	skill.DailyXPEarned += xp
	for skill.XP >= requiredXP(skill.Level) {
		skill.XP -= requiredXP(skill.Level)
		skill.Level++
	}
	skill.LastUpdated = timeNow()

	if err := tx.Save(&skill).Error; err != nil {
		return nil, err
	}
	return &skill, nil
}

// GetUserSkills returns the user's full stat ledger.
func GetUserSkills(userID string) ([]models.Skill, error) {
	var skills []models.Skill
	err := database.DB.Where("user_id = ?", userID).Order("name asc").Find(&skills).Error
	return skills, err
}

// GetSkillDailyXP reports how much XP the named skill earned today, for the
// first-of-day bonuses in the activity XP formulas.
func GetSkillDailyXP(tx *gorm.DB, user *models.User, statName string) int {
	var skill models.Skill
	if err := tx.Where("user_id = ? AND name = ?", user.ID, statName).First(&skill).Error; err != nil {
		return 0
	}
	if utils.DateIn(skill.LastUpdated, user.Timezone) != userToday(user) {
		return 0
	}
	return skill.DailyXPEarned
}
