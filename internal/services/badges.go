package services

import (
	"github.com/Tinoriffic/game-of-life/internal/database"
	"github.com/Tinoriffic/game-of-life/internal/models"
	"gorm.io/gorm"
)

// awardChallengeBadge grants the enrollment's challenge badge inside tx.
// Idempotent per (user, badge): completing the same challenge twice via
// re-enrollment never produces a second grant.
func awardChallengeBadge(tx *gorm.DB, enrollment *models.UserChallenge) error {
	if enrollment.Challenge.BadgeID == nil {
		return nil
	}
	badgeID := *enrollment.Challenge.BadgeID

	var existing models.UserBadge
	err := tx.Where("user_id = ? AND badge_id = ?", enrollment.UserID, badgeID).
		First(&existing).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	grant := models.UserBadge{
		UserID:          enrollment.UserID,
		BadgeID:         badgeID,
		UserChallengeID: &enrollment.ID,
	}
	return tx.Create(&grant).Error
}

// GetUserBadges returns every badge the user has earned, newest first.
func GetUserBadges(userID string) ([]models.UserBadge, error) {
	var badges []models.UserBadge
	err := database.DB.Preload("Badge").
		Where("user_id = ?", userID).
		Order("earned_at desc").
		Find(&badges).Error
	return badges, err
}
