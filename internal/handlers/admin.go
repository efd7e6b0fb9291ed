package handlers

import (
	"net/http"

	"github.com/Tinoriffic/game-of-life/internal/database"
	"github.com/Tinoriffic/game-of-life/internal/models"
	"github.com/Tinoriffic/game-of-life/internal/services"
	"github.com/gin-gonic/gin"
)

// Admin catalog management. User-facing reads treat the catalog as
// read-only; these endpoints are how entries get in.

type createBadgeInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	IconURL     string `json:"icon_url"`
}

func AdminCreateBadge(c *gin.Context) {
	var input createBadgeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	badge := models.Badge{
		Title:       input.Title,
		Description: input.Description,
		IconURL:     input.IconURL,
	}
	if err := database.DB.Create(&badge).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, badge)
}

type createChallengeInput struct {
	Title             string              `json:"title" binding:"required"`
	Description       string              `json:"description"`
	DurationDays      int                 `json:"duration_days" binding:"required,min=1"`
	ActivityType      models.ActivityType `json:"activity_type"`
	TargetStats       []models.StatReward `json:"target_stats" binding:"required"`
	CompletionXPBonus int                 `json:"completion_xp_bonus"`
	BadgeID           *string             `json:"badge_id"`
	Icon              string              `json:"icon"`
}

func AdminCreateChallenge(c *gin.Context) {
	var input createChallengeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	challenge := models.Challenge{
		Title:             input.Title,
		Description:       input.Description,
		DurationDays:      input.DurationDays,
		ActivityType:      input.ActivityType,
		TargetStats:       input.TargetStats,
		CompletionXPBonus: input.CompletionXPBonus,
		BadgeID:           input.BadgeID,
		Icon:              input.Icon,
		IsActive:          true,
	}
	if err := database.DB.Create(&challenge).Error; err != nil {
		respondError(c, err)
		return
	}

	services.InvalidateChallengeCache()
	c.JSON(http.StatusCreated, challenge)
}

type setChallengeActiveInput struct {
	IsActive bool `json:"is_active"`
}

// AdminSetChallengeActive toggles catalog visibility. In-progress
// enrollments are untouched.
func AdminSetChallengeActive(c *gin.Context) {
	var input setChallengeActiveInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := database.DB.Model(&models.Challenge{}).
		Where("id = ?", c.Param("id")).
		Update("is_active", input.IsActive)
	if result.Error != nil {
		respondError(c, result.Error)
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Challenge not found"})
		return
	}

	services.InvalidateChallengeCache()
	c.JSON(http.StatusOK, gin.H{"message": "Challenge updated"})
}
