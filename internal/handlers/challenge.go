package handlers

import (
	"net/http"
	"strconv"

	"github.com/Tinoriffic/game-of-life/internal/services"
	"github.com/gin-gonic/gin"
)

// GetAvailableChallenges returns the visible challenge catalog.
func GetAvailableChallenges(c *gin.Context) {
	challenges, err := services.ListAvailableChallenges()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"challenges": challenges})
}

// GetChallenge returns a single catalog entry.
func GetChallenge(c *gin.Context) {
	challenge, err := services.GetChallenge(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, challenge)
}

// GetActiveChallenge returns the user's active enrollment with derived
// progress fields, or an explicit null when there is none.
func GetActiveChallenge(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	view, err := services.GetActiveChallenge(user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"activeChallenge": view})
}

type joinChallengeInput struct {
	ChallengeID string `json:"challenge_id" binding:"required"`
}

// JoinChallenge enrolls the user in a challenge.
func JoinChallenge(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var input joinChallengeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "challenge_id is required"})
		return
	}

	enrollment, err := services.JoinChallenge(user, input.ChallengeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, enrollment)
}

type markCompleteInput struct {
	ActivityData map[string]interface{} `json:"activity_data"`
}

// MarkDayComplete records today's completion for the active challenge.
func MarkDayComplete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var input markCompleteInput
	if err := c.ShouldBindJSON(&input); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := services.MarkDayComplete(user, input.ActivityData)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// QuitChallenge terminates the user's active enrollment. Earned XP and
// badges are kept.
func QuitChallenge(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	enrollment, err := services.QuitChallenge(user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "Challenge quit successfully",
		"challengeId": enrollment.ChallengeID,
	})
}

// GetChallengeHistory pages through the user's terminal enrollments.
func GetChallengeHistory(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if skip < 0 {
		skip = 0
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	entries, total, err := services.GetChallengeHistory(user.ID, skip, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"challenges": entries, "total": total})
}

// GetUserBadges lists the badges the user has earned.
func GetUserBadges(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	badges, err := services.GetUserBadges(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"badges": badges})
}
