package handlers

import (
	"net/http"
	"strconv"

	"github.com/Tinoriffic/game-of-life/internal/models"
	"github.com/Tinoriffic/game-of-life/internal/services"
	"github.com/gin-gonic/gin"
)

type logActivityInput struct {
	Type models.ActivityLogType `json:"type" binding:"required"`
	Data map[string]interface{} `json:"data"`
}

// LogActivity records a free-form real-world activity and awards XP per the
// activity's formula.
func LogActivity(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var input logActivityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type is required"})
		return
	}

	entry, err := services.LogActivity(user, input.Type, input.Data)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// GetActivityFeed returns the user's recent activity logs, newest first.
func GetActivityFeed(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	logs, err := services.GetActivityFeed(user.ID, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"activities": logs})
}
