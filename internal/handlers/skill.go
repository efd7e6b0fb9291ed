package handlers

import (
	"net/http"

	"github.com/Tinoriffic/game-of-life/internal/services"
	"github.com/gin-gonic/gin"
)

// GetSkills returns the user's stat ledger: every attribute with its level
// and XP within the level.
func GetSkills(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	skills, err := services.GetUserSkills(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"skills": skills})
}
