package handlers

import (
	"net/http"

	"github.com/Tinoriffic/game-of-life/internal/database"
	"github.com/Tinoriffic/game-of-life/internal/models"
	"github.com/Tinoriffic/game-of-life/pkg/errors"
	"github.com/Tinoriffic/game-of-life/pkg/logger"
	"github.com/gin-gonic/gin"
)

// currentUser loads the authenticated user's full record. Handlers need more
// than the id (the timezone drives calendar-day math in the engine).
func currentUser(c *gin.Context) (*models.User, bool) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return nil, false
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return nil, false
	}
	return &user, true
}

// respondError maps engine errors onto the HTTP taxonomy: validation,
// conflict and eligibility errors carry their own status; anything else is a
// 500 and gets logged.
func respondError(c *gin.Context, err error) {
	if appErr, ok := err.(*errors.AppError); ok {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message, "kind": appErr.Kind})
		return
	}
	logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
