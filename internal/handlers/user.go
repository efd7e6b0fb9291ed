package handlers

import (
	"net/http"
	"time"

	"github.com/Tinoriffic/game-of-life/internal/database"
	"github.com/gin-gonic/gin"
)

// GetProfile returns the authenticated user's profile.
func GetProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, user)
}

type updateProfileInput struct {
	Name       *string `json:"name"`
	Avatar     *string `json:"avatar"`
	City       *string `json:"city"`
	Occupation *string `json:"occupation"`
	Timezone   *string `json:"timezone"`
}

// UpdateProfile updates mutable profile fields. The timezone must be a valid
// IANA name since it drives challenge day boundaries.
func UpdateProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var input updateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Avatar != nil {
		updates["avatar"] = *input.Avatar
	}
	if input.City != nil {
		updates["city"] = *input.City
	}
	if input.Occupation != nil {
		updates["occupation"] = *input.Occupation
	}
	if input.Timezone != nil {
		if !validTimezone(*input.Timezone) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown timezone"})
			return
		}
		updates["timezone"] = *input.Timezone
	}

	if len(updates) > 0 {
		if err := database.DB.Model(user).Updates(updates).Error; err != nil {
			respondError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, user)
}

func validTimezone(tz string) bool {
	_, err := time.LoadLocation(tz)
	return err == nil
}
