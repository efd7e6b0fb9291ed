package services

import (
	"time"

	"github.com/Tinoriffic/game-of-life/internal/models"
	"github.com/Tinoriffic/game-of-life/pkg/utils"
)

// timeNow is swapped out by tests that need to walk a challenge across
// several calendar days.
var timeNow = time.Now

// userToday returns the current calendar date in the user's timezone.
func userToday(user *models.User) string {
	return utils.DateIn(timeNow(), user.Timezone)
}
