package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeditationXP(t *testing.T) {
	// First session of the day: 10 bonus + 5 per 5 minutes.
	assert.Equal(t, 30, MeditationXP(20, 0))
	// Later sessions lose the bonus.
	assert.Equal(t, 20, MeditationXP(20, 30))
	// Sub-5-minute sessions still earn the first-of-day bonus.
	assert.Equal(t, 10, MeditationXP(3, 0))
}

func TestWorkoutXP(t *testing.T) {
	assert.Equal(t, 15, WorkoutXP(0))
	assert.Equal(t, 0, WorkoutXP(15))
}

func TestRunningXP(t *testing.T) {
	// 10 bonus + 15 for 30 minutes + 15 for 1.5 miles.
	assert.Equal(t, 40, RunningXP(30, 1.5, 0))
	// No bonus, partial increments truncate.
	assert.Equal(t, 5, RunningXP(9, 0.7, 10))
	assert.Equal(t, 0, RunningXP(5, 0.4, 10))
}

func TestSocialXP(t *testing.T) {
	assert.Equal(t, 40, SocialXP("presentation"))
	assert.Equal(t, 30, SocialXP("approach_stranger"))
	assert.Equal(t, 12, SocialXP("social_gathering"))
	assert.Equal(t, 5, SocialXP("give_compliment"))
	assert.Equal(t, 0, SocialXP("karaoke"))
}

func TestLearningXP(t *testing.T) {
	// Reading: 5 bonus + 5 per 10 minutes.
	assert.Equal(t, 20, LearningXP("read", 30, 0))
	// Taking a class carries a bigger first-of-day bonus.
	assert.Equal(t, 30, LearningXP("take_class", 30, 0))
	// No bonus on subsequent logs regardless of activity.
	assert.Equal(t, 15, LearningXP("take_class", 30, 25))
	// Unknown learning activities earn no bonus, only duration XP.
	assert.Equal(t, 15, LearningXP("podcast", 30, 0))
}

func TestReflectionXP(t *testing.T) {
	assert.Equal(t, 20, ReflectionXP(0))
	assert.Equal(t, 0, ReflectionXP(20))
}
