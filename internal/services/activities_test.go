package services

import (
	"testing"

	"github.com/Tinoriffic/game-of-life/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogActivity_CreatesEntryAndAppliesXP(t *testing.T) {
	db := setupTestDB(t)
	freezeTime(t, testDay)

	user := createTestUser(t, db, "runner")
	entry, err := LogActivity(user, models.LogRunning, map[string]interface{}{
		"duration": 30.0,
		"distance": 1.5,
	})
	require.NoError(t, err)

	assert.Equal(t, 40, entry.XPAwarded)
	assert.Equal(t, "Stamina", entry.Stat)
	assert.Equal(t, "2025-03-10", entry.LogDate)

	var skill models.Skill
	require.NoError(t, db.First(&skill, "user_id = ? AND name = ?", user.ID, "Stamina").Error)
	assert.Equal(t, 40, skill.XP)
}

func TestLogActivity_FirstOfDayBonusPaidOnce(t *testing.T) {
	db := setupTestDB(t)
	advance := freezeTime(t, testDay)

	user := createTestUser(t, db, "journaler")

	entry, err := LogActivity(user, models.LogReflection, nil)
	require.NoError(t, err)
	assert.Equal(t, 20, entry.XPAwarded)

	entry, err = LogActivity(user, models.LogReflection, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, entry.XPAwarded)

	// The bonus comes back with the next calendar day.
	advance(day)
	entry, err = LogActivity(user, models.LogReflection, nil)
	require.NoError(t, err)
	assert.Equal(t, 20, entry.XPAwarded)

	var skill models.Skill
	require.NoError(t, db.First(&skill, "user_id = ? AND name = ?", user.ID, "Resilience").Error)
	assert.Equal(t, 40, skill.XP)
}

func TestLogActivity_BonusTracksTheMappedStatNotTheLogType(t *testing.T) {
	db := setupTestDB(t)
	freezeTime(t, testDay)

	user := createTestUser(t, db, "athlete")

	// A workout pays its bonus into Strength; a later run still gets the
	// running bonus because Stamina has earned nothing today.
	_, err := LogActivity(user, models.LogWorkout, nil)
	require.NoError(t, err)

	entry, err := LogActivity(user, models.LogRunning, map[string]interface{}{"duration": 10.0})
	require.NoError(t, err)
	assert.Equal(t, 15, entry.XPAwarded)
}

func TestLogActivity_ValidationRejectsBadPayloads(t *testing.T) {
	db := setupTestDB(t)
	freezeTime(t, testDay)

	user := createTestUser(t, db, "sloppy")

	_, err := LogActivity(user, models.LogMeditation, map[string]interface{}{})
	assert.EqualError(t, err, "Duration (minutes) is required")

	_, err = LogActivity(user, models.LogSocial, map[string]interface{}{"interaction_type": "karaoke"})
	assert.EqualError(t, err, "Unknown interaction type: karaoke")

	_, err = LogActivity(user, models.ActivityLogType("SLEEPING"), nil)
	assert.EqualError(t, err, "Unknown activity log type: SLEEPING")

	// Nothing was persisted for the failed logs.
	var count int64
	db.Model(&models.ActivityLog{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestGetActivityFeed_NewestFirst(t *testing.T) {
	db := setupTestDB(t)
	freezeTime(t, testDay)

	user := createTestUser(t, db, "feeder")

	_, err := LogActivity(user, models.LogWorkout, nil)
	require.NoError(t, err)
	_, err = LogActivity(user, models.LogReflection, nil)
	require.NoError(t, err)

	logs, err := GetActivityFeed(user.ID, 10)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, models.LogReflection, logs[0].Type)
	assert.Equal(t, models.LogWorkout, logs[1].Type)
}
