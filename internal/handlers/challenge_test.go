package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Tinoriffic/game-of-life/internal/database"
	"github.com/Tinoriffic/game-of-life/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test DB: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Badge{},
		&models.Challenge{},
		&models.UserChallenge{},
		&models.ChallengeProgress{},
		&models.UserBadge{},
		&models.Skill{},
		&models.ActivityLog{},
	); err != nil {
		t.Fatalf("Failed to migrate test DB: %v", err)
	}

	database.DB = db
	return db
}

// setupRouter wires the challenge endpoints behind a stub auth middleware
// that injects the given user id, mirroring what the JWT middleware sets.
func setupRouter(userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	challenges := r.Group("/challenges")
	challenges.Use(func(c *gin.Context) {
		c.Set("userId", userID)
		c.Next()
	})
	{
		challenges.GET("/available", GetAvailableChallenges)
		challenges.GET("/active", GetActiveChallenge)
		challenges.POST("/join", JoinChallenge)
		challenges.POST("/complete", MarkDayComplete)
		challenges.POST("/quit", QuitChallenge)
		challenges.GET("/history", GetChallengeHistory)
		challenges.GET("/badges", GetUserBadges)
		challenges.GET("/:id", GetChallenge)
	}
	return r
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Name:     "Tester",
		Timezone: "UTC",
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createTestChallenge(t *testing.T, db *gorm.DB, duration int) *models.Challenge {
	t.Helper()
	challenge := models.Challenge{
		Title:        fmt.Sprintf("%s challenge", t.Name()),
		Description:  "test",
		DurationDays: duration,
		TargetStats:  []models.StatReward{{Stat: "Strength", XP: 10}},
		IsActive:     true,
	}
	require.NoError(t, db.Create(&challenge).Error)
	return &challenge
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJoinChallengeEndpoint(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "joiner")
	challenge := createTestChallenge(t, db, 5)
	r := setupRouter(user.ID)

	w := doJSON(t, r, http.MethodPost, "/challenges/join", gin.H{"challenge_id": challenge.ID})
	require.Equal(t, http.StatusCreated, w.Code)

	var enrollment models.UserChallenge
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &enrollment))
	assert.Equal(t, challenge.ID, enrollment.ChallengeID)
	assert.NotEmpty(t, enrollment.StartDate)
}

func TestJoinChallengeEndpoint_MissingBody(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "empty")
	r := setupRouter(user.ID)

	w := doJSON(t, r, http.MethodPost, "/challenges/join", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestJoinChallengeEndpoint_ConflictWhenActive(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "eager")
	challenge := createTestChallenge(t, db, 5)
	r := setupRouter(user.ID)

	w := doJSON(t, r, http.MethodPost, "/challenges/join", gin.H{"challenge_id": challenge.ID})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/challenges/join", gin.H{"challenge_id": challenge.ID})
	assert.Equal(t, http.StatusConflict, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "CONFLICT", body["kind"])
}

func TestMarkDayCompleteEndpoint(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "doer")
	challenge := createTestChallenge(t, db, 5)
	r := setupRouter(user.ID)

	w := doJSON(t, r, http.MethodPost, "/challenges/join", gin.H{"challenge_id": challenge.ID})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/challenges/complete", gin.H{"activity_data": gin.H{}})
	require.Equal(t, http.StatusOK, w.Code)

	var result struct {
		TotalXPAwarded     int  `json:"totalXpAwarded"`
		ChallengeCompleted bool `json:"challengeCompleted"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 10, result.TotalXPAwarded)
	assert.False(t, result.ChallengeCompleted)

	// Completing the same day again is rejected as an eligibility error.
	w = doJSON(t, r, http.MethodPost, "/challenges/complete", gin.H{"activity_data": gin.H{}})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestMarkDayCompleteEndpoint_NoActiveChallenge(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "idle")
	r := setupRouter(user.ID)

	w := doJSON(t, r, http.MethodPost, "/challenges/complete", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "NOT_ELIGIBLE", body["kind"])
}

func TestQuitChallengeEndpoint(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "quitter")
	challenge := createTestChallenge(t, db, 5)
	r := setupRouter(user.ID)

	w := doJSON(t, r, http.MethodPost, "/challenges/join", gin.H{"challenge_id": challenge.ID})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/challenges/quit", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Nothing left to quit.
	w = doJSON(t, r, http.MethodPost, "/challenges/quit", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetActiveChallengeEndpoint_NullWhenNone(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "watcher")
	r := setupRouter(user.ID)

	w := doJSON(t, r, http.MethodGet, "/challenges/active", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "null", string(body["activeChallenge"]))
}

func TestGetChallengeEndpoint_NotFound(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "browser")
	r := setupRouter(user.ID)

	w := doJSON(t, r, http.MethodGet, "/challenges/nonexistent-id", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
