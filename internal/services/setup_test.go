package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/Tinoriffic/game-of-life/internal/database"
	"github.com/Tinoriffic/game-of-life/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB initializes an in-memory SQLite DB for testing, unique per
// test so state never leaks between cases.
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
	// A single connection keeps the shared-cache DB alive for the whole test
	// and sidesteps SQLite's writer contention.
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

// freezeTime pins the engine clock and returns a function that advances it.
func freezeTime(t *testing.T, at time.Time) func(time.Duration) {
	t.Helper()
	current := at
	timeNow = func() time.Time { return current }
	t.Cleanup(func() { timeNow = time.Now })
	return func(d time.Duration) { current = current.Add(d) }
}

var testDay = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Name:     "Tester",
		Timezone: "UTC",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return &user
}

type testChallengeOpts struct {
	duration     int
	activityType models.ActivityType
	targetStats  []models.StatReward
	bonus        int
	withBadge    bool
	inactive     bool
}

func createTestChallenge(t *testing.T, db *gorm.DB, opts testChallengeOpts) *models.Challenge {
	t.Helper()

	challenge := models.Challenge{
		Title:             fmt.Sprintf("%s test challenge", t.Name()),
		Description:       "test",
		DurationDays:      opts.duration,
		ActivityType:      opts.activityType,
		TargetStats:       opts.targetStats,
		CompletionXPBonus: opts.bonus,
		IsActive:          !opts.inactive,
	}

	if opts.withBadge {
		badge := models.Badge{Title: fmt.Sprintf("%s badge", t.Name())}
		if err := db.Create(&badge).Error; err != nil {
			t.Fatalf("Failed to create test badge: %v", err)
		}
		challenge.BadgeID = &badge.ID
	}

	if err := db.Create(&challenge).Error; err != nil {
		t.Fatalf("Failed to create test challenge: %v", err)
	}
	return &challenge
}
