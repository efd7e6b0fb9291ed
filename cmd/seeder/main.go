package main

import (
	"log"

	"github.com/Tinoriffic/game-of-life/internal/config"
	"github.com/Tinoriffic/game-of-life/internal/database"
	"github.com/Tinoriffic/game-of-life/internal/models"
)

// Seeds the badge and challenge catalog. Idempotent per title: existing
// entries are left alone so re-running after a deploy is safe.
func main() {
	config.LoadConfig()
	database.Connect()

	log.Println("🔄 Running migrations (just in case)...")
	if err := database.DB.AutoMigrate(
		&models.User{},
		&models.Badge{},
		&models.Challenge{},
		&models.UserChallenge{},
		&models.ChallengeProgress{},
		&models.UserBadge{},
		&models.Skill{},
		&models.ActivityLog{},
	); err != nil {
		log.Fatalf("❌ Failed to migrate: %v", err)
	}

	badges := []models.Badge{
		{Title: "Iron Lungs", Description: "Completed a cardio challenge", IconURL: "/badges/iron-lungs.svg"},
		{Title: "Still Mind", Description: "Completed a meditation challenge", IconURL: "/badges/still-mind.svg"},
		{Title: "Bookworm", Description: "Completed a learning challenge", IconURL: "/badges/bookworm.svg"},
		{Title: "Social Butterfly", Description: "Completed a social challenge", IconURL: "/badges/social-butterfly.svg"},
	}

	badgeIDs := map[string]string{}
	for i := range badges {
		var existing models.Badge
		if err := database.DB.Where("title = ?", badges[i].Title).First(&existing).Error; err == nil {
			badgeIDs[existing.Title] = existing.ID
			continue
		}
		if err := database.DB.Create(&badges[i]).Error; err != nil {
			log.Fatalf("❌ Failed to seed badge %q: %v", badges[i].Title, err)
		}
		badgeIDs[badges[i].Title] = badges[i].ID
	}
	log.Printf("✅ Badges seeded (%d)", len(badgeIDs))

	badgeRef := func(title string) *string {
		id := badgeIDs[title]
		return &id
	}

	challenges := []models.Challenge{
		{
			Title:        "7-Day Cardio Kickstart",
			Description:  "Log a cardio session every day for a week.",
			DurationDays: 7,
			ActivityType: models.ActivityCardio,
			TargetStats: []models.StatReward{
				{Stat: "Stamina", XP: 10},
				{Stat: "Strength", XP: 5},
			},
			CompletionXPBonus: 50,
			BadgeID:           badgeRef("Iron Lungs"),
			Icon:              "🏃",
			IsActive:          true,
		},
		{
			Title:        "14 Days of Stillness",
			Description:  "Meditate every day for two weeks.",
			DurationDays: 14,
			ActivityType: models.ActivityMeditation,
			TargetStats: []models.StatReward{
				{Stat: "Awareness", XP: 10},
			},
			CompletionXPBonus: 100,
			BadgeID:           badgeRef("Still Mind"),
			Icon:              "🧘",
			IsActive:          true,
		},
		{
			Title:        "Learn Something Daily",
			Description:  "Spend time learning every day for ten days.",
			DurationDays: 10,
			ActivityType: models.ActivityLearning,
			TargetStats: []models.StatReward{
				{Stat: "Intelligence", XP: 10},
			},
			CompletionXPBonus: 75,
			BadgeID:           badgeRef("Bookworm"),
			Icon:              "📚",
			IsActive:          true,
		},
		{
			Title:        "Reach Out Week",
			Description:  "Have one meaningful social interaction a day for a week.",
			DurationDays: 7,
			ActivityType: models.ActivitySocial,
			TargetStats: []models.StatReward{
				{Stat: "Charisma", XP: 10},
			},
			CompletionXPBonus: 50,
			BadgeID:           badgeRef("Social Butterfly"),
			Icon:              "💬",
			IsActive:          true,
		},
		{
			Title:        "3-Day Reset",
			Description:  "A short check-off challenge to build momentum.",
			DurationDays: 3,
			ActivityType: models.ActivityNone,
			TargetStats: []models.StatReward{
				{Stat: "Resilience", XP: 5},
			},
			Icon:     "✅",
			IsActive: true,
		},
	}

	seeded := 0
	for i := range challenges {
		var existing models.Challenge
		if err := database.DB.Where("title = ?", challenges[i].Title).First(&existing).Error; err == nil {
			continue
		}
		if err := database.DB.Create(&challenges[i]).Error; err != nil {
			log.Fatalf("❌ Failed to seed challenge %q: %v", challenges[i].Title, err)
		}
		seeded++
	}
	log.Printf("✅ Challenges seeded (%d new)", seeded)
}
