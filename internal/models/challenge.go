package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityType is the closed set of real-world action categories a challenge
// can require. It determines the completion payload schema.
type ActivityType string

const (
	ActivityCardio     ActivityType = "cardio"
	ActivityMeditation ActivityType = "meditation"
	ActivityLearning   ActivityType = "learning"
	ActivitySocial     ActivityType = "social"
	// ActivityNone marks simple check-off challenges with no required fields.
	ActivityNone ActivityType = ""
)

// StatReward is one (stat, xp) pair of a challenge's daily reward.
type StatReward struct {
	Stat string `json:"stat"`
	XP   int    `json:"xp"`
}

// Challenge is an immutable catalog entry. IsActive only controls catalog
// visibility; flipping it never touches in-progress enrollments.
type Challenge struct {
	ID          string `gorm:"primaryKey;type:text" json:"id"`
	Title       string `gorm:"index" json:"title"`
	Description string `gorm:"type:text" json:"description"`

	DurationDays int          `gorm:"not null" json:"durationDays"`
	ActivityType ActivityType `gorm:"type:text" json:"activityType"`

	TargetStats       []StatReward `gorm:"serializer:json" json:"targetStats"`
	CompletionXPBonus int          `gorm:"default:0" json:"completionXpBonus"`

	BadgeID *string `json:"badgeId"`
	Badge   *Badge  `gorm:"foreignKey:BadgeID" json:"badge,omitempty"`

	Icon string `json:"icon"`

	// No column default on purpose: gorm drops zero values for fields with a
	// default tag, which would turn IsActive=false into true on insert. Every
	// create site sets the flag explicitly.
	IsActive bool `json:"isActive"`
}

func (c *Challenge) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}

// DailyXP is the XP a single completed day awards across all target stats.
func (c *Challenge) DailyXP() int {
	total := 0
	for _, reward := range c.TargetStats {
		total += reward.XP
	}
	return total
}

// UserChallenge is one enrollment: a user's specific attempt at a challenge.
// Calendar dates are YYYY-MM-DD strings in the user's timezone.
type UserChallenge struct {
	ID          string    `gorm:"primaryKey;type:text" json:"id"`
	UserID      string    `gorm:"index;not null" json:"userId"`
	ChallengeID string    `gorm:"index;not null" json:"challengeId"`
	Challenge   Challenge `gorm:"foreignKey:ChallengeID" json:"challenge"`

	StartDate string `gorm:"type:text;not null" json:"startDate"`
	// EndDate = StartDate + (DurationDays - 1); the start day counts as day 1.
	EndDate string `gorm:"type:text;not null" json:"endDate"`

	QuitDate       *string `gorm:"type:text" json:"quitDate"`
	CompletionDate *string `gorm:"type:text" json:"completionDate"`
	IsFailed       bool    `gorm:"default:false" json:"isFailed"`

	Progress []ChallengeProgress `gorm:"foreignKey:UserChallengeID;constraint:OnDelete:CASCADE" json:"progress"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (uc *UserChallenge) BeforeCreate(tx *gorm.DB) (err error) {
	if uc.ID == "" {
		uc.ID = uuid.New().String()
	}
	return
}

// IsActive reports whether this enrollment is the user's live attempt.
// At most one enrollment per user may satisfy this at any time.
func (uc *UserChallenge) IsActive() bool {
	return uc.CompletionDate == nil && uc.QuitDate == nil && !uc.IsFailed
}

// ChallengeProgress is one day's completion record. Append-only; XPAwarded is
// computed at completion time and never recomputed if the catalog changes.
type ChallengeProgress struct {
	ID              string `gorm:"primaryKey;type:text" json:"id"`
	UserChallengeID string `gorm:"index;not null" json:"userChallengeId"`

	// 1-based, sequential, no gaps.
	DayNumber      int    `gorm:"not null" json:"dayNumber"`
	CompletionDate string `gorm:"type:text;not null" json:"completionDate"`

	ActivityData map[string]interface{} `gorm:"serializer:json" json:"activityData"`
	XPAwarded    int                    `gorm:"default:0" json:"xpAwarded"`

	CreatedAt time.Time `json:"createdAt"`
}

func (cp *ChallengeProgress) BeforeCreate(tx *gorm.DB) (err error) {
	if cp.ID == "" {
		cp.ID = uuid.New().String()
	}
	return
}
