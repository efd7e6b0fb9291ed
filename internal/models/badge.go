package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Badge is catalog data describing a collectible achievement.
type Badge struct {
	ID          string `gorm:"primaryKey;type:text" json:"id"`
	Title       string `gorm:"index" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	IconURL     string `json:"iconUrl"`
}

func (b *Badge) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return
}

// UserBadge is an append-only grant, unique per (user, badge). Re-enrolling
// in a challenge and completing it again never yields a second grant.
type UserBadge struct {
	ID      string `gorm:"primaryKey;type:text" json:"id"`
	UserID  string `gorm:"uniqueIndex:idx_user_badge;not null" json:"userId"`
	BadgeID string `gorm:"uniqueIndex:idx_user_badge;not null" json:"badgeId"`

	// Which enrollment earned it, for audit.
	UserChallengeID *string `json:"userChallengeId"`

	EarnedAt time.Time `json:"earnedAt"`

	Badge Badge `gorm:"foreignKey:BadgeID" json:"badge"`
	User  User  `gorm:"foreignKey:UserID" json:"-"`
}

func (ub *UserBadge) BeforeCreate(tx *gorm.DB) (err error) {
	if ub.ID == "" {
		ub.ID = uuid.New().String()
	}
	if ub.EarnedAt.IsZero() {
		ub.EarnedAt = time.Now()
	}
	return
}
