package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Skill is one row of the per-user stat ledger: a named attribute with a
// level and the XP accumulated inside that level. Rows are created lazily on
// the first award and never deleted.
type Skill struct {
	ID     string `gorm:"primaryKey;type:text" json:"id"`
	UserID string `gorm:"uniqueIndex:idx_user_skill;not null" json:"userId"`
	Name   string `gorm:"uniqueIndex:idx_user_skill;not null" json:"name"`

	Level int `gorm:"default:1" json:"level"`
	XP    int `gorm:"default:0" json:"xp"`

	// XP earned since the start of the user's current calendar day. Used by
	// the first-of-day bonuses in the activity XP formulas.
	DailyXPEarned int       `gorm:"default:0" json:"dailyXpEarned"`
	LastUpdated   time.Time `json:"lastUpdated"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (s *Skill) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	if s.Level == 0 {
		s.Level = 1
	}
	return
}
