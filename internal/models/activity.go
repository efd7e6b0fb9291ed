package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityLogType categorizes free-form daily activity logs, which earn XP
// outside of any challenge.
type ActivityLogType string

const (
	LogMeditation ActivityLogType = "MEDITATION"
	LogWorkout    ActivityLogType = "WORKOUT"
	LogRunning    ActivityLogType = "RUNNING"
	LogSocial     ActivityLogType = "SOCIAL"
	LogLearning   ActivityLogType = "LEARNING"
	LogReflection ActivityLogType = "REFLECTION"
)

// ActivityLog is one logged real-world activity and the XP it earned.
type ActivityLog struct {
	ID     string          `gorm:"primaryKey;type:text" json:"id"`
	UserID string          `gorm:"index;not null" json:"userId"`
	Type   ActivityLogType `gorm:"type:text;not null" json:"type"`

	Data      map[string]interface{} `gorm:"serializer:json" json:"data"`
	XPAwarded int                    `gorm:"default:0" json:"xpAwarded"`
	Stat      string                 `json:"stat"`

	// Calendar date in the user's timezone, YYYY-MM-DD.
	LogDate   string    `gorm:"type:text;index" json:"logDate"`
	CreatedAt time.Time `json:"createdAt"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (a *ActivityLog) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return
}
