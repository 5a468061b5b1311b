package models

import (
	"time"

	"gorm.io/gorm"
)

// User holds the account row plus the optional physical/goal attributes
// collected after signup. The pointer fields stay NULL until the client
// patches them through a profile update.
type User struct {
	gorm.Model
	Username         string `gorm:"uniqueIndex;not null"`
	Email            string `gorm:"uniqueIndex;not null"`
	Password         string `gorm:"not null"` // bcrypt hash
	DisplayName      string
	Age              *int
	CurrentWeight    *float64
	TargetWeight     *float64
	RequiredCalories *int
	Height           *float64
	ActivityLevel    *string `gorm:"size:32"`
	Gender           *string `gorm:"size:16"`
	GoalType         *string `gorm:"size:32"`
	ProfilePicture   string
	MemberType       string `gorm:"size:16;default:regular"`
	Streak           int    `gorm:"default:0"`
	LastLoggedDate   *time.Time
}
