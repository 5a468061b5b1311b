package models

import (
	"time"

	"gorm.io/gorm"
)

// ImageQuery records every recognition request, successful or not.
// GptResponse stores the model reply verbatim, or the error text when
// the call failed.
type ImageQuery struct {
	gorm.Model
	UserID      uint      `gorm:"index;not null"`
	ImageDate   time.Time `gorm:"index;not null"` // truncate to YYYY-MM-DD
	Base64Input string    `gorm:"type:text"`
	GptResponse string    `gorm:"type:text"`
	SentAt      time.Time
}
