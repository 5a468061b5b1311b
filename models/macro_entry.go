package models

import (
	"time"

	"gorm.io/gorm"
)

// One logged meal's macros. A user gets at most one row per
// (entry_date, meal_type); logging the same slot again corrects it.
type MacroEntry struct {
	gorm.Model
	UserID    uint      `gorm:"not null;uniqueIndex:idx_macro_entry_key"`
	EntryDate time.Time `gorm:"not null;uniqueIndex:idx_macro_entry_key"` // truncate to YYYY-MM-DD
	MealType  string    `gorm:"size:32;not null;uniqueIndex:idx_macro_entry_key"`
	Calories  int
	Carbs     float64
	Protein   float64
	Fat       float64
}
