package models

import "gorm.io/gorm"

// ScannedFood caches the nutrition facts a user entered for a barcode.
// First write wins; there is no update path.
type ScannedFood struct {
	gorm.Model
	UserID   uint   `gorm:"not null;uniqueIndex:idx_scanned_food_key"`
	Barcode  string `gorm:"size:64;not null;uniqueIndex:idx_scanned_food_key"`
	FoodName string `gorm:"not null"`
	Calories int
	Carbs    float64
	Protein  float64
	Fat      float64
}
