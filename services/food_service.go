package services

import (
	"errors"

	"github.com/Abhibhav1976/MacroTracker/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FoodService struct {
	db *gorm.DB
}

func NewFoodService(db *gorm.DB) *FoodService {
	return &FoodService{db: db}
}

// Lookup returns the food recorded for (user, barcode), or (nil, nil)
// when the barcode has never been scanned by this user.
func (s *FoodService) Lookup(userID uint, barcode string) (*models.ScannedFood, error) {
	var food models.ScannedFood
	err := s.db.Where("user_id = ? AND barcode = ?", userID, barcode).First(&food).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &food, nil
}

// RecordIfAbsent inserts the barcode mapping unless one already exists.
// The insert is conditional at the database (ON CONFLICT DO NOTHING on
// the (user, barcode) unique index), so concurrent scans of the same
// barcode cannot produce duplicates. False means "already exists".
func (s *FoodService) RecordIfAbsent(userID uint, barcode, foodName string, calories int, carbs, protein, fat float64) (bool, error) {
	food := models.ScannedFood{
		UserID:   userID,
		Barcode:  barcode,
		FoodName: foodName,
		Calories: calories,
		Carbs:    carbs,
		Protein:  protein,
		Fat:      fat,
	}

	res := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "barcode"}},
		DoNothing: true,
	}).Create(&food)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
