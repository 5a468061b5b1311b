package services

import (
	"time"

	"github.com/Abhibhav1976/MacroTracker/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MacroService struct {
	db    *gorm.DB
	users *UserService
}

func NewMacroService(db *gorm.DB, users *UserService) *MacroService {
	return &MacroService{db: db, users: users}
}

// LogEntry writes one meal's macros. The (user, date, mealType) key is
// unique; logging an existing slot overwrites its values.
func (s *MacroService) LogEntry(userID uint, date time.Time, mealType string, calories int, carbs, protein, fat float64) (bool, error) {
	entry := models.MacroEntry{
		UserID:    userID,
		EntryDate: dateOnly(date),
		MealType:  mealType,
		Calories:  calories,
		Carbs:     carbs,
		Protein:   protein,
		Fat:       fat,
	}

	res := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "entry_date"}, {Name: "meal_type"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"calories", "carbs", "protein", "fat", "updated_at",
		}),
	}).Create(&entry)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// LogEntryWithStreak logs the entry and, only if the write succeeded,
// recomputes and persists the user's streak for the entry date.
func (s *MacroService) LogEntryWithStreak(userID uint, date time.Time, mealType string, calories int, carbs, protein, fat float64) (bool, int, error) {
	streak, last, err := s.users.GetStreakState(userID)
	if err != nil {
		return false, 0, err
	}
	updated := NextStreak(last, streak, date)

	ok, err := s.LogEntry(userID, date, mealType, calories, carbs, protein, fat)
	if err != nil || !ok {
		return ok, streak, err
	}

	if err := s.users.SetStreakState(userID, updated, date); err != nil {
		return true, updated, err
	}
	return true, updated, nil
}

// EditEntry updates an existing (user, date, mealType) row. A missing
// key is a false outcome, not an error, and leaves the ledger unchanged.
func (s *MacroService) EditEntry(userID uint, date time.Time, mealType string, calories int, carbs, protein, fat float64) (bool, error) {
	res := s.db.Model(&models.MacroEntry{}).
		Where("user_id = ? AND entry_date = ? AND meal_type = ?", userID, dateOnly(date), mealType).
		Updates(map[string]interface{}{
			"calories": calories,
			"carbs":    carbs,
			"protein":  protein,
			"fat":      fat,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *MacroService) FindEntries(userID uint, date time.Time) ([]models.MacroEntry, error) {
	var entries []models.MacroEntry
	err := s.db.
		Where("user_id = ? AND entry_date = ?", userID, dateOnly(date)).
		Order("created_at").
		Find(&entries).Error
	return entries, err
}
