package services

import (
	"log"
	"time"

	"github.com/Abhibhav1976/MacroTracker/models"
	"github.com/Abhibhav1976/MacroTracker/utils"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// ReminderService mails users who have an active streak but no entry
// yet today, every evening before the day rolls over.
type ReminderService struct {
	db   *gorm.DB
	cron *cron.Cron
}

func NewReminderService(db *gorm.DB) *ReminderService {
	return &ReminderService{db: db, cron: cron.New()}
}

func (s *ReminderService) Start() error {
	if _, err := s.cron.AddFunc("0 20 * * *", s.sendStreakReminders); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

func (s *ReminderService) Stop() {
	s.cron.Stop()
}

func (s *ReminderService) sendStreakReminders() {
	today := dateOnly(time.Now())

	var users []models.User
	err := s.db.
		Where("streak > 0 AND last_logged_date < ?", today).
		Find(&users).Error
	if err != nil {
		log.Printf("streak reminder query failed: %v", err)
		return
	}

	for _, u := range users {
		if err := utils.SendStreakReminderEmail(u.Email, u.DisplayName, u.Streak); err != nil {
			log.Printf("streak reminder to %s failed: %v", u.Email, err)
		}
	}
}
