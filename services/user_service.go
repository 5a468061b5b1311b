package services

import (
	"errors"
	"time"

	"github.com/Abhibhav1976/MacroTracker/models"
	"github.com/Abhibhav1976/MacroTracker/utils"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Authenticate returns the account for a valid username/password pair.
// Unknown username and wrong password both come back as (nil, nil) so a
// caller cannot tell which one failed.
func (s *UserService) Authenticate(username, password string) (*models.User, error) {
	var user models.User
	err := s.db.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, nil
	}
	return &user, nil
}

func (s *UserService) IsEmailRegistered(email string) (bool, error) {
	var count int64
	err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// CreateAccount hashes the password and inserts the row. A uniqueness
// violation on username or email is a normal false outcome, not an error.
func (s *UserService) CreateAccount(username, email, password, displayName string) (bool, error) {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return false, err
	}

	user := models.User{
		Username:    username,
		Email:       email,
		Password:    hashed,
		DisplayName: displayName,
		MemberType:  "regular",
	}

	err = s.db.Create(&user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *UserService) FindByID(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ProfileUpdate carries the fields a profile patch may set. Nil fields
// are left untouched.
type ProfileUpdate struct {
	Age              *int
	CurrentWeight    *float64
	TargetWeight     *float64
	RequiredCalories *int
	Height           *float64
	ActivityLevel    *string
	Gender           *string
	GoalType         *string
	ProfilePicture   *string
}

func (p ProfileUpdate) fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if p.Age != nil {
		fields["age"] = *p.Age
	}
	if p.CurrentWeight != nil {
		fields["current_weight"] = *p.CurrentWeight
	}
	if p.TargetWeight != nil {
		fields["target_weight"] = *p.TargetWeight
	}
	if p.RequiredCalories != nil {
		fields["required_calories"] = *p.RequiredCalories
	}
	if p.Height != nil {
		fields["height"] = *p.Height
	}
	if p.ActivityLevel != nil {
		fields["activity_level"] = *p.ActivityLevel
	}
	if p.Gender != nil {
		fields["gender"] = *p.Gender
	}
	if p.GoalType != nil {
		fields["goal_type"] = *p.GoalType
	}
	if p.ProfilePicture != nil {
		fields["profile_picture"] = *p.ProfilePicture
	}
	return fields
}

// UpdateProfile patches only the fields present in upd. Returns false
// when nothing was set or the user does not exist.
func (s *UserService) UpdateProfile(userID uint, upd ProfileUpdate) (bool, error) {
	fields := upd.fields()
	if len(fields) == 0 {
		return false, nil
	}

	res := s.db.Model(&models.User{}).Where("id = ?", userID).Updates(fields)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *UserService) GetStreakState(userID uint) (int, *time.Time, error) {
	var user models.User
	if err := s.db.Select("streak", "last_logged_date").First(&user, userID).Error; err != nil {
		return 0, nil, err
	}
	return user.Streak, user.LastLoggedDate, nil
}

func (s *UserService) SetStreakState(userID uint, streak int, date time.Time) error {
	return s.db.Model(&models.User{}).Where("id = ?", userID).
		Updates(map[string]interface{}{
			"streak":           streak,
			"last_logged_date": dateOnly(date),
		}).Error
}
