package services

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Abhibhav1976/MacroTracker/models"

	"gorm.io/gorm"
)

const (
	dailyUploadLimit   = 4
	recognitionTimeout = 30 * time.Second
)

var (
	// ErrInvalidImage means the submitted payload was not valid base64.
	ErrInvalidImage = errors.New("invalid image payload")
	// ErrUploadLimit means the user already submitted the day's quota.
	ErrUploadLimit = errors.New("daily upload limit reached")
)

// RecognizedMeal is what the gateway hands back to the caller, parsed
// from the model reply or substituted by the error sentinel.
type RecognizedMeal struct {
	Label    string `json:"label"`
	Calories int    `json:"calories"`
	Protein  int    `json:"protein"`
	Carbs    int    `json:"carbs"`
	Fat      int    `json:"fat"`
}

type ImageService struct {
	db  *gorm.DB
	rec Recognizer
}

func NewImageService(db *gorm.DB, rec Recognizer) *ImageService {
	return &ImageService{db: db, rec: rec}
}

// Analyze runs the full recognition flow for one submitted image:
// decode, quota gate, single-attempt model call, persist, respond.
// After the quota gate passes, exactly one ImageQuery row is written
// whether the model call succeeds or fails; a failure is absorbed into
// the sentinel result (label "error", calories -1) instead of an error.
func (s *ImageService) Analyze(ctx context.Context, userID uint, date time.Time, base64Image string) (*RecognizedMeal, error) {
	image, err := base64.StdEncoding.DecodeString(base64Image)
	if err != nil {
		return nil, ErrInvalidImage
	}

	day := dateOnly(date)

	var count int64
	err = s.db.Model(&models.ImageQuery{}).
		Where("user_id = ? AND image_date = ?", userID, day).
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count >= dailyUploadLimit {
		return nil, ErrUploadLimit
	}

	cctx, cancel := context.WithTimeout(ctx, recognitionTimeout)
	defer cancel()

	meal := &RecognizedMeal{}
	raw, err := s.rec.RecognizeMeal(cctx, image)
	if err == nil {
		meal, err = parseMealReply(raw)
	}
	stored := raw
	if err != nil {
		// Absorb the failure: remember the error text, answer with the
		// sentinel values.
		stored = err.Error()
		meal = &RecognizedMeal{Label: "error", Calories: -1}
	}

	query := models.ImageQuery{
		UserID:      userID,
		ImageDate:   day,
		Base64Input: base64Image,
		GptResponse: stored,
		SentAt:      time.Now(),
	}
	if err := s.db.Create(&query).Error; err != nil {
		return nil, err
	}

	return meal, nil
}

// parseMealReply unmarshals the model's JSON, tolerating a markdown
// code fence around it, and requires every field to be present.
func parseMealReply(raw string) (*RecognizedMeal, error) {
	text := strings.TrimSpace(raw)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var reply struct {
		Label    *string `json:"label"`
		Calories *int    `json:"calories"`
		Protein  *int    `json:"protein"`
		Carbs    *int    `json:"carbs"`
		Fat      *int    `json:"fat"`
	}
	if err := json.Unmarshal([]byte(text), &reply); err != nil {
		return nil, fmt.Errorf("malformed model reply: %w", err)
	}
	if reply.Label == nil || reply.Calories == nil || reply.Protein == nil || reply.Carbs == nil || reply.Fat == nil {
		return nil, errors.New("model reply missing required fields")
	}

	return &RecognizedMeal{
		Label:    *reply.Label,
		Calories: *reply.Calories,
		Protein:  *reply.Protein,
		Carbs:    *reply.Carbs,
		Fat:      *reply.Fat,
	}, nil
}

func (s *ImageService) ListQueries(userID uint, date time.Time) ([]models.ImageQuery, error) {
	var queries []models.ImageQuery
	err := s.db.
		Where("user_id = ? AND image_date = ?", userID, dateOnly(date)).
		Order("sent_at").
		Find(&queries).Error
	return queries, err
}

func (s *ImageService) DeleteQuery(userID, queryID uint) (bool, error) {
	res := s.db.Where("id = ? AND user_id = ?", queryID, userID).Delete(&models.ImageQuery{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
