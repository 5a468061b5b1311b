package services

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"github.com/Abhibhav1976/MacroTracker/models"
)

// fakeRecognizer stands in for the vision model and counts its calls.
type fakeRecognizer struct {
	reply string
	err   error
	calls int
}

func (f *fakeRecognizer) RecognizeMeal(ctx context.Context, image []byte) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func validImage() string {
	return base64.StdEncoding.EncodeToString([]byte("fake jpeg bytes"))
}

func TestAnalyzeSuccess(t *testing.T) {
	db := newTestDB(t)
	rec := &fakeRecognizer{reply: `{"label":"grilled salmon","calories":420,"protein":38,"carbs":5,"fat":27}`}
	svc := NewImageService(db, rec)
	user := createTestUser(t, db, "pete", "pete@example.com")

	day := date(2026, time.July, 1)

	meal, err := svc.Analyze(context.Background(), user.ID, day, validImage())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if meal.Label != "grilled salmon" || meal.Calories != 420 || meal.Protein != 38 || meal.Carbs != 5 || meal.Fat != 27 {
		t.Fatalf("meal = %+v", meal)
	}
	if rec.calls != 1 {
		t.Fatalf("model called %d times, want 1", rec.calls)
	}

	queries, err := svc.ListQueries(user.ID, day)
	if err != nil {
		t.Fatalf("ListQueries: %v", err)
	}
	if len(queries) != 1 {
		t.Fatalf("got %d stored queries, want 1", len(queries))
	}
	if queries[0].GptResponse != rec.reply {
		t.Fatalf("stored response = %q", queries[0].GptResponse)
	}
}

func TestAnalyzeFencedReply(t *testing.T) {
	db := newTestDB(t)
	rec := &fakeRecognizer{reply: "```json\n{\"label\":\"ramen\",\"calories\":550,\"protein\":22,\"carbs\":70,\"fat\":18}\n```"}
	svc := NewImageService(db, rec)
	user := createTestUser(t, db, "quinn", "quinn@example.com")

	meal, err := svc.Analyze(context.Background(), user.ID, date(2026, time.July, 1), validImage())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if meal.Label != "ramen" || meal.Calories != 550 {
		t.Fatalf("meal = %+v, fenced JSON was not parsed", meal)
	}
}

func TestAnalyzeModelFailure(t *testing.T) {
	db := newTestDB(t)
	rec := &fakeRecognizer{err: errors.New("upstream timeout")}
	svc := NewImageService(db, rec)
	user := createTestUser(t, db, "rosa", "rosa@example.com")

	day := date(2026, time.July, 2)

	meal, err := svc.Analyze(context.Background(), user.ID, day, validImage())
	if err != nil {
		t.Fatalf("Analyze surfaced a model failure as an error: %v", err)
	}
	if meal.Label != "error" || meal.Calories != -1 {
		t.Fatalf("meal = %+v, want the error sentinel", meal)
	}
	if meal.Protein != 0 || meal.Carbs != 0 || meal.Fat != 0 {
		t.Fatalf("sentinel macros = %+v, want zeros", meal)
	}

	// Exactly one row, holding the raw error text.
	queries, err := svc.ListQueries(user.ID, day)
	if err != nil {
		t.Fatalf("ListQueries: %v", err)
	}
	if len(queries) != 1 {
		t.Fatalf("got %d stored queries, want 1", len(queries))
	}
	if queries[0].GptResponse != "upstream timeout" {
		t.Fatalf("stored response = %q, want the error text", queries[0].GptResponse)
	}
}

func TestAnalyzeMalformedReply(t *testing.T) {
	db := newTestDB(t)
	rec := &fakeRecognizer{reply: `{"label":"toast"}`}
	svc := NewImageService(db, rec)
	user := createTestUser(t, db, "saul", "saul@example.com")

	meal, err := svc.Analyze(context.Background(), user.ID, date(2026, time.July, 3), validImage())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if meal.Label != "error" || meal.Calories != -1 {
		t.Fatalf("meal = %+v, want the error sentinel for a partial reply", meal)
	}
}

func TestAnalyzeDailyLimit(t *testing.T) {
	db := newTestDB(t)
	rec := &fakeRecognizer{reply: `{"label":"salad","calories":200,"protein":6,"carbs":12,"fat":14}`}
	svc := NewImageService(db, rec)
	user := createTestUser(t, db, "tara", "tara@example.com")

	day := date(2026, time.July, 4)

	for i := 0; i < dailyUploadLimit; i++ {
		if _, err := svc.Analyze(context.Background(), user.ID, day, validImage()); err != nil {
			t.Fatalf("upload %d: %v", i+1, err)
		}
	}

	before := rec.calls

	_, err := svc.Analyze(context.Background(), user.ID, day, validImage())
	if !errors.Is(err, ErrUploadLimit) {
		t.Fatalf("fifth upload err = %v, want ErrUploadLimit", err)
	}
	if rec.calls != before {
		t.Fatal("quota-rejected upload still reached the model")
	}

	var count int64
	if err := db.Model(&models.ImageQuery{}).Count(&count).Error; err != nil {
		t.Fatalf("counting rows: %v", err)
	}
	if count != int64(dailyUploadLimit) {
		t.Fatalf("got %d stored rows, want %d", count, dailyUploadLimit)
	}

	// A new day starts a fresh quota.
	if _, err := svc.Analyze(context.Background(), user.ID, day.AddDate(0, 0, 1), validImage()); err != nil {
		t.Fatalf("next-day upload: %v", err)
	}
}

func TestAnalyzeInvalidBase64(t *testing.T) {
	db := newTestDB(t)
	rec := &fakeRecognizer{}
	svc := NewImageService(db, rec)
	user := createTestUser(t, db, "ursula", "ursula@example.com")

	_, err := svc.Analyze(context.Background(), user.ID, date(2026, time.July, 5), "not base64 at all!!!")
	if !errors.Is(err, ErrInvalidImage) {
		t.Fatalf("err = %v, want ErrInvalidImage", err)
	}
	if rec.calls != 0 {
		t.Fatal("invalid payload reached the model")
	}

	var count int64
	if err := db.Model(&models.ImageQuery{}).Count(&count).Error; err != nil {
		t.Fatalf("counting rows: %v", err)
	}
	if count != 0 {
		t.Fatalf("invalid payload wrote %d rows", count)
	}
}

func TestDeleteQuery(t *testing.T) {
	db := newTestDB(t)
	rec := &fakeRecognizer{reply: `{"label":"soup","calories":150,"protein":8,"carbs":18,"fat":4}`}
	svc := NewImageService(db, rec)
	owner := createTestUser(t, db, "vera", "vera@example.com")
	other := createTestUser(t, db, "wade", "wade@example.com")

	day := date(2026, time.July, 6)
	if _, err := svc.Analyze(context.Background(), owner.ID, day, validImage()); err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	queries, err := svc.ListQueries(owner.ID, day)
	if err != nil || len(queries) != 1 {
		t.Fatalf("ListQueries: %v (%d rows)", err, len(queries))
	}

	// Another user cannot delete it.
	deleted, err := svc.DeleteQuery(other.ID, queries[0].ID)
	if err != nil {
		t.Fatalf("DeleteQuery as other user: %v", err)
	}
	if deleted {
		t.Fatal("a different user deleted the query")
	}

	deleted, err = svc.DeleteQuery(owner.ID, queries[0].ID)
	if err != nil {
		t.Fatalf("DeleteQuery: %v", err)
	}
	if !deleted {
		t.Fatal("owner could not delete the query")
	}

	remaining, err := svc.ListQueries(owner.ID, day)
	if err != nil {
		t.Fatalf("ListQueries after delete: %v", err)
	}
	if len(remaining) != 0 {
		t.Fatalf("%d rows remain after delete", len(remaining))
	}
}
