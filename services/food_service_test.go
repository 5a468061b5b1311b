package services

import (
	"testing"

	"github.com/Abhibhav1976/MacroTracker/models"
)

func TestRecordIfAbsentFirstWriteWins(t *testing.T) {
	db := newTestDB(t)
	svc := NewFoodService(db)
	user := createTestUser(t, db, "liam", "liam@example.com")

	created, err := svc.RecordIfAbsent(user.ID, "5901234123457", "Oat Bar", 190, 28, 5, 7)
	if err != nil {
		t.Fatalf("RecordIfAbsent: %v", err)
	}
	if !created {
		t.Fatal("RecordIfAbsent returned false for a new barcode")
	}

	// A second scan with different facts must not overwrite anything.
	created, err = svc.RecordIfAbsent(user.ID, "5901234123457", "Totally Different", 999, 99, 99, 99)
	if err != nil {
		t.Fatalf("second RecordIfAbsent: %v", err)
	}
	if created {
		t.Fatal("second RecordIfAbsent reported a create")
	}

	food, err := svc.Lookup(user.ID, "5901234123457")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if food == nil {
		t.Fatal("Lookup returned nil for a recorded barcode")
	}
	if food.FoodName != "Oat Bar" || food.Calories != 190 {
		t.Fatalf("stored food = %q/%d kcal, want the first write", food.FoodName, food.Calories)
	}

	var count int64
	if err := db.Model(&models.ScannedFood{}).Count(&count).Error; err != nil {
		t.Fatalf("counting rows: %v", err)
	}
	if count != 1 {
		t.Fatalf("got %d rows for one barcode, want 1", count)
	}
}

func TestLookupUnknownBarcode(t *testing.T) {
	db := newTestDB(t)
	svc := NewFoodService(db)
	user := createTestUser(t, db, "mona", "mona@example.com")

	food, err := svc.Lookup(user.ID, "0000000000000")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if food != nil {
		t.Fatalf("Lookup returned %+v for an unknown barcode", food)
	}
}

func TestRecordIfAbsentScopedPerUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewFoodService(db)
	userA := createTestUser(t, db, "nina", "nina@example.com")
	userB := createTestUser(t, db, "omar", "omar@example.com")

	if created, err := svc.RecordIfAbsent(userA.ID, "4006381333931", "Rye Crackers", 120, 22, 3, 2); err != nil || !created {
		t.Fatalf("user A record: created=%v err=%v", created, err)
	}

	// The same barcode is still unscanned from user B's point of view.
	food, err := svc.Lookup(userB.ID, "4006381333931")
	if err != nil {
		t.Fatalf("user B lookup: %v", err)
	}
	if food != nil {
		t.Fatal("user B sees user A's scan")
	}

	created, err := svc.RecordIfAbsent(userB.ID, "4006381333931", "Rye Crackers", 125, 23, 3, 2)
	if err != nil {
		t.Fatalf("user B record: %v", err)
	}
	if !created {
		t.Fatal("user B could not record a barcode user A owns")
	}
}
