package storage

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"grand-azure-hotel/models"
)

func setupTestDB(t *testing.T) *GormStore {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Skipf("db not available: %v", err)
	}
	s := NewGormStore(db)
	if err := s.AutoMigrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	cleanupTestDB(db)
	t.Cleanup(func() { cleanupTestDB(db) })
	return s
}

func cleanupTestDB(db *gorm.DB) {
	db.Exec("DELETE FROM room_date_unavailability")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM room_availability")
	db.Exec("DELETE FROM rooms")
}

func TestGormStore_CreateBookingAndRelease(t *testing.T) {
	s := setupTestDB(t)
	ctx := context.Background()

	room := models.Room{Name: "Deluxe Room", Price: 229, Capacity: 2, Amenities: []string{"Wi-Fi"}}
	if err := s.CreateRoom(ctx, &room); err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}

	b := &models.Booking{
		RoomID: room.ID, GuestName: "Jane", GuestEmail: "jane@example.com", GuestPhone: "555",
		CheckInDate: "2030-05-01", CheckOutDate: "2030-05-03", NumberOfGuests: 2,
		TotalPrice: 45800, Status: models.BookingConfirmed,
	}
	nights := []string{"2030-05-01", "2030-05-02"}
	if err := s.CreateBooking(ctx, b, nights); err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	err := s.CreateBooking(ctx, &models.Booking{
		RoomID: room.ID, GuestName: "Joe", GuestEmail: "joe@example.com", GuestPhone: "555",
		CheckInDate: "2030-05-02", CheckOutDate: "2030-05-04", NumberOfGuests: 1, Status: models.BookingConfirmed,
	}, []string{"2030-05-02", "2030-05-03"})
	if !errors.Is(err, ErrRangeTaken) {
		t.Fatalf("expected ErrRangeTaken, got %v", err)
	}

	if _, err := s.UpdateBooking(ctx, b.ID, func(bk *models.Booking) (bool, error) {
		bk.Status = models.BookingCancelled
		return true, nil
	}); err != nil {
		t.Fatalf("UpdateBooking: %v", err)
	}
	free, err := s.IsRangeFree(ctx, room.ID, nights)
	if err != nil || !free {
		t.Fatalf("expected nights to be released, free=%v err=%v", free, err)
	}
}

func TestGormStore_ConcurrentCreateBooking(t *testing.T) {
	s := setupTestDB(t)
	ctx := context.Background()

	room := models.Room{Name: "Standard Room", Price: 159, Capacity: 2}
	if err := s.CreateRoom(ctx, &room); err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}

	const workers = 8
	var wg sync.WaitGroup
	var mu sync.Mutex
	success := 0
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.CreateBooking(ctx, &models.Booking{
				RoomID: room.ID, GuestName: "Race", GuestEmail: "race@example.com", GuestPhone: "1",
				CheckInDate: "2030-07-01", CheckOutDate: "2030-07-03", NumberOfGuests: 1, Status: models.BookingConfirmed,
			}, []string{"2030-07-01", "2030-07-02"})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				success++
			} else if !errors.Is(err, ErrRangeTaken) {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if success != 1 {
		t.Fatalf("expected exactly one booking, got %d", success)
	}
}
