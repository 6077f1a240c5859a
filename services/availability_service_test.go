package services

import (
	"context"
	"errors"
	"testing"

	"grand-azure-hotel/utils"
)

func TestCheckAvailability(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	free, err := env.availability.CheckAvailability(ctx, env.room.ID, "2025-07-01", "2025-07-04")
	if err != nil || !free {
		t.Fatalf("empty room should be free: free=%v err=%v", free, err)
	}

	if _, err := env.bookings.CreateBooking(ctx, env.input("2025-07-02", "2025-07-03")); err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	tests := []struct {
		in, out string
		want    bool
	}{
		{"2025-07-01", "2025-07-04", false},
		{"2025-07-01", "2025-07-02", true},
		{"2025-07-03", "2025-07-05", true},
		{"2025-07-02T15:00:00Z", "2025-07-03T11:00:00Z", false},
	}
	for _, tc := range tests {
		got, err := env.availability.CheckAvailability(ctx, env.room.ID, tc.in, tc.out)
		if err != nil {
			t.Fatalf("%s..%s: %v", tc.in, tc.out, err)
		}
		if got != tc.want {
			t.Errorf("%s..%s = %v, want %v", tc.in, tc.out, got, tc.want)
		}
	}
}

func TestCheckAvailability_Idempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		free, err := env.availability.CheckAvailability(ctx, env.room.ID, "2025-08-01", "2025-08-03")
		if err != nil || !free {
			t.Fatalf("call %d: free=%v err=%v", i, free, err)
		}
	}
	reserved, _ := env.store.ListReservedNights(ctx, env.room.ID, "2025-08-01", "2025-08-31")
	if len(reserved) != 0 {
		t.Fatalf("availability checks must not reserve nights, got %d", len(reserved))
	}
}

func TestCheckAvailability_Errors(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.availability.CheckAvailability(ctx, env.room.ID, "2025-08-03", "2025-08-03"); !errors.Is(err, ErrInvalidDateRange) {
		t.Errorf("zero-night range: expected ErrInvalidDateRange, got %v", err)
	}
	if _, err := env.availability.CheckAvailability(ctx, env.room.ID, "08/01/2025", "2025-08-03"); !errors.Is(err, ErrInvalidDateRange) {
		t.Errorf("bad format: expected ErrInvalidDateRange, got %v", err)
	}
	if _, err := env.availability.CheckAvailability(ctx, 99, "2025-08-01", "2025-08-03"); !errors.Is(err, ErrRoomNotFound) {
		t.Errorf("unknown room: expected ErrRoomNotFound, got %v", err)
	}
}

func TestSeedWindowAndLedger(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if err := env.availability.SeedWindow(ctx, &env.room, 30); err != nil {
		t.Fatalf("SeedWindow: %v", err)
	}
	// Seeding twice must not duplicate dates.
	if err := env.availability.SeedWindow(ctx, &env.room, 30); err != nil {
		t.Fatalf("SeedWindow again: %v", err)
	}

	today := utils.Today()
	start := utils.FormatDate(today)
	end := utils.FormatDate(today.AddDate(0, 0, 29))

	entries, err := env.availability.GetAvailability(ctx, env.room.ID, start, end)
	if err != nil {
		t.Fatalf("GetAvailability: %v", err)
	}
	if len(entries) != 30 {
		t.Fatalf("expected 30 entries, got %d", len(entries))
	}
	if entries[0].Date != start || entries[29].Date != end {
		t.Errorf("unexpected range %s..%s", entries[0].Date, entries[29].Date)
	}
	if entries[0].PricePerNight == nil || *entries[0].PricePerNight != env.room.Price {
		t.Errorf("seeded override should equal room price")
	}

	blocked, err := env.availability.SetAvailability(ctx, entries[1].ID, false)
	if err != nil {
		t.Fatalf("SetAvailability: %v", err)
	}
	if blocked.IsAvailable {
		t.Error("entry should be closed")
	}

	free, _ := env.availability.CheckAvailability(ctx, env.room.ID, start, utils.FormatDate(today.AddDate(0, 0, 3)))
	if free {
		t.Error("a closed ledger date must veto the range")
	}

	if _, err := env.availability.SetAvailability(ctx, 99999, true); !errors.Is(err, ErrAvailabilityNotFound) {
		t.Errorf("expected ErrAvailabilityNotFound, got %v", err)
	}
	if _, err := env.availability.GetAvailability(ctx, env.room.ID, end, start); !errors.Is(err, ErrInvalidDateRange) {
		t.Errorf("expected ErrInvalidDateRange, got %v", err)
	}
}

func TestCalendar(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.bookings.CreateBooking(ctx, env.input("2025-09-10", "2025-09-12")); err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	cal, err := env.availability.Calendar(ctx, env.room.ID, "2025-09-01", "2025-09-30")
	if err != nil {
		t.Fatalf("Calendar: %v", err)
	}
	if len(cal.ReservedDates) != 2 || cal.ReservedDates[0] != "2025-09-10" || cal.ReservedDates[1] != "2025-09-11" {
		t.Errorf("reserved dates = %v", cal.ReservedDates)
	}
	if cal.Entries == nil {
		t.Error("entries should be an empty list, not nil")
	}

	if _, err := env.availability.Calendar(ctx, env.room.ID, "2025-01-01", "2026-06-01"); !errors.Is(err, ErrInvalidDateRange) {
		t.Errorf("expected ErrInvalidDateRange for oversized window, got %v", err)
	}
}
