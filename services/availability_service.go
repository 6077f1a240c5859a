package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"grand-azure-hotel/logger"
	"grand-azure-hotel/metrics"
	"grand-azure-hotel/models"
	"grand-azure-hotel/storage"
	"grand-azure-hotel/utils"
)

const (
	maxCalendarDays = 366
	maxStayNights   = 365
)

// AvailabilityService owns the per-date ledger and answers "is room R free
// for [checkIn, checkOut)" by combining the conflict index with ledger vetoes.
type AvailabilityService struct {
	Store   storage.Store
	Metrics *metrics.Metrics
}

func NewAvailabilityService(store storage.Store, m *metrics.Metrics) *AvailabilityService {
	return &AvailabilityService{Store: store, Metrics: m}
}

// RoomCalendar is the ledger plus the booked nights for a date window.
type RoomCalendar struct {
	RoomID        uint                       `json:"roomId"`
	From          string                     `json:"from"`
	To            string                     `json:"to"`
	Entries       []models.AvailabilityEntry `json:"entries"`
	ReservedDates []string                   `json:"reservedDates"`
}

// ValidateStay reports ErrInvalidDateRange when the stay cannot be booked
// whatever the other booking fields hold.
func ValidateStay(checkIn, checkOut string) error {
	_, _, err := parseStay(checkIn, checkOut)
	return err
}

// parseStay validates a half-open stay: both dates parse, checkIn < checkOut
// and the stay is at most maxStayNights long.
func parseStay(checkIn, checkOut string) (time.Time, time.Time, error) {
	in, err := utils.ParseDate(checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid check-in date", ErrInvalidDateRange)
	}
	out, err := utils.ParseDate(checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid check-out date", ErrInvalidDateRange)
	}
	if !in.Before(out) {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	if utils.Nights(in, out) > maxStayNights {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: stay longer than %d nights", ErrInvalidDateRange, maxStayNights)
	}
	return in, out, nil
}

// parseWindow validates an inclusive window: start <= end.
func parseWindow(start, end string) (string, string, error) {
	from, err := utils.ParseDate(start)
	if err != nil {
		return "", "", fmt.Errorf("%w: invalid start date", ErrInvalidDateRange)
	}
	to, err := utils.ParseDate(end)
	if err != nil {
		return "", "", fmt.Errorf("%w: invalid end date", ErrInvalidDateRange)
	}
	if to.Before(from) {
		return "", "", fmt.Errorf("%w: end date before start date", ErrInvalidDateRange)
	}
	return utils.FormatDate(from), utils.FormatDate(to), nil
}

func (s *AvailabilityService) requireRoom(ctx context.Context, roomID uint) (*models.Room, error) {
	room, err := s.Store.GetRoom(ctx, roomID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return room, nil
}

// GetAvailability lists ledger entries whose date lies in [start, end].
func (s *AvailabilityService) GetAvailability(ctx context.Context, roomID uint, start, end string) ([]models.AvailabilityEntry, error) {
	from, to, err := parseWindow(start, end)
	if err != nil {
		return nil, err
	}
	if _, err := s.requireRoom(ctx, roomID); err != nil {
		return nil, err
	}

	entries, err := s.Store.ListAvailability(ctx, roomID, from, to)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.AvailabilityEntry{}
	}
	return entries, nil
}

func (s *AvailabilityService) SetAvailability(ctx context.Context, entryID uint, isAvailable bool) (*models.AvailabilityEntry, error) {
	entry, err := s.Store.SetAvailability(ctx, entryID, isAvailable)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrAvailabilityNotFound
		}
		return nil, err
	}

	logger.FromContext(ctx).Info().
		Uint("entry_id", entry.ID).
		Uint("room_id", entry.RoomID).
		Str("date", entry.Date).
		Bool("is_available", isAvailable).
		Msg("availability updated")
	return entry, nil
}

// SeedWindow makes sure the room has a ledger entry for each of the next
// days dates starting today. Existing entries are left alone.
func (s *AvailabilityService) SeedWindow(ctx context.Context, room *models.Room, days int) error {
	if days <= 0 {
		return nil
	}
	start := utils.Today()
	entries := make([]models.AvailabilityEntry, 0, days)
	for i := 0; i < days; i++ {
		price := room.Price
		entries = append(entries, models.AvailabilityEntry{
			RoomID:        room.ID,
			Date:          utils.FormatDate(start.AddDate(0, 0, i)),
			IsAvailable:   true,
			PricePerNight: &price,
		})
	}
	return s.Store.CreateAvailability(ctx, entries)
}

// CheckAvailability is read-only; repeated calls with the same input return
// the same answer while no booking or ledger write happens in between.
func (s *AvailabilityService) CheckAvailability(ctx context.Context, roomID uint, checkIn, checkOut string) (bool, error) {
	in, out, err := parseStay(checkIn, checkOut)
	if err != nil {
		return false, err
	}
	if _, err := s.requireRoom(ctx, roomID); err != nil {
		return false, err
	}

	free, err := s.Store.IsRangeFree(ctx, roomID, utils.EachNight(in, out))
	if err != nil {
		return false, err
	}
	s.Metrics.AvailabilityChecked(free)
	return free, nil
}

// Calendar returns ledger entries and booked nights for [from, to].
func (s *AvailabilityService) Calendar(ctx context.Context, roomID uint, start, end string) (*RoomCalendar, error) {
	from, to, err := parseWindow(start, end)
	if err != nil {
		return nil, err
	}
	f, _ := utils.ParseDate(from)
	t, _ := utils.ParseDate(to)
	if utils.Nights(f, t) >= maxCalendarDays {
		return nil, fmt.Errorf("%w: window longer than %d days", ErrInvalidDateRange, maxCalendarDays)
	}
	if _, err := s.requireRoom(ctx, roomID); err != nil {
		return nil, err
	}

	entries, err := s.Store.ListAvailability(ctx, roomID, from, to)
	if err != nil {
		return nil, err
	}
	reserved, err := s.Store.ListReservedNights(ctx, roomID, from, to)
	if err != nil {
		return nil, err
	}

	cal := &RoomCalendar{
		RoomID:        roomID,
		From:          from,
		To:            to,
		Entries:       entries,
		ReservedDates: make([]string, 0, len(reserved)),
	}
	if cal.Entries == nil {
		cal.Entries = []models.AvailabilityEntry{}
	}
	for _, r := range reserved {
		cal.ReservedDates = append(cal.ReservedDates, r.Date)
	}
	return cal, nil
}

// nightlyRates returns the rate for each night: the ledger override when one
// exists, otherwise the room's catalog price.
func (s *AvailabilityService) nightlyRates(ctx context.Context, room *models.Room, nights []string) ([]int, error) {
	rates := make([]int, len(nights))
	if len(nights) == 0 {
		return rates, nil
	}

	entries, err := s.Store.ListAvailability(ctx, room.ID, nights[0], nights[len(nights)-1])
	if err != nil {
		return nil, err
	}
	overrides := make(map[string]int, len(entries))
	for _, e := range entries {
		if e.PricePerNight != nil {
			overrides[e.Date] = *e.PricePerNight
		}
	}
	for i, night := range nights {
		if rate, ok := overrides[night]; ok {
			rates[i] = rate
		} else {
			rates[i] = room.Price
		}
	}
	return rates, nil
}
