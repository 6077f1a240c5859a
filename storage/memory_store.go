package storage

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"grand-azure-hotel/models"
)

// MemoryStore keeps everything in process memory. One mutex guards all maps,
// so check-and-reserve in CreateBooking is atomic.
type MemoryStore struct {
	mu sync.RWMutex

	nextID map[string]uint

	rooms        map[uint]models.Room
	availability map[uint]models.AvailabilityEntry
	ledger       map[uint]map[string]uint // room -> date -> availability entry id
	reserved     map[string]models.RoomDateUnavailability
	bookings     map[uint]models.Booking
	users        map[uint]models.User
	inquiries    map[uint]models.BookingInquiry
	contacts     map[uint]models.ContactMessage
	gallery      map[uint]models.GalleryItem
	amenities    map[uint]models.Amenity
	testimonials map[uint]models.Testimonial
	hotel        *models.HotelSetting
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextID:       make(map[string]uint),
		rooms:        make(map[uint]models.Room),
		availability: make(map[uint]models.AvailabilityEntry),
		ledger:       make(map[uint]map[string]uint),
		reserved:     make(map[string]models.RoomDateUnavailability),
		bookings:     make(map[uint]models.Booking),
		users:        make(map[uint]models.User),
		inquiries:    make(map[uint]models.BookingInquiry),
		contacts:     make(map[uint]models.ContactMessage),
		gallery:      make(map[uint]models.GalleryItem),
		amenities:    make(map[uint]models.Amenity),
		testimonials: make(map[uint]models.Testimonial),
	}
}

func nightKey(roomID uint, date string) string {
	return fmt.Sprintf("%d_%s", roomID, date)
}

// next must be called with mu held.
func (s *MemoryStore) next(table string) uint {
	s.nextID[table]++
	return s.nextID[table]
}

func sortedValues[T any](m map[uint]T, desc bool) []T {
	ids := make([]uint, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if desc {
			return ids[i] > ids[j]
		}
		return ids[i] < ids[j]
	})
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, m[id])
	}
	return out
}

func (s *MemoryStore) Ping(context.Context) error { return nil }

// ----------------------------------------------------
// Rooms
// ----------------------------------------------------

func (s *MemoryStore) ListRooms(context.Context) ([]models.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.rooms, false), nil
}

func (s *MemoryStore) GetRoom(_ context.Context, id uint) (*models.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	room, ok := s.rooms[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &room, nil
}

func (s *MemoryStore) CreateRoom(_ context.Context, room *models.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	room.ID = s.next("rooms")
	if room.Beds == 0 {
		room.Beds = 1
	}
	if room.Amenities == nil {
		room.Amenities = []string{}
	}
	s.rooms[room.ID] = *room
	return nil
}

// ----------------------------------------------------
// Availability ledger
// ----------------------------------------------------

func (s *MemoryStore) ListAvailability(_ context.Context, roomID uint, from, to string) ([]models.AvailabilityEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.AvailabilityEntry
	for date, id := range s.ledger[roomID] {
		if date >= from && date <= to {
			out = append(out, s.availability[id])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (s *MemoryStore) GetAvailabilityEntry(_ context.Context, id uint) (*models.AvailabilityEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.availability[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &e, nil
}

func (s *MemoryStore) SetAvailability(_ context.Context, id uint, isAvailable bool) (*models.AvailabilityEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.availability[id]
	if !ok {
		return nil, ErrNotFound
	}
	e.IsAvailable = isAvailable
	s.availability[id] = e
	return &e, nil
}

func (s *MemoryStore) CreateAvailability(_ context.Context, entries []models.AvailabilityEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range entries {
		dates, ok := s.ledger[entries[i].RoomID]
		if !ok {
			dates = make(map[string]uint)
			s.ledger[entries[i].RoomID] = dates
		}
		if _, exists := dates[entries[i].Date]; exists {
			continue
		}
		entries[i].ID = s.next("availability")
		s.availability[entries[i].ID] = entries[i]
		dates[entries[i].Date] = entries[i].ID
	}
	return nil
}

// ----------------------------------------------------
// Conflict index + bookings
// ----------------------------------------------------

// checkNights must be called with mu held.
func (s *MemoryStore) checkNights(roomID uint, nights []string) error {
	dates := s.ledger[roomID]
	for _, night := range nights {
		if _, taken := s.reserved[nightKey(roomID, night)]; taken {
			return ErrRangeTaken
		}
		if id, ok := dates[night]; ok && !s.availability[id].IsAvailable {
			return ErrRangeBlocked
		}
	}
	return nil
}

func (s *MemoryStore) IsRangeFree(_ context.Context, roomID uint, nights []string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.checkNights(roomID, nights) == nil, nil
}

func (s *MemoryStore) ListReservedNights(_ context.Context, roomID uint, from, to string) ([]models.RoomDateUnavailability, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.RoomDateUnavailability
	for _, r := range s.reserved {
		if r.RoomID == roomID && r.Date >= from && r.Date <= to {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (s *MemoryStore) CreateBooking(_ context.Context, b *models.Booking, nights []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rooms[b.RoomID]; !ok {
		return ErrNotFound
	}
	if err := s.checkNights(b.RoomID, nights); err != nil {
		return err
	}

	now := time.Now().UTC()
	b.ID = s.next("bookings")
	b.CreatedAt = now
	b.UpdatedAt = now
	s.bookings[b.ID] = *b

	for _, night := range nights {
		s.reserved[nightKey(b.RoomID, night)] = models.RoomDateUnavailability{
			RoomID:    b.RoomID,
			Date:      night,
			BookingID: b.ID,
		}
	}
	return nil
}

func (s *MemoryStore) UpdateBooking(_ context.Context, id uint, apply BookingUpdate) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}

	release, err := apply(&b)
	if err != nil {
		return nil, err
	}
	b.UpdatedAt = time.Now().UTC()
	s.bookings[id] = b

	if release {
		for key, r := range s.reserved {
			if r.BookingID == id {
				delete(s.reserved, key)
			}
		}
	}
	return &b, nil
}

func (s *MemoryStore) GetBooking(_ context.Context, id uint) (*models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &b, nil
}

func (s *MemoryStore) ListBookingsByUser(_ context.Context, userID uint) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Booking{}
	for _, b := range sortedValues(s.bookings, true) {
		if b.UserID != nil && *b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

// ----------------------------------------------------
// Users
// ----------------------------------------------------

func (s *MemoryStore) GetUser(_ context.Context, id uint) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (s *MemoryStore) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Username, username) {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) CreateUser(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if strings.EqualFold(existing.Username, u.Username) {
			return ErrDuplicate
		}
	}
	u.ID = s.next("users")
	u.CreatedAt = time.Now().UTC()
	s.users[u.ID] = *u
	return nil
}

// ----------------------------------------------------
// Inquiries / contact
// ----------------------------------------------------

func (s *MemoryStore) CreateBookingInquiry(_ context.Context, in *models.BookingInquiry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	in.ID = s.next("inquiries")
	in.CreatedAt = time.Now().UTC()
	s.inquiries[in.ID] = *in
	return nil
}

func (s *MemoryStore) ListBookingInquiries(context.Context) ([]models.BookingInquiry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.inquiries, true), nil
}

func (s *MemoryStore) CreateContactMessage(_ context.Context, msg *models.ContactMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg.ID = s.next("contacts")
	msg.CreatedAt = time.Now().UTC()
	s.contacts[msg.ID] = *msg
	return nil
}

func (s *MemoryStore) ListContactMessages(context.Context) ([]models.ContactMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.contacts, true), nil
}

// ----------------------------------------------------
// Marketing content
// ----------------------------------------------------

func (s *MemoryStore) ListGalleryItems(context.Context) ([]models.GalleryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.gallery, false), nil
}

func (s *MemoryStore) CreateGalleryItem(_ context.Context, item *models.GalleryItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	item.ID = s.next("gallery")
	s.gallery[item.ID] = *item
	return nil
}

func (s *MemoryStore) ListAmenities(context.Context) ([]models.Amenity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.amenities, false), nil
}

func (s *MemoryStore) CreateAmenity(_ context.Context, a *models.Amenity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.ID = s.next("amenities")
	s.amenities[a.ID] = *a
	return nil
}

func (s *MemoryStore) ListTestimonials(context.Context) ([]models.Testimonial, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.testimonials, false), nil
}

func (s *MemoryStore) CreateTestimonial(_ context.Context, t *models.Testimonial) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = s.next("testimonials")
	s.testimonials[t.ID] = *t
	return nil
}

func (s *MemoryStore) GetHotelSetting(context.Context) (*models.HotelSetting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.hotel == nil {
		return nil, ErrNotFound
	}
	h := *s.hotel
	return &h, nil
}

func (s *MemoryStore) SaveHotelSetting(_ context.Context, h *models.HotelSetting) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	if h.ID == 0 {
		h.ID = 1
		h.CreatedAt = now
	}
	h.UpdatedAt = now
	saved := *h
	s.hotel = &saved
	return nil
}
