package storage

import (
	"context"
	"errors"

	"grand-azure-hotel/models"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
	// ErrRangeTaken means at least one night is already claimed by a booking.
	ErrRangeTaken = errors.New("range already booked")
	// ErrRangeBlocked means at least one night is closed in the availability ledger.
	ErrRangeBlocked = errors.New("range blocked in availability ledger")
)

// BookingUpdate inspects a locked booking, mutates it and reports whether its
// nights must be released from the conflict index.
type BookingUpdate func(b *models.Booking) (releaseNights bool, err error)

// Store is the full persistence capability set. GormStore backs production,
// MemoryStore backs tests and DB_DRIVER=memory.
type Store interface {
	Ping(ctx context.Context) error

	ListRooms(ctx context.Context) ([]models.Room, error)
	GetRoom(ctx context.Context, id uint) (*models.Room, error)
	CreateRoom(ctx context.Context, room *models.Room) error

	// ListAvailability returns ledger entries with from <= date <= to.
	ListAvailability(ctx context.Context, roomID uint, from, to string) ([]models.AvailabilityEntry, error)
	GetAvailabilityEntry(ctx context.Context, id uint) (*models.AvailabilityEntry, error)
	SetAvailability(ctx context.Context, id uint, isAvailable bool) (*models.AvailabilityEntry, error)
	// CreateAvailability inserts entries, skipping room/date pairs that already exist.
	CreateAvailability(ctx context.Context, entries []models.AvailabilityEntry) error

	// IsRangeFree reports whether none of the nights is booked or blocked.
	IsRangeFree(ctx context.Context, roomID uint, nights []string) (bool, error)
	ListReservedNights(ctx context.Context, roomID uint, from, to string) ([]models.RoomDateUnavailability, error)
	// CreateBooking re-checks the nights, persists the booking and reserves every
	// night as one atomic unit. Nothing is written when it fails.
	CreateBooking(ctx context.Context, b *models.Booking, nights []string) error
	UpdateBooking(ctx context.Context, id uint, apply BookingUpdate) (*models.Booking, error)
	GetBooking(ctx context.Context, id uint) (*models.Booking, error)
	ListBookingsByUser(ctx context.Context, userID uint) ([]models.Booking, error)

	GetUser(ctx context.Context, id uint) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, u *models.User) error

	CreateBookingInquiry(ctx context.Context, in *models.BookingInquiry) error
	ListBookingInquiries(ctx context.Context) ([]models.BookingInquiry, error)
	CreateContactMessage(ctx context.Context, msg *models.ContactMessage) error
	ListContactMessages(ctx context.Context) ([]models.ContactMessage, error)

	ListGalleryItems(ctx context.Context) ([]models.GalleryItem, error)
	CreateGalleryItem(ctx context.Context, item *models.GalleryItem) error
	ListAmenities(ctx context.Context) ([]models.Amenity, error)
	CreateAmenity(ctx context.Context, a *models.Amenity) error
	ListTestimonials(ctx context.Context) ([]models.Testimonial, error)
	CreateTestimonial(ctx context.Context, t *models.Testimonial) error
	GetHotelSetting(ctx context.Context) (*models.HotelSetting, error)
	SaveHotelSetting(ctx context.Context, h *models.HotelSetting) error
}
