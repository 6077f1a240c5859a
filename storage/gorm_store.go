package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	mysql "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"grand-azure-hotel/models"
)

// GormStore is the relational backend (MySQL or Postgres).
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

// AutoMigrate creates tables parent -> child.
func (s *GormStore) AutoMigrate() error {
	return s.DB.AutoMigrate(
		&models.User{},
		&models.Room{},
		&models.AvailabilityEntry{},
		&models.Booking{},
		&models.RoomDateUnavailability{},
		&models.BookingInquiry{},
		&models.ContactMessage{},
		&models.GalleryItem{},
		&models.Amenity{},
		&models.Testimonial{},
		&models.HotelSetting{},
	)
}

func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var merr *mysql.MySQLError
	if errors.As(err, &merr) {
		return merr.Number == 1062
	}
	lower := strings.ToLower(err.Error())
	return strings.Contains(lower, "duplicate") || strings.Contains(lower, "unique constraint")
}

// ----------------------------------------------------
// Rooms
// ----------------------------------------------------

func (s *GormStore) ListRooms(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	err := s.DB.WithContext(ctx).Order("id ASC").Find(&rooms).Error
	return rooms, err
}

func (s *GormStore) GetRoom(ctx context.Context, id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.WithContext(ctx).First(&room, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &room, nil
}

func (s *GormStore) CreateRoom(ctx context.Context, room *models.Room) error {
	return s.DB.WithContext(ctx).Create(room).Error
}

// ----------------------------------------------------
// Availability ledger
// ----------------------------------------------------

func (s *GormStore) ListAvailability(ctx context.Context, roomID uint, from, to string) ([]models.AvailabilityEntry, error) {
	var entries []models.AvailabilityEntry
	err := s.DB.WithContext(ctx).
		Where("room_id = ? AND date >= ? AND date <= ?", roomID, from, to).
		Order("date ASC").
		Find(&entries).Error
	return entries, err
}

func (s *GormStore) GetAvailabilityEntry(ctx context.Context, id uint) (*models.AvailabilityEntry, error) {
	var entry models.AvailabilityEntry
	if err := s.DB.WithContext(ctx).First(&entry, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &entry, nil
}

func (s *GormStore) SetAvailability(ctx context.Context, id uint, isAvailable bool) (*models.AvailabilityEntry, error) {
	var entry models.AvailabilityEntry
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&entry, id).Error; err != nil {
			return notFound(err)
		}
		entry.IsAvailable = isAvailable
		return tx.Model(&models.AvailabilityEntry{}).
			Where("id = ?", id).
			Update("is_available", isAvailable).Error
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *GormStore) CreateAvailability(ctx context.Context, entries []models.AvailabilityEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return s.DB.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(&entries, 200).Error
}

// ----------------------------------------------------
// Conflict index + bookings
// ----------------------------------------------------

// checkNights returns ErrRangeTaken or ErrRangeBlocked when any night is unavailable.
func checkNights(tx *gorm.DB, roomID uint, nights []string) error {
	if len(nights) == 0 {
		return nil
	}

	var taken int64
	if err := tx.Model(&models.RoomDateUnavailability{}).
		Where("room_id = ? AND date IN ?", roomID, nights).
		Count(&taken).Error; err != nil {
		return err
	}
	if taken > 0 {
		return ErrRangeTaken
	}

	var blocked int64
	if err := tx.Model(&models.AvailabilityEntry{}).
		Where("room_id = ? AND date IN ? AND is_available = ?", roomID, nights, false).
		Count(&blocked).Error; err != nil {
		return err
	}
	if blocked > 0 {
		return ErrRangeBlocked
	}
	return nil
}

func (s *GormStore) IsRangeFree(ctx context.Context, roomID uint, nights []string) (bool, error) {
	err := checkNights(s.DB.WithContext(ctx), roomID, nights)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrRangeTaken), errors.Is(err, ErrRangeBlocked):
		return false, nil
	default:
		return false, err
	}
}

func (s *GormStore) ListReservedNights(ctx context.Context, roomID uint, from, to string) ([]models.RoomDateUnavailability, error) {
	var rows []models.RoomDateUnavailability
	err := s.DB.WithContext(ctx).
		Where("room_id = ? AND date >= ? AND date <= ?", roomID, from, to).
		Order("date ASC").
		Find(&rows).Error
	return rows, err
}

// CreateBooking locks the room row so bookings for one room are serialised,
// then re-checks and reserves inside the same transaction. The (room_id, date)
// primary key rejects any writer that slips past the lock.
func (s *GormStore) CreateBooking(ctx context.Context, b *models.Booking, nights []string) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&room, b.RoomID).Error; err != nil {
			return notFound(err)
		}

		if err := checkNights(tx, b.RoomID, nights); err != nil {
			return err
		}

		if err := tx.Omit(clause.Associations).Create(b).Error; err != nil {
			return fmt.Errorf("insert booking: %w", err)
		}

		rows := make([]models.RoomDateUnavailability, 0, len(nights))
		for _, night := range nights {
			rows = append(rows, models.RoomDateUnavailability{RoomID: b.RoomID, Date: night, BookingID: b.ID})
		}
		if len(rows) > 0 {
			if err := tx.Omit(clause.Associations).Create(&rows).Error; err != nil {
				if isDuplicateKey(err) {
					return ErrRangeTaken
				}
				return fmt.Errorf("reserve nights: %w", err)
			}
		}
		return nil
	})
}

func (s *GormStore) UpdateBooking(ctx context.Context, id uint, apply BookingUpdate) (*models.Booking, error) {
	var booking models.Booking
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&booking, id).Error; err != nil {
			return notFound(err)
		}

		release, err := apply(&booking)
		if err != nil {
			return err
		}
		booking.UpdatedAt = time.Now().UTC()

		if err := tx.Model(&models.Booking{}).Where("id = ?", id).Updates(map[string]interface{}{
			"status":     booking.Status,
			"updated_at": booking.UpdatedAt,
		}).Error; err != nil {
			return err
		}

		if release {
			if err := tx.Where("booking_id = ?", id).Delete(&models.RoomDateUnavailability{}).Error; err != nil {
				return fmt.Errorf("release nights: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (s *GormStore) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.WithContext(ctx).First(&booking, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &booking, nil
}

func (s *GormStore) ListBookingsByUser(ctx context.Context, userID uint) ([]models.Booking, error) {
	var list []models.Booking
	err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

// ----------------------------------------------------
// Users
// ----------------------------------------------------

func (s *GormStore) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := s.DB.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (s *GormStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	if err := s.DB.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (s *GormStore) CreateUser(ctx context.Context, u *models.User) error {
	if err := s.DB.WithContext(ctx).Create(u).Error; err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// ----------------------------------------------------
// Inquiries / contact
// ----------------------------------------------------

func (s *GormStore) CreateBookingInquiry(ctx context.Context, in *models.BookingInquiry) error {
	return s.DB.WithContext(ctx).Create(in).Error
}

func (s *GormStore) ListBookingInquiries(ctx context.Context) ([]models.BookingInquiry, error) {
	var out []models.BookingInquiry
	err := s.DB.WithContext(ctx).Order("id DESC").Find(&out).Error
	return out, err
}

func (s *GormStore) CreateContactMessage(ctx context.Context, msg *models.ContactMessage) error {
	return s.DB.WithContext(ctx).Create(msg).Error
}

func (s *GormStore) ListContactMessages(ctx context.Context) ([]models.ContactMessage, error) {
	var out []models.ContactMessage
	err := s.DB.WithContext(ctx).Order("id DESC").Find(&out).Error
	return out, err
}

// ----------------------------------------------------
// Marketing content
// ----------------------------------------------------

func (s *GormStore) ListGalleryItems(ctx context.Context) ([]models.GalleryItem, error) {
	var out []models.GalleryItem
	err := s.DB.WithContext(ctx).Order("id ASC").Find(&out).Error
	return out, err
}

func (s *GormStore) CreateGalleryItem(ctx context.Context, item *models.GalleryItem) error {
	return s.DB.WithContext(ctx).Create(item).Error
}

func (s *GormStore) ListAmenities(ctx context.Context) ([]models.Amenity, error) {
	var out []models.Amenity
	err := s.DB.WithContext(ctx).Order("id ASC").Find(&out).Error
	return out, err
}

func (s *GormStore) CreateAmenity(ctx context.Context, a *models.Amenity) error {
	return s.DB.WithContext(ctx).Create(a).Error
}

func (s *GormStore) ListTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	var out []models.Testimonial
	err := s.DB.WithContext(ctx).Order("id ASC").Find(&out).Error
	return out, err
}

func (s *GormStore) CreateTestimonial(ctx context.Context, t *models.Testimonial) error {
	return s.DB.WithContext(ctx).Create(t).Error
}

func (s *GormStore) GetHotelSetting(ctx context.Context) (*models.HotelSetting, error) {
	var hotel models.HotelSetting
	if err := s.DB.WithContext(ctx).First(&hotel).Error; err != nil {
		return nil, notFound(err)
	}
	return &hotel, nil
}

func (s *GormStore) SaveHotelSetting(ctx context.Context, h *models.HotelSetting) error {
	return s.DB.WithContext(ctx).Save(h).Error
}
