package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"grand-azure-hotel/logger"
	"grand-azure-hotel/metrics"
	"grand-azure-hotel/models"
	"grand-azure-hotel/storage"
	"grand-azure-hotel/utils"
)

var validate = validator.New()

// Notifier sends the booking confirmation. utils.Mailer satisfies it.
type Notifier interface {
	SendBookingConfirmation(ctx context.Context, b utils.BookingMail) error
}

// BookingInput is what a guest submits to reserve a room.
type BookingInput struct {
	RoomID          uint
	UserID          *uint
	GuestName       string
	GuestEmail      string
	GuestPhone      string
	CheckInDate     string
	CheckOutDate    string
	NumberOfGuests  int
	SpecialRequests *string
}

// BookingService runs the booking lifecycle: create (confirmed) and the
// confirmed -> cancelled|completed transitions.
type BookingService struct {
	Store           storage.Store
	Rooms           *RoomService
	Availability    *AvailabilityService
	Metrics         *metrics.Metrics
	Mailer          Notifier
	EnforceCapacity bool
}

func NewBookingService(
	store storage.Store,
	rooms *RoomService,
	availability *AvailabilityService,
	m *metrics.Metrics,
	mailer Notifier,
	enforceCapacity bool,
) *BookingService {
	return &BookingService{
		Store:           store,
		Rooms:           rooms,
		Availability:    availability,
		Metrics:         m,
		Mailer:          mailer,
		EnforceCapacity: enforceCapacity,
	}
}

func (in *BookingInput) normalize() error {
	in.GuestName = strings.TrimSpace(in.GuestName)
	in.GuestEmail = strings.TrimSpace(in.GuestEmail)
	in.GuestPhone = strings.TrimSpace(in.GuestPhone)
	if in.SpecialRequests != nil {
		trimmed := strings.TrimSpace(*in.SpecialRequests)
		if trimmed == "" {
			in.SpecialRequests = nil
		} else {
			in.SpecialRequests = &trimmed
		}
	}

	switch {
	case in.RoomID == 0:
		return fmt.Errorf("%w: roomId is required", ErrInvalidInput)
	case in.GuestName == "":
		return fmt.Errorf("%w: guestName is required", ErrInvalidInput)
	case in.GuestPhone == "":
		return fmt.Errorf("%w: guestPhone is required", ErrInvalidInput)
	case in.NumberOfGuests < 1:
		return fmt.Errorf("%w: numberOfGuests must be at least 1", ErrInvalidInput)
	}
	if err := validate.Var(in.GuestEmail, "required,email"); err != nil {
		return fmt.Errorf("%w: guestEmail is not a valid email", ErrInvalidInput)
	}
	return nil
}

// CreateBooking validates the stay, prices it and hands the check-and-reserve
// to the store as one atomic step.
func (s *BookingService) CreateBooking(ctx context.Context, in BookingInput) (*models.Booking, error) {
	checkIn, checkOut, err := parseStay(in.CheckInDate, in.CheckOutDate)
	if err != nil {
		return nil, err
	}
	if err := in.normalize(); err != nil {
		return nil, err
	}

	room, err := s.Rooms.GetRoom(ctx, in.RoomID)
	if err != nil {
		return nil, err
	}

	if in.UserID != nil {
		if _, err := s.Store.GetUser(ctx, *in.UserID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, err
		}
	}

	if s.EnforceCapacity && in.NumberOfGuests > room.Capacity {
		return nil, fmt.Errorf("%w: room holds %d guests", ErrCapacityExceeded, room.Capacity)
	}

	nights := utils.EachNight(checkIn, checkOut)
	rates, err := s.Availability.nightlyRates(ctx, room, nights)
	if err != nil {
		return nil, err
	}
	total := 0
	for _, rate := range rates {
		total += rate
	}

	booking := &models.Booking{
		RoomID:          room.ID,
		UserID:          in.UserID,
		GuestName:       in.GuestName,
		GuestEmail:      in.GuestEmail,
		GuestPhone:      in.GuestPhone,
		CheckInDate:     utils.FormatDate(checkIn),
		CheckOutDate:    utils.FormatDate(checkOut),
		NumberOfGuests:  in.NumberOfGuests,
		TotalPrice:      total * 100,
		Status:          models.BookingConfirmed,
		SpecialRequests: in.SpecialRequests,
	}

	log := logger.FromContext(ctx)
	if err := s.Store.CreateBooking(ctx, booking, nights); err != nil {
		switch {
		case errors.Is(err, storage.ErrRangeTaken), errors.Is(err, storage.ErrRangeBlocked):
			s.Metrics.BookingConflict()
			log.Info().
				Uint("room_id", room.ID).
				Str("check_in", booking.CheckInDate).
				Str("check_out", booking.CheckOutDate).
				Err(err).
				Msg("booking rejected")
			return nil, ErrRoomUnavailable
		case errors.Is(err, storage.ErrNotFound):
			return nil, ErrRoomNotFound
		default:
			return nil, fmt.Errorf("create booking: %w", err)
		}
	}

	s.Metrics.BookingCreated()
	log.Info().
		Uint("booking_id", booking.ID).
		Uint("room_id", room.ID).
		Int("nights", len(nights)).
		Int("total_cents", booking.TotalPrice).
		Msg("booking confirmed")

	if s.Mailer != nil {
		mailErr := s.Mailer.SendBookingConfirmation(ctx, utils.BookingMail{
			BookingID:    booking.ID,
			GuestName:    booking.GuestName,
			GuestEmail:   booking.GuestEmail,
			RoomName:     room.Name,
			CheckInDate:  booking.CheckInDate,
			CheckOutDate: booking.CheckOutDate,
			Nights:       len(nights),
			TotalCents:   booking.TotalPrice,
		})
		if mailErr != nil {
			log.Warn().Err(mailErr).Uint("booking_id", booking.ID).Msg("confirmation email failed")
		}
	}

	return booking, nil
}

func (s *BookingService) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	b, err := s.Store.GetBooking(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

// UpdateStatus moves a booking along the state machine. Cancelling frees its
// nights in the same store operation; completing keeps them.
func (s *BookingService) UpdateStatus(ctx context.Context, id uint, status string) (*models.Booking, error) {
	target := models.BookingStatus(strings.ToLower(strings.TrimSpace(status)))
	if !target.IsValid() {
		return nil, ErrInvalidStatus
	}

	var from models.BookingStatus
	updated, err := s.Store.UpdateBooking(ctx, id, func(b *models.Booking) (bool, error) {
		from = b.Status
		if b.Status.IsTerminal() {
			return false, fmt.Errorf("%w: booking is already %s", ErrInvalidTransition, b.Status)
		}
		if b.Status == target {
			return false, nil
		}
		if !b.Status.CanTransitionTo(target) {
			return false, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, b.Status, target)
		}
		b.Status = target
		return target == models.BookingCancelled, nil
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if from != target {
		s.Metrics.StatusChanged(string(target))
		logger.FromContext(ctx).Info().
			Uint("booking_id", id).
			Str("from", string(from)).
			Str("to", string(target)).
			Msg("booking status changed")
	}
	return updated, nil
}

func (s *BookingService) ListUserBookings(ctx context.Context, userID uint) ([]models.Booking, error) {
	if _, err := s.Store.GetUser(ctx, userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	list, err := s.Store.ListBookingsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []models.Booking{}
	}
	return list, nil
}
