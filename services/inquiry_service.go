package services

import (
	"context"
	"fmt"
	"strings"

	"grand-azure-hotel/logger"
	"grand-azure-hotel/models"
	"grand-azure-hotel/storage"
	"grand-azure-hotel/utils"
)

// InquiryService stores pre-booking inquiries and contact-form messages for staff follow-up.
type InquiryService struct {
	Store storage.Store
}

func NewInquiryService(store storage.Store) *InquiryService {
	return &InquiryService{Store: store}
}

func (s *InquiryService) CreateBookingInquiry(ctx context.Context, in *models.BookingInquiry) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.RoomType = strings.TrimSpace(in.RoomType)
	if in.Name == "" || in.RoomType == "" || in.Guests < 1 {
		return ErrInvalidInput
	}
	if err := validate.Var(in.Email, "required,email"); err != nil {
		return fmt.Errorf("%w: email is not a valid email", ErrInvalidInput)
	}

	checkIn, checkOut, err := parseStay(in.CheckInDate, in.CheckOutDate)
	if err != nil {
		return err
	}
	in.CheckInDate = utils.FormatDate(checkIn)
	in.CheckOutDate = utils.FormatDate(checkOut)

	if err := s.Store.CreateBookingInquiry(ctx, in); err != nil {
		return err
	}
	logger.FromContext(ctx).Info().Uint("inquiry_id", in.ID).Str("room_type", in.RoomType).Msg("booking inquiry received")
	return nil
}

func (s *InquiryService) ListBookingInquiries(ctx context.Context) ([]models.BookingInquiry, error) {
	list, err := s.Store.ListBookingInquiries(ctx)
	if list == nil && err == nil {
		list = []models.BookingInquiry{}
	}
	return list, err
}

func (s *InquiryService) CreateContactMessage(ctx context.Context, msg *models.ContactMessage) error {
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Subject = strings.TrimSpace(msg.Subject)
	msg.Message = strings.TrimSpace(msg.Message)
	if msg.Name == "" || msg.Subject == "" || msg.Message == "" {
		return ErrInvalidInput
	}
	if err := validate.Var(msg.Email, "required,email"); err != nil {
		return fmt.Errorf("%w: email is not a valid email", ErrInvalidInput)
	}

	if err := s.Store.CreateContactMessage(ctx, msg); err != nil {
		return err
	}
	logger.FromContext(ctx).Info().Uint("message_id", msg.ID).Msg("contact message received")
	return nil
}

func (s *InquiryService) ListContactMessages(ctx context.Context) ([]models.ContactMessage, error) {
	list, err := s.Store.ListContactMessages(ctx)
	if list == nil && err == nil {
		list = []models.ContactMessage{}
	}
	return list, err
}
