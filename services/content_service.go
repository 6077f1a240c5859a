package services

import (
	"context"
	"errors"

	"grand-azure-hotel/models"
	"grand-azure-hotel/storage"
)

type ContentService struct {
	Store storage.Store
}

func NewContentService(store storage.Store) *ContentService {
	return &ContentService{Store: store}
}

func (s *ContentService) Gallery(ctx context.Context) ([]models.GalleryItem, error) {
	list, err := s.Store.ListGalleryItems(ctx)
	if list == nil && err == nil {
		list = []models.GalleryItem{}
	}
	return list, err
}

func (s *ContentService) Amenities(ctx context.Context) ([]models.Amenity, error) {
	list, err := s.Store.ListAmenities(ctx)
	if list == nil && err == nil {
		list = []models.Amenity{}
	}
	return list, err
}

func (s *ContentService) Testimonials(ctx context.Context) ([]models.Testimonial, error) {
	list, err := s.Store.ListTestimonials(ctx)
	if list == nil && err == nil {
		list = []models.Testimonial{}
	}
	return list, err
}

// Hotel returns the stored profile, or an empty one if none has been saved.
func (s *ContentService) Hotel(ctx context.Context) (*models.HotelSetting, error) {
	h, err := s.Store.GetHotelSetting(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		return &models.HotelSetting{}, nil
	}
	return h, err
}

// UpdateHotel overwrites the profile, creating it on first save.
func (s *ContentService) UpdateHotel(ctx context.Context, in models.HotelSetting) (*models.HotelSetting, error) {
	hotel, err := s.Store.GetHotelSetting(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}
		hotel = &models.HotelSetting{}
	}

	hotel.Name = in.Name
	hotel.Address = in.Address
	hotel.Phone = in.Phone
	hotel.Email = in.Email
	hotel.Website = in.Website
	hotel.Logo = in.Logo

	if err := s.Store.SaveHotelSetting(ctx, hotel); err != nil {
		return nil, err
	}
	return hotel, nil
}
