package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"grand-azure-hotel/models"
	"grand-azure-hotel/services"
	"grand-azure-hotel/storage"
)

var seedRooms = []models.Room{
	{
		Name:        "Standard Room",
		Description: "Our comfortable standard rooms offer the perfect retreat after a day of exploration.",
		Price:       159,
		Image:       "https://images.unsplash.com/photo-1618773928121-c32242e63f39?ixlib=rb-4.0.3&auto=format&fit=crop&w=870&q=80",
		Capacity:    2,
		Size:        280,
		BedType:     "Queen Bed",
		Beds:        1,
		Amenities:   []string{"Free Wi-Fi", "Air Conditioning", "Flat-screen TV", "Mini Refrigerator", "Coffee Maker", "Work Desk", "Private Bathroom", "Shower"},
	},
	{
		Name:        "Deluxe Room",
		Description: "Spacious and elegant, our deluxe rooms offer premium amenities and stunning views.",
		Price:       229,
		Image:       "https://images.unsplash.com/photo-1590490360182-c33d57733427?ixlib=rb-4.0.3&auto=format&fit=crop&w=1158&q=80",
		Capacity:    2,
		Size:        350,
		BedType:     "King Bed",
		Beds:        1,
		Amenities:   []string{"Free Wi-Fi", "Air Conditioning", "Flat-screen TV", "Mini Refrigerator", "Coffee Maker", "Work Desk", "Private Bathroom", "Shower", "Bathtub", "Balcony", "City View", "Room Service", "Premium Toiletries"},
	},
	{
		Name:        "Executive Suite",
		Description: "Indulge in luxury with our executive suites featuring separate living areas and premium amenities.",
		Price:       359,
		Image:       "https://images.unsplash.com/photo-1611892440504-42a792e24d32?ixlib=rb-4.0.3&auto=format&fit=crop&w=1170&q=80",
		Capacity:    3,
		Size:        550,
		BedType:     "King Bed + Sofa Bed",
		Beds:        2,
		Amenities:   []string{"Free Wi-Fi", "Air Conditioning", "Flat-screen TV", "Mini Refrigerator", "Coffee Maker", "Work Desk", "Private Bathroom", "Shower", "Bathtub", "Balcony", "Ocean View", "Room Service", "Premium Toiletries", "Separate Living Area", "Dining Area", "Mini Bar", "Sofa Bed", "Jacuzzi", "Bathrobes", "Slippers"},
	},
}

var seedGallery = []models.GalleryItem{
	{Title: "Elegant Lobby", ImageURL: "https://images.unsplash.com/photo-1578683010236-d716f9a3f461?ixlib=rb-4.0.3&auto=format&fit=crop&w=870&q=80"},
	{Title: "Presidential Suite", ImageURL: "https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?ixlib=rb-4.0.3&auto=format&fit=crop&w=870&q=80"},
	{Title: "Infinity Pool", ImageURL: "https://images.unsplash.com/photo-1540541338287-41700207dee6?ixlib=rb-4.0.3&auto=format&fit=crop&w=870&q=80"},
	{Title: "Fine Dining", ImageURL: "https://images.unsplash.com/photo-1621193793262-4127d9855c91?ixlib=rb-4.0.3&auto=format&fit=crop&w=870&q=80"},
	{Title: "Luxury Spa", ImageURL: "https://images.unsplash.com/photo-1545579133-99bb5ab189bd?ixlib=rb-4.0.3&auto=format&fit=crop&w=870&q=80"},
	{Title: "Rooftop Bar", ImageURL: "https://images.unsplash.com/photo-1605346495609-1350e39faed9?ixlib=rb-4.0.3&auto=format&fit=crop&w=1170&q=80"},
	{Title: "Rooftop Terrace", ImageURL: "https://images.unsplash.com/photo-1566073771259-6a8506099945?ixlib=rb-4.0.3&auto=format&fit=crop&w=1170&q=80"},
	{Title: "Fitness Center", ImageURL: "https://images.unsplash.com/photo-1631049421450-348ccd7f8949?ixlib=rb-4.0.3&auto=format&fit=crop&w=870&q=80"},
	{Title: "Luxury Bathroom", ImageURL: "https://images.unsplash.com/photo-1596394516093-501ba68a0ba6?ixlib=rb-4.0.3&auto=format&fit=crop&w=870&q=80"},
}

var seedAmenities = []models.Amenity{
	{Name: "Infinity Pool", Description: "Enjoy our stunning rooftop infinity pool with panoramic views of the city skyline.", Icon: "swimming-pool"},
	{Name: "Luxury Spa", Description: "Rejuvenate with our range of spa treatments and therapies by expert practitioners.", Icon: "spa"},
	{Name: "Fine Dining", Description: "Savor exquisite cuisine at our award-winning restaurants and rooftop bar.", Icon: "utensils"},
	{Name: "Fitness Center", Description: "Stay fit in our state-of-the-art fitness center with the latest equipment and personal trainers.", Icon: "dumbbell"},
	{Name: "Concierge Service", Description: "Our dedicated concierge team is available 24/7 to assist with all your needs and requests.", Icon: "concierge-bell"},
	{Name: "Complimentary Wi-Fi", Description: "Stay connected with high-speed Wi-Fi available throughout the hotel.", Icon: "wifi"},
}

var seedTestimonials = []models.Testimonial{
	{
		Name:     "Sarah J.",
		Location: "New York, USA",
		Content:  "Our stay at Grand Azure was nothing short of magical. The staff went above and beyond to make our anniversary special. Can't wait to return!",
		Rating:   5,
		Avatar:   "https://images.unsplash.com/photo-1494790108377-be9c29b29330?ixlib=rb-4.0.3&auto=format&fit=crop&w=687&q=80",
	},
	{
		Name:     "David M.",
		Location: "London, UK",
		Content:  "The Executive Suite exceeded all expectations. Impeccable service, stunning views, and the most comfortable bed I've ever slept in. Pure luxury!",
		Rating:   5,
		Avatar:   "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?ixlib=rb-4.0.3&auto=format&fit=crop&w=687&q=80",
	},
	{
		Name:     "Emily L.",
		Location: "Sydney, Australia",
		Content:  "From the moment we arrived, we were treated like royalty. The spa treatments were divine and the dining experience at the rooftop restaurant was unforgettable.",
		Rating:   5,
		Avatar:   "https://images.unsplash.com/photo-1580489944761-15a19d654956?ixlib=rb-4.0.3&auto=format&fit=crop&w=761&q=80",
	},
}

type SeedOptions struct {
	// WindowDays is how far ahead of today every room gets ledger entries.
	WindowDays int
	// DemoUser adds the guest/guest123 account. Development only.
	DemoUser bool
}

// SeedDatabase loads reference data once and extends every room's availability
// window up to opts.WindowDays from today. Safe to run on every start.
func SeedDatabase(ctx context.Context, store storage.Store, availability *services.AvailabilityService, opts SeedOptions) error {
	// ---------------- Rooms ----------------
	rooms, err := store.ListRooms(ctx)
	if err != nil {
		return fmt.Errorf("list rooms: %w", err)
	}
	if len(rooms) == 0 {
		for i := range seedRooms {
			room := seedRooms[i]
			if err := store.CreateRoom(ctx, &room); err != nil {
				return fmt.Errorf("seed room %s: %w", room.Name, err)
			}
			rooms = append(rooms, room)
		}
		log.Info().Int("count", len(rooms)).Msg("Rooms seeded")
	}

	// ---------------- Availability ----------------
	for i := range rooms {
		if err := availability.SeedWindow(ctx, &rooms[i], opts.WindowDays); err != nil {
			return fmt.Errorf("seed availability for room %d: %w", rooms[i].ID, err)
		}
	}

	// ---------------- Content ----------------
	if gallery, err := store.ListGalleryItems(ctx); err == nil && len(gallery) == 0 {
		for i := range seedGallery {
			item := seedGallery[i]
			if err := store.CreateGalleryItem(ctx, &item); err != nil {
				log.Warn().Err(err).Str("title", item.Title).Msg("failed to seed gallery item")
			}
		}
	}
	if amenities, err := store.ListAmenities(ctx); err == nil && len(amenities) == 0 {
		for i := range seedAmenities {
			a := seedAmenities[i]
			if err := store.CreateAmenity(ctx, &a); err != nil {
				log.Warn().Err(err).Str("name", a.Name).Msg("failed to seed amenity")
			}
		}
	}
	if testimonials, err := store.ListTestimonials(ctx); err == nil && len(testimonials) == 0 {
		for i := range seedTestimonials {
			t := seedTestimonials[i]
			if err := store.CreateTestimonial(ctx, &t); err != nil {
				log.Warn().Err(err).Str("name", t.Name).Msg("failed to seed testimonial")
			}
		}
	}

	// ---------------- Hotel profile ----------------
	if _, err := store.GetHotelSetting(ctx); errors.Is(err, storage.ErrNotFound) {
		hotel := models.HotelSetting{
			Name:    "Grand Azure Hotel",
			Address: "1 Hotel Central Park, 1414 6th Avenue, New York, NY 10019, USA",
			Phone:   "+1 (555) 987-6543",
			Email:   "reservations@grandazurehotel.com",
			Website: "https://grandazurehotel.com",
		}
		if err := store.SaveHotelSetting(ctx, &hotel); err != nil {
			log.Warn().Err(err).Msg("failed to seed hotel profile")
		}
	}

	// ---------------- Demo user ----------------
	if !opts.DemoUser {
		return nil
	}
	if _, err := store.GetUserByUsername(ctx, "guest"); errors.Is(err, storage.ErrNotFound) {
		hash, err := bcrypt.GenerateFromPassword([]byte("guest123"), bcrypt.DefaultCost)
		if err != nil {
			log.Warn().Err(err).Msg("failed to hash demo user password")
		} else if err := store.CreateUser(ctx, &models.User{Username: "guest", Password: string(hash)}); err != nil {
			log.Warn().Err(err).Msg("failed to create demo user")
		} else {
			log.Info().Msg("Demo user seeded")
		}
	}

	return nil
}
