package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"grand-azure-hotel/controllers"
	"grand-azure-hotel/metrics"
	"grand-azure-hotel/middleware"
	"grand-azure-hotel/utils"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Options struct {
	CorsOrigins []string
	Metrics     *metrics.Metrics
	Gatherer    prometheus.Gatherer // nil disables /metrics
	Health      Pinger
}

type Handlers struct {
	Rooms        *controllers.RoomController
	Availability *controllers.AvailabilityController
	Bookings     *controllers.BookingController
	Inquiries    *controllers.InquiryController
	Content      *controllers.ContentController
}

func corsConfig(origins []string) cors.Config {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}
}

func SetupRouter(opts Options, h Handlers) *gin.Engine {
	utils.RegisterValidations()

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.Metrics(opts.Metrics),
		cors.New(corsConfig(opts.CorsOrigins)),
	)

	r.GET("/health", func(c *gin.Context) {
		if opts.Health != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := opts.Health.Ping(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if opts.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	api := r.Group("/api")
	{
		rooms := api.Group("/rooms")
		{
			rooms.GET("", h.Rooms.GetRooms)
			rooms.GET("/:id", h.Rooms.GetRoom)
			rooms.GET("/:id/availability", h.Rooms.CheckAvailability)
			rooms.GET("/:id/availability-entries", h.Rooms.GetAvailabilityEntries)
			rooms.GET("/:id/calendar", h.Rooms.GetCalendar)
		}

		api.PATCH("/availability/:id", h.Availability.SetAvailability)

		bookings := api.Group("/bookings")
		{
			bookings.POST("", h.Bookings.CreateBooking)
			bookings.GET("/:id", h.Bookings.GetBooking)
			bookings.PATCH("/:id/status", h.Bookings.UpdateStatus)
		}

		api.GET("/users/:userId/bookings", h.Bookings.GetUserBookings)

		inquiries := api.Group("/booking-inquiries")
		{
			inquiries.GET("", h.Inquiries.GetBookingInquiries)
			inquiries.POST("", h.Inquiries.CreateBookingInquiry)
		}

		contact := api.Group("/contact")
		{
			contact.GET("", h.Inquiries.GetContactMessages)
			contact.POST("", h.Inquiries.CreateContactMessage)
		}

		api.GET("/gallery", h.Content.GetGallery)
		api.GET("/amenities", h.Content.GetAmenities)
		api.GET("/testimonials", h.Content.GetTestimonials)
		api.GET("/hotel", h.Content.GetHotelSettings)

		settings := api.Group("/settings")
		{
			settings.GET("/hotel", h.Content.GetHotelSettings)
			settings.PUT("/hotel", h.Content.UpdateHotelSettings)
		}
	}

	return r
}
